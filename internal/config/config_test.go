package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkbound-server/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, "openai", cfg.AIClientType)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.AIBaseURL)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.AIModel)
	assert.InDelta(t, 0.8, cfg.AITemperature, 0.0001)
	assert.Equal(t, 30*time.Second, cfg.AITimeout)
	assert.False(t, cfg.AITokenEstimate)
	assert.Equal(t, "characters.json", cfg.CharactersPath)
	assert.Equal(t, "https://image.pollinations.ai/prompt/", cfg.ImageBaseURL)
	assert.Equal(t, 1024, cfg.ImageWidth)
	assert.Equal(t, 1024, cfg.ImageHeight)
	assert.True(t, cfg.ImageNoLogo)
	assert.False(t, cfg.SoftErrors)
	assert.False(t, cfg.HasAPIKey())
	assert.Equal(t, []string{"*"}, cfg.GetAllowedOrigins())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("GROQ_API_KEY=gsk_from_dotenv_1234\nSOFT_ERRORS=true\n"), 0600))

	// godotenv не перезаписывает уже заданные переменные; t.Setenv восстановит их после теста
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("SOFT_ERRORS", "")
	require.NoError(t, os.Unsetenv("GROQ_API_KEY"))
	require.NoError(t, os.Unsetenv("SOFT_ERRORS"))

	cfg, err := config.LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, "gsk_from_dotenv_1234", cfg.AIAPIKey)
	assert.True(t, cfg.SoftErrors)
	assert.True(t, cfg.HasAPIKey())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("CHARACTERS_PATH", "/tmp/lore.json")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.AITimeout)
	assert.Equal(t, "/tmp/lore.json", cfg.CharactersPath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.GetAllowedOrigins())
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("AI_TIMEOUT", "0s")

	_, err := config.LoadConfig("")
	assert.Error(t, err)
}

func TestConfig_LoggerConfig(t *testing.T) {
	cfg := &config.Config{Env: "production", LogLevel: "warn", LogEncoding: "console"}

	lc := cfg.LoggerConfig("inkbound-server")
	assert.Equal(t, "warn", lc.Level)
	assert.Equal(t, "console", lc.Encoding)
	assert.Equal(t, "inkbound-server", lc.Service)
	assert.Equal(t, "production", lc.Env)
}
