package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"inkbound-server/internal/logger"
)

// Config содержит конфигурацию бэкенда. Создается один раз при старте
// и передается в конструкторы явно.
type Config struct {
	Env        string `envconfig:"ENV" default:"development"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8000"`

	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding   string `envconfig:"LOG_ENCODING" default:"json"`
	LogOutputPath string `envconfig:"LOG_OUTPUT_PATH"`

	// Настройки AI (Groq по умолчанию, OpenAI-совместимый API)
	AIClientType    string        `envconfig:"AI_CLIENT_TYPE" default:"openai"`
	AIBaseURL       string        `envconfig:"AI_BASE_URL" default:"https://api.groq.com/openai/v1"`
	AIModel         string        `envconfig:"AI_MODEL" default:"llama-3.3-70b-versatile"`
	AITemperature   float32       `envconfig:"AI_TEMPERATURE" default:"0.8"`
	AITimeout       time.Duration `envconfig:"AI_TIMEOUT" default:"30s"`
	AITokenEstimate bool          `envconfig:"AI_TOKEN_ESTIMATE" default:"false"`
	// Ключ может отсутствовать: запрос уйдет с пустым bearer-токеном.
	AIAPIKey string `envconfig:"GROQ_API_KEY"`

	// Файл с персонажами
	CharactersPath string `envconfig:"CHARACTERS_PATH" default:"characters.json"`

	// Построение URL изображений
	ImageBaseURL           string `envconfig:"IMAGE_BASE_URL" default:"https://image.pollinations.ai/prompt/"`
	ImageWidth             int    `envconfig:"IMAGE_WIDTH" default:"1024"`
	ImageHeight            int    `envconfig:"IMAGE_HEIGHT" default:"1024"`
	ImageNoLogo            bool   `envconfig:"IMAGE_NOLOGO" default:"true"`
	ImagePromptStyleSuffix string `envconfig:"IMAGE_PROMPT_STYLE_SUFFIX"`

	// SoftErrors включает старый контракт: ошибки возвращаются строкой со статусом 200.
	SoftErrors bool `envconfig:"SOFT_ERRORS" default:"false"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// GetAllowedOrigins разбивает CORSAllowedOrigins по запятой.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}

// LoggerConfig собирает настройки для logger.New.
func (c *Config) LoggerConfig(service string) logger.Config {
	return logger.Config{
		Level:      c.LogLevel,
		Encoding:   c.LogEncoding,
		OutputPath: c.LogOutputPath,
		Service:    service,
		Env:        c.Env,
	}
}

// HasAPIKey сообщает, задан ли ключ для AI API.
func (c *Config) HasAPIKey() bool {
	return c.AIAPIKey != ""
}

// LoadConfig загружает конфигурацию из .env (если есть) и переменных окружения.
func LoadConfig(envFilePath string) (*Config, error) {
	if envFilePath != "" {
		if _, err := os.Stat(envFilePath); err == nil {
			if err := godotenv.Load(envFilePath); err != nil {
				log.Printf("Warning: Could not load %s file: %v", envFilePath, err)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("Warning: Error checking %s file: %v", envFilePath, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}

	if cfg.CharactersPath == "" {
		return nil, fmt.Errorf("CHARACTERS_PATH must not be empty")
	}
	if cfg.AITimeout <= 0 {
		return nil, fmt.Errorf("AI_TIMEOUT must be positive, got %v", cfg.AITimeout)
	}

	return &cfg, nil
}
