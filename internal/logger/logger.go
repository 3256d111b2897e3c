package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config содержит настройки для логгера.
// Level: debug, info, warn, error. Encoding: json или console.
// Пустой OutputPath означает stdout. Service и Env, если заданы,
// добавляются в каждую запись.
type Config struct {
	Level      string
	Encoding   string
	OutputPath string
	Service    string
	Env        string
}

// New создает zap.Logger по конфигурации.
// Неизвестный уровень не считается ошибкой: пишем предупреждение в stderr и используем info.
func New(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	logLevel := strings.ToLower(cfg.Level)
	if logLevel == "" {
		logLevel = "info"
	}
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level '%s', using 'info'. Error: %v\n", cfg.Level, err)
		level.SetLevel(zap.InfoLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoding := strings.ToLower(cfg.Encoding)
	if encoding != "console" && encoding != "json" {
		encoding = "json"
	}

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = "stdout"
	}

	initialFields := map[string]interface{}{}
	if cfg.Service != "" {
		initialFields["service"] = cfg.Service
	}
	if cfg.Env != "" {
		initialFields["env"] = cfg.Env
	}

	zapConfig := zap.Config{
		Level:             level,
		Development:       false,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{outputPath},
		ErrorOutputPaths:  []string{"stderr"},
		InitialFields:     initialFields,
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}

// APIKeyField - поле для стартовой диагностики ключа: маскированный ключ или "missing".
func APIKeyField(key string) zap.Field {
	if key == "" {
		return zap.String("api_key", "missing")
	}
	return zap.String("api_key", MaskSecret(key))
}

// MaskSecret оставляет первые 6 и последние 4 символа секрета.
// Короткие секреты маскируются целиком.
func MaskSecret(secret string) string {
	if len(secret) <= 10 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:6] + "***" + secret[len(secret)-4:]
}
