package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"inkbound-server/internal/config"
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inkbound_ai_requests_total",
			Help: "Total number of requests to the AI API.",
		},
		[]string{"model", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inkbound_ai_request_duration_seconds",
			Help:    "Histogram of AI API request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)
	aiPromptTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inkbound_ai_prompt_tokens",
			Help:    "Histogram of prompt token counts reported by the AI API.",
			Buckets: prometheus.LinearBuckets(250, 250, 20),
		},
		[]string{"model"},
	)
	aiCompletionTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inkbound_ai_completion_tokens",
			Help:    "Histogram of completion token counts reported by the AI API.",
			Buckets: prometheus.LinearBuckets(100, 100, 20),
		},
		[]string{"model"},
	)
)

// ErrorKind различает класс сбоя шлюза.
type ErrorKind int

const (
	// KindUpstream - AI API ответил статусом, отличным от 200.
	KindUpstream ErrorKind = iota + 1
	// KindTransport - сеть, таймаут, разбор ответа, пустой список choices.
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindUpstream:
		return "upstream"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// ChatError - типизированная ошибка шлюза. Текст ошибки совпадает со строками,
// которые клиенты исторически получали в теле ответа.
type ChatError struct {
	Kind       ErrorKind
	StatusCode int
	Body       string
	Err        error
}

func (e *ChatError) Error() string {
	if e.Kind == KindUpstream {
		return "AI Engine error: " + e.Body
	}
	msg := e.Body
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return "Server error: " + msg
}

func (e *ChatError) Unwrap() error {
	return e.Err
}

// Timeout сообщает, что запрос оборвался по дедлайну.
func (e *ChatError) Timeout() bool {
	if e.Err == nil {
		return false
	}
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

func upstreamError(statusCode int, body string) *ChatError {
	return &ChatError{Kind: KindUpstream, StatusCode: statusCode, Body: body}
}

func transportError(err error) *ChatError {
	return &ChatError{Kind: KindTransport, Err: err}
}

// AIClient - шлюз к чат-модели.
type AIClient interface {
	// Chat отправляет системный промпт и запрос пользователя, возвращает текст первого варианта ответа.
	// Ошибки имеют тип *ChatError.
	Chat(ctx context.Context, systemPrompt, userQuery string) (string, error)
}

// NewAIClient создает клиента по cfg.AIClientType.
func NewAIClient(cfg *config.Config, logger *zap.Logger) (AIClient, error) {
	switch strings.ToLower(cfg.AIClientType) {
	case "openai", "groq", "":
		logger.Info("Using AI client implementation: OpenAI-compatible",
			zap.String("base_url", cfg.AIBaseURL),
			zap.String("model", cfg.AIModel),
			zap.Duration("timeout", cfg.AITimeout),
		)
		return newOpenAIClient(cfg, logger), nil
	case "ollama":
		logger.Info("Using AI client implementation: Ollama",
			zap.String("base_url", cfg.AIBaseURL),
			zap.String("model", cfg.AIModel),
		)
		return newOllamaClient(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown AI client type: '%s'", cfg.AIClientType)
	}
}
