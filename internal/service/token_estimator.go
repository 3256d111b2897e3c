package service

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const defaultEncoding = "cl100k_base"

var personaPromptTokens = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "inkbound_persona_prompt_tokens_estimated",
	Help:    "Estimated token count of composed persona prompts.",
	Buckets: prometheus.LinearBuckets(250, 250, 20),
})

// TokenEstimator оценивает размер промпта в токенах через tiktoken.
// Кодировка загружается лениво при первом вызове (tiktoken скачивает BPE-словарь).
type TokenEstimator struct {
	enabled bool
	logger  *zap.Logger

	once    sync.Once
	encoder *tiktoken.Tiktoken
}

// NewTokenEstimator создает оценщик. При enabled == false Estimate всегда возвращает (0, false).
func NewTokenEstimator(enabled bool, logger *zap.Logger) *TokenEstimator {
	return &TokenEstimator{enabled: enabled, logger: logger.Named("TokenEstimator")}
}

// Estimate возвращает число токенов в text.
func (e *TokenEstimator) Estimate(text string) (int, bool) {
	if e == nil || !e.enabled {
		return 0, false
	}

	e.once.Do(func() {
		enc, err := tiktoken.GetEncoding(defaultEncoding)
		if err != nil {
			e.logger.Warn("Could not load tokenizer, token estimation disabled",
				zap.String("encoding", defaultEncoding), zap.Error(err))
			return
		}
		e.encoder = enc
	})
	if e.encoder == nil {
		return 0, false
	}

	n := len(e.encoder.Encode(text, nil, nil))
	personaPromptTokens.Observe(float64(n))
	return n, true
}
