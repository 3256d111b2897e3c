package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"inkbound-server/internal/config"
)

// ollamaClient реализует AIClient поверх локального Ollama.
type ollamaClient struct {
	client      *api.Client
	model       string
	temperature float32
	timeout     time.Duration
	logger      *zap.Logger
}

func newOllamaClient(cfg *config.Config, logger *zap.Logger) (AIClient, error) {
	// api.NewClient ждет адрес без суффикса /v1
	baseURL := strings.TrimSuffix(strings.TrimSuffix(cfg.AIBaseURL, "/"), "/v1")

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Ollama base URL '%s': %w", baseURL, err)
	}

	return &ollamaClient{
		client:      api.NewClient(parsedURL, &http.Client{Timeout: cfg.AITimeout}),
		model:       cfg.AIModel,
		temperature: cfg.AITemperature,
		timeout:     cfg.AITimeout,
		logger:      logger.Named("OllamaClient"),
	}, nil
}

func (c *ollamaClient) Chat(ctx context.Context, systemPrompt, userQuery string) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model: c.model,
		Messages: []api.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userQuery},
		},
		Stream: &stream,
		Options: map[string]interface{}{
			"temperature": c.temperature,
		},
	}

	requestCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	startTime := time.Now()
	var resp api.ChatResponse
	err := c.client.Chat(requestCtx, req, func(r api.ChatResponse) error {
		resp = r
		return nil
	})
	duration := time.Since(startTime)

	if err != nil {
		var statusErr api.StatusError
		if errors.As(err, &statusErr) {
			c.logger.Warn("Ollama returned error status",
				zap.Int("status_code", statusErr.StatusCode),
				zap.String("error", statusErr.ErrorMessage),
			)
			aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error_upstream"}).Inc()
			body := statusErr.ErrorMessage
			if body == "" {
				body = statusErr.Status
			}
			return "", upstreamError(statusErr.StatusCode, body)
		}
		c.logger.Error("Ollama request failed", zap.Duration("duration", duration), zap.Error(err))
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error_transport"}).Inc()
		return "", transportError(err)
	}

	aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "success"}).Inc()
	aiRequestDuration.With(prometheus.Labels{"model": c.model}).Observe(duration.Seconds())
	if resp.PromptEvalCount > 0 || resp.EvalCount > 0 {
		aiPromptTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(resp.PromptEvalCount))
		aiCompletionTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(resp.EvalCount))
	}

	c.logger.Info("Ollama response received",
		zap.Duration("duration", duration),
		zap.Int("response_length", len(resp.Message.Content)),
	)
	return resp.Message.Content, nil
}
