package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"inkbound-server/internal/config"
)

const chatCompletionsPath = "/chat/completions"

// openAIClient ходит в OpenAI-совместимый /chat/completions (Groq по умолчанию).
// Типы запроса и ответа берутся из go-openai, сам запрос отправляется обычным http.Client,
// чтобы тело ответа с ошибкой доходило до вызывающего без изменений.
type openAIClient struct {
	httpClient  *http.Client
	endpoint    string
	apiKey      string
	model       string
	temperature float32
	logger      *zap.Logger
}

func newOpenAIClient(cfg *config.Config, logger *zap.Logger) *openAIClient {
	return &openAIClient{
		httpClient:  &http.Client{Timeout: cfg.AITimeout},
		endpoint:    strings.TrimSuffix(cfg.AIBaseURL, "/") + chatCompletionsPath,
		apiKey:      cfg.AIAPIKey,
		model:       cfg.AIModel,
		temperature: cfg.AITemperature,
		logger:      logger.Named("OpenAIClient"),
	}
}

func (c *openAIClient) Chat(ctx context.Context, systemPrompt, userQuery string) (string, error) {
	log := c.logger.With(zap.String("model", c.model))

	payload, err := json.Marshal(openaigo.ChatCompletionRequest{
		Model: c.model,
		Messages: []openaigo.ChatCompletionMessage{
			{Role: openaigo.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openaigo.ChatMessageRoleUser, Content: userQuery},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error_encode"}).Inc()
		return "", transportError(fmt.Errorf("failed to encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error_request"}).Inc()
		return "", transportError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	log.Debug("Sending request to AI API",
		zap.Int("system_prompt_bytes", len(systemPrompt)),
		zap.Int("user_query_bytes", len(userQuery)),
	)

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		log.Error("AI API request failed", zap.Duration("duration", duration), zap.Error(err))
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error_transport"}).Inc()
		return "", transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read AI API response", zap.Error(err))
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error_transport"}).Inc()
		return "", transportError(err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Warn("AI API returned non-OK status",
			zap.Int("status_code", resp.StatusCode),
			zap.Duration("duration", duration),
			zap.Int("body_bytes", len(body)),
		)
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error_upstream"}).Inc()
		return "", upstreamError(resp.StatusCode, string(body))
	}

	var completion openaigo.ChatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		log.Error("Failed to decode AI API response", zap.Error(err))
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error_decode"}).Inc()
		return "", transportError(fmt.Errorf("failed to decode response: %w", err))
	}
	if len(completion.Choices) == 0 {
		log.Error("AI API returned no choices")
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error_empty_response"}).Inc()
		return "", transportError(errors.New("response contains no choices"))
	}

	aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "success"}).Inc()
	aiRequestDuration.With(prometheus.Labels{"model": c.model}).Observe(duration.Seconds())
	if completion.Usage.TotalTokens > 0 {
		aiPromptTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(completion.Usage.PromptTokens))
		aiCompletionTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(completion.Usage.CompletionTokens))
	}

	text := completion.Choices[0].Message.Content
	log.Info("AI API response received",
		zap.Duration("duration", duration),
		zap.Int("response_length", len(text)),
		zap.Int("prompt_tokens", completion.Usage.PromptTokens),
		zap.Int("completion_tokens", completion.Usage.CompletionTokens),
	)
	return text, nil
}
