package service

import (
	"context"

	"go.uber.org/zap"

	"inkbound-server/internal/lore"
)

// ChatRequest - параметры одного обращения к рассказчику.
type ChatRequest struct {
	Query     string
	Genre     string
	Character string
}

// ChatService собирает персону из текущего лора и отправляет запрос в AI.
type ChatService interface {
	Chat(ctx context.Context, req ChatRequest) (string, error)
}

type chatService struct {
	lore   *lore.Builder
	ai     AIClient
	tokens *TokenEstimator
	logger *zap.Logger
}

// NewChatService создает ChatService. tokens может быть nil.
func NewChatService(builder *lore.Builder, ai AIClient, tokens *TokenEstimator, logger *zap.Logger) ChatService {
	return &chatService{
		lore:   builder,
		ai:     ai,
		tokens: tokens,
		logger: logger.Named("ChatService"),
	}
}

func (s *chatService) Chat(ctx context.Context, req ChatRequest) (string, error) {
	persona := s.lore.ComposeFor(req.Genre, req.Character)

	fields := []zap.Field{
		zap.String("genre", req.Genre),
		zap.String("character", req.Character),
		zap.Int("persona_bytes", len(persona)),
	}
	if n, ok := s.tokens.Estimate(persona); ok {
		fields = append(fields, zap.Int("persona_tokens_estimated", n))
	}
	s.logger.Debug("Persona composed", fields...)

	reply, err := s.ai.Chat(ctx, persona, req.Query)
	if err != nil {
		s.logger.Warn("Chat request failed", append(fields, zap.Error(err))...)
		return "", err
	}
	return reply, nil
}
