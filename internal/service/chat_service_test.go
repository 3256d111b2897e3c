package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inkbound-server/internal/lore"
	"inkbound-server/internal/mocks"
	"inkbound-server/internal/models"
	"inkbound-server/internal/service"
)

type staticSource []models.Character

func (s staticSource) List() []models.Character { return s }

func TestChatService_ComposesPersonaFromLore(t *testing.T) {
	ai := mocks.NewMockAIClient(t)
	builder := lore.NewBuilder(staticSource{
		{Name: "Alice", Description: "brave"},
		{Name: "Bob", Description: "sly"},
	}, zap.NewNop())
	svc := service.NewChatService(builder, ai, nil, zap.NewNop())

	expectedPersona := lore.PersonaTemplate("noir") +
		" World Lore/Characters: Alice (brave). Bob (sly)." +
		" Character Profile: Bob. Bio: sly."

	ai.On("Chat", mock.Anything, expectedPersona, "What does Bob want?").
		Return("Bob wants the ledger.", nil).Once()

	reply, err := svc.Chat(context.Background(), service.ChatRequest{
		Query:     "What does Bob want?",
		Genre:     "noir",
		Character: "BOB",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bob wants the ledger.", reply)
}

func TestChatService_UnknownCharacterUsesLoreOnly(t *testing.T) {
	ai := mocks.NewMockAIClient(t)
	builder := lore.NewBuilder(staticSource{{Name: "Alice", Description: "brave"}}, zap.NewNop())
	svc := service.NewChatService(builder, ai, service.NewTokenEstimator(false, zap.NewNop()), zap.NewNop())

	ai.On("Chat", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.HasSuffix(p, "Alice (brave).") && !strings.Contains(p, "Character Profile")
	}), "hello").Return("hi", nil).Once()

	reply, err := svc.Chat(context.Background(), service.ChatRequest{Query: "hello", Genre: "fantasy", Character: "Zed"})
	require.NoError(t, err)
	assert.Equal(t, "hi", reply)
}

func TestChatService_PropagatesGatewayError(t *testing.T) {
	ai := mocks.NewMockAIClient(t)
	builder := lore.NewBuilder(staticSource{}, zap.NewNop())
	svc := service.NewChatService(builder, ai, nil, zap.NewNop())

	gatewayErr := &service.ChatError{Kind: service.KindUpstream, StatusCode: 429, Body: "rate limited"}
	ai.On("Chat", mock.Anything, lore.PersonaTemplate("horror"), "boo").Return("", gatewayErr).Once()

	_, err := svc.Chat(context.Background(), service.ChatRequest{Query: "boo", Genre: "horror"})
	require.Error(t, err)

	var chatErr *service.ChatError
	require.True(t, errors.As(err, &chatErr))
	assert.Equal(t, "AI Engine error: rate limited", err.Error())
}

func TestTokenEstimator_Disabled(t *testing.T) {
	est := service.NewTokenEstimator(false, zap.NewNop())
	n, ok := est.Estimate("anything")
	assert.False(t, ok)
	assert.Zero(t, n)

	var nilEst *service.TokenEstimator
	_, ok = nilEst.Estimate("anything")
	assert.False(t, ok)
}
