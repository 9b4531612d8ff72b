package wellness

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRespond_PassesThroughReply(t *testing.T) {
	provider := &stubProvider{response: "That sounds really difficult. What helped you last time?"}
	therapist := NewTherapist(provider, zap.NewNop())

	got := therapist.Respond(context.Background(), "I had a hard week", SessionContext{SessionType: "chat"})

	assert.Equal(t, "That sounds really difficult. What helped you last time?", got)
}

func TestRespond_FallbackOnError(t *testing.T) {
	therapist := NewTherapist(&stubProvider{err: errors.New("rate limited")}, zap.NewNop())

	got := therapist.Respond(context.Background(), "I had a hard week", SessionContext{})

	assert.Equal(t, fallbackTherapyResponse, got)
}

func TestRespond_FallbackWithoutProvider(t *testing.T) {
	therapist := NewTherapist(nil, zap.NewNop())

	got := therapist.Respond(context.Background(), "hello", SessionContext{})

	assert.Equal(t, fallbackTherapyResponse, got)
}

func TestRespond_EmptyReplyGetsDefault(t *testing.T) {
	therapist := NewTherapist(&stubProvider{response: ""}, zap.NewNop())

	got := therapist.Respond(context.Background(), "hello", SessionContext{})

	assert.NotEmpty(t, got)
	assert.NotEqual(t, fallbackTherapyResponse, got)
}
