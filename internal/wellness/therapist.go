package wellness

import (
	"context"

	"go.uber.org/zap"

	"wellspring/internal/llm"
)

// SessionContext carries what the therapist knows about the conversation.
type SessionContext struct {
	Mood         string
	RecentTopics []string
	SessionType  string
}

// fallbackTherapyResponse is used whenever the collaborator fails.
const fallbackTherapyResponse = "I'm here to support you. Could you share more about what's on your mind today?"

// Therapist generates supportive chat replies. Never fails; a remote problem
// yields a fixed supportive sentence.
type Therapist struct {
	provider llm.Provider // nil means fallback-only
	logger   *zap.Logger
}

// NewTherapist builds a therapist. provider may be nil.
func NewTherapist(provider llm.Provider, logger *zap.Logger) *Therapist {
	return &Therapist{provider: provider, logger: logger}
}

// Respond generates a reply to the user's message.
func (t *Therapist) Respond(ctx context.Context, userMessage string, sctx SessionContext) string {
	if t.provider == nil {
		return fallbackTherapyResponse
	}

	reply, err := t.provider.Complete(ctx, llm.Request{
		System:      therapySystemInstruction + "\n\n" + buildTherapyContext(sctx),
		User:        userMessage,
		Shape:       llm.ShapeText,
		Temperature: 0.7,
		MaxTokens:   300,
	})
	if err != nil {
		t.logger.Warn("Therapy response fell back to default", zap.Error(err))
		return fallbackTherapyResponse
	}
	if reply == "" {
		return "I'm here to listen and support you. Could you tell me more about what you're experiencing?"
	}

	return reply
}
