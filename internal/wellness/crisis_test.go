package wellness

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"wellspring/internal/config"
	"wellspring/internal/llm"
)

// stubProvider returns a canned response or a fixed error.
type stubProvider struct {
	response string
	err      error
	calls    int
}

func (s *stubProvider) Complete(_ context.Context, _ llm.Request) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubProvider) Close() error                        { return nil }
func (s *stubProvider) GetModelInfo() map[string]interface{} { return map[string]interface{}{"model": "stub"} }

func testCrisisConfig() config.CrisisConfig {
	return config.CrisisConfig{
		SuicideKeywords:  config.DefaultSuicideKeywords(),
		SelfHarmKeywords: config.DefaultSelfHarmKeywords(),
		SafetyMessage:    config.DefaultSafetyMessage,
	}
}

func TestClassify_KeywordFallback(t *testing.T) {
	classifier := NewClassifier(nil, testCrisisConfig(), zap.NewNop())
	ctx := context.Background()

	t.Run("suicide keywords are critical", func(t *testing.T) {
		for _, keyword := range config.DefaultSuicideKeywords() {
			got := classifier.Classify(ctx, "I have been thinking about "+keyword+" lately")
			assert.Equal(t, Assessment{
				IsCrisis:   true,
				Severity:   SeverityCritical,
				Type:       TypeSuicidal,
				Confidence: 0.9,
			}, got, keyword)
		}
	})

	t.Run("self-harm keywords are high", func(t *testing.T) {
		for _, keyword := range config.DefaultSelfHarmKeywords() {
			got := classifier.Classify(ctx, "sometimes I want to "+keyword)
			assert.Equal(t, Assessment{
				IsCrisis:   true,
				Severity:   SeverityHigh,
				Type:       TypeEmotional,
				Confidence: 0.8,
			}, got, keyword)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := classifier.Classify(ctx, "I want to KILL MYSELF")
		assert.True(t, got.IsCrisis)
		assert.Equal(t, SeverityCritical, got.Severity)
	})

	t.Run("suicide keywords win over self-harm", func(t *testing.T) {
		got := classifier.Classify(ctx, "I hurt myself and I want to end it all")
		assert.Equal(t, SeverityCritical, got.Severity)
		assert.Equal(t, TypeSuicidal, got.Type)
	})

	t.Run("neutral text is not a crisis", func(t *testing.T) {
		got := classifier.Classify(ctx, "I had a rough day at work but my run helped")
		assert.Equal(t, Assessment{
			IsCrisis:   false,
			Severity:   SeverityLow,
			Type:       TypeEmotional,
			Confidence: 0.3,
		}, got)
	})
}

func TestClassify_ProviderFailureFallsBack(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	classifier := NewClassifier(provider, testCrisisConfig(), zap.NewNop())

	got := classifier.Classify(context.Background(), "I want to kill myself")

	assert.Equal(t, 1, provider.calls)
	assert.True(t, got.IsCrisis)
	assert.Equal(t, SeverityCritical, got.Severity)
	assert.Equal(t, TypeSuicidal, got.Type)
}

func TestClassify_ProviderVerdict(t *testing.T) {
	t.Run("valid verdict is used as-is", func(t *testing.T) {
		provider := &stubProvider{
			response: `{"isCrisis": true, "severity": "medium", "type": "anxiety", "confidence": 0.65}`,
		}
		classifier := NewClassifier(provider, testCrisisConfig(), zap.NewNop())

		got := classifier.Classify(context.Background(), "I cannot stop worrying")

		assert.Equal(t, Assessment{
			IsCrisis:   true,
			Severity:   SeverityMedium,
			Type:       TypeAnxiety,
			Confidence: 0.65,
		}, got)
	})

	t.Run("malformed JSON falls back to keywords", func(t *testing.T) {
		provider := &stubProvider{response: "not json at all"}
		classifier := NewClassifier(provider, testCrisisConfig(), zap.NewNop())

		got := classifier.Classify(context.Background(), "everything is fine")

		assert.False(t, got.IsCrisis)
		assert.Equal(t, SeverityLow, got.Severity)
	})

	t.Run("invalid severity falls back to keywords", func(t *testing.T) {
		provider := &stubProvider{
			response: `{"isCrisis": true, "severity": "catastrophic", "type": "anxiety", "confidence": 0.5}`,
		}
		classifier := NewClassifier(provider, testCrisisConfig(), zap.NewNop())

		got := classifier.Classify(context.Background(), "I want to end it all")

		assert.Equal(t, SeverityCritical, got.Severity)
		assert.Equal(t, TypeSuicidal, got.Type)
	})

	t.Run("out of range confidence falls back to keywords", func(t *testing.T) {
		provider := &stubProvider{
			response: `{"isCrisis": false, "severity": "low", "type": "emotional", "confidence": 1.7}`,
		}
		classifier := NewClassifier(provider, testCrisisConfig(), zap.NewNop())

		got := classifier.Classify(context.Background(), "I feel okay")

		assert.Equal(t, 0.3, got.Confidence)
	})
}
