package wellness

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func sampleReading() BiometricData {
	hr := 72
	sleep := 7.5
	stress := 40
	return BiometricData{
		HeartRate:   &hr,
		SleepHours:  &sleep,
		StressLevel: &stress,
	}
}

func TestAnalyze_FallbackOnProviderError(t *testing.T) {
	analyzer := NewAnalyzer(&stubProvider{err: errors.New("timeout")}, zap.NewNop())

	got := analyzer.Analyze(context.Background(), sampleReading())

	assert.Equal(t, fallbackAnalysis(), got)
	assert.Equal(t, 75, got.OverallScore)
	assert.Len(t, got.Insights, 1)
	assert.Equal(t, "Keep Up the Good Work", got.Insights[0].Title)
	assert.NotEmpty(t, got.Recommendations.Sleep)
	assert.NotEmpty(t, got.Recommendations.Stress)
	assert.NotEmpty(t, got.Recommendations.Activity)
	assert.NotEmpty(t, got.Recommendations.Nutrition)
}

func TestAnalyze_FallbackWithoutProvider(t *testing.T) {
	analyzer := NewAnalyzer(nil, zap.NewNop())

	got := analyzer.Analyze(context.Background(), sampleReading())

	assert.Equal(t, fallbackAnalysis(), got)
}

func TestAnalyze_ValidResponsePassesThrough(t *testing.T) {
	provider := &stubProvider{response: `{
		"overall_score": 82,
		"insights": [{
			"type": "achievement",
			"title": "Great Sleep Streak",
			"description": "Seven nights above seven hours.",
			"priority": "low"
		}],
		"recommendations": {
			"sleep": "Keep your current schedule.",
			"stress": "Add a short walk after lunch.",
			"activity": "Increase weekly cardio slightly.",
			"nutrition": "More protein at breakfast."
		}
	}`}
	analyzer := NewAnalyzer(provider, zap.NewNop())

	got := analyzer.Analyze(context.Background(), sampleReading())

	assert.Equal(t, 82, got.OverallScore)
	assert.Equal(t, "achievement", got.Insights[0].Type)
	assert.Equal(t, "Great Sleep Streak", got.Insights[0].Title)
}

func TestAnalyze_InvalidResponseFallsBack(t *testing.T) {
	cases := map[string]string{
		"score out of range": `{"overall_score": 140, "insights": [{"type": "concern", "title": "t", "description": "d", "priority": "high"}], "recommendations": {"sleep": "a", "stress": "b", "activity": "c", "nutrition": "d"}}`,
		"no insights":        `{"overall_score": 80, "insights": [], "recommendations": {"sleep": "a", "stress": "b", "activity": "c", "nutrition": "d"}}`,
		"bad insight type":   `{"overall_score": 80, "insights": [{"type": "prophecy", "title": "t", "description": "d", "priority": "high"}], "recommendations": {"sleep": "a", "stress": "b", "activity": "c", "nutrition": "d"}}`,
		"missing recommendation": `{"overall_score": 80, "insights": [{"type": "concern", "title": "t", "description": "d", "priority": "high"}], "recommendations": {"sleep": "a", "stress": "b", "activity": "c"}}`,
		"not json":           `oops`,
	}
	for name, response := range cases {
		t.Run(name, func(t *testing.T) {
			analyzer := NewAnalyzer(&stubProvider{response: response}, zap.NewNop())
			got := analyzer.Analyze(context.Background(), sampleReading())
			assert.Equal(t, fallbackAnalysis(), got)
		})
	}
}
