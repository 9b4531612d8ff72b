package wellness

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"wellspring/internal/llm"
)

// BiometricData is the input to the insight generator. Nil fields were not
// reported.
type BiometricData struct {
	HeartRate        *int
	SleepHours       *float64
	SleepQuality     *int
	StressLevel      *int
	Steps            *int
	Mood             *string
	RecentActivities []string
}

// Insight is a single observation about the user's wellness data.
type Insight struct {
	Type        string `json:"type"` // recommendation, achievement, concern
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action,omitempty"`
	Priority    string `json:"priority"` // low, medium, high
}

// Recommendations groups the four fixed recommendation categories.
type Recommendations struct {
	Sleep     string `json:"sleep"`
	Stress    string `json:"stress"`
	Activity  string `json:"activity"`
	Nutrition string `json:"nutrition"`
}

// Analysis is the full wellness assessment returned to the caller.
type Analysis struct {
	OverallScore    int             `json:"overall_score"` // 0-100
	Insights        []Insight       `json:"insights"`
	Recommendations Recommendations `json:"recommendations"`
}

// Analyzer generates wellness insights from biometric readings. Like the
// crisis classifier it never fails: any remote problem yields the fixed
// fallback analysis.
type Analyzer struct {
	provider llm.Provider // nil means fallback-only
	logger   *zap.Logger
}

// NewAnalyzer builds an analyzer. provider may be nil.
func NewAnalyzer(provider llm.Provider, logger *zap.Logger) *Analyzer {
	return &Analyzer{provider: provider, logger: logger}
}

// Analyze submits the reading for analysis, returning the fixed fallback on
// any failure.
func (a *Analyzer) Analyze(ctx context.Context, data BiometricData) Analysis {
	if a.provider == nil {
		return fallbackAnalysis()
	}

	raw, err := a.provider.Complete(ctx, llm.Request{
		System:      insightSystemInstruction,
		User:        buildInsightPrompt(data),
		Shape:       llm.ShapeJSON,
		Temperature: 0.5,
		MaxTokens:   800,
	})
	if err != nil {
		a.logger.Warn("Wellness analysis fell back to defaults", zap.Error(err))
		return fallbackAnalysis()
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		a.logger.Warn("Failed to parse wellness analysis, using defaults",
			zap.Error(err),
			zap.String("response", raw))
		return fallbackAnalysis()
	}

	if !validAnalysis(analysis) {
		a.logger.Warn("Invalid wellness analysis from model, using defaults")
		return fallbackAnalysis()
	}

	return analysis
}

func validAnalysis(a Analysis) bool {
	if a.OverallScore < 0 || a.OverallScore > 100 {
		return false
	}
	if len(a.Insights) == 0 {
		return false
	}
	for _, insight := range a.Insights {
		switch insight.Type {
		case "recommendation", "achievement", "concern":
		default:
			return false
		}
		switch insight.Priority {
		case "low", "medium", "high":
		default:
			return false
		}
	}
	return a.Recommendations.Sleep != "" &&
		a.Recommendations.Stress != "" &&
		a.Recommendations.Activity != "" &&
		a.Recommendations.Nutrition != ""
}

// fallbackAnalysis is the fixed result used whenever the collaborator cannot
// be reached or returns something unusable.
func fallbackAnalysis() Analysis {
	return Analysis{
		OverallScore: 75,
		Insights: []Insight{{
			Type:        "recommendation",
			Title:       "Keep Up the Good Work",
			Description: "Your wellness journey is progressing well. Continue with your current habits.",
			Priority:    "medium",
		}},
		Recommendations: Recommendations{
			Sleep:     "Aim for 7-9 hours of quality sleep each night.",
			Stress:    "Practice deep breathing or meditation for 10 minutes daily.",
			Activity:  "Try to get 150 minutes of moderate exercise per week.",
			Nutrition: "Focus on whole foods and stay hydrated.",
		},
	}
}
