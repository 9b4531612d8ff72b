package wellness

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"wellspring/internal/config"
	"wellspring/internal/llm"
)

// Severity levels of a crisis assessment, ordered from least to most severe.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Crisis types.
const (
	TypeEmotional  = "emotional"
	TypeAnxiety    = "anxiety"
	TypeDepression = "depression"
	TypeSuicidal   = "suicidal"
)

// Assessment is the classifier's verdict on a single message.
type Assessment struct {
	IsCrisis   bool    `json:"isCrisis"`
	Severity   string  `json:"severity"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// Classifier assesses free text for self-harm and crisis risk. The primary
// path asks the text-generation collaborator for a structured judgment; any
// failure there degrades to a deterministic keyword match. Classify never
// returns an error.
type Classifier struct {
	provider         llm.Provider // nil means fallback-only
	suicideKeywords  []string
	selfHarmKeywords []string
	logger           *zap.Logger
}

// NewClassifier builds a classifier. provider may be nil, in which case every
// classification takes the keyword path.
func NewClassifier(provider llm.Provider, cfg config.CrisisConfig, logger *zap.Logger) *Classifier {
	lower := func(words []string) []string {
		out := make([]string, len(words))
		for i, w := range words {
			out[i] = strings.ToLower(w)
		}
		return out
	}
	return &Classifier{
		provider:         provider,
		suicideKeywords:  lower(cfg.SuicideKeywords),
		selfHarmKeywords: lower(cfg.SelfHarmKeywords),
		logger:           logger,
	}
}

// Classify assesses a message. The result is always a complete Assessment;
// remote failures are absorbed by the keyword fallback, never surfaced.
func (c *Classifier) Classify(ctx context.Context, message string) Assessment {
	if c.provider == nil {
		return c.keywordFallback(message)
	}

	raw, err := c.provider.Complete(ctx, llm.Request{
		System:      crisisSystemInstruction,
		User:        buildCrisisPrompt(message),
		Shape:       llm.ShapeJSON,
		Temperature: 0.3,
		MaxTokens:   200,
	})
	if err != nil {
		c.logger.Warn("Crisis classification fell back to keywords", zap.Error(err))
		return c.keywordFallback(message)
	}

	var assessment Assessment
	if err := json.Unmarshal([]byte(raw), &assessment); err != nil {
		c.logger.Warn("Failed to parse crisis assessment, falling back to keywords",
			zap.Error(err),
			zap.String("response", raw))
		return c.keywordFallback(message)
	}

	// A malformed verdict is as good as no verdict.
	if err := validateAssessment(assessment); err != nil {
		c.logger.Warn("Invalid crisis assessment from model, falling back to keywords",
			zap.Error(err))
		return c.keywordFallback(message)
	}

	return assessment
}

// keywordFallback is the deterministic local path. Suicide-indicative
// keywords take priority over self-harm ones; matching is case-insensitive
// substring, first match wins.
func (c *Classifier) keywordFallback(message string) Assessment {
	lowerMessage := strings.ToLower(message)

	for _, keyword := range c.suicideKeywords {
		if strings.Contains(lowerMessage, keyword) {
			return Assessment{IsCrisis: true, Severity: SeverityCritical, Type: TypeSuicidal, Confidence: 0.9}
		}
	}

	for _, keyword := range c.selfHarmKeywords {
		if strings.Contains(lowerMessage, keyword) {
			return Assessment{IsCrisis: true, Severity: SeverityHigh, Type: TypeEmotional, Confidence: 0.8}
		}
	}

	return Assessment{IsCrisis: false, Severity: SeverityLow, Type: TypeEmotional, Confidence: 0.3}
}

var (
	validSeverities = map[string]bool{
		SeverityLow:      true,
		SeverityMedium:   true,
		SeverityHigh:     true,
		SeverityCritical: true,
	}
	validTypes = map[string]bool{
		TypeEmotional:  true,
		TypeAnxiety:    true,
		TypeDepression: true,
		TypeSuicidal:   true,
	}
)

func validateAssessment(a Assessment) error {
	if !validSeverities[a.Severity] {
		return errInvalidField("severity", a.Severity)
	}
	if !validTypes[a.Type] {
		return errInvalidField("type", a.Type)
	}
	if a.Confidence < 0 || a.Confidence > 1 {
		return errInvalidField("confidence", a.Confidence)
	}
	return nil
}

type fieldError struct {
	field string
	value interface{}
}

func (e *fieldError) Error() string {
	return "invalid assessment field " + e.field
}

func errInvalidField(field string, value interface{}) error {
	return &fieldError{field: field, value: value}
}
