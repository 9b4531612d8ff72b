package llm

import (
	"context"
	"strings"
)

// ResponseShape tells the provider what the caller expects back.
type ResponseShape string

const (
	ShapeJSON ResponseShape = "json"
	ShapeText ResponseShape = "text"
)

// Request is a single text-generation call. Model identity is provider
// configuration, not part of the request.
type Request struct {
	System      string
	User        string
	Shape       ResponseShape
	MaxTokens   int
	Temperature float32
}

// Provider is the contract for any text-generation collaborator. Every
// consumer in this repo holds its own deterministic fallback, so a Provider
// error is recoverable by design.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
	Close() error
	GetModelInfo() map[string]interface{}
}

// CleanMarkdown strips markdown code fences that models wrap around JSON
// output despite being asked for raw JSON.
func CleanMarkdown(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
