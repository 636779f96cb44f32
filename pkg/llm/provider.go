// Package llm implements model dispatch: candidate resolution from user
// preferences and built-in fallback chains, provider adapters for OpenAI and
// Anthropic, usage telemetry, and extraction-output validation.
package llm

import "context"

// GenerateRequest is a single provider invocation.
type GenerateRequest struct {
	Model       string
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// ProviderResult is the raw provider output before trimming and collapsing.
type ProviderResult struct {
	Text         string
	InputTokens  int
	OutputTokens int
}

// Provider adapts one model vendor's SDK to the dispatcher's contract.
// Implementations must honor context cancellation; the dispatcher fires it
// at the request's timeout.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req GenerateRequest) (ProviderResult, error)
}
