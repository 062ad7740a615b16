package llm

import "context"

// Completion is a single model reply plus its token usage.
type Completion struct {
	Text       string
	TokensUsed int
}

type Provider interface {
	// Complete sends one prompt and returns the full completion.
	Complete(ctx context.Context, prompt string) (*Completion, error)
	// Model returns the configured model name, for result metadata.
	Model() string
	Close() error
}
