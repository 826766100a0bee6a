package llm

import (
	"context"
	"fmt"
)

// Client is the contract the pipeline depends on: a rendered prompt goes in,
// raw model text comes out. Which backend resolves it is a config decision.
type Client interface {
	Complete(ctx context.Context, prompt string, maxTokens int64) (string, error)
}

// Config selects and parameterizes an LLM backend.
type Config struct {
	Provider string // "openai" or "local"
	Model    string
	APIKey   string // hosted backend only
	BaseURL  string // local backend only
}

// NewClient creates the backend named by cfg.Provider.
func NewClient(cfg Config) (Client, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg.APIKey, cfg.Model), nil
	case "local":
		return NewLocal(cfg.BaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.Provider)
	}
}
