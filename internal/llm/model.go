// Package llm provides the language model clients shared by every agent
package llm

import (
	"context"
	"time"
)

// Request is a single prompt with its system instruction
type Request struct {
	System string
	Prompt string
}

// Response is the text answer of a model call
type Response struct {
	Text     string
	Model    string
	Duration time.Duration
}

// Model generates text. Implementations must be safe for concurrent use.
type Model interface {
	Name() string
	Generate(ctx context.Context, req Request) (*Response, error)
}

// Options configures a provider
type Options struct {
	Model       string
	APIKey      string
	APIKeyEnv   string
	Temperature float64
	Timeout     time.Duration

	// command provider
	Command string
	Args    []string
}
