package llm

import (
	"context"
	"sort"
	"sync"

	crewerrors "github.com/betteros/goal-crew/internal/errors"
)

// Factory builds a Model from options
type Factory func(ctx context.Context, opts Options) (Model, error)

var (
	registry = make(map[string]Factory)
	mu       sync.RWMutex
)

func init() {
	Register(ProviderGemini, func(ctx context.Context, opts Options) (Model, error) {
		return NewGemini(ctx, opts)
	})
	Register(ProviderCommand, func(ctx context.Context, opts Options) (Model, error) {
		return NewCommand(opts)
	})
	Register(ProviderDryRun, func(ctx context.Context, opts Options) (Model, error) {
		return NewDryRun(opts.Model), nil
	})
}

// Built-in provider names
const (
	ProviderGemini  = "gemini"
	ProviderCommand = "command"
	ProviderDryRun  = "dry-run"
)

// Register adds a provider factory, replacing any existing one of the same name
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = factory
}

// New builds the model of the named provider
func New(ctx context.Context, provider string, opts Options) (Model, error) {
	mu.RLock()
	factory, ok := registry[provider]
	mu.RUnlock()

	if !ok {
		return nil, crewerrors.ErrUnknownProvider(provider)
	}
	return factory(ctx, opts)
}

// Providers lists the registered provider names, sorted
func Providers() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
