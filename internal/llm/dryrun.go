package llm

import (
	"context"
	"fmt"
	"strings"
)

// DryRun answers every request with a canned text and never touches the
// network
type DryRun struct {
	model string
}

// NewDryRun creates a dry-run model
func NewDryRun(model string) *DryRun {
	if model == "" {
		model = ProviderDryRun
	}
	return &DryRun{model: model}
}

// Name returns the model name
func (d *DryRun) Name() string {
	return d.model
}

// Generate echoes the first line of the prompt
func (d *DryRun) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	first := strings.TrimSpace(req.Prompt)
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = strings.TrimSpace(first[:i])
	}

	return &Response{
		Text:  fmt.Sprintf("[DRY RUN] %s", first),
		Model: d.model,
	}, nil
}
