package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	crewerrors "github.com/betteros/goal-crew/internal/errors"
	"github.com/betteros/goal-crew/internal/i18n"
)

// Command runs an external LLM CLI once per request, passing the prompt as
// the last argument and reading the answer from stdout
type Command struct {
	Command string
	Args    []string
	Model   string
	Timeout time.Duration
}

// NewCommand creates a command model. The command must be on PATH.
func NewCommand(opts Options) (*Command, error) {
	c := &Command{
		Command: opts.Command,
		Args:    opts.Args,
		Model:   opts.Model,
		Timeout: opts.Timeout,
	}
	if c.Command == "" {
		return nil, crewerrors.ErrProviderNotAvailable(ProviderCommand, errors.New("no command configured"))
	}
	if !c.IsAvailable() {
		return nil, crewerrors.ErrProviderNotAvailable(ProviderCommand, fmt.Errorf("%s not found in PATH", c.Command))
	}
	return c, nil
}

// IsAvailable checks if the command is available
func (c *Command) IsAvailable() bool {
	_, err := exec.LookPath(c.Command)
	return err == nil
}

// Name returns the configured model, or the command when none is set
func (c *Command) Name() string {
	if c.Model != "" {
		return c.Model
	}
	return c.Command
}

// Generate runs the command for one request
func (c *Command) Generate(ctx context.Context, req Request) (*Response, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, c.Command, c.buildArgs(req)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", c.Command, ctxErr)
		}
		return nil, fmt.Errorf("%s exited with code %d: %s", c.Command, exitCode, strings.TrimSpace(stderr.String()))
	}

	text := strings.TrimSpace(stdout.String())
	if text == "" {
		return nil, fmt.Errorf("%s: %s", c.Command, i18n.ErrMsgEmptyResponse)
	}

	return &Response{
		Text:     text,
		Model:    c.Name(),
		Duration: time.Since(start),
	}, nil
}

// buildArgs constructs the command line arguments
func (c *Command) buildArgs(req Request) []string {
	args := make([]string, 0, len(c.Args)+1)
	args = append(args, c.Args...)

	prompt := req.Prompt
	if req.System != "" {
		prompt = req.System + "\n\n" + req.Prompt
	}
	return append(args, prompt)
}
