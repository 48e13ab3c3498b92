package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crewerrors "github.com/betteros/goal-crew/internal/errors"
)

// TestCommand_helper is run as a subprocess by the command tests.
// GO_TEST_HELPER selects the behavior.
func TestCommand_helper(t *testing.T) {
	switch os.Getenv("GO_TEST_HELPER") {
	case "echo":
		fmt.Println("answer: " + os.Args[len(os.Args)-1])
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "quota exceeded")
		os.Exit(3)
	case "silent":
		os.Exit(0)
	case "sleep":
		time.Sleep(5 * time.Second)
		os.Exit(0)
	}
}

func helperCommand(t *testing.T, mode string) *Command {
	t.Helper()
	t.Setenv("GO_TEST_HELPER", mode)
	return &Command{
		Command: os.Args[0],
		Args:    []string{"-test.run=^TestCommand_helper$", "--"},
	}
}

func TestCommand_Generate(t *testing.T) {
	c := helperCommand(t, "echo")

	resp, err := c.Generate(context.Background(), Request{System: "You are a coach.", Prompt: "Plan my week"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Text, "answer: You are a coach."))
	assert.Contains(t, resp.Text, "Plan my week")
	assert.Equal(t, c.Name(), resp.Model)
}

func TestCommand_GenerateNonZeroExit(t *testing.T) {
	c := helperCommand(t, "fail")

	_, err := c.Generate(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exited with code 3")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestCommand_GenerateEmptyOutput(t *testing.T) {
	c := helperCommand(t, "silent")

	_, err := c.Generate(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestCommand_GenerateTimeout(t *testing.T) {
	c := helperCommand(t, "sleep")
	c.Timeout = 100 * time.Millisecond

	_, err := c.Generate(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCommand_buildArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		req  Request
		want []string
	}{
		{
			name: "prompt only",
			args: []string{"-p"},
			req:  Request{Prompt: "hello"},
			want: []string{"-p", "hello"},
		},
		{
			name: "system prepended",
			args: []string{"-m", "flash", "-p"},
			req:  Request{System: "sys", Prompt: "hello"},
			want: []string{"-m", "flash", "-p", "sys\n\nhello"},
		},
		{
			name: "no args",
			req:  Request{Prompt: "hello"},
			want: []string{"hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Command{Command: "gemini", Args: tt.args}
			assert.Equal(t, tt.want, c.buildArgs(tt.req))
		})
	}
}

func TestCommand_buildArgsDoesNotMutateConfig(t *testing.T) {
	args := make([]string, 1, 4)
	args[0] = "-p"
	c := &Command{Command: "gemini", Args: args}

	c.buildArgs(Request{Prompt: "one"})
	c.buildArgs(Request{Prompt: "two"})

	assert.Equal(t, []string{"-p"}, c.Args)
}

func TestNewCommand_NotAvailable(t *testing.T) {
	_, err := NewCommand(Options{Command: "definitely-not-a-real-llm-cli-xyz"})
	require.Error(t, err)
	assert.True(t, crewerrors.IsFatal(err))
	assert.Contains(t, err.Error(), "not available")
}

func TestNewCommand_Empty(t *testing.T) {
	_, err := NewCommand(Options{})
	require.Error(t, err)
}

func TestCommand_Name(t *testing.T) {
	assert.Equal(t, "gemini", (&Command{Command: "gemini"}).Name())
	assert.Equal(t, "flash", (&Command{Command: "gemini", Model: "flash"}).Name())
}
