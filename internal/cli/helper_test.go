package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/betteros/goal-crew/internal/config"
	"github.com/betteros/goal-crew/internal/llm"
)

// fakeModel records every request and answers "output N" unless answer is set
type fakeModel struct {
	mu       sync.Mutex
	requests []llm.Request
	answer   func(n int, req llm.Request) (string, error)
}

func (f *fakeModel) Name() string { return "fake" }

func (f *fakeModel) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	n := len(f.requests)
	f.mu.Unlock()

	if f.answer == nil {
		return &llm.Response{Text: fmt.Sprintf("output %d", n)}, nil
	}
	text, err := f.answer(n, req)
	if err != nil {
		return nil, err
	}
	return &llm.Response{Text: text}, nil
}

func (f *fakeModel) calls() []llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]llm.Request(nil), f.requests...)
}

// isolate keeps config files, .env and transcripts of the developer machine
// out of the test
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GOAL_CREW_DISABLE_TRANSCRIPT", "true")
	t.Chdir(t.TempDir())
}

// useModel replaces the model factory for the duration of the test
func useModel(t *testing.T, m llm.Model) {
	t.Helper()
	orig := newModel
	newModel = func(ctx context.Context, cfg *config.Config) (llm.Model, error) {
		return m, nil
	}
	t.Cleanup(func() { newModel = orig })
}

type execResult struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) execResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return execResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// decode parses one JSON envelope
func decode(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var v map[string]interface{}
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(s), &v), "output is not a JSON object: %q", s)
	return v
}
