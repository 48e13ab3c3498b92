package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crewerrors "github.com/betteros/goal-crew/internal/errors"
)

func TestNewGemini_MissingKey(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantEnv string
	}{
		{name: "default env", opts: Options{}, wantEnv: "GEMINI_API_KEY"},
		{name: "custom env", opts: Options{APIKeyEnv: "MY_KEY"}, wantEnv: "MY_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGemini(context.Background(), tt.opts)
			require.Error(t, err)
			assert.True(t, crewerrors.IsFatal(err))
			assert.Contains(t, err.Error(), tt.wantEnv)
		})
	}
}

func TestNewGemini_ModelName(t *testing.T) {
	tests := []struct {
		model string
		want  string
	}{
		{model: "", want: DefaultGeminiModel},
		{model: "gemini-2.5-pro", want: "gemini-2.5-pro"},
		{model: "gemini/gemini-2.5-flash", want: "gemini-2.5-flash"},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			g, err := NewGemini(context.Background(), Options{APIKey: "test-key", Model: tt.model})
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.Name())
		})
	}
}

func TestGemini_config(t *testing.T) {
	g := &Gemini{model: DefaultGeminiModel, temperature: 0.7}

	cfg := g.config(Request{System: "You are a coach.", Prompt: "hi"})
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.7, *cfg.Temperature, 0.0001)
	require.NotNil(t, cfg.SystemInstruction)
	require.Len(t, cfg.SystemInstruction.Parts, 1)
	assert.Equal(t, "You are a coach.", cfg.SystemInstruction.Parts[0].Text)

	cfg = g.config(Request{Prompt: "hi"})
	assert.Nil(t, cfg.SystemInstruction)
}
