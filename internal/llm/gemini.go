package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	crewerrors "github.com/betteros/goal-crew/internal/errors"
	"github.com/betteros/goal-crew/internal/i18n"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.5-flash"

// Gemini calls the Gemini API
type Gemini struct {
	client      *genai.Client
	model       string
	temperature float64
	timeout     time.Duration
}

// NewGemini creates a Gemini client. A missing API key is an error here
// rather than on the first call.
func NewGemini(ctx context.Context, opts Options) (*Gemini, error) {
	if opts.APIKey == "" {
		env := opts.APIKeyEnv
		if env == "" {
			env = "GEMINI_API_KEY"
		}
		return nil, crewerrors.ErrMissingAPIKey(env)
	}

	model := strings.TrimPrefix(opts.Model, "gemini/")
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, crewerrors.ErrProviderNotAvailable(ProviderGemini, err)
	}

	return &Gemini{
		client:      client,
		model:       model,
		temperature: opts.Temperature,
		timeout:     opts.Timeout,
	}, nil
}

// Name returns the model name
func (g *Gemini) Name() string {
	return g.model
}

// Generate sends one prompt
func (g *Gemini) Generate(ctx context.Context, req Request) (*Response, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), g.config(req))
	if err != nil {
		return nil, fmt.Errorf("gemini %s: %w", g.model, err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("gemini %s: %s", g.model, i18n.ErrMsgEmptyResponse)
	}

	return &Response{
		Text:     text,
		Model:    g.model,
		Duration: time.Since(start),
	}, nil
}

func (g *Gemini) config(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(g.temperature)),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	return cfg
}
