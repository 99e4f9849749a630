// Package briefing generates daily briefing prose via the Gemini API.
package briefing

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/hmendes/prepdesk/internal/domain"
)

// DefaultModel is used when the configuration does not name one.
const DefaultModel = "gemini-2.5-flash"

// Ensure GeminiBriefer implements domain.Briefer.
var _ domain.Briefer = (*GeminiBriefer)(nil)

// GeminiBriefer calls the Gemini API to turn a briefing prompt into prose.
type GeminiBriefer struct {
	client *genai.Client
	model  string
}

// NewGeminiBriefer creates a new GeminiBriefer.
func NewGeminiBriefer(ctx context.Context, apiKey, model string) (*GeminiBriefer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("briefing API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiBriefer{
		client: client,
		model:  model,
	}, nil
}

// Generate returns the model's response to the prompt.
func (b *GeminiBriefer) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate briefing: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty briefing response")
	}
	return text, nil
}
