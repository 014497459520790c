// Package gemini implements the generation.Generator interface using
// Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/coursetrack/coursetrack-api/internal/config"
	"github.com/coursetrack/coursetrack-api/internal/generation"
)

// Generator implements generation.Generator backed by the Gemini API.
type Generator struct {
	logger *slog.Logger
	client *genai.Client
	model  string
}

// Verify interface compliance at compile time
var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Gemini-backed text generator from the AI
// configuration. Returns generation.ErrInvalidConfig when the API key or
// model name is missing.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.AIConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger: logger.With(slog.String("component", "gemini_generator")),
		client: client,
		model:  cfg.Model,
	}, nil
}

// ModelName implements generation.Generator.ModelName.
func (g *Generator) ModelName() string {
	return g.model
}

// GenerateText implements generation.Generator.GenerateText.
func (g *Generator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	g.logger.DebugContext(ctx, "calling Gemini API",
		slog.String("model", g.model),
		slog.Int("prompt_length", len(prompt)))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			slog.String("error", err.Error()),
			slog.String("model", g.model))
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	text := resp.Text()
	if text == "" {
		g.logger.WarnContext(ctx, "Gemini API returned no text",
			slog.String("model", g.model))
		return "", fmt.Errorf("%w: empty response", generation.ErrInvalidResponse)
	}

	g.logger.DebugContext(ctx, "Gemini API call successful",
		slog.Int("response_length", len(text)))
	return text, nil
}
