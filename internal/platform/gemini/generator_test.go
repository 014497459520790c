package gemini

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursetrack/coursetrack-api/internal/config"
	"github.com/coursetrack/coursetrack-api/internal/generation"
)

func TestNewGenerator_ConfigValidation(t *testing.T) {
	t.Parallel()

	t.Run("nil logger", func(t *testing.T) {
		t.Parallel()

		_, err := NewGenerator(context.Background(), nil, config.AIConfig{
			GeminiAPIKey: "test-key",
			Model:        "gemini-2.0-flash",
		})
		assert.Error(t, err)
	})

	t.Run("missing API key", func(t *testing.T) {
		t.Parallel()

		_, err := NewGenerator(context.Background(), slog.Default(), config.AIConfig{
			Model: "gemini-2.0-flash",
		})
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})

	t.Run("missing model name", func(t *testing.T) {
		t.Parallel()

		_, err := NewGenerator(context.Background(), slog.Default(), config.AIConfig{
			GeminiAPIKey: "test-key",
		})
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})
}
