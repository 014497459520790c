package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/generation"
	"github.com/coursetrack/coursetrack-api/internal/mocks"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

func TestAIService_GenerateSummary(t *testing.T) {
	t.Parallel()

	actor := domain.Actor{UserID: 10, Role: domain.RoleLearner}

	t.Run("success writes an OK audit row", func(t *testing.T) {
		t.Parallel()

		generator := mocks.NewMockGeneratorWithText("- point one\n- point two")
		logs := mocks.NewMockAILogStore()
		svc := NewAIService(generator, logs, nil)

		result, err := svc.GenerateSummary(context.Background(), actor, "some lecture notes")
		require.NoError(t, err)
		assert.Equal(t, "- point one\n- point two", result.Output)
		assert.Equal(t, "OK", result.Status)

		require.Len(t, logs.Entries, 1)
		entry := logs.Entries[0]
		assert.Equal(t, actor.UserID, entry.UserID)
		assert.Equal(t, "mock-model", entry.Model)
		assert.Equal(t, "OK", entry.Status)
		assert.True(t, strings.HasPrefix(entry.Prompt, "summary:"))
		assert.Contains(t, entry.Prompt, "Summarize the following text in 5 bullet points:")
		assert.Contains(t, entry.Prompt, "some lecture notes")
	})

	t.Run("generation failure writes an ERROR audit row", func(t *testing.T) {
		t.Parallel()

		generator := mocks.NewMockGeneratorWithError(generation.ErrGenerationFailed)
		logs := mocks.NewMockAILogStore()
		svc := NewAIService(generator, logs, nil)

		_, err := svc.GenerateSummary(context.Background(), actor, "some lecture notes")
		assert.ErrorIs(t, err, ErrExternalAPI)

		require.Len(t, logs.Entries, 1)
		assert.Equal(t, "ERROR", logs.Entries[0].Status)
		assert.Contains(t, logs.Entries[0].Response, generation.ErrGenerationFailed.Error())
	})

	t.Run("audit failure does not fail the request", func(t *testing.T) {
		t.Parallel()

		failing := mocks.NewMockAILogStore()
		failing.InsertFn = func(ctx context.Context, entry *store.AILogEntry) error {
			return errors.New("disk full")
		}
		svc := NewAIService(mocks.NewMockGeneratorWithText("ok"), failing, nil)

		result, err := svc.GenerateSummary(context.Background(), actor, "text")
		require.NoError(t, err)
		assert.Equal(t, "ok", result.Output)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		svc := NewAIService(mocks.NewMockGeneratorWithText("ok"), mocks.NewMockAILogStore(), nil)

		_, err := svc.GenerateSummary(context.Background(), actor, "   ")
		assert.ErrorIs(t, err, ErrTextRequired)
	})

	t.Run("nil generator reports external API error", func(t *testing.T) {
		t.Parallel()

		logs := mocks.NewMockAILogStore()
		svc := NewAIService(nil, logs, nil)

		_, err := svc.GenerateSummary(context.Background(), actor, "text")
		assert.ErrorIs(t, err, ErrExternalAPI)
		assert.Empty(t, logs.Entries)
	})
}

func TestAIService_GenerateQuiz(t *testing.T) {
	t.Parallel()

	actor := domain.Actor{UserID: 10, Role: domain.RoleLearner}

	t.Run("prompt carries the quiz contract", func(t *testing.T) {
		t.Parallel()

		generator := mocks.NewMockGeneratorWithText(`{"questions":[]}`)
		logs := mocks.NewMockAILogStore()
		svc := NewAIService(generator, logs, nil)

		result, err := svc.GenerateQuiz(context.Background(), actor, "chapter text")
		require.NoError(t, err)
		assert.Equal(t, "OK", result.Status)

		require.Equal(t, 1, generator.GenerateTextCalls.Count)
		prompt := generator.GenerateTextCalls.Prompts[0]
		assert.Contains(t, prompt, "Exactly 15 questions total.")
		assert.Contains(t, prompt, `At least 8 questions must be "mcq" with exactly 4 choices.`)
		assert.True(t, strings.HasSuffix(prompt, "chapter text"))

		require.Len(t, logs.Entries, 1)
		assert.True(t, strings.HasPrefix(logs.Entries[0].Prompt, "quiz:"))
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		svc := NewAIService(mocks.NewMockGeneratorWithText("ok"), mocks.NewMockAILogStore(), nil)

		_, err := svc.GenerateQuiz(context.Background(), actor, "")
		assert.ErrorIs(t, err, ErrTextRequired)
	})
}
