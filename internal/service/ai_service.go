package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/generation"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// ErrExternalAPI indicates a failed call to the backing language model.
// API layer should map this to HTTP 502 Bad Gateway.
var ErrExternalAPI = errors.New("external AI service call failed")

// ErrTextRequired indicates an AI request with empty input text.
var ErrTextRequired = errors.New("text is required")

// Audit status values recorded in the AI log.
const (
	aiStatusOK    = "OK"
	aiStatusError = "ERROR"
)

const summaryPromptPrefix = "Summarize the following text in 5 bullet points:\n\n"

const quizPromptTemplate = `You are a quiz generator. Use ONLY the provided text.
Return JSON only (no markdown, no extra text) with this schema:
{
  "questions": [
    {
      "id": 1,
      "type": "mcq" | "short",
      "question": "...",
      "choices": ["A", "B", "C", "D"],
      "answerIndex": 0,
      "answerText": "...",
      "explanation": "..."
    }
  ]
}
Rules:
- Exactly 15 questions total.
- At least 8 questions must be "mcq" with exactly 4 choices.
- Remaining questions must be "short".
- For mcq: include choices and answerIndex (0-3). answerText must be null.
- For short: include answerText (short phrase). choices and answerIndex must be null.
- Provide a brief explanation for every question.

Text:
`

// AIResult is the outcome of one generation call.
type AIResult struct {
	Output    string `json:"output"`
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
}

// AIService proxies text-generation requests to the configured language
// model. Every call, successful or not, is written to the audit log with its
// latency and status.
type AIService interface {
	// GenerateSummary produces a bullet-point summary of the given text.
	GenerateSummary(ctx context.Context, actor domain.Actor, text string) (*AIResult, error)

	// GenerateQuiz produces a fixed-shape JSON quiz from the given text.
	GenerateQuiz(ctx context.Context, actor domain.Actor, text string) (*AIResult, error)
}

// Verify interface compliance at compile time
var _ AIService = (*aiServiceImpl)(nil)

// aiServiceImpl implements the AIService interface.
type aiServiceImpl struct {
	generator generation.Generator
	logs      store.AILogStore
	logger    *slog.Logger
}

// NewAIService creates a new AIService implementation. The generator may be
// nil when no API key is configured; calls then fail with ErrExternalAPI.
func NewAIService(
	generator generation.Generator,
	logs store.AILogStore,
	logger *slog.Logger,
) AIService {
	if logs == nil {
		panic("logs cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &aiServiceImpl{
		generator: generator,
		logs:      logs,
		logger:    logger.With(slog.String("component", "ai_service")),
	}
}

// GenerateSummary implements AIService.GenerateSummary.
func (s *aiServiceImpl) GenerateSummary(
	ctx context.Context,
	actor domain.Actor,
	text string,
) (*AIResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}
	return s.generate(ctx, actor, "summary", summaryPromptPrefix+text)
}

// GenerateQuiz implements AIService.GenerateQuiz.
func (s *aiServiceImpl) GenerateQuiz(
	ctx context.Context,
	actor domain.Actor,
	text string,
) (*AIResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}
	return s.generate(ctx, actor, "quiz", quizPromptTemplate+text)
}

// generate runs one model call and records the audit row. Audit failures are
// logged but do not fail the request.
func (s *aiServiceImpl) generate(
	ctx context.Context,
	actor domain.Actor,
	requestType, prompt string,
) (*AIResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if s.generator == nil {
		log.Warn("AI request with no generator configured",
			slog.Int64("user_id", actor.UserID),
			slog.String("request_type", requestType))
		return nil, fmt.Errorf("%w: no API key configured", ErrExternalAPI)
	}

	start := time.Now()
	output, genErr := s.generator.GenerateText(ctx, prompt)
	latency := time.Since(start).Milliseconds()

	status := aiStatusOK
	response := output
	if genErr != nil {
		status = aiStatusError
		response = genErr.Error()
	}

	entry := &store.AILogEntry{
		UserID:    actor.UserID,
		Model:     s.generator.ModelName(),
		Prompt:    requestType + ":" + prompt,
		Response:  response,
		LatencyMS: latency,
		Status:    status,
	}
	if err := s.logs.Insert(ctx, entry); err != nil {
		log.Error("failed to write AI audit log",
			slog.String("error", err.Error()),
			slog.Int64("user_id", actor.UserID))
	}

	if genErr != nil {
		log.Error("AI generation failed",
			slog.String("error", genErr.Error()),
			slog.String("request_type", requestType),
			slog.Int64("user_id", actor.UserID),
			slog.Int64("latency_ms", latency))
		return nil, fmt.Errorf("%w: %v", ErrExternalAPI, genErr)
	}

	log.Info("AI generation completed",
		slog.String("request_type", requestType),
		slog.Int64("user_id", actor.UserID),
		slog.Int64("latency_ms", latency))

	return &AIResult{
		Output:    output,
		Status:    status,
		LatencyMS: latency,
	}, nil
}
