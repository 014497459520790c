package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// AILogStore implements the store.AILogStore interface
// using a PostgreSQL database as the storage backend.
type AILogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAILogStore creates a new PostgreSQL implementation of the AILogStore
// interface. If logger is nil, a default logger will be used.
func NewAILogStore(db store.DBTX, logger *slog.Logger) *AILogStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AILogStore{
		db:     db,
		logger: logger.With(slog.String("component", "ailog_store")),
	}
}

// Ensure AILogStore implements store.AILogStore interface
var _ store.AILogStore = (*AILogStore)(nil)

// Insert implements store.AILogStore.Insert.
func (s *AILogStore) Insert(ctx context.Context, entry *store.AILogEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO ai_logs (user_id, model, prompt, response, latency_ms, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if _, err := s.db.ExecContext(
		ctx,
		query,
		entry.UserID,
		entry.Model,
		entry.Prompt,
		entry.Response,
		entry.LatencyMS,
		entry.Status,
		time.Now().UTC(),
	); err != nil {
		log.Error("failed to insert AI audit log",
			slog.String("error", err.Error()),
			slog.Int64("user_id", entry.UserID))
		return MapError(err)
	}

	return nil
}
