package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// BoardStore implements the store.BoardStore interface
// using a PostgreSQL database as the storage backend.
type BoardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewBoardStore creates a new PostgreSQL implementation of the BoardStore
// interface. If logger is nil, a default logger will be used.
func NewBoardStore(db store.DBTX, logger *slog.Logger) *BoardStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &BoardStore{
		db:     db,
		logger: logger.With(slog.String("component", "board_store")),
	}
}

// Ensure BoardStore implements store.BoardStore interface
var _ store.BoardStore = (*BoardStore)(nil)

// Create implements store.BoardStore.Create.
func (s *BoardStore) Create(ctx context.Context, board *domain.Board) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := board.Validate(); err != nil {
		log.Warn("board validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	now := time.Now().UTC()
	board.CreatedAt = now
	board.UpdatedAt = now

	query := `
		INSERT INTO boards (title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := s.db.QueryRowContext(
		ctx,
		query,
		board.Title,
		board.Content,
		board.CreatedAt,
		board.UpdatedAt,
	).Scan(&board.ID); err != nil {
		log.Error("failed to create board post",
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("board post created", slog.Int64("board_id", board.ID))
	return nil
}

// GetByID implements store.BoardStore.GetByID.
func (s *BoardStore) GetByID(ctx context.Context, id int64) (*domain.Board, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, created_at, updated_at
		FROM boards
		WHERE id = $1
	`

	var board domain.Board
	var content sql.NullString

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&board.ID,
		&board.Title,
		&content,
		&board.CreatedAt,
		&board.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBoardNotFound
		}
		log.Error("failed to get board post",
			slog.String("error", err.Error()),
			slog.Int64("board_id", id))
		return nil, err
	}

	board.Content = content.String
	return &board, nil
}

// List implements store.BoardStore.List.
func (s *BoardStore) List(ctx context.Context) ([]*domain.Board, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, created_at, updated_at
		FROM boards
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query board posts", slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	boards := []*domain.Board{}
	for rows.Next() {
		var board domain.Board
		var content sql.NullString

		if err := rows.Scan(
			&board.ID,
			&board.Title,
			&content,
			&board.CreatedAt,
			&board.UpdatedAt,
		); err != nil {
			log.Error("failed to scan board row", slog.String("error", err.Error()))
			return nil, err
		}

		board.Content = content.String
		boards = append(boards, &board)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning board rows", slog.String("error", err.Error()))
		return nil, err
	}

	return boards, nil
}

// Update implements store.BoardStore.Update.
func (s *BoardStore) Update(ctx context.Context, id int64, title, content string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		"UPDATE boards SET title = $1, content = $2, updated_at = $3 WHERE id = $4",
		title,
		content,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		log.Error("failed to update board post",
			slog.String("error", err.Error()),
			slog.Int64("board_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrBoardNotFound)
}

// Delete implements store.BoardStore.Delete.
func (s *BoardStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM boards WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete board post",
			slog.String("error", err.Error()),
			slog.Int64("board_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrBoardNotFound)
}
