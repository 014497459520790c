package postgres

import (
	"context"
	"log/slog"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// GuideStore implements the store.GuideStore interface
// using a PostgreSQL database as the storage backend.
type GuideStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewGuideStore creates a new PostgreSQL implementation of the GuideStore
// interface. If logger is nil, a default logger will be used.
func NewGuideStore(db store.DBTX, logger *slog.Logger) *GuideStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &GuideStore{
		db:     db,
		logger: logger.With(slog.String("component", "guide_store")),
	}
}

// Ensure GuideStore implements store.GuideStore interface
var _ store.GuideStore = (*GuideStore)(nil)

// List implements store.GuideStore.List.
// Only guides belonging to learner accounts are returned; guides attached to
// accounts later promoted to admin drop out of the listing.
func (s *GuideStore) List(ctx context.Context, userID *int64) ([]*domain.Guide, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			g.id,
			g.user_id,
			u.name AS user_name,
			u.email AS user_email,
			g.course_id,
			c.title AS course_title,
			g.guide_text,
			g.created_at
		FROM learning_guides g
		JOIN users u ON u.id = g.user_id
		JOIN courses c ON c.id = g.course_id
		WHERE u.role = $1
	`
	args := []any{domain.RoleLearner}

	if userID != nil {
		query += " AND g.user_id = $2"
		args = append(args, *userID)
	}

	query += " ORDER BY g.created_at DESC, g.id DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query guides",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	guides := []*domain.Guide{}
	for rows.Next() {
		var guide domain.Guide
		if err := rows.Scan(
			&guide.ID,
			&guide.UserID,
			&guide.UserName,
			&guide.UserEmail,
			&guide.CourseID,
			&guide.CourseTitle,
			&guide.GuideText,
			&guide.CreatedAt,
		); err != nil {
			log.Error("failed to scan guide row",
				slog.String("error", err.Error()))
			return nil, err
		}
		guides = append(guides, &guide)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning guide rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return guides, nil
}
