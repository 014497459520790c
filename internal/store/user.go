package store

import (
	"context"

	"github.com/coursetrack/coursetrack-api/internal/domain"
)

// UserStore defines the interface for user account persistence.
type UserStore interface {
	// Create saves a new user and populates its generated ID. The caller is
	// responsible for hashing the password; only HashedPassword is persisted.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// BoardStore defines the interface for board post persistence.
type BoardStore interface {
	// Create saves a new board post and populates its generated ID.
	Create(ctx context.Context, board *domain.Board) error

	// GetByID retrieves a board post by its unique ID.
	// Returns ErrBoardNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Board, error)

	// List returns all board posts, newest first.
	List(ctx context.Context) ([]*domain.Board, error)

	// Update modifies a post's title and content.
	// Returns ErrBoardNotFound if no row was affected.
	Update(ctx context.Context, id int64, title, content string) error

	// Delete removes a post. Returns ErrBoardNotFound if no row was affected.
	Delete(ctx context.Context, id int64) error
}

// AILogStore records every AI generation call for auditing.
type AILogStore interface {
	// Insert appends one audit row; failures are reported but callers may
	// choose to treat them as non-fatal.
	Insert(ctx context.Context, entry *AILogEntry) error
}

// AILogEntry is one audit record of an AI generation call.
type AILogEntry struct {
	UserID    int64
	Model     string
	Prompt    string
	Response  string
	LatencyMS int64
	Status    string
}
