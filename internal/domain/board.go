package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrBoardTitleEmpty is returned when a board post title is empty or blank.
var ErrBoardTitleEmpty = errors.New("board title cannot be empty")

// Board is a free-text announcement post.
type Board struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks if the Board post has valid data.
func (b *Board) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrBoardTitleEmpty
	}
	return nil
}
