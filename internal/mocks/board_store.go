package mocks

import (
	"context"
	"time"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/store"
)

// MockBoardStore implements store.BoardStore for testing.
type MockBoardStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, board *domain.Board) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Board, error)
	ListFn    func(ctx context.Context) ([]*domain.Board, error)
	UpdateFn  func(ctx context.Context, id int64, title, content string) error
	DeleteFn  func(ctx context.Context, id int64) error

	// Data for the default implementation
	Boards []*domain.Board
	nextID int64
}

// NewMockBoardStore creates a new mock store with initialized defaults.
func NewMockBoardStore() *MockBoardStore {
	return &MockBoardStore{}
}

// Create implements the BoardStore interface.
func (m *MockBoardStore) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, board)
	}

	m.nextID++
	board.ID = m.nextID
	now := time.Now().UTC()
	board.CreatedAt = now
	board.UpdatedAt = now
	m.Boards = append(m.Boards, board)
	return nil
}

// GetByID implements the BoardStore interface.
func (m *MockBoardStore) GetByID(ctx context.Context, id int64) (*domain.Board, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, board := range m.Boards {
		if board.ID == id {
			return board, nil
		}
	}
	return nil, store.ErrBoardNotFound
}

// List implements the BoardStore interface.
func (m *MockBoardStore) List(ctx context.Context) ([]*domain.Board, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Boards, nil
}

// Update implements the BoardStore interface.
func (m *MockBoardStore) Update(ctx context.Context, id int64, title, content string) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, title, content)
	}

	for _, board := range m.Boards {
		if board.ID == id {
			board.Title = title
			board.Content = content
			board.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return store.ErrBoardNotFound
}

// Delete implements the BoardStore interface.
func (m *MockBoardStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	for i, board := range m.Boards {
		if board.ID == id {
			m.Boards = append(m.Boards[:i], m.Boards[i+1:]...)
			return nil
		}
	}
	return store.ErrBoardNotFound
}

var _ store.BoardStore = (*MockBoardStore)(nil)

// MockAILogStore implements store.AILogStore for testing.
type MockAILogStore struct {
	// InsertFn allows test cases to mock the Insert behavior
	InsertFn func(ctx context.Context, entry *store.AILogEntry) error

	// Entries collects every inserted audit row for verification
	Entries []*store.AILogEntry
}

// NewMockAILogStore creates a new mock store with initialized defaults.
func NewMockAILogStore() *MockAILogStore {
	return &MockAILogStore{}
}

// Insert implements the AILogStore interface.
func (m *MockAILogStore) Insert(ctx context.Context, entry *store.AILogEntry) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, entry)
	}

	m.Entries = append(m.Entries, entry)
	return nil
}

var _ store.AILogStore = (*MockAILogStore)(nil)
