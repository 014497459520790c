package mocks

import (
	"context"
	"sync"

	"github.com/coursetrack/coursetrack-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing.
type MockGenerator struct {
	// GenerateTextFn allows test cases to mock the GenerateText behavior
	GenerateTextFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Text  string
	Err   error
	Model string

	// Call tracking for verification
	GenerateTextCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateText was called
		Count int

		// Prompts contains all prompts passed to GenerateText calls
		Prompts []string
	}
}

// NewMockGeneratorWithText creates a MockGenerator that returns the given text.
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{Text: text}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the given error.
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// GenerateText implements the generation.Generator interface.
func (m *MockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.GenerateTextCalls.mu.Lock()
	m.GenerateTextCalls.Count++
	m.GenerateTextCalls.Prompts = append(m.GenerateTextCalls.Prompts, prompt)
	m.GenerateTextCalls.mu.Unlock()

	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, prompt)
	}

	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

// ModelName implements the generation.Generator interface.
func (m *MockGenerator) ModelName() string {
	if m.Model != "" {
		return m.Model
	}
	return "mock-model"
}

// Reset resets the call tracking state.
func (m *MockGenerator) Reset() {
	m.GenerateTextCalls.mu.Lock()
	defer m.GenerateTextCalls.mu.Unlock()

	m.GenerateTextCalls.Count = 0
	m.GenerateTextCalls.Prompts = nil
}

var _ generation.Generator = (*MockGenerator)(nil)
