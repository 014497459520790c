package generation

import "context"

// Generator produces text from a prompt using an external language model.
type Generator interface {
	// GenerateText sends the prompt to the backing model and returns the
	// generated text. Returns an error from errors.go when the call fails or
	// the response is unusable.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// ModelName reports the identifier of the backing model, for audit logs.
	ModelName() string
}
