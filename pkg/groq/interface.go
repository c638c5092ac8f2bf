package groq

import "context"

// IGroq is the interface for the Groq chat completion client.
type IGroq interface {
	// GenerateContent sends a chat completion request to the Groq API.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used.
	Model() string
}

// New creates a new Groq client from config.
func New(cfg Config) (IGroq, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGroqImpl(cfg), nil
}
