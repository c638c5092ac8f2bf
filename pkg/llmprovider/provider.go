package llmprovider

import "context"

// Provider defines the interface for text-generation providers.
type Provider interface {
	// GenerateContent sends a generation request and returns a response.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "groq").
	Name() string

	// Model returns the model being used.
	Model() string
}

// Message represents a conversation message.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Request represents a normalized generation request.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Response represents a normalized generation response.
type Response struct {
	Content      string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
