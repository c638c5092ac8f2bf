package groq

import "time"

const (
	// DefaultBaseURL is the Groq OpenAI-compatible API endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the chat model used when none is configured.
	DefaultModel = "llama-3.1-8b-instant"

	// DefaultTimeout bounds a single API call.
	DefaultTimeout = 8 * time.Second
)
