package llmprovider

import (
	"context"

	"elder-advice-agent/pkg/groq"
)

// GroqAdapter adapts the Groq client to the Provider interface.
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter wraps a Groq client as a Provider.
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	groqReq := &groq.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]groq.Message, 0, len(req.Messages)),
	}
	for _, msg := range req.Messages {
		groqReq.Messages = append(groqReq.Messages, groq.Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	resp, err := a.client.GenerateContent(ctx, groqReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	out := &Response{
		Content:      resp.Content,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

func (a *GroqAdapter) Name() string {
	return "groq"
}

func (a *GroqAdapter) Model() string {
	return a.client.Model()
}
