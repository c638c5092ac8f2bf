package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// groqImpl is the internal implementation of IGroq.
type groqImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func newGroqImpl(cfg Config) *groqImpl {
	return &groqImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request to the Groq API.
func (g *groqImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	wireReq := chatCompletionRequest{
		Model:       g.model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("groq: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("groq: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("groq: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("groq: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var wireResp chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("groq: failed to decode response: %w", err)
	}

	if len(wireResp.Choices) == 0 {
		return nil, fmt.Errorf("groq: empty response, no choices returned")
	}

	return &Response{
		Content: strings.TrimSpace(wireResp.Choices[0].Message.Content),
		Usage: &Usage{
			InputTokens:  wireResp.Usage.PromptTokens,
			OutputTokens: wireResp.Usage.CompletionTokens,
			TotalTokens:  wireResp.Usage.TotalTokens,
		},
	}, nil
}

// Model returns the model being used.
func (g *groqImpl) Model() string {
	return g.model
}

// SetBaseURL overrides the API base URL (used in tests).
func (g *groqImpl) SetBaseURL(url string) {
	g.baseURL = url
}
