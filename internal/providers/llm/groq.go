package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama3-8b-8192"

	// Keys shorter than this cannot be real; refusing them up front keeps
	// the engine on the fallback path without a doomed network call.
	minAPIKeyLen = 10

	maxOutputTokens  = 2000
	temperature      = 0.7
	transportTimeout = 60 * time.Second
)

// Groq talks to Groq's OpenAI-compatible chat completions endpoint. Any
// OpenAI-compatible server works by overriding baseURL.
type Groq struct {
	client *openai.Client
	model  string
}

func NewGroq(apiKey, baseURL, model string) (*Groq, error) {
	if len(apiKey) < minAPIKeyLen {
		return nil, errors.New("api key missing or too short")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{Timeout: transportTimeout}

	return &Groq{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

func (g *Groq) Complete(ctx context.Context, prompt string) (*Completion, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxOutputTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, errors.New("empty completion")
	}

	return &Completion{
		Text:       resp.Choices[0].Message.Content,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}

func (g *Groq) Model() string { return g.model }

func (g *Groq) Close() error { return nil }
