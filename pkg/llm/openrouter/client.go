package openrouter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "google/gemini-flash-1.5"
)

// Client is an OpenRouter (OpenAI-compatible) chat completions client.
type Client struct {
	APIKey string
	Model  string

	api *openai.Client
}

func New(apiKey, baseURL, model, appTitle, referer string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{
		Timeout: 60 * time.Second,
		Transport: &attributionTransport{
			base:     http.DefaultTransport,
			appTitle: appTitle,
			referer:  referer,
		},
	}
	return &Client{
		APIKey: apiKey,
		Model:  model,
		api:    openai.NewClientWithConfig(cfg),
	}
}

// Ask sends the system and user prompts and returns the first choice.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("openrouter api key is empty")
	}
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("openrouter chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned by model")
	}
	return resp.Choices[0].Message.Content, nil
}

// attributionTransport adds the optional OpenRouter ranking headers.
type attributionTransport struct {
	base     http.RoundTripper
	appTitle string
	referer  string
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.appTitle == "" && t.referer == "" {
		return t.base.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	if t.referer != "" {
		req.Header.Set("HTTP-Referer", t.referer)
	}
	if t.appTitle != "" {
		req.Header.Set("X-Title", t.appTitle)
	}
	return t.base.RoundTrip(req)
}
