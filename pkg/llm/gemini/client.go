package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-1.5-flash"

// Config selects the Gemini backend. Backend "vertex" routes through Vertex AI
// with Project and Location; anything else uses the Gemini API with APIKey.
type Config struct {
	APIKey      string
	Model       string
	Backend     string
	Project     string
	Location    string
	Temperature float32
	// BaseURL overrides the API endpoint, e.g. for a proxy.
	BaseURL string
}

// Client implements llm.ChatModel on top of the genai SDK. The SDK client is
// created on first use, so a missing credential surfaces as a call error.
type Client struct {
	cfg Config

	mu     sync.Mutex
	client *genai.Client
}

func New(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &Client{cfg: cfg}
}

// Model returns the model id used for generation.
func (c *Client) Model() string { return c.cfg.Model }

func (c *Client) sdk(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		return c.client, nil
	}
	cc := &genai.ClientConfig{Backend: genai.BackendGeminiAPI, APIKey: c.cfg.APIKey}
	if strings.EqualFold(c.cfg.Backend, "vertex") {
		cc = &genai.ClientConfig{
			Backend:  genai.BackendVertexAI,
			Project:  c.cfg.Project,
			Location: c.cfg.Location,
		}
	} else if c.cfg.APIKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	if c.cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: c.cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	c.client = client
	return client, nil
}

// Ask sends one user turn with a system instruction and returns the reply text.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	client, err := c.sdk(ctx)
	if err != nil {
		return "", err
	}
	gen := &genai.GenerateContentConfig{}
	if systemPrompt != "" {
		gen.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}
	if c.cfg.Temperature > 0 {
		gen.Temperature = genai.Ptr(c.cfg.Temperature)
	}
	contents := []*genai.Content{genai.NewContentFromText(userPrompt, genai.RoleUser)}

	resp, err := client.Models.GenerateContent(ctx, c.cfg.Model, contents, gen)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}

// ModelInfo is one entry of the model catalogue.
type ModelInfo struct {
	Name            string
	DisplayName     string
	GenerateContent bool
}

// ListModels returns every model visible to the credential.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	client, err := c.sdk(ctx)
	if err != nil {
		return nil, err
	}
	var out []ModelInfo
	for m, err := range client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("gemini list models: %w", err)
		}
		out = append(out, ModelInfo{
			Name:            m.Name,
			DisplayName:     m.DisplayName,
			GenerateContent: supports(m.SupportedActions, "generateContent"),
		})
	}
	return out, nil
}

func supports(actions []string, action string) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
