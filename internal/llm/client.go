package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Message is one turn of a chat exchange sent to the completion service.
type Message struct {
	Role    string `json:"role"` // "user", or "assistant"/"model" for replies
	Content string `json:"content"`
}

// Client is an abstraction over completion providers.
type Client interface {
	// Complete sends a chat exchange and returns the model's reply text.
	// systemPrompt may be empty.
	Complete(ctx context.Context, messages []Message, systemPrompt string) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a completion client based on configuration.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, config: config}, nil
}

// Complete sends the exchange as a single generate call. A system prompt is
// folded in as a leading user/model turn, matching the demo's original wire
// behavior.
func (c *GeminiClient) Complete(ctx context.Context, messages []Message, systemPrompt string) (string, error) {
	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(c.config.Temperature)
	model.SetMaxOutputTokens(c.config.MaxOutputTokens)

	var contents []*genai.Content
	if systemPrompt != "" {
		contents = append(contents,
			&genai.Content{Role: "user", Parts: []genai.Part{genai.Text(systemPrompt)}},
			&genai.Content{Role: "model", Parts: []genai.Part{genai.Text("Understood.")}},
		)
	}
	for _, msg := range messages {
		role := "user"
		if msg.Role == "assistant" || msg.Role == "model" {
			role = "model"
		}
		contents = append(contents, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(msg.Content)}})
	}
	if len(contents) == 0 {
		return "", fmt.Errorf("no messages to send")
	}

	last := contents[len(contents)-1]
	session := model.StartChat()
	session.History = contents[:len(contents)-1]

	resp, err := session.SendMessage(ctx, last.Parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
