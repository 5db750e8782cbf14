package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// Chat-completions endpoints and default models per provider.
const (
	GroqURL   = "https://api.groq.com/openai/v1/chat/completions"
	OpenAIURL = "https://api.openai.com/v1/chat/completions"

	DefaultGroqModel   = "llama-3.3-70b-versatile"
	DefaultOpenAIModel = "gpt-4o"
)

var wrappingQuotesRe = regexp.MustCompile(`^"(.*)"$`)

// OpenAIProvider speaks the OpenAI-compatible chat-completions API,
// which covers both OpenAI and Groq.
type OpenAIProvider struct {
	name   string
	url    string
	apiKey string
	model  string
	client *http.Client
}

// NewGroq creates a Groq-backed provider. An empty model selects the
// default.
func NewGroq(apiKey, model string) (*OpenAIProvider, error) {
	if model == "" {
		model = DefaultGroqModel
	}
	return newOpenAICompatible("groq", GroqURL, apiKey, model)
}

// NewOpenAI creates an OpenAI-backed provider.
func NewOpenAI(apiKey, model string) (*OpenAIProvider, error) {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return newOpenAICompatible("openai", OpenAIURL, apiKey, model)
}

// NewOpenAICompatible creates a provider against any chat-completions
// endpoint.
func NewOpenAICompatible(name, url, apiKey, model string) (*OpenAIProvider, error) {
	return newOpenAICompatible(name, url, apiKey, model)
}

func newOpenAICompatible(name, url, apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, errors.New("missing API key")
	}
	return &OpenAIProvider{
		name:   name,
		url:    url,
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Name returns the provider identifier.
func (p *OpenAIProvider) Name() string {
	return p.name
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends one chat-completion request and returns the reply
// text with any wrapping quotes stripped.
func (p *OpenAIProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("network error: failed to reach %s: %w", p.url, err)
	}
	defer resp.Body.Close()

	var parsed chatResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&parsed)

	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if decodeErr == nil && parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", fmt.Errorf("API Error (%d): %s", resp.StatusCode, msg)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("malformed API response: %w", decodeErr)
	}
	if parsed.Error != nil && parsed.Error.Message != "" {
		return "", fmt.Errorf("API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("malformed API response: choices not found")
	}

	reply := strings.TrimSpace(parsed.Choices[0].Message.Content)
	return wrappingQuotesRe.ReplaceAllString(reply, "$1"), nil
}
