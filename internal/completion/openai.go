package completion

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrMissingAPIKey   = errors.New("completion api key is not set")
	ErrEmptyCompletion = errors.New("completion response has no choices")
)

// Completer turns a single prompt into generated text. Calls are stateless.
type Completer interface {
	Complete(ctx context.Context, model string, temperature float64, prompt string) (string, error)
}

type OpenAIConfig struct {
	BaseURL    string
	HTTPClient *http.Client
}

type OpenAIClient struct {
	apiKey string
	client *openai.Client
}

func NewOpenAIClient(apiKey string, cfg OpenAIConfig) *OpenAIClient {
	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		clientCfg.HTTPClient = cfg.HTTPClient
	} else {
		clientCfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}

	return &OpenAIClient{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(clientCfg),
	}
}

// Complete sends prompt as the only user message and returns the content of
// the first choice.
func (c *OpenAIClient) Complete(ctx context.Context, model string, temperature float64, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: requestTemperature(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// requestTemperature keeps an explicit 0 on the wire; the request field is
// omitempty and the API would otherwise apply its default of 1.
func requestTemperature(temperature float64) float32 {
	if temperature == 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(temperature)
}
