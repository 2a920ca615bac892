package utils

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiSDKClient implements TextGeneratorInterface on top of the official
// SDK. Generation parameters match the REST client.
type GeminiSDKClient struct {
	client *genai.Client
	model  string
}

func NewGeminiSDKClient(apiKey, model string) (*GeminiSDKClient, error) {
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSDKClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiSDKClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(generationTemperature)
	m.SetTopP(generationTopP)
	m.SetTopK(generationTopK)
	m.SetMaxOutputTokens(generationMaxTokens)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", ErrRequestTimeout, err)
		}
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrMalformedEnvelope
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// Close closes the underlying SDK client.
func (c *GeminiSDKClient) Close() error {
	return c.client.Close()
}
