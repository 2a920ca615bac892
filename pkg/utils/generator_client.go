package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TextGeneratorInterface is the narrow surface the generation loop needs:
// one prompt in, one raw text completion out.
type TextGeneratorInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-2.5-flash-lite"

	requestTimeout = 60 * time.Second

	generationTemperature = 0.9
	generationTopP        = 0.95
	generationTopK        = 64
	generationMaxTokens   = 16384
)

// NewTextGenerator selects a provider implementation. An empty provider
// defaults to the raw Gemini REST client.
func NewTextGenerator(provider, apiKey, model, baseURL string) (TextGeneratorInterface, error) {
	switch strings.ToLower(provider) {
	case "", "gemini":
		return NewGeminiRESTClient(apiKey, model, baseURL), nil
	case "gemini-sdk":
		return NewGeminiSDKClient(apiKey, model)
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
}

// GeminiRESTClient talks to the generateContent endpoint directly instead of
// going through the SDK, so the base URL can point at anything that speaks
// the same envelope.
type GeminiRESTClient struct {
	apiKey     string
	model      string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewGeminiRESTClient(apiKey, model, baseURL string) *GeminiRESTClient {
	if model == "" {
		model = defaultGeminiModel
	}
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	return &GeminiRESTClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
		timeout:    requestTimeout,
		httpClient: &http.Client{},
	}
}

func (c *GeminiRESTClient) Model() string {
	return c.model
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiRESTClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     generationTemperature,
			MaxOutputTokens: generationMaxTokens,
			TopP:            generationTopP,
			TopK:            generationTopK,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", ErrRequestTimeout, err)
		}
		return "", fmt.Errorf("calling generative api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", ErrUpstreamAPI, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var envelope geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		return "", ErrMalformedEnvelope
	}

	return envelope.Candidates[0].Content.Parts[0].Text, nil
}
