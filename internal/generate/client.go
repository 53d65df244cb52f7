// Package generate produces interview question sets for a customer profile
// using an LLM provider.
package generate

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/interview-forge/internal/types"
)

// defaultModel is the Gemini model used for question generation.
const defaultModel = "gemini-2.5-flash"

// Generator is an abstraction over LLM providers. One call produces one
// interview question set for the given profile.
type Generator interface {
	// GenerateInterview generates a five-question interview for the profile.
	GenerateInterview(ctx context.Context, profile types.Profile) (types.Interview, error)
	// Close releases any resources held by the generator.
	Close() error
}

// NewGenerator creates a Gemini-backed generator when an API key is set, and
// the deterministic fake otherwise so the server can run without credentials.
func NewGenerator(ctx context.Context, apiKey string) (Generator, error) {
	if apiKey == "" {
		return NewFakeGenerator(), nil
	}
	return NewGeminiGenerator(ctx, apiKey, defaultModel)
}

// GeminiGenerator implements Generator for Google Gemini.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a new Gemini generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// GenerateInterview generates a five-question interview for the profile.
func (g *GeminiGenerator) GenerateInterview(ctx context.Context, profile types.Profile) (types.Interview, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(BuildPrompt(profile)))
	if err != nil {
		return types.Interview{}, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return types.Interview{}, err
	}

	return ParseInterview(CleanJSONBlock(text), profile)
}

// Close releases resources held by the generator.
func (g *GeminiGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// extractTextFromResponse concatenates the text parts of a Gemini response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	if out == "" {
		return "", fmt.Errorf("no text content in model response")
	}
	return out, nil
}
