package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// TextGenerator produces resume text from a prompt. Implementations may fail;
// callers are expected to have a deterministic fallback.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
	// Model ids tried in order; the first one that answers wins. Availability
	// differs per project, so a single hardcoded model is too brittle.
	models []string
}

func NewGeminiGenerator(ctx context.Context, apiKey string, models []string) (TextGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiGenerator{
		client: client,
		models: models,
	}, nil
}

// Generate implements TextGenerator.
func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	temperature := float32(0.2)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 2048,
	}

	var lastErr error
	for _, model := range g.models {
		resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
		if err != nil {
			log.Printf("[genai] model %s failed: %v", model, err)
			lastErr = err
			continue
		}
		if resp == nil || resp.Text() == "" {
			lastErr = fmt.Errorf("model %s returned no text", model)
			continue
		}
		return resp.Text(), nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no models configured")
	}
	return "", fmt.Errorf("all models failed: %w", lastErr)
}
