package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

const geminiServiceName = "gemini"

// Summarizer turns a prompt into free-form text. Implementations are
// best-effort; callers must tolerate any error.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

type geminiService struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (Summarizer, error) {
	if apiKey == "" {
		return nil, ErrSummarizerDisabled
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	return &geminiService{
		client:      client,
		modelName:   modelName,
		temperature: 0.4,
	}, nil
}

// Summarize implements Summarizer with a single GenerateContent call.
func (g *geminiService) Summarize(ctx context.Context, prompt string) (string, error) {
	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 512,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v", err)
		return "", &ExternalServiceError{Service: geminiServiceName, Err: err}
	}

	if resp == nil {
		return "", &ExternalServiceError{Service: geminiServiceName, Err: errors.New("nil response")}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &ExternalServiceError{Service: geminiServiceName, Err: errors.New("no text content in response")}
	}

	return text, nil
}
