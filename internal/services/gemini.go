package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// ErrEmptyResponse reports that the model returned no text at all. Tasks with a
// deterministic fallback payload recover from it; everything else surfaces it.
var ErrEmptyResponse = errors.New("no response from AI model")

// GenerationConfig is the fixed sampling tuple for one task kind. Extraction and
// scoring tasks run cool, letter generation runs at the default temperature.
type GenerationConfig struct {
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
}

var (
	// DefaultGenerationConfig matches the classic analysis tasks.
	DefaultGenerationConfig = GenerationConfig{Temperature: 0.7, TopP: 0.8, TopK: 40, MaxOutputTokens: 2048}
	// QuestionGenerationConfig runs cooler so the 8-question structure stays stable.
	QuestionGenerationConfig = GenerationConfig{Temperature: 0.3, TopP: 0.8, TopK: 40, MaxOutputTokens: 2048}
	// AnswerEvaluationConfig scores interview answers.
	AnswerEvaluationConfig = GenerationConfig{Temperature: 0.4, TopP: 0.8, TopK: 40, MaxOutputTokens: 2048}
	// ResearchGenerationConfig produces short, near-deterministic research lists.
	ResearchGenerationConfig = GenerationConfig{Temperature: 0.2, MaxOutputTokens: 1024}
	// ShortLetterConfig is for brief free-text output like motivational letters.
	ShortLetterConfig = GenerationConfig{Temperature: 0.7, TopP: 0.8, TopK: 40, MaxOutputTokens: 1024}
)

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string, config GenerationConfig) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(apiKey, modelName string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateText implements GeminiService. One call per request, no internal
// retries: a transport failure is surfaced as an error, an empty completion as
// ErrEmptyResponse.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, config GenerationConfig) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &config.Temperature,
		MaxOutputTokens: config.MaxOutputTokens,
	}
	if config.TopP > 0 {
		genConfig.TopP = &config.TopP
	}
	if config.TopK > 0 {
		genConfig.TopK = &config.TopK
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), genConfig)
	if err != nil {
		log.Printf("❌ Gemini API error: %v", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", ErrEmptyResponse
	}

	text := resp.Text()
	if text == "" {
		log.Println("⚠️ Empty response received from Gemini API")
		return "", ErrEmptyResponse
	}

	return text, nil
}
