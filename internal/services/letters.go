package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"hxndev/resume-copilot/internal/models"
)

// LetterService generates free-text artifacts: cover letters, motivational
// letters and email replies. These tasks skip the JSON pipeline entirely, the
// model's prose is the payload.
type LetterService interface {
	CoverLetter(ctx context.Context, job models.JobDetails, customInstruction, language string) models.Outcome
	MotivationalLetter(ctx context.Context, job models.JobDetails) models.Outcome
	EmailReply(ctx context.Context, emailContent, replyTone, language string) models.Outcome
}

type letterService struct {
	gemini  GeminiService
	prompts *PromptBuilder
}

func NewLetterService(gemini GeminiService) LetterService {
	return &letterService{
		gemini:  gemini,
		prompts: NewPromptBuilder(),
	}
}

func (s *letterService) CoverLetter(ctx context.Context, job models.JobDetails, customInstruction, language string) models.Outcome {
	log.Printf("🤖 Generating cover letter for: %s at %s", job.JobTitle, job.CompanyName)

	prompt := s.prompts.BuildCoverLetterPrompt(job, customInstruction, language)

	response, err := s.gemini.GenerateText(ctx, prompt, DefaultGenerationConfig)
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return models.Fail("Failed to generate cover letter")
		}
		return models.Fail("Error generating cover letter: %v", err)
	}

	return models.Succeed(map[string]any{
		"cover_letter": strings.TrimSpace(response),
		"language":     language,
	})
}

func (s *letterService) MotivationalLetter(ctx context.Context, job models.JobDetails) models.Outcome {
	log.Printf("🤖 Generating motivational letter for: %s at %s", job.JobTitle, job.CompanyName)

	prompt := s.prompts.BuildMotivationalLetterPrompt(job)

	response, err := s.gemini.GenerateText(ctx, prompt, ShortLetterConfig)
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return models.Fail("Failed to generate motivational letter")
		}
		return models.Fail("Error generating motivational letter: %v", err)
	}

	return models.Succeed(map[string]any{"letter": strings.TrimSpace(response)})
}

func (s *letterService) EmailReply(ctx context.Context, emailContent, replyTone, language string) models.Outcome {
	prompt := s.prompts.BuildEmailReplyPrompt(emailContent, replyTone, language)

	response, err := s.gemini.GenerateText(ctx, prompt, DefaultGenerationConfig)
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return models.Fail("Failed to generate email reply")
		}
		return models.Fail("Error generating email reply: %v", err)
	}

	return models.Succeed(map[string]any{
		"reply":    strings.TrimSpace(response),
		"language": language,
	})
}
