package services

import (
	"context"
	"errors"
	"log"

	"hxndev/resume-copilot/internal/models"
)

type ATSService interface {
	CheckCompatibility(ctx context.Context, resumeContent string) models.Outcome
	OptimizeSections(ctx context.Context, resumeContent, jobDescription string) models.Outcome
}

type atsService struct {
	gemini  GeminiService
	prompts *PromptBuilder
}

func NewATSService(gemini GeminiService) ATSService {
	return &atsService{
		gemini:  gemini,
		prompts: NewPromptBuilder(),
	}
}

// atsAnalysisSchema is the required-field table for a compatibility report.
func atsAnalysisSchema() Schema {
	return Schema{
		"ats_score":               {Kind: KindNumber, Default: float64(70), Bounded: true, Min: 0, Max: 100},
		"summary":                 {Kind: KindString, Default: "ATS compatibility summary unavailable."},
		"format_issues":           {Kind: KindStringList},
		"content_issues":          {Kind: KindStringList},
		"keyword_issues":          {Kind: KindStringList},
		"improvement_suggestions": {Kind: KindStringList},
		"good_practices":          {Kind: KindStringList},
	}
}

// CheckCompatibility scores a resume for ATS parsing friendliness. This task
// has no fallback payload: a score is worthless unless the model produced one,
// so empty responses and unparseable output surface as failures.
func (s *atsService) CheckCompatibility(ctx context.Context, resumeContent string) models.Outcome {
	prompt := s.prompts.BuildATSCompatibilityPrompt(resumeContent)

	response, err := s.gemini.GenerateText(ctx, prompt, DefaultGenerationConfig)
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return models.Fail("No response from AI model")
		}
		return models.Fail("Error analyzing ATS compatibility: %v", err)
	}

	candidate, found := ExtractJSON(response, ObjectShape)
	if !found {
		return models.Fail("Invalid response format")
	}

	parsed, err := ParseModelJSON(candidate)
	if err != nil {
		log.Printf("❌ ATS analysis parsing error: %v, offending text: %s", err, Excerpt(candidate))
		return models.Fail("Error analyzing ATS compatibility: %v", err)
	}

	analysis := atsAnalysisSchema().Normalize(parsed)
	return models.Succeed(map[string]any{"analysis": analysis})
}

// atsOptimizeSchema is the required-field table for optimized sections.
func atsOptimizeSchema() Schema {
	return Schema{
		"professional_summary": {Kind: KindString, Default: "Professional with relevant industry experience seeking to leverage skills and knowledge in a new role."},
		"skills_section":       {Kind: KindStringList, MinLen: 1, Default: []string{"Communication", "Problem Solving", "Teamwork"}},
		"experience_bullets": {Kind: KindStringList, MinLen: 1, Default: []string{
			"Demonstrated success in relevant projects",
			"Improved processes and efficiency",
			"Collaborated with cross-functional teams",
		}},
		"keyword_analysis": {Kind: KindObject, Nested: Schema{
			"job_keywords":     {Kind: KindStringList, MinLen: 1, Default: []string{"Key term 1", "Key term 2"}},
			"missing_keywords": {Kind: KindStringList},
		}},
	}
}

// fallbackOptimizedSections is the deterministic payload substituted when the
// model's output cannot be recovered.
func fallbackOptimizedSections() map[string]any {
	return map[string]any{
		"professional_summary": "Experienced professional with a proven track record in delivering results. Skilled in relevant tools and methodologies with focus on quality and efficiency.",
		"skills_section":       []any{"Communication", "Problem Solving", "Teamwork", "Attention to Detail", "Organization"},
		"experience_bullets": []any{
			"Successfully executed projects on time and within budget",
			"Collaborated with cross-functional teams to achieve business objectives",
			"Improved processes resulting in increased efficiency",
		},
		"keyword_analysis": map[string]any{
			"job_keywords":     []any{"Communication", "Teamwork", "Leadership"},
			"missing_keywords": []any{},
		},
	}
}

// OptimizeSections rewrites resume sections for a target job description. A
// default payload is preferable to a hard failure here, so exhausted repairs
// degrade to a fallback instead of erroring.
func (s *atsService) OptimizeSections(ctx context.Context, resumeContent, jobDescription string) models.Outcome {
	log.Println("🤖 Generating ATS-optimized resume sections")

	prompt := s.prompts.BuildATSOptimizationPrompt(resumeContent, jobDescription)

	response, err := s.gemini.GenerateText(ctx, prompt, DefaultGenerationConfig)
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return models.Fail("No response from AI model")
		}
		return models.Fail("Error generating optimized resume sections: %v", err)
	}

	candidate, found := ExtractJSON(response, ObjectShape)
	if !found {
		return models.Fail("Invalid response format: JSON not found")
	}

	parsed, err := ParseModelJSON(candidate)
	if err != nil {
		log.Printf("⚠️ Optimization parsing failed after repairs: %v, offending text: %s", err, Excerpt(candidate))
		return models.Fallback(
			map[string]any{"optimized_sections": fallbackOptimizedSections()},
			"The AI response couldn't be parsed correctly. Showing default recommendations instead.",
		)
	}

	sections := atsOptimizeSchema().Normalize(parsed)
	return models.Succeed(map[string]any{"optimized_sections": sections})
}
