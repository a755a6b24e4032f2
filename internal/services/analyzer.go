package services

import (
	"context"
	"errors"
	"log"

	"hxndev/resume-copilot/internal/models"
)

type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, resumeContent string, jobs []models.JobDetails, customInstructions string) models.Outcome
	ReviewResume(ctx context.Context, resumeContent, jobDescription, customInstructions string) models.Outcome
}

type analyzerService struct {
	gemini  GeminiService
	ats     ATSService
	prompts *PromptBuilder
}

func NewAnalyzerService(gemini GeminiService, ats ATSService) AnalyzerService {
	return &analyzerService{
		gemini:  gemini,
		ats:     ats,
		prompts: NewPromptBuilder(),
	}
}

// matchJobSchema is the required-field table for one per-job analysis entry.
func matchJobSchema() Schema {
	return Schema{
		"job_title":        {Kind: KindString, Default: "Position"},
		"company_name":     {Kind: KindString, Default: "Company"},
		"job_link":         {Kind: KindString},
		"job_description":  {Kind: KindString},
		"match_percentage": {Kind: KindNumber, Default: float64(50), Bounded: true, Min: 0, Max: 100},
		"matching_skills":  {Kind: KindStringList},
		"missing_skills":   {Kind: KindStringList},
		"recommendations": {Kind: KindStringList, MinLen: 3, Default: []string{
			"Highlight relevant project achievements",
			"Quantify your impact with metrics",
			"Add specific examples of team leadership",
		}},
	}
}

// AnalyzeResume runs the resume-vs-jobs match pipeline: shorten job links,
// prompt, generate, extract, repair, normalize, restore links. When the first
// job carries a description, an ATS compatibility analysis is appended.
func (s *analyzerService) AnalyzeResume(ctx context.Context, resumeContent string, jobs []models.JobDetails, customInstructions string) models.Outcome {
	log.Printf("🔄 Analyzing resume against %d job entries", len(jobs))

	// Shorten links before prompting; keep both forms for restoration.
	originals := make([]string, len(jobs))
	sent := make([]string, len(jobs))
	shortened := make([]models.JobDetails, len(jobs))
	for i, job := range jobs {
		originals[i] = job.JobLink
		job.JobLink = ShortenJobLink(job.JobLink)
		sent[i] = job.JobLink
		shortened[i] = job
	}

	prompt := s.prompts.BuildMatchAnalysisPrompt(resumeContent, shortened, customInstructions)

	response, err := s.gemini.GenerateText(ctx, prompt, DefaultGenerationConfig)
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return models.Fail("No response from AI model")
		}
		return models.Fail("Error generating analysis: %v", err)
	}

	candidate, found := ExtractJSON(response, ObjectShape)
	if !found {
		log.Printf("❌ Failed to extract JSON from response: %s", Excerpt(response))
		return models.Fail("Invalid response format: JSON not found")
	}

	parsed, err := ParseModelJSON(candidate)
	if err != nil {
		log.Printf("❌ JSON parsing error: %v, offending text: %s", err, Excerpt(candidate))
		return models.Fail("Error parsing AI response: %v", err)
	}

	analysis, ok := parsed.(map[string]any)
	if !ok {
		return models.Fail("Invalid response structure: 'jobs' field missing")
	}
	if _, present := analysis["jobs"]; !present {
		return models.Fail("Invalid response structure: 'jobs' field missing")
	}

	schema := Schema{"jobs": {Kind: KindObjectList, Elem: matchJobSchema()}}
	normalized := schema.Normalize(analysis)
	jobResults := normalized["jobs"].([]any)

	RestoreJobLinks(jobResults, originals, sent)

	data := map[string]any{"results": jobResults}

	// ATS add-on rides along when the first job has a real description.
	if len(jobs) > 0 && jobs[0].JobDescription != "" {
		if atsOutcome := s.ats.CheckCompatibility(ctx, resumeContent); atsOutcome.Success {
			data["ats_analysis"] = atsOutcome.Data["analysis"]
		}
	}

	return models.Succeed(data)
}

// reviewSchema is the required-field table for the detailed review payload.
func reviewSchema() Schema {
	return Schema{
		"strengths": {Kind: KindStringList, MinLen: 1, Default: []string{
			"Strong professional experience",
			"Clear presentation of skills",
			"Good organization",
		}},
		"weaknesses": {Kind: KindStringList, MinLen: 1, Default: []string{
			"Could benefit from more quantifiable achievements",
			"Consider adding more relevant keywords",
			"Format could be more scannable",
		}},
		"improvement_suggestions": {Kind: KindObjectList, Elem: Schema{
			"section":     {Kind: KindString, Default: "General"},
			"suggestions": {Kind: KindStringList, MinLen: 1, Default: []string{"Consider reviewing this section"}},
		}},
	}
}

// reviewSections are the canonical suggestion sections every review carries.
var reviewSections = []string{"Format", "Content", "Skills", "Experience", "Keywords"}

// ReviewResume runs the detailed review pipeline against a single job
// description.
func (s *analyzerService) ReviewResume(ctx context.Context, resumeContent, jobDescription, customInstructions string) models.Outcome {
	prompt := s.prompts.BuildResumeReviewPrompt(resumeContent, jobDescription, customInstructions)

	response, err := s.gemini.GenerateText(ctx, prompt, DefaultGenerationConfig)
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return models.Fail("Failed to generate resume review")
		}
		return models.Fail("Error generating resume review: %v", err)
	}

	candidate, found := ExtractJSON(response, ObjectShape)
	if !found {
		return models.Fail("Response is not a valid JSON object")
	}

	parsed, err := ParseModelJSON(candidate)
	if err != nil {
		log.Printf("❌ Review parsing error: %v, offending text: %s", err, Excerpt(candidate))
		return models.Fail("Invalid response format from AI model: %v", err)
	}

	reviewData, ok := parsed.(map[string]any)
	if !ok {
		return models.Fail("Response is not a valid JSON object")
	}
	for _, field := range []string{"strengths", "weaknesses", "improvement_suggestions"} {
		if _, present := reviewData[field]; !present {
			return models.Fail("Response is missing required fields")
		}
	}

	review := reviewSchema().Normalize(reviewData)
	ensureReviewSections(review)

	return models.Succeed(map[string]any{"review": review})
}

// ensureReviewSections back-fills any canonical section the model left out.
func ensureReviewSections(review map[string]any) {
	suggestions, _ := review["improvement_suggestions"].([]any)
	existing := map[string]bool{}
	for _, el := range suggestions {
		if entry, ok := el.(map[string]any); ok {
			if section, ok := entry["section"].(string); ok {
				existing[section] = true
			}
		}
	}

	for _, section := range reviewSections {
		if !existing[section] {
			suggestions = append(suggestions, map[string]any{
				"section":     section,
				"suggestions": []any{"Consider reviewing this section"},
			})
		}
	}
	review["improvement_suggestions"] = suggestions
}
