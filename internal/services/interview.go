package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"hxndev/resume-copilot/internal/models"
)

type InterviewService interface {
	GenerateQuestions(ctx context.Context, job models.JobDetails) models.Outcome
	EvaluateAnswers(ctx context.Context, questionAnswers []models.QuestionAnswer) models.Outcome
	CompanyResearch(ctx context.Context, companyName string) models.Outcome
	PrepareMaterials(ctx context.Context, job models.JobDetails) models.Outcome
}

type interviewService struct {
	gemini  GeminiService
	prompts *PromptBuilder
}

func NewInterviewService(gemini GeminiService) InterviewService {
	return &interviewService{
		gemini:  gemini,
		prompts: NewPromptBuilder(),
	}
}

// questionSchema builds the per-question field table. Defaults are numbered by
// element index so a half-empty question list still reads sensibly.
func questionSchema(jobTitle string) Schema {
	return Schema{
		"id":       {Kind: KindNumber, Default: func(i int) any { return float64(i + 1) }},
		"question": {Kind: KindString, Default: func(i int) any { return fmt.Sprintf("Question %d about %s", i+1, jobTitle) }},
		"category":   {Kind: KindString, Default: "General"},
		"difficulty": {Kind: KindString, Default: "Medium"},
		"key_points": {Kind: KindStringList, MinLen: 1, Default: []string{
			"Prepare a concise answer",
			"Include relevant examples",
			"Be specific",
		}},
		"importance": {Kind: KindString, Default: func(int) any {
			return fmt.Sprintf("This question helps assess your fit for the %s role", jobTitle)
		}},
	}
}

func interviewDataSchema(jobTitle string) Schema {
	return Schema{
		"questions":               {Kind: KindObjectList, Elem: questionSchema(jobTitle)},
		"preparation_tips":        {Kind: KindStringList},
		"key_skills_to_emphasize": {Kind: KindStringList},
	}
}

// fallbackInterviewData is the deterministic two-question set substituted when
// the model's output cannot be recovered.
func fallbackInterviewData(jobTitle, companyName string) map[string]any {
	return map[string]any{
		"questions": []any{
			map[string]any{
				"id":         float64(1),
				"question":   fmt.Sprintf("Tell me about your relevant experience for this %s role.", jobTitle),
				"category":   "Role-Specific",
				"difficulty": "Medium",
				"key_points": []any{"Highlight relevant skills", "Discuss similar past work", "Connect experience to job requirements"},
				"importance": "Establishes your qualifications for the position",
			},
			map[string]any{
				"id":         float64(2),
				"question":   fmt.Sprintf("Why are you interested in working at %s?", companyName),
				"category":   "Company Knowledge",
				"difficulty": "Easy",
				"key_points": []any{"Show research on company", "Connect values to personal goals", "Express genuine interest"},
				"importance": "Demonstrates company fit and preparation",
			},
		},
		"preparation_tips": []any{
			"Research the company thoroughly",
			"Practice your responses out loud",
			"Prepare specific examples from your experience",
		},
		"key_skills_to_emphasize": []any{"Communication", "Problem-solving", "Teamwork"},
	}
}

// GenerateQuestions produces the 8-question interview set for one job. Parse
// exhaustion degrades to a fallback set rather than failing: a candidate can
// still prepare from canned questions.
func (s *interviewService) GenerateQuestions(ctx context.Context, job models.JobDetails) models.Outcome {
	log.Printf("🤖 Generating interview questions for: %s at %s", job.JobTitle, job.CompanyName)

	prompt := s.prompts.BuildInterviewQuestionsPrompt(job)

	response, err := s.gemini.GenerateText(ctx, prompt, QuestionGenerationConfig)
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return models.Fail("No response from AI model")
		}
		return models.Fail("Error generating interview questions: %v", err)
	}

	var interviewData map[string]any
	note := ""

	candidate, found := ExtractJSON(response, ObjectShape)
	if !found {
		return models.Fail("Invalid response format: JSON not found")
	}

	parsed, err := ParseModelJSON(candidate)
	if err != nil {
		log.Printf("⚠️ All JSON parsing attempts failed: %v, using fallback structure", err)
		interviewData = fallbackInterviewData(job.JobTitle, job.CompanyName)
		note = "Using fallback questions due to processing error"
	} else {
		interviewData = interviewDataSchema(job.JobTitle).Normalize(parsed)
	}

	interviewData["job_title"] = job.JobTitle
	interviewData["company_name"] = job.CompanyName

	data := map[string]any{"interview_data": interviewData}
	if note != "" {
		return models.Fallback(data, note)
	}
	return models.Succeed(data)
}

// evaluationSchema is the field table for one answer evaluation.
func evaluationSchema() Schema {
	return Schema{
		"score":                 {Kind: KindNumber, Default: float64(5), Bounded: true, Min: 1, Max: 10},
		"feedback":              {Kind: KindString, Default: "Unable to evaluate the answer at this time."},
		"strengths":             {Kind: KindStringList},
		"areas_for_improvement": {Kind: KindStringList},
		"sample_answer":         {Kind: KindString},
	}
}

func neutralEvaluation(feedback string) map[string]any {
	return map[string]any{
		"score":                 float64(5),
		"feedback":              feedback,
		"strengths":             []any{},
		"areas_for_improvement": []any{"Please try again later."},
		"sample_answer":         "",
	}
}

// evaluateAnswer scores a single answer. Degradation is per-answer: one
// unevaluable answer yields a neutral evaluation instead of sinking the whole
// interview report.
func (s *interviewService) evaluateAnswer(ctx context.Context, question models.InterviewQuestion, answer string) map[string]any {
	if strings.TrimSpace(answer) == "" {
		return map[string]any{
			"score":                 float64(0),
			"feedback":              "No answer provided.",
			"strengths":             []any{},
			"areas_for_improvement": []any{},
			"sample_answer":         "",
		}
	}

	prompt := s.prompts.BuildAnswerEvaluationPrompt(question.Question, question.Category, question.KeyPoints, answer)

	log.Printf("🤖 Evaluating answer for question: %s", Truncate(question.Question, 50))
	response, err := s.gemini.GenerateText(ctx, prompt, AnswerEvaluationConfig)
	if err != nil {
		log.Printf("⚠️ Answer evaluation failed: %v", err)
		return neutralEvaluation("Unable to evaluate the answer at this time.")
	}

	candidate, found := ExtractJSON(response, ObjectShape)
	if !found {
		return neutralEvaluation("Unable to process the evaluation at this time.")
	}

	parsed, err := ParseModelJSON(candidate)
	if err != nil {
		log.Printf("⚠️ Evaluation parsing error: %v, offending text: %s", err, Excerpt(candidate))
		return neutralEvaluation("Unable to process the evaluation at this time.")
	}

	return evaluationSchema().Normalize(parsed)
}

// EvaluateAnswers scores every answer of a mock interview and produces an
// aggregate readiness report.
func (s *interviewService) EvaluateAnswers(ctx context.Context, questionAnswers []models.QuestionAnswer) models.Outcome {
	if len(questionAnswers) == 0 {
		return models.Fail("No valid question-answer pairs provided")
	}

	log.Printf("🔄 Evaluating %d interview answers", len(questionAnswers))

	evaluations := make([]any, 0, len(questionAnswers))
	totalScore := 0.0

	for _, qa := range questionAnswers {
		if qa.Question.Question == "" || strings.TrimSpace(qa.Answer) == "" {
			continue
		}

		evaluation := s.evaluateAnswer(ctx, qa.Question, qa.Answer)

		evaluations = append(evaluations, map[string]any{
			"question_id":   qa.Question.ID,
			"question_text": qa.Question.Question,
			"category":      qa.Question.Category,
			"difficulty":    qa.Question.Difficulty,
			"answer":        qa.Answer,
			"evaluation":    evaluation,
		})

		if score, ok := evaluation["score"].(float64); ok {
			totalScore += score
		}
	}

	averageScore := 0.0
	if len(evaluations) > 0 {
		averageScore = totalScore / float64(len(evaluations))
	}

	readinessLevel := "Low"
	switch {
	case averageScore >= 8:
		readinessLevel = "High"
	case averageScore >= 6:
		readinessLevel = "Medium"
	}

	feedback := s.generateOverallFeedback(ctx, evaluations, averageScore, readinessLevel)

	return models.Succeed(map[string]any{
		"overall_score":         math.Round(averageScore*10) / 10,
		"readiness_level":       readinessLevel,
		"overall_feedback":      feedback["overall_feedback"],
		"strengths":             feedback["strengths"],
		"areas_for_improvement": feedback["areas_for_improvement"],
		"next_steps":            feedback["next_steps"],
		"evaluations":           evaluations,
	})
}

// generateOverallFeedback consolidates per-answer evaluations into one
// report. Every failure path returns a deterministic summary built from the
// collected strengths and weaknesses; this helper never fails.
func (s *interviewService) generateOverallFeedback(ctx context.Context, evaluations []any, averageScore float64, readinessLevel string) map[string]any {
	if len(evaluations) == 0 {
		return map[string]any{
			"overall_feedback":      "No answers were evaluated.",
			"strengths":             []any{},
			"areas_for_improvement": []any{},
			"next_steps":            []any{"Practice more interview questions."},
		}
	}

	categoryTotals := map[string]float64{}
	categoryCounts := map[string]int{}
	var allStrengths, allImprovements []string

	for _, el := range evaluations {
		entry := el.(map[string]any)
		category, _ := entry["category"].(string)
		if category == "" {
			category = "General"
		}
		evaluation, _ := entry["evaluation"].(map[string]any)
		if score, ok := evaluation["score"].(float64); ok {
			categoryTotals[category] += score
		}
		categoryCounts[category]++

		allStrengths = append(allStrengths, stringList(evaluation["strengths"])...)
		allImprovements = append(allImprovements, stringList(evaluation["areas_for_improvement"])...)
	}

	ranked := make([]string, 0, len(categoryTotals))
	for cat := range categoryTotals {
		ranked = append(ranked, cat)
	}
	sort.Slice(ranked, func(i, j int) bool {
		avgI := categoryTotals[ranked[i]] / float64(categoryCounts[ranked[i]])
		avgJ := categoryTotals[ranked[j]] / float64(categoryCounts[ranked[j]])
		return avgI > avgJ
	})

	strongest := ranked[:min(2, len(ranked))]
	weakest := ranked[max(0, len(ranked)-2):]

	defaultFeedback := func() map[string]any {
		return map[string]any{
			"overall_feedback": fmt.Sprintf("Based on your answers, your interview readiness level is %s with an average score of %.1f/10.",
				strings.ToLower(readinessLevel), averageScore),
			"strengths":             headOrDefault(allStrengths, 3, "No specific strengths identified."),
			"areas_for_improvement": headOrDefault(allImprovements, 3, "Continue practicing interview questions."),
			"next_steps":            []any{"Practice more interview questions in the categories you scored lowest."},
		}
	}

	prompt := fmt.Sprintf(`You are an expert interview coach. Based on the following interview evaluation data, provide comprehensive feedback to the candidate.

Overall Score: %.1f/10
Readiness Level: %s

Strongest Categories: %s
Areas Needing Improvement: %s

Individual Strengths Identified:
%s

Individual Areas for Improvement:
%s

Please provide:
1. An overall assessment of the candidate's interview performance
2. 3-5 key strengths consolidated from the evaluations
3. 3-5 key areas for improvement
4. 3-5 specific next steps or practice recommendations

Return ONLY a JSON object with this exact structure:
{
    "overall_feedback": "Comprehensive assessment of the candidate's performance",
    "strengths": [
        "Key strength 1",
        "Key strength 2",
        "Key strength 3"
    ],
    "areas_for_improvement": [
        "Area for improvement 1",
        "Area for improvement 2",
        "Area for improvement 3"
    ],
    "next_steps": [
        "Specific recommendation 1",
        "Specific recommendation 2",
        "Specific recommendation 3"
    ]
}`,
		averageScore, readinessLevel,
		strings.Join(strongest, ", "), strings.Join(weakest, ", "),
		joinOrNone(allStrengths, 10), joinOrNone(allImprovements, 10))

	response, err := s.gemini.GenerateText(ctx, prompt, AnswerEvaluationConfig)
	if err != nil {
		log.Printf("⚠️ No overall feedback from model: %v", err)
		return defaultFeedback()
	}

	candidate, found := ExtractJSON(response, ObjectShape)
	if !found {
		return defaultFeedback()
	}
	parsed, err := ParseModelJSON(candidate)
	if err != nil {
		log.Printf("⚠️ Error parsing overall feedback: %v", err)
		return defaultFeedback()
	}

	defaults := defaultFeedback()
	return Schema{
		"overall_feedback":      {Kind: KindString, Default: defaults["overall_feedback"]},
		"strengths":             {Kind: KindStringList, MinLen: 1, Default: func() any { return defaults["strengths"] }},
		"areas_for_improvement": {Kind: KindStringList, MinLen: 1, Default: func() any { return defaults["areas_for_improvement"] }},
		"next_steps":            {Kind: KindStringList, MinLen: 1, Default: func() any { return defaults["next_steps"] }},
	}.Normalize(parsed)
}

// defaultResearchPoints is the deterministic checklist served when the model
// cannot provide company-specific points. Research never hard-fails.
func defaultResearchPoints(companyName string) []any {
	name := companyName
	if name == "" {
		return []any{
			"Research the company's mission and values",
			"Learn about the company's products or services",
			"Understand their market position and competitors",
			"Check recent news articles about the company",
			"Review the company's culture and work environment",
		}
	}
	return []any{
		fmt.Sprintf("Research %s's mission and values", name),
		fmt.Sprintf("Learn about %s's products or services", name),
		fmt.Sprintf("Understand %s's market position and competitors", name),
		fmt.Sprintf("Check recent news articles about %s", name),
		fmt.Sprintf("Review %s's culture and work environment", name),
	}
}

// CompanyResearch generates pre-interview research points. Every degraded
// path substitutes the deterministic checklist, so the outcome is always
// successful.
func (s *interviewService) CompanyResearch(ctx context.Context, companyName string) models.Outcome {
	if companyName == "" {
		return models.Succeed(map[string]any{"research_points": defaultResearchPoints("")})
	}

	prompt := s.prompts.BuildCompanyResearchPrompt(companyName)

	response, err := s.gemini.GenerateText(ctx, prompt, ResearchGenerationConfig)
	if err != nil {
		return models.Fallback(
			map[string]any{"research_points": defaultResearchPoints(companyName)},
			"Using default research points",
		)
	}

	candidate, found := ExtractJSON(response, ArrayShape)
	if found {
		if parsed, err := ParseModelJSON(candidate); err == nil {
			if points := stringList(parsed); len(points) > 0 {
				out := make([]any, 0, len(points))
				for _, p := range points {
					out = append(out, p)
				}
				return models.Succeed(map[string]any{"research_points": out})
			}
		}
	}

	return models.Fallback(
		map[string]any{"research_points": defaultResearchPoints(companyName)},
		"Using default research points",
	)
}

// PrepareMaterials bundles the question set with company research.
func (s *interviewService) PrepareMaterials(ctx context.Context, job models.JobDetails) models.Outcome {
	questions := s.GenerateQuestions(ctx, job)
	if !questions.Success {
		return questions
	}

	research := s.CompanyResearch(ctx, job.CompanyName)

	data := map[string]any{
		"interview_data":   questions.Data["interview_data"],
		"company_research": research.Data["research_points"],
	}
	if questions.Note != "" {
		return models.Fallback(data, questions.Note)
	}
	return models.Succeed(data)
}

func stringList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, el := range list {
		if str, ok := el.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

func headOrDefault(items []string, n int, fallback string) []any {
	if len(items) == 0 {
		return []any{fallback}
	}
	if len(items) > n {
		items = items[:n]
	}
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

func joinOrNone(items []string, limit int) string {
	if len(items) == 0 {
		return "None specified"
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}
