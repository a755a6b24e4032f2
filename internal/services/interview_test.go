package services

import (
	"context"
	"strings"
	"testing"

	"hxndev/resume-copilot/internal/models"
)

func TestGenerateQuestionsSuccess(t *testing.T) {
	gemini := scriptedGemini(reply(`{
    "questions": [
        {"question": "How do you design a schema?", "category": "Technical Skills", "difficulty": "Hard"},
        {}
    ],
    "preparation_tips": ["Research the company"]
}`))

	interview := NewInterviewService(gemini)
	job := models.JobDetails{JobTitle: "Data Engineer", CompanyName: "Acme"}

	outcome := interview.GenerateQuestions(context.Background(), job)

	if !outcome.Success {
		t.Fatalf("Expected success, got: %s", outcome.Err)
	}
	if outcome.Note != "" {
		t.Errorf("Expected no fallback note, got: %q", outcome.Note)
	}

	data := outcome.Data["interview_data"].(map[string]any)
	if data["job_title"] != "Data Engineer" || data["company_name"] != "Acme" {
		t.Errorf("Expected job context attached, got %v / %v", data["job_title"], data["company_name"])
	}

	questions := data["questions"].([]any)
	if len(questions) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(questions))
	}

	first := questions[0].(map[string]any)
	if first["id"].(float64) != 1 {
		t.Errorf("Expected id 1, got %v", first["id"])
	}
	if first["question"] != "How do you design a schema?" {
		t.Errorf("Unexpected question: %v", first["question"])
	}

	// The second, empty question is fully back-filled.
	second := questions[1].(map[string]any)
	if second["id"].(float64) != 2 {
		t.Errorf("Expected id 2, got %v", second["id"])
	}
	if !strings.Contains(second["question"].(string), "Question 2 about Data Engineer") {
		t.Errorf("Expected numbered default question, got %v", second["question"])
	}
	if points := second["key_points"].([]any); len(points) == 0 {
		t.Error("Expected default key points")
	}
}

func TestGenerateQuestionsFallbackOnUnparseable(t *testing.T) {
	gemini := scriptedGemini(reply(`{"questions": [1}`))

	interview := NewInterviewService(gemini)
	outcome := interview.GenerateQuestions(context.Background(), models.JobDetails{JobTitle: "Engineer", CompanyName: "Acme"})

	if !outcome.Success {
		t.Fatalf("Expected fallback success, got: %s", outcome.Err)
	}
	if outcome.Note != "Using fallback questions due to processing error" {
		t.Errorf("Unexpected note: %q", outcome.Note)
	}

	data := outcome.Data["interview_data"].(map[string]any)
	questions := data["questions"].([]any)
	if len(questions) != 2 {
		t.Fatalf("Expected 2 fallback questions, got %d", len(questions))
	}
	if !strings.Contains(questions[1].(map[string]any)["question"].(string), "Acme") {
		t.Error("Fallback questions should mention the company")
	}
}

func TestGenerateQuestionsEmptyResponse(t *testing.T) {
	gemini := scriptedGemini(replyErr(ErrEmptyResponse))

	interview := NewInterviewService(gemini)
	outcome := interview.GenerateQuestions(context.Background(), models.JobDetails{JobTitle: "Engineer"})

	if outcome.Success {
		t.Fatal("Expected failure")
	}
	if outcome.Err != "No response from AI model" {
		t.Errorf("Unexpected error: %s", outcome.Err)
	}
}

func TestEvaluateAnswersAggregation(t *testing.T) {
	gemini := scriptedGemini(
		reply(`{"score": 8, "feedback": "Solid answer", "strengths": ["Clear structure"], "areas_for_improvement": ["More metrics"]}`),
		reply(`{"score": 6, "feedback": "Decent", "strengths": ["Honest"], "areas_for_improvement": ["Too vague"]}`),
		reply(`{"overall_feedback": "Good baseline", "strengths": ["Communication"], "areas_for_improvement": ["Depth"], "next_steps": ["Mock interviews"]}`),
	)

	interview := NewInterviewService(gemini)
	qas := []models.QuestionAnswer{
		{
			Question: models.InterviewQuestion{ID: 1, Question: "Q1", Category: "Technical Skills", Difficulty: "Hard"},
			Answer:   "I would use partitioned tables.",
		},
		{
			Question: models.InterviewQuestion{ID: 2, Question: "Q2", Category: "Behavioral", Difficulty: "Medium"},
			Answer:   "I once led a migration.",
		},
	}

	outcome := interview.EvaluateAnswers(context.Background(), qas)

	if !outcome.Success {
		t.Fatalf("Expected success, got: %s", outcome.Err)
	}

	if score := outcome.Data["overall_score"].(float64); score != 7 {
		t.Errorf("Expected overall score 7, got %v", score)
	}
	if level := outcome.Data["readiness_level"]; level != "Medium" {
		t.Errorf("Expected Medium readiness, got %v", level)
	}
	if outcome.Data["overall_feedback"] != "Good baseline" {
		t.Errorf("Unexpected overall feedback: %v", outcome.Data["overall_feedback"])
	}

	evaluations := outcome.Data["evaluations"].([]any)
	if len(evaluations) != 2 {
		t.Fatalf("Expected 2 evaluations, got %d", len(evaluations))
	}
	first := evaluations[0].(map[string]any)
	if first["question_id"] != 1 || first["category"] != "Technical Skills" {
		t.Errorf("Evaluation entry should carry question context: %v", first)
	}
	if first["answer"] != "I would use partitioned tables." {
		t.Errorf("Evaluation entry should echo the answer: %v", first["answer"])
	}
}

func TestEvaluateAnswersReadinessLevels(t *testing.T) {
	tests := []struct {
		score string
		level string
	}{
		{"9", "High"},
		{"7", "Medium"},
		{"3", "Low"},
	}

	for _, tt := range tests {
		gemini := scriptedGemini(
			reply(`{"score": `+tt.score+`, "feedback": "x"}`),
			reply(`{"overall_feedback": "y", "strengths": ["a"], "areas_for_improvement": ["b"], "next_steps": ["c"]}`),
		)
		interview := NewInterviewService(gemini)

		qas := []models.QuestionAnswer{{
			Question: models.InterviewQuestion{ID: 1, Question: "Q"},
			Answer:   "An answer",
		}}

		outcome := interview.EvaluateAnswers(context.Background(), qas)
		if !outcome.Success {
			t.Fatalf("score %s: expected success, got %s", tt.score, outcome.Err)
		}
		if got := outcome.Data["readiness_level"]; got != tt.level {
			t.Errorf("score %s: expected %s readiness, got %v", tt.score, tt.level, got)
		}
	}
}

func TestEvaluateAnswersNeutralOnEvaluationFailure(t *testing.T) {
	gemini := scriptedGemini(
		replyErr(ErrEmptyResponse),
		reply(`{"overall_feedback": "y", "strengths": ["a"], "areas_for_improvement": ["b"], "next_steps": ["c"]}`),
	)
	interview := NewInterviewService(gemini)

	qas := []models.QuestionAnswer{{
		Question: models.InterviewQuestion{ID: 1, Question: "Q"},
		Answer:   "An answer",
	}}

	outcome := interview.EvaluateAnswers(context.Background(), qas)
	if !outcome.Success {
		t.Fatalf("Expected success, got: %s", outcome.Err)
	}

	evaluation := outcome.Data["evaluations"].([]any)[0].(map[string]any)["evaluation"].(map[string]any)
	if evaluation["score"].(float64) != 5 {
		t.Errorf("Expected neutral score 5, got %v", evaluation["score"])
	}
	if !strings.Contains(evaluation["feedback"].(string), "Unable to evaluate") {
		t.Errorf("Expected neutral feedback, got %v", evaluation["feedback"])
	}
}

func TestEvaluateAnswersEmptyInput(t *testing.T) {
	interview := NewInterviewService(scriptedGemini())

	outcome := interview.EvaluateAnswers(context.Background(), nil)
	if outcome.Success {
		t.Fatal("Expected failure for empty input")
	}
	if outcome.Err != "No valid question-answer pairs provided" {
		t.Errorf("Unexpected error: %s", outcome.Err)
	}
}

func TestCompanyResearchSuccess(t *testing.T) {
	gemini := scriptedGemini(reply(`["Study their product line", "Read the latest earnings call"]`))

	interview := NewInterviewService(gemini)
	outcome := interview.CompanyResearch(context.Background(), "Acme")

	if !outcome.Success {
		t.Fatalf("Expected success, got: %s", outcome.Err)
	}
	points := outcome.Data["research_points"].([]any)
	if len(points) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(points))
	}
	if points[0] != "Study their product line" {
		t.Errorf("Unexpected point: %v", points[0])
	}
}

func TestCompanyResearchFallsBackOnFailure(t *testing.T) {
	gemini := scriptedGemini(replyErr(ErrEmptyResponse))

	interview := NewInterviewService(gemini)
	outcome := interview.CompanyResearch(context.Background(), "Acme")

	if !outcome.Success {
		t.Fatal("Company research should never hard-fail")
	}
	points := outcome.Data["research_points"].([]any)
	if len(points) == 0 {
		t.Fatal("Expected default research points")
	}
	if !strings.Contains(points[0].(string), "Acme") {
		t.Errorf("Default points should mention the company, got %v", points[0])
	}
}

func TestCompanyResearchEmptyCompanyName(t *testing.T) {
	interview := NewInterviewService(scriptedGemini())

	outcome := interview.CompanyResearch(context.Background(), "")
	if !outcome.Success {
		t.Fatal("Expected generic research points for empty company")
	}
	points := outcome.Data["research_points"].([]any)
	if len(points) == 0 {
		t.Fatal("Expected generic points")
	}
}

func TestPrepareMaterialsBundle(t *testing.T) {
	gemini := scriptedGemini(
		reply(`{"questions": [{"question": "Q1"}]}`),
		reply(`["Check their roadmap"]`),
	)

	interview := NewInterviewService(gemini)
	job := models.JobDetails{JobTitle: "Engineer", CompanyName: "Acme"}

	outcome := interview.PrepareMaterials(context.Background(), job)
	if !outcome.Success {
		t.Fatalf("Expected success, got: %s", outcome.Err)
	}

	if _, ok := outcome.Data["interview_data"].(map[string]any); !ok {
		t.Error("Expected interview_data in the bundle")
	}
	research := outcome.Data["company_research"].([]any)
	if len(research) != 1 || research[0] != "Check their roadmap" {
		t.Errorf("Unexpected research bundle: %v", research)
	}
}
