package models

// InterviewQuestion is one generated question, echoed back by the caller when
// submitting answers for evaluation.
type InterviewQuestion struct {
	ID         int      `json:"id"`
	Question   string   `json:"question"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	KeyPoints  []string `json:"key_points"`
	Importance string   `json:"importance"`
}

// QuestionAnswer pairs a question with the candidate's answer for one mock
// interview round.
type QuestionAnswer struct {
	Question InterviewQuestion `json:"question"`
	Answer   string            `json:"answer"`
}
