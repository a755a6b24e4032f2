package services

import (
	"strings"
	"testing"
)

func TestNormalizeEmptyObjectIsSchemaComplete(t *testing.T) {
	result := matchJobSchema().Normalize(map[string]any{})

	if result["job_title"] != "Position" {
		t.Errorf("Expected default job_title, got %v", result["job_title"])
	}
	if result["company_name"] != "Company" {
		t.Errorf("Expected default company_name, got %v", result["company_name"])
	}
	if result["match_percentage"].(float64) != 50 {
		t.Errorf("Expected default match_percentage 50, got %v", result["match_percentage"])
	}

	recs := result["recommendations"].([]any)
	if len(recs) != 3 {
		t.Errorf("Expected 3 default recommendations, got %d", len(recs))
	}

	if _, ok := result["matching_skills"].([]any); !ok {
		t.Errorf("Expected matching_skills to be a list, got %T", result["matching_skills"])
	}
}

func TestNormalizeOutOfRangeNumberReplaced(t *testing.T) {
	result := matchJobSchema().Normalize(map[string]any{"match_percentage": float64(150)})

	// Replaced with the default, never clamped to the boundary.
	if result["match_percentage"].(float64) != 50 {
		t.Errorf("Expected out-of-range value replaced with 50, got %v", result["match_percentage"])
	}

	result = atsAnalysisSchema().Normalize(map[string]any{"ats_score": float64(-5)})
	if result["ats_score"].(float64) != 70 {
		t.Errorf("Expected out-of-range ats_score replaced with 70, got %v", result["ats_score"])
	}
}

func TestNormalizeInRangeNumberKept(t *testing.T) {
	result := matchJobSchema().Normalize(map[string]any{"match_percentage": float64(85)})
	if result["match_percentage"].(float64) != 85 {
		t.Errorf("Expected 85 kept, got %v", result["match_percentage"])
	}
}

func TestNormalizeStringBooleanCoercion(t *testing.T) {
	result := courseSchema().Normalize(map[string]any{"is_free": "true"})
	if v, ok := result["is_free"].(bool); !ok || !v {
		t.Errorf("Expected string 'true' coerced to boolean, got %T %v", result["is_free"], result["is_free"])
	}

	result = courseSchema().Normalize(map[string]any{"is_free": "False"})
	if v, ok := result["is_free"].(bool); !ok || v {
		t.Errorf("Expected string 'False' coerced to boolean false, got %v", result["is_free"])
	}

	result = courseSchema().Normalize(map[string]any{"is_free": "maybe"})
	if v, ok := result["is_free"].(bool); !ok || v {
		t.Errorf("Expected unrecognized value to take the default, got %v", result["is_free"])
	}
}

func TestNormalizeStringListFiltersNonStrings(t *testing.T) {
	result := matchJobSchema().Normalize(map[string]any{
		"matching_skills": []any{"Go", 42, "", "SQL"},
	})

	skills := result["matching_skills"].([]any)
	if len(skills) != 2 {
		t.Fatalf("Expected 2 kept skills, got %d: %v", len(skills), skills)
	}
	if skills[0] != "Go" || skills[1] != "SQL" {
		t.Errorf("Unexpected skills: %v", skills)
	}
}

func TestNormalizeMinLenReplacesShortLists(t *testing.T) {
	result := matchJobSchema().Normalize(map[string]any{
		"recommendations": []any{"Only one"},
	})

	recs := result["recommendations"].([]any)
	if len(recs) != 3 {
		t.Errorf("Expected short list replaced by the 3-item default, got %d", len(recs))
	}
}

func TestNormalizeIndexedDefaults(t *testing.T) {
	schema := Schema{"questions": {Kind: KindObjectList, Elem: questionSchema("Backend Engineer")}}

	result := schema.Normalize(map[string]any{
		"questions": []any{map[string]any{}, map[string]any{}},
	})

	questions := result["questions"].([]any)
	first := questions[0].(map[string]any)
	second := questions[1].(map[string]any)

	if first["id"].(float64) != 1 || second["id"].(float64) != 2 {
		t.Errorf("Expected ids numbered by position, got %v and %v", first["id"], second["id"])
	}
	if !strings.Contains(first["question"].(string), "Question 1 about Backend Engineer") {
		t.Errorf("Expected numbered question default, got %v", first["question"])
	}
	if second["category"] != "General" {
		t.Errorf("Expected default category, got %v", second["category"])
	}
}

func TestNormalizeNestedObject(t *testing.T) {
	result := atsOptimizeSchema().Normalize(map[string]any{
		"keyword_analysis": map[string]any{"job_keywords": []any{"Go"}},
	})

	analysis := result["keyword_analysis"].(map[string]any)
	if _, ok := analysis["missing_keywords"].([]any); !ok {
		t.Errorf("Expected nested missing_keywords back-filled, got %T", analysis["missing_keywords"])
	}
}

func TestNormalizeNonMapInput(t *testing.T) {
	result := atsAnalysisSchema().Normalize("not an object")
	if result["ats_score"].(float64) != 70 {
		t.Errorf("Expected full defaults for non-map input, got %v", result["ats_score"])
	}

	result = atsAnalysisSchema().Normalize(nil)
	if result["summary"] == "" {
		t.Error("Expected default summary for nil input")
	}
}
