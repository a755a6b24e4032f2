package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"hxndev/resume-copilot/internal/models"
)

// MaxSkillsPerRequest caps how many skills one recommendations request may
// carry; the overflow is dropped with a note rather than rejected.
const skillTruncationMessage = "Only showing recommendations for the first %d skills out of %d due to system limitations."

type LearningService interface {
	Recommendations(ctx context.Context, skills []string) models.Outcome
	DetailedPlan(ctx context.Context, skill string) models.Outcome
}

type learningService struct {
	gemini  GeminiService
	prompts *PromptBuilder
}

func NewLearningService(gemini GeminiService) LearningService {
	return &learningService{
		gemini:  gemini,
		prompts: NewPromptBuilder(),
	}
}

// generateSearchURL synthesizes a platform search URL for a resource whose
// link the model omitted or left as a bare domain.
func generateSearchURL(title, platform string) string {
	query := strings.ReplaceAll(title, " ", "+")

	switch p := strings.ToLower(platform); {
	case strings.Contains(p, "youtube"):
		return "https://www.youtube.com/results?search_query=" + query
	case strings.Contains(p, "udemy"):
		return "https://www.udemy.com/courses/search/?q=" + query
	case strings.Contains(p, "coursera"):
		return "https://www.coursera.org/search?query=" + query
	case strings.Contains(p, "pluralsight"):
		return "https://www.pluralsight.com/search?q=" + query
	case strings.Contains(p, "medium"):
		return "https://medium.com/search?q=" + query
	}
	return "https://www.google.com/search?q=" + query
}

// bareDomains are placeholder links models emit instead of a usable URL; they
// get replaced by synthesized search URLs.
var bareDomains = map[string]bool{
	"coursera.org":       true,
	"udemy.com":          true,
	"pluralsight.com":    true,
	"medium.com":         true,
	"tutorialspoint.com": true,
	"w3schools.com":      true,
	"youtube.com":        true,
}

func courseSchema() Schema {
	return Schema{
		"title":      {Kind: KindString, Default: "Recommended Course"},
		"platform":   {Kind: KindString, Default: "Online Learning Platform"},
		"url":        {Kind: KindString},
		"is_free":    {Kind: KindBool, Default: false},
		"difficulty": {Kind: KindString, Default: "Intermediate"},
	}
}

func articleSchema() Schema {
	return Schema{
		"title":  {Kind: KindString, Default: "Recommended Article"},
		"source": {Kind: KindString, Default: "Technical Blog"},
		"url":    {Kind: KindString},
	}
}

func videoSchema() Schema {
	return Schema{
		"title":    {Kind: KindString, Default: "Recommended Video"},
		"creator":  {Kind: KindString, Default: "Educational Channel"},
		"platform": {Kind: KindString, Default: "YouTube"},
		"url":      {Kind: KindString},
	}
}

func recommendationSchema(skills []string) Schema {
	return Schema{
		"skill": {Kind: KindString, Default: func(i int) any {
			if i < len(skills) {
				return skills[i]
			}
			return "Unknown skill"
		}},
		"courses":       {Kind: KindObjectList, Elem: courseSchema()},
		"articles":      {Kind: KindObjectList, Elem: articleSchema()},
		"videos":        {Kind: KindObjectList, Elem: videoSchema()},
		"learning_path": {Kind: KindString, Default: "Start with fundamentals, practice with projects, advance to complex applications."},
	}
}

// Recommendations generates learning resources for up to 5 skills. Skill
// lists beyond the cap are truncated, not rejected; the response carries a
// truncation note so the caller can tell.
func (s *learningService) Recommendations(ctx context.Context, skills []string) models.Outcome {
	if len(skills) == 0 {
		return models.Fail("No skills provided")
	}

	originalCount := len(skills)
	log.Printf("🔄 Generating learning recommendations for %d skills", originalCount)

	truncated := false
	if len(skills) > MaxSkillsPerRequest {
		log.Printf("⚠️ Truncating skills list from %d to %d", len(skills), MaxSkillsPerRequest)
		skills = skills[:MaxSkillsPerRequest]
		truncated = true
	}

	prompt := s.prompts.BuildLearningRecommendationsPrompt(skills)

	response, err := s.gemini.GenerateText(ctx, prompt, DefaultGenerationConfig)
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return models.Fail("No response from AI model")
		}
		return models.Fail("Error generating learning recommendations: %v", err)
	}

	candidate, found := ExtractJSON(response, ObjectShape)
	if !found {
		return models.Fail("Invalid response format")
	}

	parsed, err := ParseModelJSON(candidate)
	if err != nil {
		log.Printf("❌ Recommendations parsing error: %v, offending text: %s", err, Excerpt(candidate))
		outcome := models.Fail("Could not parse AI response as JSON: %v", err)
		outcome.Data = map[string]any{"raw_response": Excerpt(response)}
		return outcome
	}

	body, ok := parsed.(map[string]any)
	if !ok {
		return models.Fail("Invalid response structure")
	}
	if _, present := body["recommendations"]; !present {
		return models.Fail("Invalid response structure")
	}

	schema := Schema{"recommendations": {Kind: KindObjectList, Elem: recommendationSchema(skills)}}
	normalized := schema.Normalize(body)
	recommendations := normalized["recommendations"].([]any)

	for _, el := range recommendations {
		rec := el.(map[string]any)
		fillResourceURLs(rec["courses"], "platform", "")
		fillResourceURLs(rec["articles"], "source", "")
		fillResourceURLs(rec["videos"], "", "YouTube")
	}

	data := map[string]any{"recommendations": recommendations}
	if truncated {
		data["truncated"] = true
		data["original_count"] = originalCount
		data["message"] = fmt.Sprintf(skillTruncationMessage, MaxSkillsPerRequest, originalCount)
	}
	return models.Succeed(data)
}

// fillResourceURLs replaces missing or bare-domain URLs with synthesized
// search URLs. platformKey names the map field holding the platform; when
// empty, fixedPlatform is used instead.
func fillResourceURLs(v any, platformKey, fixedPlatform string) {
	list, ok := v.([]any)
	if !ok {
		return
	}
	for _, el := range list {
		resource, ok := el.(map[string]any)
		if !ok {
			continue
		}
		current, _ := resource["url"].(string)
		if current != "" && !bareDomains[current] {
			continue
		}
		title, _ := resource["title"].(string)
		platform := fixedPlatform
		if platformKey != "" {
			platform, _ = resource[platformKey].(string)
		}
		resource["url"] = generateSearchURL(title, platform)
	}
}

func planResourceSchema() Schema {
	return Schema{
		"type":        {Kind: KindString, Default: "Resource"},
		"title":       {Kind: KindString, Default: "Learning Resource"},
		"source":      {Kind: KindString, Default: "Provider"},
		"description": {Kind: KindString, Default: "Resource description"},
		"url":         {Kind: KindString},
	}
}

func planLevelSchema() Schema {
	return Schema{
		"level":          {Kind: KindString, Default: "Skill Level"},
		"description":    {Kind: KindString, Default: "Level description"},
		"key_concepts":   {Kind: KindStringList},
		"resources":      {Kind: KindObjectList, Elem: planResourceSchema()},
		"projects":       {Kind: KindStringList},
		"estimated_time": {Kind: KindString, Default: "1-3 months"},
	}
}

// defaultPlanLevels is the full three-level roadmap substituted when the model
// omitted the levels array entirely.
func defaultPlanLevels(skill string) []any {
	return []any{
		map[string]any{
			"level":        "Beginner",
			"description":  fmt.Sprintf("Introduction to %s", skill),
			"key_concepts": []any{"Basic concepts"},
			"resources": []any{map[string]any{
				"type":        "Tutorial",
				"title":       "Getting Started",
				"source":      "Official Documentation",
				"description": "Introduction to the fundamentals",
				"url":         generateSearchURL(fmt.Sprintf("Getting Started %s tutorial", skill), ""),
			}},
			"projects":       []any{"Simple practice project"},
			"estimated_time": "2-4 weeks",
		},
		map[string]any{
			"level":        "Intermediate",
			"description":  fmt.Sprintf("Building on %s fundamentals", skill),
			"key_concepts": []any{"Intermediate concepts"},
			"resources": []any{map[string]any{
				"type":        "Course",
				"title":       "Intermediate Skills",
				"source":      "Online Platform",
				"description": "Developing more advanced knowledge",
				"url":         generateSearchURL(fmt.Sprintf("Intermediate %s course", skill), ""),
			}},
			"projects":       []any{"More complex project"},
			"estimated_time": "1-3 months",
		},
		map[string]any{
			"level":        "Advanced",
			"description":  fmt.Sprintf("Mastering %s", skill),
			"key_concepts": []any{"Advanced concepts"},
			"resources": []any{map[string]any{
				"type":        "Book",
				"title":       "Advanced Techniques",
				"source":      "Expert Author",
				"description": "In-depth coverage of advanced topics",
				"url":         generateSearchURL(fmt.Sprintf("Advanced %s book", skill), ""),
			}},
			"projects":       []any{"Comprehensive real-world project"},
			"estimated_time": "3-6 months",
		},
	}
}

// DetailedPlan generates a three-level learning roadmap for a single skill.
func (s *learningService) DetailedPlan(ctx context.Context, skill string) models.Outcome {
	log.Printf("🔄 Generating detailed learning plan for: %s", skill)

	prompt := s.prompts.BuildLearningPlanPrompt(skill)

	response, err := s.gemini.GenerateText(ctx, prompt, DefaultGenerationConfig)
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return models.Fail("No response from AI model")
		}
		return models.Fail("Error generating detailed learning plan: %v", err)
	}

	candidate, found := ExtractJSON(response, ObjectShape)
	if !found {
		return models.Fail("Invalid response format")
	}

	parsed, err := ParseModelJSON(candidate)
	if err != nil {
		log.Printf("❌ Learning plan parsing error: %v, offending text: %s", err, Excerpt(candidate))
		outcome := models.Fail("Could not parse AI response as JSON: %v", err)
		outcome.Data = map[string]any{"raw_response": Excerpt(response)}
		return outcome
	}

	body, ok := parsed.(map[string]any)
	if !ok {
		return models.Fail("Invalid learning plan structure")
	}

	planSchema := Schema{
		"skill":    {Kind: KindString, Default: skill},
		"overview": {Kind: KindString, Default: fmt.Sprintf("A comprehensive learning path for mastering %s", skill)},
	}
	plan := planSchema.Normalize(body)

	if _, hasLevels := plan["levels"].([]any); !hasLevels {
		plan["levels"] = defaultPlanLevels(skill)
	} else {
		levelSchema := Schema{"levels": {Kind: KindObjectList, Elem: planLevelSchema()}}
		plan = levelSchema.normalizeMap(plan, 0)
		for _, el := range plan["levels"].([]any) {
			level := el.(map[string]any)
			fillPlanResourceURLs(level["resources"])
		}
	}

	return models.Succeed(map[string]any{"learning_plan": plan})
}

// fillPlanResourceURLs synthesizes missing resource links keyed on resource
// type: courses and tutorials search the platform itself, books go through a
// general search, documentation through the source site.
func fillPlanResourceURLs(v any) {
	list, ok := v.([]any)
	if !ok {
		return
	}
	for _, el := range list {
		resource, ok := el.(map[string]any)
		if !ok {
			continue
		}
		if current, _ := resource["url"].(string); current != "" {
			continue
		}
		title, _ := resource["title"].(string)
		source, _ := resource["source"].(string)
		resourceType, _ := resource["type"].(string)

		switch t := strings.ToLower(resourceType); {
		case strings.Contains(t, "course"):
			resource["url"] = generateSearchURL(fmt.Sprintf("%s %s course", title, source), source)
		case strings.Contains(t, "book"):
			resource["url"] = generateSearchURL(fmt.Sprintf("%s %s book", title, source), "Amazon")
		case strings.Contains(t, "tutorial"):
			resource["url"] = generateSearchURL(fmt.Sprintf("%s %s tutorial", title, source), source)
		case strings.Contains(t, "documentation"):
			resource["url"] = generateSearchURL(fmt.Sprintf("%s %s documentation", title, source), source)
		default:
			resource["url"] = generateSearchURL(fmt.Sprintf("%s %s", title, source), source)
		}
	}
}
