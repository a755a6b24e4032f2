package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"hxndev/resume-copilot/internal/models"
)

// Per-field character ceilings. Applied before interpolation so every prompt
// stays inside the model's token limit regardless of caller input size.
const (
	MaxResumeContentLength    = 5000
	MaxJobDescriptionLength   = 1500
	MaxOptimizeJobDescription = 2000
	MaxInterviewJobDesc       = 1000
	MaxSkillsPerRequest       = 5

	// TruncationMarker is appended to truncated fields so the model is not
	// misled into thinking the content ends naturally.
	TruncationMarker = "..."
)

// Truncate enforces a per-field ceiling, marking the cut visibly. The cut
// backs off to a rune boundary so multi-byte input never leaves an invalid
// tail in the prompt.
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + TruncationMarker
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildMatchAnalysisPrompt assembles the resume-vs-jobs analysis prompt. Job
// links must already be shortened by the caller; the builder is a pure
// function of its inputs.
func (pb *PromptBuilder) BuildMatchAnalysisPrompt(resumeContent string, jobs []models.JobDetails, customInstructions string) string {
	jobsText := make([]string, 0, len(jobs))
	for i, job := range jobs {
		var b strings.Builder
		fmt.Fprintf(&b, "Job #%d:\n", i+1)
		fmt.Fprintf(&b, "Title: %s\n", orDefault(job.JobTitle, "Unknown Position"))
		fmt.Fprintf(&b, "Company: %s\n", orDefault(job.CompanyName, "Unknown Company"))
		if job.JobDescription != "" {
			fmt.Fprintf(&b, "Description: %s\n", Truncate(job.JobDescription, MaxJobDescriptionLength))
		}
		if job.JobLink != "" {
			fmt.Fprintf(&b, "URL: %s\n", job.JobLink)
		}
		jobsText = append(jobsText, b.String())
	}

	prompt := fmt.Sprintf(`You are a professional resume analyzer. Analyze this resume content against the job details provided.

Resume content to analyze:
%s

Job details to analyze against:
%s

IMPORTANT INSTRUCTIONS:
1. For each job, analyze what skills and qualifications are required based on the job description.
2. Compare these requirements against the resume content.
3. Provide a match percentage based on how well the resume matches the job requirements.
4. Identify matching skills present in the resume that align with the job.
5. Identify skills mentioned in the job that might be missing or need improvement in the resume.
6. Provide at least 3 specific, actionable recommendations for each job.
7. For matches above 75%%, focus on how to excel in the role rather than just qualify.
8. Recommendations should be tailored to the specific job and company.

Return ONLY a JSON object with this exact structure:
{
    "jobs": [
        {
            "job_title": "<job title from input>",
            "company_name": "<company name from input>",
            "job_link": "<job link from input if available>",
            "match_percentage": <number 0-100>,
            "matching_skills": [<list of matching skills>],
            "missing_skills": [<list of missing skills>],
            "job_description": "<job description from input>",
            "recommendations": [
                "Specific recommendation 1",
                "Specific recommendation 2",
                "Specific recommendation 3"
            ]
        }
    ]
}`,
		Truncate(resumeContent, MaxResumeContentLength),
		strings.Join(jobsText, "\n\n"))

	return withCustomInstructions(prompt, customInstructions)
}

// BuildResumeReviewPrompt assembles the detailed review prompt.
func (pb *PromptBuilder) BuildResumeReviewPrompt(resumeContent, jobDescription, customInstructions string) string {
	prompt := fmt.Sprintf(`You are a professional resume reviewer and career coach. Review this resume against the job description
and provide detailed, actionable feedback to help improve the resume.

Resume content:
%s

Job description:
%s

IMPORTANT: Your response must be a valid JSON object with the exact structure shown below.
Do not include any explanations, markdown, or text outside of the JSON object.

JSON structure to use:
{
    "strengths": [
        "Detailed strength point 1",
        "Detailed strength point 2",
        "Detailed strength point 3"
    ],
    "weaknesses": [
        "Area for improvement 1",
        "Area for improvement 2",
        "Area for improvement 3"
    ],
    "improvement_suggestions": [
        {
            "section": "Format",
            "suggestions": ["Specific suggestion 1", "Specific suggestion 2"]
        },
        {
            "section": "Content",
            "suggestions": ["Specific suggestion 1", "Specific suggestion 2"]
        },
        {
            "section": "Skills",
            "suggestions": ["Specific suggestion 1", "Specific suggestion 2"]
        },
        {
            "section": "Experience",
            "suggestions": ["Specific suggestion 1", "Specific suggestion 2"]
        },
        {
            "section": "Keywords",
            "suggestions": ["Specific suggestion 1", "Specific suggestion 2"]
        }
    ]
}`,
		Truncate(resumeContent, MaxResumeContentLength),
		Truncate(jobDescription, MaxJobDescriptionLength))

	return withCustomInstructions(prompt, customInstructions)
}

// BuildATSCompatibilityPrompt assembles the ATS scoring prompt.
func (pb *PromptBuilder) BuildATSCompatibilityPrompt(resumeContent string) string {
	return fmt.Sprintf(`You are an Applicant Tracking System (ATS) expert. Analyze this resume for ATS compatibility.

Resume content:
%s

Evaluate this resume for ATS compatibility. Consider the following factors:
1. Format (is it simple and clean for ATS parsing?)
2. Use of tables, columns, graphics that might confuse ATS
3. Use of standard section headings
4. Keyword optimization
5. File format compatibility
6. Font and formatting choices
7. Use of special characters or bullet points that might cause issues
8. Header/footer placement

Return ONLY a JSON object with this exact structure:
{
    "ats_score": <number 0-100>,
    "summary": "<short summary of ATS compatibility>",
    "format_issues": [
        "<issue 1>",
        "<issue 2>"
    ],
    "content_issues": [
        "<issue 1>",
        "<issue 2>"
    ],
    "keyword_issues": [
        "<issue 1>",
        "<issue 2>"
    ],
    "improvement_suggestions": [
        "<suggestion 1>",
        "<suggestion 2>",
        "<suggestion 3>"
    ],
    "good_practices": [
        "<good practice 1>",
        "<good practice 2>"
    ]
}`, Truncate(resumeContent, MaxResumeContentLength))
}

// BuildATSOptimizationPrompt assembles the section-rewriting prompt.
func (pb *PromptBuilder) BuildATSOptimizationPrompt(resumeContent, jobDescription string) string {
	return fmt.Sprintf(`You are an ATS optimization expert. Generate optimized resume sections based on this job description.

Resume content:
%s

Job description:
%s

Analyze the job description and the current resume, then provide ATS-optimized versions of:
1. Professional Summary
2. Skills section
3. Suggested bullet points for most relevant experience

Make sure to:
- Incorporate relevant keywords from the job description
- Use industry-standard section headings
- Balance keyword optimization with readability
- Focus on quantifiable achievements
- Only use content that appears in the original resume (don't invent new experiences)

Return ONLY a JSON object with this exact structure:
{
    "professional_summary": "An optimized professional summary...",
    "skills_section": ["Skill 1", "Skill 2", "Skill 3"],
    "experience_bullets": ["Bullet point 1", "Bullet point 2", "Bullet point 3"],
    "keyword_analysis": {
        "job_keywords": ["Keyword 1", "Keyword 2"],
        "missing_keywords": ["Keyword 3", "Keyword 4"]
    }
}

Important: Use proper JSON formatting with double quotes around all strings and property names.`,
		Truncate(resumeContent, MaxResumeContentLength),
		Truncate(jobDescription, MaxOptimizeJobDescription))
}

// BuildCoverLetterPrompt assembles the cover letter prompt in the requested
// language.
func (pb *PromptBuilder) BuildCoverLetterPrompt(job models.JobDetails, customInstruction, language string) string {
	var ctx strings.Builder
	fmt.Fprintf(&ctx, "Job Title: %s\nCompany Name: %s\n", job.JobTitle, job.CompanyName)
	if job.JobDescription != "" {
		fmt.Fprintf(&ctx, "\nJob Description: %s\n", Truncate(job.JobDescription, MaxJobDescriptionLength))
	}
	if job.JobLink != "" {
		fmt.Fprintf(&ctx, "\nJob Posting URL: %s\n", job.JobLink)
	}

	prompt := fmt.Sprintf(`You are a professional cover letter writer. Create a compelling cover letter for a position.

Job Details:
%s

%s

Write a professional cover letter that:
1. Has a formal business letter format
2. Shows enthusiasm for the role and company
3. Mentions relevant skills for the position
4. Highlights leadership and team collaboration experience
5. Demonstrates problem-solving abilities and technical expertise
6. Includes:
   - Professional greeting
   - 3-4 strong paragraphs
   - Professional closing
   - Proper spacing and formatting

Keep the tone professional but enthusiastic. Focus on how the applicant's skills and experience
match the job requirements.`, ctx.String(), languageInstruction(language, "cover letter"))

	return withCustomInstructions(prompt, customInstruction)
}

// BuildMotivationalLetterPrompt assembles the motivational letter prompt.
func (pb *PromptBuilder) BuildMotivationalLetterPrompt(job models.JobDetails) string {
	var ctx strings.Builder
	fmt.Fprintf(&ctx, "Job Title: %s\n", job.JobTitle)
	if job.CompanyName != "" {
		fmt.Fprintf(&ctx, "Company Name: %s\n", job.CompanyName)
	}
	if strings.TrimSpace(job.JobDescription) != "" {
		fmt.Fprintf(&ctx, "\nThe job description is as follows:\n%s\n\nUse specific details from this job description in the letter.\n",
			Truncate(job.JobDescription, MaxJobDescriptionLength))
	}

	return fmt.Sprintf(`You are a professional career advisor helping a job applicant write a brief motivational letter.
Create a compelling motivational letter for the following position:

%s

The motivational letter should:
1. Explain why the candidate is interested in this position/company
2. Highlight their relevant skills and qualifications without listing their entire resume
3. Demonstrate understanding of the role and industry
4. Express enthusiasm and passion for the field
5. Explain what makes them a unique fit for this position
6. Include a professional opening and closing
7. Be 1-2 paragraphs in length
8. Have a confident but not arrogant tone

Focus on explaining motivation and fit rather than detailed work history.`, ctx.String())
}

// BuildEmailReplyPrompt assembles the email reply prompt with tone and
// language selectors.
func (pb *PromptBuilder) BuildEmailReplyPrompt(emailContent, replyTone, language string) string {
	return fmt.Sprintf(`You are a professional email writer. Create a well-crafted reply to the following email.

Original email:
%s

%s
%s

Your email reply should:
1. Include an appropriate greeting
2. Acknowledge the original email's content
3. Address all questions or requests from the original email
4. Be concise but thorough
5. Include a professional closing
6. Have proper formatting for a business email

IMPORTANT: If the original email is not clear or incomplete, make reasonable assumptions
to craft a helpful response, but note any areas where more information might be needed.`,
		Truncate(emailContent, MaxResumeContentLength),
		languageInstruction(language, "email reply"),
		toneInstruction(replyTone))
}

// BuildInterviewQuestionsPrompt assembles the 8-question generation prompt.
func (pb *PromptBuilder) BuildInterviewQuestionsPrompt(job models.JobDetails) string {
	var ctx strings.Builder
	fmt.Fprintf(&ctx, "Job Title: %s\nCompany Name: %s\n", job.JobTitle, job.CompanyName)
	if job.JobDescription != "" {
		fmt.Fprintf(&ctx, "Job Description: %s\n", Truncate(job.JobDescription, MaxInterviewJobDesc))
	}

	return fmt.Sprintf(`You are an expert interview coach preparing candidates for job interviews. Generate interview questions based on this job:

%s

Create a set of 8 interview questions that would likely be asked for this position, organized into these categories:
1. Technical Skills Questions (2 questions): Questions about technical abilities and hard skills required
2. Behavioral Questions (2 questions): Scenario-based questions about past experiences
3. Role-Specific Questions (2 questions): Questions unique to this particular role
4. Company/Industry Knowledge (1 question): Questions testing understanding of the company or industry
5. Problem-Solving Questions (1 question): Questions that assess analytical thinking

For each question, include:
- The actual question
- The category it belongs to
- Difficulty level (Easy, Medium, Hard)
- 2-3 key points that should be addressed in an ideal answer
- A brief note on why this question matters for this role

Return ONLY a JSON object with this exact structure:
{
    "questions": [
        {
            "id": 1,
            "question": "Question text",
            "category": "Technical Skills|Behavioral|Role-Specific|Company Knowledge|Problem-Solving",
            "difficulty": "Easy|Medium|Hard",
            "key_points": ["Key point 1", "Key point 2", "Key point 3"],
            "importance": "Why this question matters for this role"
        },
        // more questions...
    ],
    "preparation_tips": [
        "General tip 1 for this interview",
        "General tip 2 for this interview"
    ],
    "key_skills_to_emphasize": [
        "Skill 1",
        "Skill 2"
    ]
}

Ensure the JSON is properly formatted with exactly 8 questions total, distributed as specified across categories.
Use double quotes for all keys and string values. Ensure all arrays and objects are properly terminated with appropriate brackets and commas.`, ctx.String())
}

// BuildAnswerEvaluationPrompt assembles the per-answer evaluation prompt.
func (pb *PromptBuilder) BuildAnswerEvaluationPrompt(questionText, category string, keyPoints []string, answer string) string {
	points := make([]string, 0, len(keyPoints))
	for _, p := range keyPoints {
		points = append(points, "- "+p)
	}

	return fmt.Sprintf(`You are an expert interview coach evaluating a candidate's answer to an interview question.

Question: "%s"
Category: %s
Key points that should be addressed:
%s

Candidate's answer: "%s"

Evaluate the answer on a scale of 1-10 based on the following criteria:
1. How well it addresses the key points (60%%)
2. Clarity and conciseness (20%%)
3. Relevance to the question (20%%)

Provide a comprehensive analysis of the answer including:
1. Overall score (1-10)
2. Specific strengths (2-3 points)
3. Areas for improvement (2-3 points)
4. A sample strong answer for reference

Return ONLY a JSON object with this exact structure:
{
    "score": 7,
    "feedback": "Your overall analysis of the answer",
    "strengths": [
        "Strength 1",
        "Strength 2"
    ],
    "areas_for_improvement": [
        "Improvement 1",
        "Improvement 2"
    ],
    "sample_answer": "A sample strong answer to this question"
}`, questionText, category, strings.Join(points, "\n"), Truncate(answer, MaxResumeContentLength))
}

// BuildCompanyResearchPrompt assembles the research-points prompt.
func (pb *PromptBuilder) BuildCompanyResearchPrompt(companyName string) string {
	return fmt.Sprintf(`You are preparing a job candidate for an interview with %s.

Generate a list of 5-8 company research points that would be helpful for the candidate to investigate before the interview.

These points should help the candidate:
1. Understand the company's business model and products/services
2. Learn about the company's culture, values, and mission
3. Identify talking points that show interest in the company
4. Prepare for company-specific questions

Format your response as a JSON array of research points:
[
    "Research point 1",
    "Research point 2",
    "Research point 3",
    "Research point 4",
    "Research point 5"
]

Keep each point concise and actionable.`, companyName)
}

// BuildLearningRecommendationsPrompt assembles the multi-skill resource prompt.
// The caller caps the skills list at MaxSkillsPerRequest first.
func (pb *PromptBuilder) BuildLearningRecommendationsPrompt(skills []string) string {
	lines := make([]string, 0, len(skills))
	for _, skill := range skills {
		lines = append(lines, "- "+skill)
	}

	return fmt.Sprintf(`You are a career development advisor specializing in technical skills. Provide learning resources for these skills:

%s

For each skill, recommend:
1. 1-2 online courses (free or paid, with platform names)
2. 1-2 articles or tutorials (with website names)
3. 1-2 YouTube channels or specific videos
4. A brief learning path from beginner to advanced

Return ONLY a JSON object with this exact structure:
{
    "recommendations": [
        {
            "skill": "<skill name>",
            "courses": [
                {
                    "title": "<course title>",
                    "platform": "<platform name>",
                    "url": "<generic url to platform>",
                    "is_free": true,
                    "difficulty": "Beginner/Intermediate/Advanced"
                }
            ],
            "articles": [
                {
                    "title": "<article title>",
                    "source": "<website/source name>",
                    "url": "<generic url to source>"
                }
            ],
            "videos": [
                {
                    "title": "<video/channel title>",
                    "creator": "<creator name>",
                    "platform": "YouTube",
                    "url": "<generic url to youtube>"
                }
            ],
            "learning_path": "<brief learning path from beginner to advanced>"
        }
    ]
}

IMPORTANT:
- For URLs, provide specific URLs when possible
- If you don't know the exact URL, use the format: https://www.platform.com/search?q=title
- For YouTube videos: https://www.youtube.com/results?search_query=title
- For Coursera courses: https://www.coursera.org/search?query=title
- For Udemy courses: https://www.udemy.com/courses/search/?q=title
- Use double quotes for all JSON properties and string values
- Use true/false without quotes for boolean values`, strings.Join(lines, "\n"))
}

// BuildLearningPlanPrompt assembles the detailed three-level plan prompt.
func (pb *PromptBuilder) BuildLearningPlanPrompt(skill string) string {
	levelTemplate := `        {
            "level": "%s",
            "description": "<description of this level>",
            "key_concepts": ["<concept 1>", "<concept 2>"],
            "resources": [
                {
                    "type": "Course/Book/Documentation/Tutorial",
                    "title": "<title>",
                    "source": "<platform or author>",
                    "description": "<brief description>",
                    "url": "<search URL or direct link if known>"
                }
            ],
            "projects": ["<project 1>", "<project 2>"],
            "estimated_time": "<estimated time to %s>"
        }`

	levels := strings.Join([]string{
		fmt.Sprintf(levelTemplate, "Beginner", "reach next level"),
		fmt.Sprintf(levelTemplate, "Intermediate", "reach next level"),
		fmt.Sprintf(levelTemplate, "Advanced", "mastery"),
	}, ",\n")

	return fmt.Sprintf(`You are a technical education specialist. Create a comprehensive learning plan for this skill:

Skill: %s

Provide a detailed learning plan that includes:
1. A learning roadmap from beginner to expert level
2. Key concepts to master at each stage
3. Recommended projects to build for practice
4. Best resources for each level (courses, books, documentation)
5. Estimated time investment for each level

Return ONLY a JSON object with this exact structure:
{
    "skill": "%s",
    "overview": "<brief overview of the skill and its importance>",
    "levels": [
%s
    ]
}

IMPORTANT:
- For URLs, provide real URLs when possible. If you don't know the specific URL, use search URLs in this format:
  - For courses on Coursera: https://www.coursera.org/search?query=course+name
  - For books on Amazon: https://www.amazon.com/s?k=book+title+author
  - For YouTube videos: https://www.youtube.com/results?search_query=video+topic
- Use double quotes for all property names and string values in the JSON
- Ensure all arrays and objects are properly formatted`, skill, skill, levels)
}

func withCustomInstructions(prompt, custom string) string {
	if strings.TrimSpace(custom) == "" {
		return prompt
	}
	return prompt + "\n\nAdditional customization requirements:\n" + custom
}

func languageInstruction(code, artifact string) string {
	instructions := map[string]string{
		"en": "Write the %s in English.",
		"es": "Escribe el %s en español (Spanish).",
		"fr": "Écris le %s en français (French).",
		"de": "Schreibe das %s auf Deutsch (German).",
		"zh": "用中文写%s (Chinese).",
		"ja": "%sを日本語で書いてください (Japanese).",
		"pt": "Escreva o %s em português (Portuguese).",
		"ru": "Напишите %s на русском языке (Russian).",
		"ar": "اكتب %s باللغة العربية (Arabic).",
	}
	tmpl, ok := instructions[code]
	if !ok {
		tmpl = instructions["en"]
	}
	return fmt.Sprintf(tmpl, artifact)
}

func toneInstruction(tone string) string {
	instructions := map[string]string{
		"professional": "Keep the tone professional, clear, and straightforward.",
		"friendly":     "Keep the tone friendly and approachable while remaining professional.",
		"formal":       "Keep the tone formal and conservative, appropriate for official correspondence.",
	}
	if instruction, ok := instructions[tone]; ok {
		return instruction
	}
	return instructions["professional"]
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
