package services

import "fmt"

// DefaultPromptCharLimit bounds how much of the extracted text is sent to
// the model. Text beyond the limit is silently cut off to cap request size.
const DefaultPromptCharLimit = 15000

type PromptBuilder struct {
	charLimit  int
	targetRole string
}

func NewPromptBuilder(charLimit int, targetRole string) *PromptBuilder {
	if charLimit <= 0 {
		charLimit = DefaultPromptCharLimit
	}
	return &PromptBuilder{
		charLimit:  charLimit,
		targetRole: targetRole,
	}
}

// BuildAnalysisPrompt creates the instruction payload for candidate
// extraction. The output is fully determined by the input text: the field
// names declared here must stay in lockstep with the wire struct in
// parser.go.
func (pb *PromptBuilder) BuildAnalysisPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert HR Recruiter. Analyze the following document.
IT MAY CONTAIN A SINGLE RESUME OR MULTIPLE RESUMES COMBINED INTO ONE FILE.

DOCUMENT TEXT:
%s

Task:
1. Identify each distinct candidate in the text.
2. For EACH candidate, extract:
   - Name
   - Key Technical Skills
   - Years of Work Experience (estimate as a number, e.g., 3 for "3 years")
   - Highest Education Level (e.g., "Bachelor's in CS", "Master's in Engineering", "PhD")
   - "Job Fit Score" (0-100) for a %s role.
   - Suggested Role (based on their specific skills).
   - A short summary.

Return ONLY a JSON ARRAY of objects. Do not wrap the answer in markdown or add any surrounding prose.
Example format:
[
  {
    "name": "Candidate Name",
    "score": 85,
    "skills": ["React", "Node.js"],
    "experience": 5,
    "education": "Bachelor's in Computer Science",
    "role": "Frontend Developer",
    "summary": "Strong experience in..."
  }
]`,
		truncateRunes(resumeText, pb.charLimit), pb.targetRole)
}

func truncateRunes(text string, limit int) string {
	if limit <= 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return string(runes[:limit])
}
