package generate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/interview-forge/internal/types"
)

// BuildPrompt constructs the question-generation prompt for one interview.
func BuildPrompt(profile types.Profile) string {
	var sb strings.Builder

	sb.WriteString("You are an expert in customer discovery interviews.\n")
	sb.WriteString("Write five open-ended discovery questions for interviewing this ideal customer:\n\n")
	sb.WriteString(fmt.Sprintf("- Role: %s\n", profile.Role))
	sb.WriteString(fmt.Sprintf("- Industry: %s\n", profile.Industry))
	sb.WriteString(fmt.Sprintf("- Years of experience: %s\n", profile.ExperienceRange))
	sb.WriteString(fmt.Sprintf("- Company size: %s employees\n\n", profile.CompanySizeRange))

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString(`{
  "question_one": string,
  "question_two": string,
  "question_three": string,
  "question_four": string,
  "question_five": string
}`)
	sb.WriteString("\n\nIMPORTANT:\n")
	sb.WriteString("- Questions must be specific to the role and industry, not generic.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n")

	return sb.String()
}

// ParseInterview decodes a model response into an Interview, stamping the
// profile's role and industry onto the record.
func ParseInterview(text string, profile types.Profile) (types.Interview, error) {
	var out types.Interview
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return types.Interview{}, fmt.Errorf("failed to parse model response: %w", err)
	}

	for i, q := range []string{out.QuestionOne, out.QuestionTwo, out.QuestionThree, out.QuestionFour, out.QuestionFive} {
		if strings.TrimSpace(q) == "" {
			return types.Interview{}, fmt.Errorf("model response missing question %d", i+1)
		}
	}

	out.Role = profile.Role
	out.Industry = profile.Industry
	return out, nil
}

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a potential language identifier on the first line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}
