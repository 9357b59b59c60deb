package services

import (
	"fmt"
	"strings"
)

// excerptLength bounds how much of each document goes into a prompt.
const excerptLength = 200

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSuggestionPrompt asks for short resume improvements from the opening
// of each document.
func (pb *PromptBuilder) BuildSuggestionPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are a career coach reviewing a resume against a job description.

RESUME (excerpt):
%s

JOB DESCRIPTION (excerpt):
%s

Give exactly three concrete suggestions to improve the resume for this job.
Write each suggestion as one plain sentence ending with a period.
Do not use lists, numbering, headings or markdown.`,
		Excerpt(resumeText, excerptLength), Excerpt(jobDescription, excerptLength))
}

// Excerpt returns at most n characters from the start of text.
func Excerpt(text string, n int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
