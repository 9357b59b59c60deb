package matching

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Label wins over hiring phrase",
			input:    "Looking for a Python Developer with Docker, Kubernetes and AWS experience. Position: Senior Python Developer",
			expected: "Senior Python Developer",
		},
		{
			name:     "Job title label",
			input:    "Acme Corp\nJob Title: Staff Engineer, Payments\nRemote",
			expected: "Staff Engineer, Payments",
		},
		{
			name:     "Role label ignores surrounding whitespace",
			input:    "role :   Data Engineer   \n",
			expected: "Data Engineer",
		},
		{
			name:     "Hiring phrase cut at connector",
			input:    "We are hiring a Backend Engineer to build our payments platform.",
			expected: "Backend Engineer",
		},
		{
			name:     "Seeking phrase cut at punctuation",
			input:    "Acme is seeking an experienced QA Lead, based in Berlin.",
			expected: "experienced QA Lead",
		},
		{
			name:     "Title case line",
			input:    "about the job\n\nSenior Site Reliability Engineer\n\nyou will keep things running.",
			expected: "Senior Site Reliability Engineer",
		},
		{
			name:     "Title case line tolerates CRLF",
			input:    "intro text\r\nPrincipal Designer\r\nmore text",
			expected: "Principal Designer",
		},
		{
			name:     "Hiring phrase with only connectors falls through",
			input:    "we are hiring for multiple teams\nProduct Manager\n",
			expected: "Product Manager",
		},
		{
			name:     "Nothing matches",
			input:    "we need someone comfortable with python and docker.\nremote friendly team.",
			expected: DefaultPositionTitle,
		},
		{
			name:     "Empty text",
			input:    "",
			expected: DefaultPositionTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractTitle(tt.input))
		})
	}
}

func TestExtractCompany(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Company label", "Company: Globex Corporation\nLocation: Remote", "Globex Corporation"},
		{"Employer label", "employer:Initech.", "Initech"},
		{"Join phrase", "Join Acme Labs and help us build rockets.", "Acme Labs"},
		{"Join the phrase", "Come join the Umbrella Group today", "Umbrella Group"},
		{"Careers at phrase", "Explore careers at Stark Industries!", "Stark Industries"},
		{"Join with lowercase name does not match", "join our team of builders", DefaultCompany},
		{"Label wins over join phrase", "Join Hooli today.\nCompany: Pied Piper", "Pied Piper"},
		{"Nothing matches", "we need someone comfortable with python and docker.", DefaultCompany},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractCompany(tt.input))
		})
	}
}

func TestApplyRules_FirstMatchWins(t *testing.T) {
	rules := []FieldRule{
		{Name: "never", Pattern: regexp.MustCompile(`zzz(\w+)`), Extract: firstGroup},
		{Name: "empty", Pattern: regexp.MustCompile(`(a)`), Extract: func([]string) string { return "  " }},
		{Name: "first", Pattern: regexp.MustCompile(`(b\w+)`), Extract: firstGroup},
		{Name: "second", Pattern: regexp.MustCompile(`(c\w+)`), Extract: firstGroup},
	}

	assert.Equal(t, "beta", ApplyRules(rules, "alpha beta charlie", "none"))
	assert.Equal(t, "charlie", ApplyRules(rules[3:], "alpha beta charlie", "none"))
	assert.Equal(t, "none", ApplyRules(rules[:2], "alpha", "none"))
}

func TestMatchingScenario(t *testing.T) {
	resume := "Experienced Python developer with Docker and AWS skills"
	jd := "Looking for a Python Developer with Docker, Kubernetes and AWS experience. Position: Senior Python Developer"

	result := Score(ExtractKeywords(resume), ExtractKeywords(jd))

	assert.Equal(t, "Senior Python Developer", ExtractTitle(jd))
	assert.Equal(t, DefaultCompany, ExtractCompany(jd))
	assert.Subset(t, result.SkillsFound, []string{"python", "docker", "aws"})
	assert.Contains(t, result.MissingKeywords, "kubernetes")
	assert.Equal(t, 75, result.MatchScore)
	assert.Equal(t, MatchLevelGood, result.MatchLevel)
}
