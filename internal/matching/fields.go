package matching

import (
	"regexp"
	"strings"
)

const (
	DefaultPositionTitle = "Target Position"
	DefaultCompany       = "Target Company"
)

// FieldRule is one step of an ordered extraction chain. Extract receives the
// submatches of Pattern and returns "" to let the next rule try.
type FieldRule struct {
	Name    string
	Pattern *regexp.Regexp
	Extract func(match []string) string
}

// connectorWords end a phrase captured after "hiring", "seeking" or
// "looking for".
var connectorWords = map[string]struct{}{
	"with": {}, "to": {}, "who": {}, "for": {}, "in": {}, "at": {},
	"that": {}, "and": {}, "which": {}, "on": {},
}

// TitleRules are evaluated in order by ExtractTitle.
var TitleRules = []FieldRule{
	{
		Name:    "label",
		Pattern: regexp.MustCompile(`(?i)\b(?:position|role|title|job)[ \t]*:[ \t]*([^\n]+)`),
		Extract: firstGroup,
	},
	{
		Name:    "hiring-phrase",
		Pattern: regexp.MustCompile(`(?i)\b(?:hiring|seeking|looking for)[ \t]+(?:an?[ \t]+)?([^,.;:!?()\n]+)`),
		Extract: func(match []string) string {
			return cutAtConnector(match[1])
		},
	},
	{
		Name:    "title-case-line",
		Pattern: regexp.MustCompile(`(?m)^[ \t]*([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+){1,4})[ \t]*$`),
		Extract: firstGroup,
	},
}

// CompanyRules are evaluated in order by ExtractCompany.
var CompanyRules = []FieldRule{
	{
		Name:    "label",
		Pattern: regexp.MustCompile(`(?i)\b(?:company|at|employer)[ \t]*:[ \t]*([^\n]+)`),
		Extract: firstGroup,
	},
	{
		Name:    "join-phrase",
		Pattern: regexp.MustCompile(`\b(?i:join|work at|careers at)[ \t]+(?:(?i:the)[ \t]+)?([A-Z][\w&'.-]*(?:[ \t]+[A-Z][\w&'.-]*)*)`),
		Extract: firstGroup,
	},
}

// ExtractTitle recovers a position title from raw job-description text.
func ExtractTitle(jdText string) string {
	return ApplyRules(TitleRules, jdText, DefaultPositionTitle)
}

// ExtractCompany recovers a company name from raw job-description text.
func ExtractCompany(jdText string) string {
	return ApplyRules(CompanyRules, jdText, DefaultCompany)
}

// ApplyRules returns the first non-empty result of rules against text, or
// fallback when none produce one. Only the first match of each pattern is
// considered.
func ApplyRules(rules []FieldRule, text, fallback string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, rule := range rules {
		match := rule.Pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		if value := cleanField(rule.Extract(match)); value != "" {
			return value
		}
	}
	return fallback
}

func firstGroup(match []string) string {
	if len(match) < 2 {
		return ""
	}
	return match[1]
}

func cutAtConnector(phrase string) string {
	words := strings.Fields(phrase)
	for i, word := range words {
		if _, ok := connectorWords[strings.ToLower(word)]; ok {
			return strings.Join(words[:i], " ")
		}
	}
	return strings.Join(words, " ")
}

func cleanField(value string) string {
	return strings.Trim(strings.TrimSpace(value), " \t.,;:!-")
}
