// Package matching implements lexical resume to job-description matching:
// normalization, keyword extraction against a curated term catalog, overlap
// scoring and heuristic field extraction from job postings.
package matching

import (
	"regexp"
	"strings"
)

// disallowedChars matches everything Normalize replaces. The symbols kept
// carry meaning in technical terms such as c++, c#, node.js and front-end.
var disallowedChars = regexp.MustCompile(`[^a-z0-9\s.+#-]+`)

// Normalize lowercases text, replaces every character outside
// [a-z0-9 .+#-] with a space and collapses whitespace runs to one space.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	cleaned := disallowedChars.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Join(strings.Fields(cleaned), " ")
}
