package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

const (
	maxSuggestions           = 3
	minSuggestionLength      = 11
	defaultSuggestionTimeout = 10 * time.Second
)

// FallbackSuggestions are returned whenever the summarizer cannot help.
var FallbackSuggestions = []string{
	"Tailor your professional summary to mirror the key requirements in the job description.",
	"Add measurable achievements to your experience section, such as percentages, revenue or time saved.",
	"List the specific tools and technologies from the job posting that you have hands-on experience with.",
}

type SuggestionStatus string

const (
	SuggestionsGenerated   SuggestionStatus = "generated"
	SuggestionsUnavailable SuggestionStatus = "unavailable"
)

// SuggestionResult is either Generated with its suggestions, or Unavailable
// with the reason. Unavailable always resolves to FallbackSuggestions.
type SuggestionResult struct {
	Status SuggestionStatus
	Reason error

	items []string
}

func generated(items []string) SuggestionResult {
	return SuggestionResult{Status: SuggestionsGenerated, items: items}
}

func unavailable(reason error) SuggestionResult {
	return SuggestionResult{Status: SuggestionsUnavailable, Reason: reason}
}

// Suggestions returns a fresh slice safe for the caller to keep.
func (r SuggestionResult) Suggestions() []string {
	source := r.items
	if r.Status != SuggestionsGenerated || len(source) == 0 {
		source = FallbackSuggestions
	}
	out := make([]string, len(source))
	copy(out, source)
	return out
}

type SuggestionProvider interface {
	Suggest(ctx context.Context, resumeText, jobDescription string) SuggestionResult
}

type suggestionProvider struct {
	summarizer    Summarizer
	promptBuilder *PromptBuilder
	timeout       time.Duration
}

// NewSuggestionProvider wraps summarizer, which may be nil when no API key is
// configured.
func NewSuggestionProvider(summarizer Summarizer, timeout time.Duration) SuggestionProvider {
	if timeout <= 0 {
		timeout = defaultSuggestionTimeout
	}
	return &suggestionProvider{
		summarizer:    summarizer,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
	}
}

// Suggest makes one summarizer call. It never returns an error: failures,
// including a panicking summarizer, are logged and reported as Unavailable.
func (s *suggestionProvider) Suggest(ctx context.Context, resumeText, jobDescription string) (result SuggestionResult) {
	if s.summarizer == nil {
		return unavailable(ErrSummarizerDisabled)
	}

	defer func() {
		if r := recover(); r != nil {
			err := &ExternalServiceError{Service: "summarizer", Err: fmt.Errorf("panic: %v", r)}
			log.Printf("❌ Summarizer panicked, using fallback: %v", err)
			result = unavailable(err)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := s.promptBuilder.BuildSuggestionPrompt(resumeText, jobDescription)
	summary, err := s.summarizer.Summarize(ctx, prompt)
	if err != nil {
		var extErr *ExternalServiceError
		if !errors.As(err, &extErr) {
			err = &ExternalServiceError{Service: "summarizer", Err: err}
		}
		log.Printf("⚠️  Suggestions unavailable, using fallback: %v", err)
		return unavailable(err)
	}

	items := ParseSuggestions(summary)
	if len(items) == 0 {
		log.Println("⚠️  Summary had no usable sentences, using fallback")
		return unavailable(ErrEmptySummary)
	}

	return generated(items)
}

// ParseSuggestions splits summary on periods, drops fragments shorter than
// 11 characters and returns up to three sentences with the period restored.
func ParseSuggestions(summary string) []string {
	var items []string
	for _, fragment := range strings.Split(summary, ".") {
		fragment = strings.TrimSpace(fragment)
		if len([]rune(fragment)) < minSuggestionLength {
			continue
		}
		items = append(items, fragment+".")
		if len(items) == maxSuggestions {
			break
		}
	}
	return items
}
