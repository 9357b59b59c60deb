package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSummarizer struct {
	summary string
	err     error
	delay   time.Duration
	prompts []string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.summary, f.err
}

type panickingSummarizer struct{}

func (panickingSummarizer) Summarize(context.Context, string) (string, error) {
	panic("malformed response")
}

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		summary  string
		expected []string
	}{
		{
			name:    "Three sentences",
			summary: "Quantify your impact in each role. Add Kubernetes projects. Move skills to the top of the page.",
			expected: []string{
				"Quantify your impact in each role.",
				"Add Kubernetes projects.",
				"Move skills to the top of the page.",
			},
		},
		{
			name:     "Short fragments dropped",
			summary:  "Yes. Highlight AWS certifications. Ok. 1. Mention Docker usage clearly",
			expected: []string{"Highlight AWS certifications.", "Mention Docker usage clearly."},
		},
		{
			name:     "Boundary length",
			summary:  "0123456789. 0123456789a.",
			expected: []string{"0123456789a."},
		},
		{
			name:     "At most three",
			summary:  "First long suggestion. Second long suggestion. Third long suggestion. Fourth long suggestion.",
			expected: []string{"First long suggestion.", "Second long suggestion.", "Third long suggestion."},
		},
		{
			name:     "Nothing usable",
			summary:  "Ok. Sure. Fine.",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSuggestions(tt.summary))
		})
	}
}

func TestSuggest_Success(t *testing.T) {
	summarizer := &fakeSummarizer{summary: "Lead with your Python experience. Add metrics to each bullet. Mention AWS certifications."}
	provider := NewSuggestionProvider(summarizer, time.Second)

	result := provider.Suggest(context.Background(), strings.Repeat("r", 500), strings.Repeat("j", 500))

	assert.Equal(t, SuggestionsGenerated, result.Status)
	assert.NoError(t, result.Reason)
	assert.Equal(t, []string{
		"Lead with your Python experience.",
		"Add metrics to each bullet.",
		"Mention AWS certifications.",
	}, result.Suggestions())

	require.Len(t, summarizer.prompts, 1)
	assert.Contains(t, summarizer.prompts[0], strings.Repeat("r", 200))
	assert.NotContains(t, summarizer.prompts[0], strings.Repeat("r", 201))
	assert.NotContains(t, summarizer.prompts[0], strings.Repeat("j", 201))
}

func TestSuggest_FailuresUseFallback(t *testing.T) {
	tests := []struct {
		name       string
		summarizer Summarizer
		reason     error
	}{
		{"Disabled", nil, ErrSummarizerDisabled},
		{"Network error", &fakeSummarizer{err: errors.New("dial tcp: connection refused")}, nil},
		{"Service error", &fakeSummarizer{err: &ExternalServiceError{Service: "gemini", Err: errors.New("status 503")}}, nil},
		{"Only short fragments", &fakeSummarizer{summary: "Ok. No. Yes."}, ErrEmptySummary},
		{"Empty summary", &fakeSummarizer{summary: ""}, ErrEmptySummary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewSuggestionProvider(tt.summarizer, time.Second)

			result := provider.Suggest(context.Background(), "resume", "job")

			assert.Equal(t, SuggestionsUnavailable, result.Status)
			assert.Equal(t, FallbackSuggestions, result.Suggestions())
			if tt.reason != nil {
				assert.ErrorIs(t, result.Reason, tt.reason)
			} else {
				var extErr *ExternalServiceError
				assert.ErrorAs(t, result.Reason, &extErr)
			}
		})
	}
}

func TestSuggest_PanicUsesFallback(t *testing.T) {
	provider := NewSuggestionProvider(panickingSummarizer{}, time.Second)

	var result SuggestionResult
	require.NotPanics(t, func() {
		result = provider.Suggest(context.Background(), "resume", "job")
	})

	assert.Equal(t, SuggestionsUnavailable, result.Status)
	assert.Equal(t, FallbackSuggestions, result.Suggestions())
	var extErr *ExternalServiceError
	require.ErrorAs(t, result.Reason, &extErr)
	assert.Contains(t, extErr.Error(), "malformed response")
}

func TestSuggest_Timeout(t *testing.T) {
	summarizer := &fakeSummarizer{summary: "Never returned in time.", delay: time.Second}
	provider := NewSuggestionProvider(summarizer, 20*time.Millisecond)

	start := time.Now()
	result := provider.Suggest(context.Background(), "resume", "job")

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, SuggestionsUnavailable, result.Status)
	assert.ErrorIs(t, result.Reason, context.DeadlineExceeded)
	assert.Equal(t, FallbackSuggestions, result.Suggestions())
}

func TestSuggestionResult_ReturnsCopy(t *testing.T) {
	result := unavailable(ErrSummarizerDisabled)

	items := result.Suggestions()
	items[0] = "changed"

	assert.NotEqual(t, "changed", FallbackSuggestions[0])
	assert.Len(t, FallbackSuggestions, 3)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "", Excerpt("", 200))
	assert.Equal(t, "short", Excerpt("  short  ", 200))
	assert.Equal(t, "résu", Excerpt("résumé", 4))
}
