package services

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"alfredoptarigan/resume-matcher/internal/matching"
	"alfredoptarigan/resume-matcher/internal/models"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, resumeText, jobDescription string) (*models.MatchReport, error)
}

type analyzerService struct {
	suggestions SuggestionProvider
}

func NewAnalyzerService(suggestions SuggestionProvider) AnalyzerService {
	return &analyzerService{
		suggestions: suggestions,
	}
}

// Analyze scores resumeText against jobDescription. Suggestions are fetched
// concurrently with scoring and never influence any other report field.
func (a *analyzerService) Analyze(ctx context.Context, resumeText, jobDescription string) (*models.MatchReport, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &ValidationError{Field: "job_description", Message: "job description is required"}
	}

	var (
		score       matching.ScoreResult
		title       string
		company     string
		suggestions SuggestionResult
	)

	var g errgroup.Group

	g.Go(func() error {
		suggestions = a.suggestions.Suggest(ctx, resumeText, jobDescription)
		return nil
	})

	g.Go(func() error {
		resumeKeywords := matching.ExtractKeywords(resumeText)
		jdKeywords := matching.ExtractKeywords(jobDescription)
		score = matching.Score(resumeKeywords, jdKeywords)
		title = matching.ExtractTitle(jobDescription)
		company = matching.ExtractCompany(jobDescription)
		return nil
	})

	// Both goroutines return nil; Suggest absorbs summarizer failures.
	_ = g.Wait()

	log.Printf("📊 Match score %d (%s), %d skills found, %d missing, suggestions %s",
		score.MatchScore, score.MatchLevel, len(score.SkillsFound), len(score.MissingKeywords), suggestions.Status)

	return &models.MatchReport{
		MatchScore:      score.MatchScore,
		MatchLevel:      string(score.MatchLevel),
		PositionTitle:   title,
		Company:         company,
		MissingKeywords: score.MissingKeywords,
		SkillsFound:     score.SkillsFound,
		Improvements:    suggestions.Suggestions(),
	}, nil
}
