package matching

import (
	"math"
	"strings"
)

const (
	// MaxScore is the ceiling for any match; lexical overlap alone never
	// certifies a perfect fit.
	MaxScore = 95

	maxMissingCandidates = 6
	maxMissingKeywords   = 5
	maxSkillsFound       = 8
	maxFallbackSkills    = 5

	technicalWeight = 100.0
	fallbackWeight  = 85.0
)

// MatchLevel is the four-bucket classification of a match score.
type MatchLevel string

const (
	MatchLevelStrong    MatchLevel = "Strong Candidate Match"
	MatchLevelGood      MatchLevel = "Good Candidate Match"
	MatchLevelModerate  MatchLevel = "Moderate Candidate Match"
	MatchLevelPotential MatchLevel = "Potential Candidate Match"
)

// ScoreResult is the overlap between a resume and a job description.
type ScoreResult struct {
	MatchScore      int
	MatchLevel      MatchLevel
	MissingKeywords []string
	SkillsFound     []string
}

// MatchLevelFor buckets score.
func MatchLevelFor(score int) MatchLevel {
	switch {
	case score >= 80:
		return MatchLevelStrong
	case score >= 60:
		return MatchLevelGood
	case score >= 40:
		return MatchLevelModerate
	default:
		return MatchLevelPotential
	}
}

// Score compares resume keywords against job-description keywords. Matched
// and missing terms keep the job description's ranking order.
func Score(resumeKeywords, jdKeywords KeywordList) ScoreResult {
	resumeSet := make(map[string]struct{}, len(resumeKeywords))
	for _, term := range resumeKeywords.Terms() {
		resumeSet[strings.ToLower(term)] = struct{}{}
	}

	matched := []string{}
	missing := []string{}
	technicalMatches := 0
	technicalRequirements := 0

	for _, kw := range jdKeywords {
		_, inResume := resumeSet[strings.ToLower(kw.Term)]
		technical := IsTechnicalTerm(kw.Term)

		if technical {
			technicalRequirements++
		}
		if inResume {
			matched = append(matched, kw.Term)
			if technical {
				technicalMatches++
			}
			continue
		}
		if technical {
			missing = append(missing, kw.Term)
		}
	}

	var score int
	if technicalRequirements > 0 {
		score = percent(technicalWeight, technicalMatches, technicalRequirements)
	} else {
		score = percent(fallbackWeight, len(matched), max(len(jdKeywords), 1))
	}
	score = min(score, MaxScore)

	missing = capStrings(capStrings(missing, maxMissingCandidates), maxMissingKeywords)

	skills := capStrings(matched, maxSkillsFound)
	if len(skills) == 0 {
		skills = technicalResumeSkills(resumeKeywords)
	}

	return ScoreResult{
		MatchScore:      score,
		MatchLevel:      MatchLevelFor(score),
		MissingKeywords: missing,
		SkillsFound:     skills,
	}
}

func percent(weight float64, part, whole int) int {
	return int(math.Round(weight * float64(part) / float64(whole)))
}

func technicalResumeSkills(resumeKeywords KeywordList) []string {
	skills := []string{}
	for _, kw := range resumeKeywords {
		if len(skills) == maxFallbackSkills {
			break
		}
		if IsTechnicalTerm(kw.Term) {
			skills = append(skills, kw.Term)
		}
	}
	return skills
}

func capStrings(values []string, limit int) []string {
	if len(values) > limit {
		return values[:limit]
	}
	return values
}
