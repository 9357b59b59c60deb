package matching

import (
	"cmp"
	"slices"
	"strings"
)

// MaxKeywords caps every extracted KeywordList.
const MaxKeywords = 30

// minTokenLength is exclusive: a single token needs more characters than this.
const minTokenLength = 2

// Keyword is a term and the number of times it occurs in normalized text.
type Keyword struct {
	Term      string `json:"term"`
	Frequency int    `json:"frequency"`
}

// KeywordList is ranked, deduplicated and capped at MaxKeywords.
type KeywordList []Keyword

// Terms returns the terms in ranking order.
func (l KeywordList) Terms() []string {
	terms := make([]string, len(l))
	for i, kw := range l {
		terms[i] = kw.Term
	}
	return terms
}

type candidate struct {
	term      string
	technical bool
	frequency int
	offset    int
}

// ExtractKeywords returns the salient terms of text. Technical terms rank
// ahead of everything else, then higher frequency first, then earlier first
// occurrence in the normalized text.
func ExtractKeywords(text string) KeywordList {
	normalized := Normalize(text)
	if normalized == "" {
		return KeywordList{}
	}

	var candidates []candidate
	seen := make(map[string]struct{})
	add := func(term string, technical bool) {
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		form := searchForm(term)
		candidates = append(candidates, candidate{
			term:      term,
			technical: technical,
			frequency: strings.Count(normalized, form),
			offset:    strings.Index(normalized, form),
		})
	}

	for _, p := range multiWordTerms {
		if strings.Contains(normalized, p.form) {
			add(p.term, true)
		}
	}

	for _, token := range strings.Split(normalized, " ") {
		if !keepToken(token) {
			continue
		}
		add(token, IsTechnicalTerm(token))
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		if a.technical != b.technical {
			if a.technical {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(b.frequency, a.frequency); c != 0 {
			return c
		}
		return cmp.Compare(a.offset, b.offset)
	})

	if len(candidates) > MaxKeywords {
		candidates = candidates[:MaxKeywords]
	}

	keywords := make(KeywordList, len(candidates))
	for i, c := range candidates {
		keywords[i] = Keyword{Term: c.term, Frequency: c.frequency}
	}
	return keywords
}

// keepToken applies the single-token filter. Tokens are taken as written, so
// "person." survives through its period while "python." is not a catalog
// term.
func keepToken(token string) bool {
	if len(token) <= minTokenLength {
		return false
	}
	if IsTechnicalTerm(token) {
		return true
	}
	if IsStopWord(token) {
		return false
	}
	return strings.ContainsAny(token, "0123456789+#.-")
}
