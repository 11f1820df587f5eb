package ats

// MatchType classifies how a job-description keyword was found in the resume.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchSimilar MatchType = "similar"
	MatchNone    MatchType = "none"
)

// MatchResult is the classification for a single job-description keyword.
// Every job keyword receives exactly one MatchResult.
type MatchResult struct {
	JobKeyword    Keyword   `json:"job_keyword"`
	Type          MatchType `json:"type"`
	ResumeKeyword *Keyword  `json:"resume_keyword,omitempty"`
	Score         float64   `json:"score"`
}

func (m MatchResult) Matched() bool {
	return m.Type != MatchNone
}

// Similarity scores how alike two normalized keyword strings are, in [0, 1].
// It is the single seam behind which the fuzzy-match algorithm can be swapped
// without touching the scorers that consume MatchResult.
type Similarity interface {
	Ratio(a, b string) float64
}

// LevenshteinSimilarity implements Similarity as 1 - dist/maxLen over runes.
type LevenshteinSimilarity struct{}

// Ratio implements Similarity.
func (LevenshteinSimilarity) Ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(ra, rb))/float64(longest)
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// MatchKeywords classifies every job keyword against the resume keyword set.
// Exact (normalized equality) is checked before similar so stemming noise
// never downgrades a real match, and resume keywords consumed by an exact
// match are excluded from similar-match candidates. Results come back in job
// keyword rank order.
func MatchKeywords(jobKeywords, resumeKeywords []Keyword, threshold float64, sim Similarity) []MatchResult {
	resumeByText := make(map[string]int, len(resumeKeywords))
	for i, kw := range resumeKeywords {
		if _, ok := resumeByText[kw.Text]; !ok {
			resumeByText[kw.Text] = i
		}
	}

	// Resume keywords that exactly match some job keyword are off the table
	// for similarity matching.
	exactlyMatched := make(map[string]struct{})
	for _, jk := range jobKeywords {
		if _, ok := resumeByText[jk.Text]; ok {
			exactlyMatched[jk.Text] = struct{}{}
		}
	}

	results := make([]MatchResult, 0, len(jobKeywords))
	for _, jk := range jobKeywords {
		if i, ok := resumeByText[jk.Text]; ok {
			rk := resumeKeywords[i]
			results = append(results, MatchResult{JobKeyword: jk, Type: MatchExact, ResumeKeyword: &rk, Score: 1})
			continue
		}

		matched := false
		for i := range resumeKeywords {
			rk := resumeKeywords[i]
			if _, taken := exactlyMatched[rk.Text]; taken {
				continue
			}
			if ratio := sim.Ratio(jk.Text, rk.Text); ratio >= threshold {
				results = append(results, MatchResult{JobKeyword: jk, Type: MatchSimilar, ResumeKeyword: &rk, Score: ratio})
				matched = true
				break
			}
		}
		if !matched {
			results = append(results, MatchResult{JobKeyword: jk, Type: MatchNone})
		}
	}
	return results
}
