package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kw(text string, source Source) Keyword {
	return Keyword{Text: text, Count: 1, Source: source}
}

func TestLevenshteinSimilarity_Ratio(t *testing.T) {
	sim := LevenshteinSimilarity{}

	tests := []struct {
		a, b     string
		expected float64
	}{
		{"python", "python", 1.0},
		{"", "", 1.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
		{"postgres", "postgresql", 0.8},
		{"abc", "xyz", 0.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, sim.Ratio(tt.a, tt.b), 1e-9, "Ratio(%q, %q)", tt.a, tt.b)
	}
}

func TestMatchKeywords_ExactMatch(t *testing.T) {
	job := []Keyword{kw("python", SourceJobDescription)}
	resume := []Keyword{kw("python", SourceResume)}

	results := MatchKeywords(job, resume, 0.7, LevenshteinSimilarity{})

	require.Len(t, results, 1)
	assert.Equal(t, MatchExact, results[0].Type)
	assert.Equal(t, 1.0, results[0].Score)
	require.NotNil(t, results[0].ResumeKeyword)
	assert.Equal(t, "python", results[0].ResumeKeyword.Text)
}

func TestMatchKeywords_SimilarMatch(t *testing.T) {
	job := []Keyword{kw("postgres", SourceJobDescription)}
	resume := []Keyword{kw("postgresql", SourceResume)}

	results := MatchKeywords(job, resume, 0.7, LevenshteinSimilarity{})

	require.Len(t, results, 1)
	assert.Equal(t, MatchSimilar, results[0].Type)
	assert.InDelta(t, 0.8, results[0].Score, 1e-9)
}

func TestMatchKeywords_NoMatch(t *testing.T) {
	job := []Keyword{kw("kubernetes", SourceJobDescription)}
	resume := []Keyword{kw("watercolor", SourceResume)}

	results := MatchKeywords(job, resume, 0.7, LevenshteinSimilarity{})

	require.Len(t, results, 1)
	assert.Equal(t, MatchNone, results[0].Type)
	assert.Nil(t, results[0].ResumeKeyword)
}

func TestMatchKeywords_ExactConsumesResumeKeyword(t *testing.T) {
	// "docker" is exactly matched, so "dockers" must not also claim it as a
	// similar match.
	job := []Keyword{kw("docker", SourceJobDescription), kw("dockers", SourceJobDescription)}
	resume := []Keyword{kw("docker", SourceResume)}

	results := MatchKeywords(job, resume, 0.7, LevenshteinSimilarity{})

	require.Len(t, results, 2)
	assert.Equal(t, MatchExact, results[0].Type)
	assert.Equal(t, MatchNone, results[1].Type)
}

func TestMatchKeywords_Totality(t *testing.T) {
	job := []Keyword{
		kw("golang", SourceJobDescription),
		kw("grpc", SourceJobDescription),
		kw("postgres", SourceJobDescription),
		kw("terraform", SourceJobDescription),
	}
	resume := []Keyword{
		kw("golang", SourceResume),
		kw("postgresql", SourceResume),
	}

	results := MatchKeywords(job, resume, 0.7, LevenshteinSimilarity{})

	require.Len(t, results, len(job), "every job keyword gets exactly one classification")
	for i, r := range results {
		assert.Equal(t, job[i].Text, r.JobKeyword.Text, "results stay in job keyword order")
		assert.Contains(t, []MatchType{MatchExact, MatchSimilar, MatchNone}, r.Type)
	}
}

func TestMatchKeywords_ThresholdBoundary(t *testing.T) {
	job := []Keyword{kw("postgres", SourceJobDescription)}
	resume := []Keyword{kw("postgresql", SourceResume)}

	// Ratio is exactly 0.8: inclusive at the threshold, excluded above it.
	atThreshold := MatchKeywords(job, resume, 0.8, LevenshteinSimilarity{})
	assert.Equal(t, MatchSimilar, atThreshold[0].Type)

	aboveThreshold := MatchKeywords(job, resume, 0.81, LevenshteinSimilarity{})
	assert.Equal(t, MatchNone, aboveThreshold[0].Type)
}
