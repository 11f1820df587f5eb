package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func matchOf(jobText string, mt MatchType, resumeCount int) MatchResult {
	m := MatchResult{JobKeyword: Keyword{Text: jobText, Source: SourceJobDescription}, Type: mt}
	if mt != MatchNone {
		m.ResumeKeyword = &Keyword{Text: jobText, Count: resumeCount, Source: SourceResume}
		m.Score = 1
	}
	return m
}

func TestScoreKeywordMatch(t *testing.T) {
	a := &analysis{matches: []MatchResult{
		matchOf("go", MatchExact, 1),
		matchOf("postgres", MatchSimilar, 1),
		matchOf("terraform", MatchNone, 0),
		matchOf("kafka", MatchNone, 0),
	}}

	assert.InDelta(t, 0.5, scoreKeywordMatch(a), 1e-9)
}

func TestScoreKeywordMatch_NoKeywords(t *testing.T) {
	assert.Equal(t, 0.0, scoreKeywordMatch(&analysis{}))
}

func TestScoreKeywordDensity_Band(t *testing.T) {
	tokens := make([]string, 100)

	tests := []struct {
		name     string
		count    int
		expected float64
	}{
		{"inside band", 2, 1.0},
		{"lower band edge", 1, 1.0},
		{"over-stuffed", 10, 0.0},
		{"above band decays", 5, (densityZero - 0.05) / (densityZero - densityHigh)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &analysis{
				resumeTokens: tokens,
				matches:      []MatchResult{matchOf("go", MatchExact, tt.count)},
			}
			assert.InDelta(t, tt.expected, scoreKeywordDensity(a), 1e-9)
		})
	}
}

func TestScoreKeywordDensity_UnderUse(t *testing.T) {
	a := &analysis{
		resumeTokens: make([]string, 1000),
		matches:      []MatchResult{matchOf("go", MatchExact, 1)},
	}

	// Density 0.001 against a 0.01 floor.
	assert.InDelta(t, 0.1, scoreKeywordDensity(a), 1e-9)
}

func TestScoreKeywordDensity_NoMatches(t *testing.T) {
	a := &analysis{
		resumeTokens: make([]string, 100),
		matches:      []MatchResult{matchOf("go", MatchNone, 0)},
	}

	assert.Equal(t, 0.0, scoreKeywordDensity(a))
}

func TestScoreSkillsAlignment(t *testing.T) {
	skill := func(text string, mt MatchType) MatchResult {
		m := matchOf(text, mt, 1)
		m.JobKeyword.TechnicalSkill = true
		return m
	}

	a := &analysis{matches: []MatchResult{
		skill("go", MatchExact),
		skill("docker", MatchNone),
		matchOf("teamwork", MatchExact, 1), // not a curated skill, ignored
	}}

	assert.InDelta(t, 0.5, scoreSkillsAlignment(a), 1e-9)
}

func TestScoreSkillsAlignment_NoTechnicalKeywords(t *testing.T) {
	a := &analysis{matches: []MatchResult{matchOf("teamwork", MatchNone, 0)}}

	assert.Equal(t, 0.5, scoreSkillsAlignment(a))
}

func TestScoreExperienceMatch(t *testing.T) {
	ref := DefaultReference()

	tests := []struct {
		name     string
		job      string
		resume   string
		expected float64
	}{
		{"no experience language anywhere", "build web applications", "built many web applications", 0.5},
		{"fully covered", "senior engineer, 5+ years required", "senior developer with 7 years of shipping", 1.0},
		{"nothing covered", "senior engineer, 5+ years required", "junior developer, 3 years", 0.0},
		{"years only, satisfied", "requires 3 years of Go", "6 years of Go", 1.0},
		{"years only, short", "requires 8 years of Go", "2 years of Go", 0.0},
		{"half covered", "senior role, 10+ years", "senior person, 4 years", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &analysis{jobText: tt.job, resumeText: tt.resume, ref: ref}
			assert.InDelta(t, tt.expected, scoreExperienceMatch(a), 1e-9)
		})
	}
}

func TestScoreEducationMatch(t *testing.T) {
	ref := DefaultReference()

	tests := []struct {
		name     string
		job      string
		resume   string
		expected float64
	}{
		{"no requirement scores full", "write code ship products", "some resume text", 1.0},
		{"requirement met", "Bachelor required", "Bachelor of Science, University of Toronto", 1.0},
		{"requirement missed", "Master required for this role", "finished high school", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &analysis{
				jobText:      tt.job,
				resumeText:   tt.resume,
				resumeTokens: Normalize(tt.resume, ref),
				ref:          ref,
			}
			assert.InDelta(t, tt.expected, scoreEducationMatch(a), 1e-9)
		})
	}
}

func TestScoreFormatting_SectionedResumeBeatsBlob(t *testing.T) {
	ref := DefaultReference()

	sectioned := &analysis{ref: ref, resumeText: sampleResume}
	blob := &analysis{ref: ref, resumeText: "short text"}

	s1 := scoreFormatting(sectioned)
	s2 := scoreFormatting(blob)

	assert.Greater(t, s1, s2)
	assert.GreaterOrEqual(t, s1, 0.0)
	assert.LessOrEqual(t, s1, 1.0)
	assert.Less(t, s2, 0.3)
}
