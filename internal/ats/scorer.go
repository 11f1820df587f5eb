// Package ats scores a resume against a job description the way an
// applicant tracking system would: lexical keyword overlap with stem-level
// fuzzy matching, contact-info completeness, and structural heuristics,
// combined into a weighted 0-100 score with a grade, a pass-rate estimate,
// and prioritized recommendations.
//
// A Scorer is a pure function of its inputs: no I/O, no randomness, no state
// shared across calls. The same texts and configuration always produce the
// same report.
package ats

import (
	"fmt"
	"strings"
)

// Scorer scores resumes against job descriptions. Safe for concurrent use;
// all per-request state lives on the stack of Score.
type Scorer struct {
	cfg Config
	ref *Reference
	sim Similarity
}

// NewScorer validates the configuration and builds a Scorer. A nil reference
// uses the built-in curated dataset.
func NewScorer(cfg Config, ref *Reference) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ref == nil {
		ref = DefaultReference()
	}
	return &Scorer{
		cfg: cfg.withDefaults(),
		ref: ref,
		sim: LevenshteinSimilarity{},
	}, nil
}

// Score produces the full compatibility report for one job description and
// one resume. Inputs that fail validation return an error; once validation
// passes the call always succeeds, with individual components degrading to
// their documented defaults when they find no signal.
func (s *Scorer) Score(jobDescription, resumeText string) (*ScoreReport, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, ErrEmptyJobDescription
	}
	if words := len(strings.Fields(jobDescription)); words > s.cfg.JobWordLimit {
		return nil, fmt.Errorf("%w: %d words, limit %d", ErrJobDescriptionTooLong, words, s.cfg.JobWordLimit)
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyResume
	}

	jobKeywords := ExtractKeywords(jobDescription, s.cfg.MaxKeywords, SourceJobDescription, s.ref)
	// The resume side keeps a deeper set so a job keyword ranked highly on
	// one side is not missed just because it ranks lower on the other.
	resumeKeywords := ExtractKeywords(resumeText, s.cfg.MaxKeywords*2, SourceResume, s.ref)

	a := &analysis{
		jobText:        jobDescription,
		resumeText:     resumeText,
		jobKeywords:    jobKeywords,
		resumeKeywords: resumeKeywords,
		matches:        MatchKeywords(jobKeywords, resumeKeywords, s.cfg.SimilarityThreshold, s.sim),
		personal:       ExtractPersonalInfo(resumeText, s.ref),
		resumeTokens:   Normalize(resumeText, s.ref),
		ref:            s.ref,
	}

	w := s.cfg.Weights
	components := []ComponentScore{
		component(ComponentKeywordMatch, scoreKeywordMatch(a), w.KeywordMatch),
		component(ComponentKeywordDensity, scoreKeywordDensity(a), w.KeywordDensity),
		component(ComponentPersonalInfo, scorePersonalInfo(a), w.PersonalInfo),
		component(ComponentSkillsAlignment, scoreSkillsAlignment(a), w.SkillsAlignment),
		component(ComponentExperienceMatch, scoreExperienceMatch(a), w.ExperienceMatch),
		component(ComponentEducationMatch, scoreEducationMatch(a), w.EducationMatch),
		component(ComponentFormatting, scoreFormatting(a), w.Formatting),
	}

	return buildReport(components, a.personal, a.matches), nil
}

func component(name string, value, weight float64) ComponentScore {
	value = clamp01(value)
	return ComponentScore{
		Name:         name,
		Value:        value,
		Weight:       weight,
		Contribution: value * weight,
	}
}

// Score is a convenience wrapper using the default configuration and the
// built-in reference data.
func Score(jobDescription, resumeText string) (*ScoreReport, error) {
	scorer, err := NewScorer(DefaultConfig(), nil)
	if err != nil {
		return nil, err
	}
	return scorer.Score(jobDescription, resumeText)
}
