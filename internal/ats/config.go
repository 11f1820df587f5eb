package ats

import (
	"fmt"
	"math"
)

const (
	DefaultSimilarityThreshold = 0.7
	DefaultMaxKeywords         = 30
	DefaultJobWordLimit        = 1000
)

// weightSumEpsilon tolerates float literal noise while still rejecting any
// real misconfiguration of the seven weights.
const weightSumEpsilon = 1e-9

// Weights holds the seven component weights. They must sum to 1.0.
type Weights struct {
	KeywordMatch    float64 `json:"keyword_match"`
	KeywordDensity  float64 `json:"keyword_density"`
	PersonalInfo    float64 `json:"personal_info"`
	SkillsAlignment float64 `json:"skills_alignment"`
	ExperienceMatch float64 `json:"experience_match"`
	EducationMatch  float64 `json:"education_match"`
	Formatting      float64 `json:"formatting"`
}

func DefaultWeights() Weights {
	return Weights{
		KeywordMatch:    0.40,
		KeywordDensity:  0.15,
		PersonalInfo:    0.15,
		SkillsAlignment: 0.10,
		ExperienceMatch: 0.10,
		EducationMatch:  0.05,
		Formatting:      0.05,
	}
}

func (w Weights) Sum() float64 {
	return w.KeywordMatch + w.KeywordDensity + w.PersonalInfo +
		w.SkillsAlignment + w.ExperienceMatch + w.EducationMatch + w.Formatting
}

// Config is the immutable per-call scoring configuration. It is passed into
// NewScorer and never mutated afterwards; there is no process-wide scoring
// state.
type Config struct {
	SimilarityThreshold float64
	MaxKeywords         int
	JobWordLimit        int
	Weights             Weights
}

func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: DefaultSimilarityThreshold,
		MaxKeywords:         DefaultMaxKeywords,
		JobWordLimit:        DefaultJobWordLimit,
		Weights:             DefaultWeights(),
	}
}

// Validate rejects configurations before any scoring work is done.
func (c Config) Validate() error {
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, c.SimilarityThreshold)
	}
	if sum := c.Weights.Sum(); math.Abs(sum-1.0) > weightSumEpsilon {
		return fmt.Errorf("%w: got %v", ErrInvalidWeights, sum)
	}
	return nil
}

// withDefaults fills unset limits so a Config built from DefaultConfig with a
// couple of overridden fields behaves sensibly.
func (c Config) withDefaults() Config {
	if c.MaxKeywords <= 0 {
		c.MaxKeywords = DefaultMaxKeywords
	}
	if c.JobWordLimit <= 0 {
		c.JobWordLimit = DefaultJobWordLimit
	}
	return c
}
