package ats

import (
	"math"
	"sort"
)

// ScoreReport is the full result of one scoring call.
type ScoreReport struct {
	FinalScore      int              `json:"overall_score"`
	Grade           string           `json:"grade"`
	PassRate        string           `json:"pass_rate"`
	Components      []ComponentScore `json:"component_scores"`
	Recommendations []string         `json:"recommendations"`
	PersonalInfo    PersonalInfo     `json:"personal_info"`
	Matches         []MatchResult    `json:"keyword_matches"`
}

// satisfactoryValue suppresses recommendations for components already in
// good shape.
const satisfactoryValue = 0.8

// buildReport applies the weights, maps the final score to its grade and
// pass-rate band, and emits recommendations ordered by contribution
// shortfall.
func buildReport(components []ComponentScore, personal PersonalInfo, matches []MatchResult) *ScoreReport {
	sum := 0.0
	for _, c := range components {
		sum += c.Contribution
	}

	final := int(math.Round(sum * 100))
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}

	return &ScoreReport{
		FinalScore:      final,
		Grade:           gradeFor(final),
		PassRate:        passRateFor(final),
		Components:      components,
		Recommendations: recommendations(components),
		PersonalInfo:    personal,
		Matches:         matches,
	}
}

// gradeFor maps a final score to its letter grade, inclusive lower bounds.
func gradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	case score >= 50:
		return "F"
	default:
		return "Poor"
	}
}

// passRateFor is a declared heuristic mapping, not a fitted value.
func passRateFor(score int) string {
	switch {
	case score >= 90:
		return "95% of ATS filters"
	case score >= 80:
		return "85% of ATS filters"
	case score >= 70:
		return "75% of ATS filters"
	case score >= 60:
		return "65% of ATS filters"
	case score >= 50:
		return "55% of ATS filters"
	default:
		return "significant improvement needed"
	}
}

var recommendationTemplates = map[string]string{
	ComponentKeywordMatch:    "Incorporate more of the job description's key terms naturally into your resume",
	ComponentKeywordDensity:  "Adjust keyword usage: aim for each matched term to appear in roughly 1-3% of your resume's words",
	ComponentPersonalInfo:    "Add complete contact information (name, email, phone, location) at the top of your resume",
	ComponentSkillsAlignment: "Strengthen your skills section with the technologies and tools the job description names",
	ComponentExperienceMatch: "Reflect the seniority level and years of experience the role asks for in your work history",
	ComponentEducationMatch:  "Make sure the degrees or certifications the job requires appear in your education section",
	ComponentFormatting:      "Use standard section headers (Experience, Skills, Education) and keep the resume a reasonable length",
}

// recommendations emits one suggestion per unsatisfactory component, highest
// contribution shortfall (weight x (1 - value)) first. Ties keep component
// order, so the output is deterministic.
func recommendations(components []ComponentScore) []string {
	type gap struct {
		name      string
		shortfall float64
	}
	var gaps []gap
	for _, c := range components {
		if c.Value >= satisfactoryValue {
			continue
		}
		gaps = append(gaps, gap{name: c.Name, shortfall: c.Weight * (1 - c.Value)})
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].shortfall > gaps[j].shortfall
	})

	out := make([]string, 0, len(gaps))
	for _, g := range gaps {
		if tmpl, ok := recommendationTemplates[g.name]; ok {
			out = append(out, tmpl)
		}
	}
	return out
}
