package ats

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Component names, in report order.
const (
	ComponentKeywordMatch    = "keyword_match"
	ComponentKeywordDensity  = "keyword_density"
	ComponentPersonalInfo    = "personal_info"
	ComponentSkillsAlignment = "skills_alignment"
	ComponentExperienceMatch = "experience_match"
	ComponentEducationMatch  = "education_match"
	ComponentFormatting      = "formatting"
)

// ComponentScore is one weighted sub-score of the final ATS score.
type ComponentScore struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// analysis carries the intermediate data every scorer reads. It is built
// fresh per Score call and discarded with the report.
type analysis struct {
	jobText        string
	resumeText     string
	jobKeywords    []Keyword
	resumeKeywords []Keyword
	matches        []MatchResult
	personal       PersonalInfo
	resumeTokens   []string
	ref            *Reference
}

// Keyword density band: score peaks when the average per-matched-keyword
// density over the resume token count sits inside [low, high] and decays
// linearly outside, hitting zero at densityZero. Tunable defaults, not
// contractual constants.
const (
	densityLow  = 0.01
	densityHigh = 0.03
	densityZero = 0.09
)

func scoreKeywordMatch(a *analysis) float64 {
	if len(a.matches) == 0 {
		return 0
	}
	matched := 0
	for _, m := range a.matches {
		if m.Matched() {
			matched++
		}
	}
	return float64(matched) / float64(len(a.matches))
}

func scoreKeywordDensity(a *analysis) float64 {
	total := len(a.resumeTokens)
	if total == 0 {
		return 0
	}

	occurrences, matched := 0, 0
	for _, m := range a.matches {
		if m.ResumeKeyword != nil {
			occurrences += m.ResumeKeyword.Count
			matched++
		}
	}
	if matched == 0 {
		return 0
	}

	density := float64(occurrences) / float64(matched) / float64(total)
	switch {
	case density < densityLow:
		return density / densityLow
	case density <= densityHigh:
		return 1
	case density >= densityZero:
		return 0
	default:
		return (densityZero - density) / (densityZero - densityHigh)
	}
}

func scorePersonalInfo(a *analysis) float64 {
	return a.personal.Completeness()
}

// scoreSkillsAlignment is the matched fraction of job keywords tagged as
// curated technical skills. A job description that names no curated skill
// gives the neutral midpoint rather than penalizing the resume.
func scoreSkillsAlignment(a *analysis) float64 {
	total, matched := 0, 0
	for _, m := range a.matches {
		if !m.JobKeyword.TechnicalSkill {
			continue
		}
		total++
		if m.Matched() {
			matched++
		}
	}
	if total == 0 {
		return 0.5
	}
	return float64(matched) / float64(total)
}

var yearsPattern = regexp.MustCompile(`(?i)(\d{1,2})\s*\+?\s*(?:years?|yrs?)`)

// experienceTerms pulls the seniority stems and the largest years figure
// from a document.
func experienceTerms(text string, ref *Reference) (seniority map[string]struct{}, years int) {
	seniority = make(map[string]struct{})
	for _, tok := range Normalize(text, ref) {
		if ref.isSeniorityTerm(tok) {
			seniority[tok] = struct{}{}
		}
	}
	for _, m := range yearsPattern.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > years {
			years = n
		}
	}
	return seniority, years
}

// scoreExperienceMatch overlaps the job's seniority/duration language with
// the resume's. When the job description carries no such language there is
// nothing to satisfy and the score is the neutral midpoint.
func scoreExperienceMatch(a *analysis) float64 {
	jobSeniority, jobYears := experienceTerms(a.jobText, a.ref)
	if len(jobSeniority) == 0 && jobYears == 0 {
		return 0.5
	}
	resumeSeniority, resumeYears := experienceTerms(a.resumeText, a.ref)

	total, covered := 0, 0
	for term := range jobSeniority {
		total++
		if _, ok := resumeSeniority[term]; ok {
			covered++
		}
	}
	if jobYears > 0 {
		total++
		if resumeYears >= jobYears {
			covered++
		}
	}
	return float64(covered) / float64(total)
}

// scoreEducationMatch checks the job's degree requirements against the
// resume. A job description that states no education requirement scores
// full.
func scoreEducationMatch(a *analysis) float64 {
	required := make(map[string]struct{})
	for _, tok := range Normalize(a.jobText, a.ref) {
		if a.ref.isDegreeTerm(tok) {
			required[tok] = struct{}{}
		}
	}
	if len(required) == 0 {
		return 1
	}

	resume := make(map[string]struct{}, len(a.resumeTokens))
	for _, tok := range a.resumeTokens {
		resume[tok] = struct{}{}
	}
	found := 0
	for term := range required {
		if _, ok := resume[term]; ok {
			found++
		}
	}
	return float64(found) / float64(len(required))
}

// Formatting heuristic shares: detectable section headers, length bounds,
// and printable-character ratio. Tunable defaults.
const (
	sectionShare   = 0.15 // per detected section, four sections max
	lengthShare    = 0.2
	artifactShare  = 0.2
	lengthMinWords = 100
	lengthMaxWords = 1200
	printableFloor = 0.97
)

func scoreFormatting(a *analysis) float64 {
	score := 0.0

	lower := strings.ToLower(a.resumeText)
	for _, synonyms := range a.ref.sectionHeaders {
		for _, s := range synonyms {
			if strings.Contains(lower, s) {
				score += sectionShare
				break
			}
		}
	}

	words := len(strings.Fields(a.resumeText))
	switch {
	case words >= lengthMinWords && words <= lengthMaxWords:
		score += lengthShare
	case words < lengthMinWords:
		score += lengthShare * float64(words) / lengthMinWords
	default:
		score += lengthShare * float64(lengthMaxWords) / float64(words)
	}

	score += artifactShare * printableRatio(a.resumeText)

	return clamp01(score)
}

// printableRatio scales to 1.0 at printableFloor; resumes extracted from
// PDFs always carry a little noise.
func printableRatio(text string) float64 {
	if text == "" {
		return 0
	}
	printable, total := 0, 0
	for _, r := range text {
		total++
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			printable++
		}
	}
	ratio := float64(printable) / float64(total) / printableFloor
	if ratio > 1 {
		return 1
	}
	return ratio
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
