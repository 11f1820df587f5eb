package services

import (
	"fmt"
	"strings"

	"github.com/Dhruvrana8/ResumeMatchAI/internal/ats"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildNarrativePrompt turns a completed score report into a prompt for a
// short human-readable narrative. The numbers in the report are already
// final; the model only explains them.
func (pb *PromptBuilder) BuildNarrativePrompt(jobDescription, resumeText string, report *ats.ScoreReport) string {
	var components strings.Builder
	for _, c := range report.Components {
		fmt.Fprintf(&components, "- %s: %.0f%% (weight %.0f%%)\n", c.Name, c.Value*100, c.Weight*100)
	}

	var recs strings.Builder
	for _, r := range report.Recommendations {
		fmt.Fprintf(&recs, "- %s\n", r)
	}

	return fmt.Sprintf(`You are a career coach explaining an ATS compatibility report to a job seeker.

The resume scored %d/100 (grade %s, expected to pass %s) against the job description below.

COMPONENT SCORES:
%s
RECOMMENDATIONS ALREADY IDENTIFIED:
%s
JOB DESCRIPTION:
%s

RESUME:
%s

Write a concise narrative (4-6 sentences) that explains the score in plain language:
what the resume does well for this role, where the biggest gaps are, and which of the
recommendations will move the score the most. Do not invent new scores or change the
numbers above. Return ONLY the narrative text, no JSON, no headings.`,
		report.FinalScore, report.Grade, report.PassRate,
		components.String(), recs.String(),
		truncateForPrompt(jobDescription, 4000), truncateForPrompt(resumeText, 8000))
}

// truncateForPrompt keeps prompts bounded for very long inputs.
func truncateForPrompt(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "\n[truncated]"
}
