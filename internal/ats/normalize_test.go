package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CollapsesMorphologicalVariants(t *testing.T) {
	ref := DefaultReference()

	tokens := Normalize("managing managed manages manage", ref)

	assert.Equal(t, []string{"manag", "manag", "manag", "manag"}, tokens)
}

func TestNormalize_RemovesStopWords(t *testing.T) {
	ref := DefaultReference()

	tokens := Normalize("the quick fox and the lazy dog", ref)

	assert.Equal(t, []string{"quick", "fox", "lazy", "dog"}, tokens)
}

func TestNormalize_EmptyInput(t *testing.T) {
	ref := DefaultReference()

	assert.Empty(t, Normalize("", ref))
	assert.Empty(t, Normalize("   \n\t  ", ref))
}

func TestNormalize_KeepsInternalHyphens(t *testing.T) {
	ref := DefaultReference()

	tokens := Normalize("entry-level developer!", ref)

	assert.Equal(t, []string{"entry-level", "developer"}, tokens)
}

func TestNormalize_DropsNumbersAndShortTokens(t *testing.T) {
	ref := DefaultReference()

	tokens := Normalize("5 years experience 2024", ref)

	assert.Equal(t, []string{"year", "experienc"}, tokens)
}

func TestNormalize_Idempotent(t *testing.T) {
	ref := DefaultReference()
	texts := []string{
		"Managing distributed teams, shipping offerings and technologies.",
		"Senior Software Engineer with 5+ years of experience in Python, Go, and Kubernetes.",
		"Designed, implemented and maintained CI/CD pipelines; applied best practices.",
	}

	for _, text := range texts {
		once := Normalize(text, ref)
		twice := Normalize(strings.Join(once, " "), ref)
		assert.Equal(t, once, twice, "normalization of %q must be idempotent", text)
	}
}

func TestStem_FixedPoint(t *testing.T) {
	words := []string{"offerings", "applies", "applied", "running", "planned", "missed", "services", "technologies"}
	for _, w := range words {
		s := stem(w)
		assert.Equal(t, s, stem(s), "stem of %q must be stable", w)
	}
}

func TestStem_VariantsShareStem(t *testing.T) {
	tests := []struct {
		name  string
		words []string
	}{
		{"apply family", []string{"applies", "applied", "applying"}},
		{"run family", []string{"running", "runs"}},
		{"service family", []string{"service", "services"}},
		{"make family", []string{"make", "making", "makes"}},
		{"name family", []string{"name", "naming", "named", "names"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := stem(tt.words[0])
			for _, w := range tt.words[1:] {
				assert.Equal(t, first, stem(w))
			}
		})
	}
}
