package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleResumeHeader = `John A. Smith
Toronto, ON
john.smith@example.com
(416) 555-0199

Professional Summary
Seasoned backend developer.
`

func TestExtractPersonalInfo_AllFields(t *testing.T) {
	ref := DefaultReference()

	info := ExtractPersonalInfo(sampleResumeHeader, ref)

	assert.Equal(t, "John A. Smith", info.Name)
	assert.Equal(t, "john.smith@example.com", info.Email)
	assert.Equal(t, "(416) 555-0199", info.Phone)
	assert.Equal(t, "Toronto, ON", info.Location)
	assert.Equal(t, 1.0, info.Completeness())
}

func TestExtractPersonalInfo_FieldsAreIndependent(t *testing.T) {
	ref := DefaultReference()

	// No name line and no location, but email and phone still extract.
	info := ExtractPersonalInfo("contact: jane@example.org or 415.555.0123 ext 4", ref)

	assert.Empty(t, info.Name)
	assert.Empty(t, info.Location)
	assert.Equal(t, "jane@example.org", info.Email)
	assert.Equal(t, "415.555.0123", info.Phone)
	assert.Equal(t, 0.5, info.Completeness())
}

func TestExtractPersonalInfo_NothingFound(t *testing.T) {
	ref := DefaultReference()

	info := ExtractPersonalInfo("experience\nworked at various places doing various things", ref)

	assert.Equal(t, PersonalInfo{}, info)
	assert.Equal(t, 0.0, info.Completeness())
}

func TestMatchPhone_RejectsShortNumbers(t *testing.T) {
	_, ok := matchPhone("call 555-0199 for details")
	assert.False(t, ok)
}

func TestMatchName_SkipsHeadersAndLongLines(t *testing.T) {
	ref := DefaultReference()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"section header is not a name", "Professional Summary\nMary Jane Watson\n", "Mary Jane Watson"},
		{"five words rejected", "One Two Three Four Five\n", ""},
		{"lowercase rejected", "john smith\n", ""},
		{"single word rejected", "Madonna\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := matchName(tt.text, ref)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchLocation_RequiresGazetteerHit(t *testing.T) {
	ref := DefaultReference()

	got, ok := matchLocation("Jane Doe\nGotham, Zz\n", ref)
	assert.False(t, ok)
	assert.Empty(t, got)

	got, ok = matchLocation("Jane Doe\nSeattle, WA\n", ref)
	assert.True(t, ok)
	assert.Equal(t, "Seattle, WA", got)
}
