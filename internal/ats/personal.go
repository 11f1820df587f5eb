package ats

import (
	"regexp"
	"strings"
	"unicode"
)

// PersonalInfo holds contact details pulled from the resume. Every field is
// independently optional; an empty string means "not found".
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Completeness is the populated-field count over 4.
func (p PersonalInfo) Completeness() float64 {
	n := 0
	for _, f := range []string{p.Name, p.Email, p.Phone, p.Location} {
		if f != "" {
			n++
		}
	}
	return float64(n) / 4
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	// "City, ST" or "City, Province" near the top of the document.
	locationPattern = regexp.MustCompile(`([A-Z][A-Za-z.'\-]+(?:\s+[A-Z][A-Za-z.'\-]+)*),\s*([A-Za-z]{2,})`)
	digitsOnly      = regexp.MustCompile(`\D`)
)

// headLines is how far down the document the location and name heuristics
// look; contact blocks live at the top of a resume.
const headLines = 15

// ExtractPersonalInfo runs the ordered field matchers over the resume text.
// Each matcher is independent: a field that cannot be found stays empty and
// never blocks extraction of the others.
func ExtractPersonalInfo(text string, ref *Reference) PersonalInfo {
	var info PersonalInfo
	if v, ok := matchEmail(text); ok {
		info.Email = v
	}
	if v, ok := matchPhone(text); ok {
		info.Phone = v
	}
	if v, ok := matchLocation(text, ref); ok {
		info.Location = v
	}
	if v, ok := matchName(text, ref); ok {
		info.Name = v
	}
	return info
}

// matchEmail returns the first permissive RFC-like address in the text.
func matchEmail(text string) (string, bool) {
	if m := emailPattern.FindString(text); m != "" {
		return m, true
	}
	return "", false
}

// matchPhone returns the first digit group that looks like a phone number
// and carries at least 10 digits once separators are stripped.
func matchPhone(text string) (string, bool) {
	for _, m := range phonePattern.FindAllString(text, -1) {
		if len(digitsOnly.ReplaceAllString(m, "")) >= 10 {
			return strings.TrimSpace(m), true
		}
	}
	return "", false
}

// matchLocation looks for a "City, State/Country" pair in the top lines,
// accepting it when either part is in the gazetteer.
func matchLocation(text string, ref *Reference) (string, bool) {
	for _, line := range topLines(text, headLines) {
		for _, m := range locationPattern.FindAllStringSubmatch(line, -1) {
			city, region := m[1], m[2]
			if ref.isKnownCity(city) || ref.isKnownRegion(region) {
				return city + ", " + region, true
			}
		}
	}
	return "", false
}

// matchName takes the first top line of 2-4 capitalized word tokens that is
// not an email, phone number, or section header.
func matchName(text string, ref *Reference) (string, bool) {
	for _, line := range topLines(text, headLines) {
		if emailPattern.MatchString(line) || phonePattern.MatchString(line) {
			continue
		}
		if isSectionHeader(line, ref) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if allCapitalizedWords(words) {
			return strings.Join(words, " "), true
		}
	}
	return "", false
}

func topLines(text string, n int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == n {
			break
		}
	}
	return lines
}

func isSectionHeader(line string, ref *Reference) bool {
	l := strings.ToLower(strings.TrimSpace(line))
	for _, synonyms := range ref.sectionHeaders {
		for _, s := range synonyms {
			if l == s {
				return true
			}
		}
	}
	return false
}

func allCapitalizedWords(words []string) bool {
	for _, w := range words {
		runes := []rune(w)
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes[1:] {
			if !unicode.IsLetter(r) && r != '.' && r != '\'' && r != '-' {
				return false
			}
		}
	}
	return true
}
