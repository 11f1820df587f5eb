package ats

import (
	"strings"
	"unicode"
)

// Normalize tokenizes text for comparison: lower-case, punctuation stripped
// except internal hyphens, stop words removed, and each token stemmed so that
// morphological variants collapse to one form. Empty or whitespace-only input
// yields an empty slice. The function is idempotent over its own output.
func Normalize(text string, ref *Reference) []string {
	var tokens []string
	for _, raw := range splitTokens(text) {
		tok := strings.Trim(raw, "-")
		if len(tok) < 2 || isNumeric(tok) {
			continue
		}
		if ref.IsStopWord(tok) {
			continue
		}
		stemmed := stemToken(tok)
		// A stem can land on a stop word ("mores" -> "more"); dropping it
		// here keeps Normalize idempotent over its own output.
		if ref.IsStopWord(stemmed) {
			continue
		}
		tokens = append(tokens, stemmed)
	}
	return tokens
}

// normalizePhrase normalizes a multi-word phrase (e.g. a curated skill) into
// the space-joined token form keywords are compared in.
func normalizePhrase(s string, ref *Reference) string {
	return strings.Join(Normalize(s, ref), " ")
}

// splitTokens lower-cases and splits on anything that is not a letter, digit,
// or hyphen. Hyphens survive so "entry-level" stays one token.
func splitTokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// stemToken stems each hyphen-separated part independently.
func stemToken(tok string) string {
	if !strings.Contains(tok, "-") {
		return stem(tok)
	}
	parts := strings.Split(tok, "-")
	for i, p := range parts {
		parts[i] = stem(p)
	}
	return strings.Join(parts, "-")
}

// stem is a small Porter-style suffix stripper. It is intentionally crude:
// all that matters is that variants of the same word land on the same stem.
// Stripping repeats until a fixed point so that stems are stable under
// re-normalization ("offerings" -> "offering" -> "offer").
func stem(w string) string {
	for {
		next := stemOnce(w)
		if next == w {
			return w
		}
		w = next
	}
}

func stemOnce(w string) string {
	if len(w) < 4 {
		return w
	}
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		w = w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ied") && len(w) > 4:
		w = w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ing") && len(w) > 5:
		w = undouble(w[:len(w)-3])
	case strings.HasSuffix(w, "ed") && len(w) > 4:
		w = undouble(w[:len(w)-2])
	case strings.HasSuffix(w, "es") && len(w) > 4:
		w = w[:len(w)-2]
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && len(w) > 3:
		w = w[:len(w)-1]
	}
	// >= 4 so that 4-letter e-final words ("make", "name") land on the same
	// stem as their suffixed variants ("making" -> "mak").
	if strings.HasSuffix(w, "e") && len(w) >= 4 {
		w = w[:len(w)-1]
	}
	return w
}

// undouble collapses a trailing double consonant ("plann" -> "plan") except
// for l, s, and z, which commonly end valid stems ("fill", "miss").
func undouble(w string) string {
	n := len(w)
	if n < 2 || w[n-1] != w[n-2] {
		return w
	}
	switch w[n-1] {
	case 'l', 's', 'z', 'a', 'e', 'i', 'o', 'u':
		return w
	}
	return w[:n-1]
}
