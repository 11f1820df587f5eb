package ats

import "sort"

// Source tags which document a keyword came from.
type Source string

const (
	SourceJobDescription Source = "job_description"
	SourceResume         Source = "resume"
)

// Keyword is a normalized token or multi-word phrase with its frequency in
// the source document.
type Keyword struct {
	Text           string `json:"text"`
	Count          int    `json:"count"`
	Source         Source `json:"source"`
	TechnicalSkill bool   `json:"technical_skill"`

	first int // first occurrence position, used for deterministic tie-breaks
}

// skillBoost multiplies the frequency of terms found in the curated skills
// list so that rare but load-bearing technologies outrank filler words.
const skillBoost = 3

// ngramMinCount is the frequency floor for bigrams and trigrams that are not
// curated skills; one-off word collocations are almost always noise.
const ngramMinCount = 2

// ExtractKeywords builds a ranked keyword set from text: normalized unigrams,
// bigrams, and trigrams ranked by skill-boosted frequency with first
// occurrence breaking ties. The result is deterministic for identical input.
func ExtractKeywords(text string, maxKeywords int, source Source, ref *Reference) []Keyword {
	tokens := Normalize(text, ref)
	if len(tokens) == 0 {
		return nil
	}

	index := make(map[string]*Keyword)
	pos := 0
	add := func(phrase string) {
		if kw, ok := index[phrase]; ok {
			kw.Count++
		} else {
			index[phrase] = &Keyword{
				Text:           phrase,
				Count:          1,
				Source:         source,
				TechnicalSkill: ref.IsSkill(phrase),
				first:          pos,
			}
		}
		pos++
	}

	for i, tok := range tokens {
		add(tok)
		if i+1 < len(tokens) {
			add(tokens[i] + " " + tokens[i+1])
		}
		if i+2 < len(tokens) {
			add(tokens[i] + " " + tokens[i+1] + " " + tokens[i+2])
		}
	}

	keywords := make([]Keyword, 0, len(index))
	for _, kw := range index {
		if kw.isNgram() && kw.Count < ngramMinCount && !kw.TechnicalSkill {
			continue
		}
		keywords = append(keywords, *kw)
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		si, sj := keywords[i].rank(), keywords[j].rank()
		if si != sj {
			return si > sj
		}
		return keywords[i].first < keywords[j].first
	})

	if maxKeywords > 0 && len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

func (k Keyword) isNgram() bool {
	for i := 0; i < len(k.Text); i++ {
		if k.Text[i] == ' ' {
			return true
		}
	}
	return false
}

func (k Keyword) rank() int {
	if k.TechnicalSkill {
		return k.Count * skillBoost
	}
	return k.Count
}
