package relevance

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultTopSections is how many ranked sections the refiner considers.
	DefaultTopSections = 15

	// MinRefinedChars drops refined text too thin to be useful.
	MinRefinedChars = 50

	maxRefinedChars     = 1000
	sentenceSearchFloor = 500
)

// Subsection is a cleaned, length-bounded excerpt from a top-ranked section.
// Display-only: it is never fed back into scoring.
type Subsection struct {
	DocName      string
	Page         int
	SectionTitle string
	RefinedText  string
	Score        float64
	Rank         int
}

var (
	wsRun = regexp.MustCompile(`\s+`)

	// Page-number boilerplate, multilingual: "page 7", "página 7",
	// "3 of 12", "3 de 12", "3 sur 12", "3 von 12".
	pageNumberPattern = regexp.MustCompile(`(?i)\b(page|página)\s+\d+\b`)
	pageOfPattern     = regexp.MustCompile(`(?i)\b\d+\s+(of|de|sur|von)\s+\d+\b`)

	// Conservative safe set: letters, digits, whitespace, basic punctuation.
	unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}_\s.,;:!?()-]`)
)

// Refine cleans and bounds the text of the top-ranked sections. Sections
// whose text refines to fewer than MinRefinedChars characters are dropped.
func Refine(ranked []ScoredSection, topN int) []Subsection {
	if topN <= 0 {
		topN = DefaultTopSections
	}
	if topN > len(ranked) {
		topN = len(ranked)
	}

	subsections := make([]Subsection, 0, topN)
	for _, sec := range ranked[:topN] {
		refined := refineText(sec.Text)
		if utf8.RuneCountInString(refined) < MinRefinedChars {
			continue
		}
		subsections = append(subsections, Subsection{
			DocName:      sec.DocName,
			Page:         sec.Page,
			SectionTitle: sec.Title,
			RefinedText:  refined,
			Score:        sec.Score,
			Rank:         sec.Rank,
		})
	}
	return subsections
}

// refineText strips boilerplate and artifacts, then truncates at a sentence
// boundary when the text runs long.
func refineText(text string) string {
	if text == "" {
		return ""
	}

	text = pageNumberPattern.ReplaceAllString(text, "")
	text = pageOfPattern.ReplaceAllString(text, "")
	text = unsafeChars.ReplaceAllString(text, " ")
	text = wsRun.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	// Length limits count characters, not bytes; accented and CJK text
	// must not hit them early.
	if runes := []rune(text); len(runes) > maxRefinedChars {
		truncated := runes[:maxRefinedChars]
		last := -1
		for i := len(truncated) - 1; i > sentenceSearchFloor; i-- {
			if truncated[i] == '.' {
				last = i
				break
			}
		}
		if last >= 0 {
			text = string(truncated[:last+1])
		} else {
			text = string(truncated) + "..."
		}
	}

	return strings.TrimSpace(text)
}
