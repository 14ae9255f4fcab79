package outline

import (
	"regexp"
	"strings"
	"unicode"
)

// Lexical cues for headings and titles. Keyword sets cover English, Spanish,
// French, and German section vocabulary.

var headingIndicators = []*regexp.Regexp{
	// Numbered sections.
	regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s+`),
	regexp.MustCompile(`^\d+\.\d+\.?\s+`),
	regexp.MustCompile(`^\d+\.?\s+`),

	// Roman numerals and letter enumerations.
	regexp.MustCompile(`^[IVX]+\.?\s+`),
	regexp.MustCompile(`^[A-Z]\.\s+`),

	// Heading keywords.
	regexp.MustCompile(`(?i)^(chapter|section|part|appendix)\s+`),
	regexp.MustCompile(`(?i)^(capítulo|sección|parte|apéndice)\s+`),
	regexp.MustCompile(`(?i)^(chapitre|partie|annexe)\s+`),
	regexp.MustCompile(`(?i)^(kapitel|abschnitt|teil|anhang)\s+`),
}

var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(introduction|overview|summary|conclusion|abstract|preface)\b`),
	regexp.MustCompile(`\b(chapter|section|part)\s+\d+`),
	regexp.MustCompile(`\b(user\s+guide|manual|handbook|tutorial)\b`),
	regexp.MustCompile(`\b(introducción|resumen|conclusión|capítulo|sección)\b`),
	regexp.MustCompile(`\b(résumé|chapitre)\b`),
	regexp.MustCompile(`\b(einführung|zusammenfassung|fazit|kapitel|abschnitt)\b`),
	regexp.MustCompile(`\b(analysis|research|study|report|documentation)\b`),
}

var nonTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.\d+`),     // version numbers
	regexp.MustCompile(`^page\s+\d+`),   // page numbers
	regexp.MustCompile(`^figure\s+\d+`), // figure captions
	regexp.MustCompile(`^table\s+\d+`),  // table captions
	regexp.MustCompile(`^\w+@\w+\.`),    // email addresses
	regexp.MustCompile(`^https?://`),    // URLs
}

var leadingNumbering = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s*`),
	regexp.MustCompile(`^\d+\.\d+\.?\s*`),
	regexp.MustCompile(`^\d+\.?\s*`),
	regexp.MustCompile(`^[IVX]+\.?\s+`),
	regexp.MustCompile(`^[A-Z]\.\s+`),
}

var (
	contentLevel3 = regexp.MustCompile(`^\d+\.\d+\.\d+`)
	contentLevel2 = regexp.MustCompile(`^\d+\.\d+`)
	contentLevel1 = regexp.MustCompile(`^\d+\.`)
	specialChars  = regexp.MustCompile(`[^\w\s]`)
)

var chapterWords = []string{"chapter", "capítulo", "chapitre", "kapitel"}
var sectionWords = []string{"section", "sección", "abschnitt"}

// LooksLikeHeading reports whether text carries a lexical heading cue:
// a numbered/enumerated prefix, a section keyword, or title case.
func LooksLikeHeading(text string) bool {
	for _, re := range headingIndicators {
		if re.MatchString(text) {
			return true
		}
	}
	return isTitleCase(text)
}

// LooksLikeTitle reports whether text plausibly is a document title.
func LooksLikeTitle(text string) bool {
	lower := strings.ToLower(text)

	for _, re := range nonTitlePatterns {
		if re.MatchString(lower) {
			return false
		}
	}
	for _, re := range titlePatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	if isTitleCase(text) {
		return true
	}

	// Too many special characters suggests a decorative or garbled line.
	if len(text) > 0 {
		special := len(specialChars.FindAllString(text, -1))
		if float64(special)/float64(len(text)) > 0.3 {
			return false
		}
	}
	return true
}

// ContentLevelHint derives a heading level from lexical cues alone: explicit
// N.N.N numbering wins, then chapter/section vocabulary, defaulting to 2.
func ContentLevelHint(text string) int {
	switch {
	case contentLevel3.MatchString(text):
		return 3
	case contentLevel2.MatchString(text):
		return 2
	case contentLevel1.MatchString(text):
		return 1
	}

	lower := strings.ToLower(text)
	for _, w := range chapterWords {
		if strings.Contains(lower, w) {
			return 1
		}
	}
	for _, w := range sectionWords {
		if strings.Contains(lower, w) {
			return 2
		}
	}
	return 2
}

// CleanHeadingText strips leading numbering and surrounding whitespace from a
// detected heading. The raw text is returned if cleaning removes everything.
func CleanHeadingText(text string) string {
	cleaned := strings.TrimSpace(text)
	for _, re := range leadingNumbering {
		if re.MatchString(cleaned) {
			cleaned = strings.TrimSpace(re.ReplaceAllString(cleaned, ""))
			break
		}
	}
	if cleaned == "" {
		return strings.TrimSpace(text)
	}
	return cleaned
}

// isTitleCase reports whether at least 70% of the words in a multi-word text
// start with an uppercase letter.
func isTitleCase(text string) bool {
	words := strings.Fields(text)
	if len(words) < 2 {
		return false
	}
	capitalized := 0
	for _, word := range words {
		r := []rune(word)[0]
		if unicode.IsUpper(r) {
			capitalized++
		}
	}
	return float64(capitalized)/float64(len(words)) >= 0.7
}

// isAllUpper reports whether text contains at least one letter and no
// lowercase letters.
func isAllUpper(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
