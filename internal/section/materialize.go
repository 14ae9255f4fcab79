// Package section pairs recovered headings with the text content of their
// pages, producing the units the relevance stage scores.
package section

import (
	"strings"

	"github.com/dgallion1/docsift/internal/extractor"
	"github.com/dgallion1/docsift/internal/outline"
)

// MaxTextChars caps the stored text per section; longer page text is cut and
// marked with an ellipsis.
const MaxTextChars = 2000

// Section is a heading enriched with the plain text of its page.
type Section struct {
	DocName string
	Title   string
	Level   int
	Page    int
	Text    string
}

// Materialize builds one Section per outline heading. A page whose text is
// unavailable yields a section with empty text, never an error.
func Materialize(doc *extractor.Document, ol outline.Outline) []Section {
	sections := make([]Section, 0, len(ol.Headings))
	for _, h := range ol.Headings {
		sections = append(sections, Section{
			DocName: doc.Name,
			Title:   h.Text,
			Level:   h.Level,
			Page:    h.Page,
			Text:    cleanPageText(doc.TextForPage(h.Page)),
		})
	}
	return sections
}

// cleanPageText collapses whitespace runs and bounds the text length.
func cleanPageText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.Join(strings.Fields(text), " ")
	// The cap counts characters, not bytes.
	if runes := []rune(text); len(runes) > MaxTextChars {
		text = string(runes[:MaxTextChars]) + "..."
	}
	return strings.TrimSpace(text)
}
