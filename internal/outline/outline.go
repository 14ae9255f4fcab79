// Package outline recovers document structure from styled text spans: a
// title guess and a leveled H1-H3 heading list, inferred from typographic
// and lexical cues with no ground truth to lean on.
package outline

import (
	"sort"

	"github.com/dgallion1/docsift/internal/extractor"
)

// Heading is one confirmed outline entry. Ordering is page-ascending with
// original discovery order preserved within a page.
type Heading struct {
	Level int
	Text  string
	Page  int
}

// Outline is the recovered structure of one document.
type Outline struct {
	Title    string
	Headings []Heading
}

// Builder assembles outlines from classified spans.
type Builder struct {
	classifier *Classifier
}

func NewBuilder() *Builder {
	return &Builder{classifier: NewClassifier()}
}

// Build profiles the document's fonts, classifies every span, and assembles
// the repaired outline. Zero spans yield the untitled empty outline.
func (b *Builder) Build(spans []extractor.Span) Outline {
	profile := BuildProfile(spans)

	var headings []Heading
	for _, span := range spans {
		cand := b.classifier.Classify(span, profile)
		if !cand.IsHeading {
			continue
		}
		headings = append(headings, Heading{
			Level: cand.Level,
			Text:  CleanHeadingText(span.Text),
			Page:  span.Page,
		})
	}

	sort.SliceStable(headings, func(i, j int) bool {
		return headings[i].Page < headings[j].Page
	})
	repairHierarchy(headings)

	return Outline{
		Title:    DetectTitle(spans),
		Headings: headings,
	}
}

// repairHierarchy walks the page-ordered headings once and clamps any level
// that jumps more than one step deeper than its predecessor. Level decreases
// of any depth are always legal.
func repairHierarchy(headings []Heading) {
	for i := 1; i < len(headings); i++ {
		if headings[i].Level > headings[i-1].Level+1 {
			headings[i].Level = headings[i-1].Level + 1
		}
	}
}
