package outline

import (
	"unicode/utf8"

	"github.com/dgallion1/docsift/internal/extractor"
)

// UntitledDocument is the title sentinel when no span qualifies.
const UntitledDocument = "Untitled Document"

const (
	titleScanSpans  = 20
	titleAvgWindow  = 50
	titleMinChars   = 3
	titleMaxChars   = 100
	titleIdealMin   = 10
	titleIdealMax   = 80
	titleSizeFactor = 1.2
)

// DetectTitle scans the leading spans of a document for the most title-like
// line. The very first line scores lower than lines 2-5: running headers and
// journal banners often precede the true title.
func DetectTitle(spans []extractor.Span) string {
	if len(spans) == 0 {
		return UntitledDocument
	}

	// Local average size over the leading window. This is deliberately a
	// different statistic than the document-wide modal body size used for
	// heading classification; the two were tuned independently.
	window := len(spans)
	if window > titleAvgWindow {
		window = titleAvgWindow
	}
	var sum float64
	for _, s := range spans[:window] {
		sum += s.Size
	}
	avgSize := sum / float64(window)

	limit := len(spans)
	if limit > titleScanSpans {
		limit = titleScanSpans
	}

	best := ""
	bestScore := 0.0
	for i, span := range spans[:limit] {
		text := span.Text
		// Character count, not bytes: accented titles must not be
		// filtered early.
		if n := utf8.RuneCountInString(text); n < titleMinChars || n > titleMaxChars {
			continue
		}

		score := titleScore(span, i, avgSize)
		if best == "" || score > bestScore {
			best = text
			bestScore = score
		}
	}

	if best == "" {
		return UntitledDocument
	}
	return best
}

func titleScore(span extractor.Span, position int, avgSize float64) float64 {
	score := 0.0
	textLen := utf8.RuneCountInString(span.Text)

	switch {
	case position == 0:
		score += 3
	case position < 5:
		score += 5
	case position < 10:
		score += 2
	}

	if avgSize > 0 && span.Size > avgSize*titleSizeFactor {
		score += 4
	}
	if span.IsBold() {
		score += 3
	}

	switch {
	case textLen >= titleIdealMin && textLen <= titleIdealMax:
		score += 2
	case textLen < titleIdealMin:
		score -= 2
	}

	if LooksLikeTitle(span.Text) {
		score += 3
	}

	return score
}
