package outline

import (
	"unicode/utf8"

	"github.com/dgallion1/docsift/internal/extractor"
)

// Classification thresholds and score contributions. The score is a plain
// additive accumulation, floored at zero.
const (
	headingThreshold = 2.8
	confidenceScale  = 5.0

	sizeRatioLarge  = 1.8
	sizeRatioMedium = 1.4
	sizeRatioSmall  = 1.1

	scoreSizeLarge  = 2.5
	scoreSizeMedium = 1.8
	scoreSizeSmall  = 1.0
	scoreBold       = 1.0
	scoreItalic     = 0.3
	scorePattern    = 1.0
	scoreAllCaps    = 1.0
	penaltyLongText = 1.5
	longTextChars   = 200
	allCapsMaxChars = 50
)

// Candidate is the classifier's verdict for one span. It is transient: the
// outline builder consumes it and keeps only confirmed headings.
type Candidate struct {
	Span       extractor.Span
	Score      float64
	IsHeading  bool
	Level      int
	Confidence float64
}

// Classifier scores spans as headings and assigns levels.
type Classifier struct {
	levels LevelRule
}

func NewClassifier() *Classifier {
	return &Classifier{levels: DefaultLevelRule()}
}

// Classify scores one span against the document's font profile.
func (c *Classifier) Classify(span extractor.Span, profile FontProfile) Candidate {
	score := 0.0
	text := span.Text
	textLen := utf8.RuneCountInString(text)
	ratio := span.Size / profile.BodySize

	switch {
	case ratio >= sizeRatioLarge:
		score += scoreSizeLarge
	case ratio >= sizeRatioMedium:
		score += scoreSizeMedium
	case ratio >= sizeRatioSmall:
		score += scoreSizeSmall
	}

	if span.IsBold() {
		score += scoreBold
	}
	if span.IsItalic() {
		score += scoreItalic
	}

	if LooksLikeHeading(text) {
		score += scorePattern
	}
	if isAllUpper(text) && textLen <= allCapsMaxChars {
		score += scoreAllCaps
	}
	if textLen > longTextChars {
		score -= penaltyLongText
	}

	if score < 0 {
		score = 0
	}

	cand := Candidate{
		Span:       span,
		Score:      score,
		Confidence: score / confidenceScale,
	}
	if cand.Confidence > 1.0 {
		cand.Confidence = 1.0
	}
	if score >= headingThreshold {
		cand.IsHeading = true
		cand.Level = c.levels.Resolve(ContentLevelHint(text), sizeLevelHint(ratio))
	}
	return cand
}
