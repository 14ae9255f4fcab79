package outline

import (
	"sort"

	"github.com/dgallion1/docsift/internal/extractor"
)

// DefaultBodySize is assumed when a document has no spans to measure.
const DefaultBodySize = 12.0

// FontProfile holds document-wide typographic statistics. BodySize is the
// modal span size and is the denominator for every size-ratio heuristic.
type FontProfile struct {
	BodySize   float64
	SizeCounts map[float64]int
	MinSize    float64
	MaxSize    float64
	AvgSize    float64
}

// BuildProfile computes the font profile for one document's spans. Empty
// input yields the default profile rather than an error.
func BuildProfile(spans []extractor.Span) FontProfile {
	if len(spans) == 0 {
		return FontProfile{
			BodySize:   DefaultBodySize,
			SizeCounts: map[float64]int{},
			MinSize:    DefaultBodySize,
			MaxSize:    DefaultBodySize,
			AvgSize:    DefaultBodySize,
		}
	}

	counts := make(map[float64]int, 8)
	minSize := spans[0].Size
	maxSize := spans[0].Size
	var sum float64
	for _, s := range spans {
		counts[s.Size]++
		sum += s.Size
		if s.Size < minSize {
			minSize = s.Size
		}
		if s.Size > maxSize {
			maxSize = s.Size
		}
	}

	// Mode, ties broken by the smaller size.
	sizes := make([]float64, 0, len(counts))
	for size := range counts {
		sizes = append(sizes, size)
	}
	sort.Float64s(sizes)

	bodySize := sizes[0]
	for _, size := range sizes[1:] {
		if counts[size] > counts[bodySize] {
			bodySize = size
		}
	}
	if bodySize <= 0 {
		bodySize = DefaultBodySize
	}

	return FontProfile{
		BodySize:   bodySize,
		SizeCounts: counts,
		MinSize:    minSize,
		MaxSize:    maxSize,
		AvgSize:    sum / float64(len(spans)),
	}
}
