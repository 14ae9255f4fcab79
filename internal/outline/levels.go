package outline

// LevelRule resolves a final heading level from two independent hints: one
// derived from lexical content, one from relative font size. The numerically
// smaller hint wins, then the result is clamped into [MinLevel, MaxLevel].
type LevelRule struct {
	MinLevel int
	MaxLevel int
}

// DefaultLevelRule clamps resolved levels to the H1..H3 range.
func DefaultLevelRule() LevelRule {
	return LevelRule{MinLevel: 1, MaxLevel: 3}
}

// Resolve combines the two hints and clamps the result into range.
func (r LevelRule) Resolve(contentHint, sizeHint int) int {
	level := contentHint
	if sizeHint < level {
		level = sizeHint
	}
	if level < r.MinLevel {
		level = r.MinLevel
	}
	if level > r.MaxLevel {
		level = r.MaxLevel
	}
	return level
}

// sizeLevelHint maps a span's size ratio against body text to a depth hint.
// Ratios below the smallest heading threshold hint past the valid range and
// rely on the clamp in Resolve.
func sizeLevelHint(ratio float64) int {
	switch {
	case ratio >= 1.8:
		return 1
	case ratio >= 1.4:
		return 2
	case ratio >= 1.1:
		return 3
	default:
		return 4
	}
}
