package relevance

import "strings"

// Match-reason strings are explanatory only: they name up to the first three
// matched high keywords, fall back to medium keywords, and degrade to a
// generic phrase. They never feed back into scoring.

const maxReasonKeywords = 3

func (s *Scorer) personaMatchReason(text, persona string) string {
	ks, ok := s.personas[persona]
	if !ok {
		return "Generic match"
	}
	if m := matchedKeywords(text, ks.High); len(m) > 0 {
		return "High relevance: " + strings.Join(m, ", ")
	}
	if m := matchedKeywords(text, ks.Medium); len(m) > 0 {
		return "Medium relevance: " + strings.Join(m, ", ")
	}
	return "Low relevance match"
}

func (s *Scorer) jobMatchReason(text, job string) string {
	ks, ok := s.jobs[job]
	if !ok {
		return "Generic job match"
	}
	if m := matchedKeywords(text, ks.High); len(m) > 0 {
		return "Job-relevant: " + strings.Join(m, ", ")
	}
	return "General job relevance"
}

func matchedKeywords(text string, keywords []string) []string {
	var matches []string
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			matches = append(matches, kw)
			if len(matches) == maxReasonKeywords {
				break
			}
		}
	}
	return matches
}
