// Package relevance scores recovered document sections against persona and
// job keyword taxonomies, ranks them globally, and refines the winners into
// presentable subsections.
package relevance

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dgallion1/docsift/internal/section"
)

// Component weights and keyword contributions.
const (
	personaWeight      = 0.6
	jobWeight          = 0.4
	multilingualWeight = 0.1

	highKeywordScore   = 3.0
	mediumKeywordScore = 2.0
	lowKeywordPenalty  = 0.5

	maxScore = 10.0
)

// ScoredSection is a section with its relevance verdict attached.
type ScoredSection struct {
	section.Section
	Score        float64
	PersonaMatch string
	JobMatch     string
	Rank         int // 1-based position in the ranking
}

// Scorer ranks sections for a persona/job pair. The taxonomy tables are
// immutable after construction; a single Scorer is safe for concurrent use.
type Scorer struct {
	personas Taxonomy
	jobs     Taxonomy
	lexicon  Lexicon
}

// NewScorer builds a scorer over the given tables. Nil tables fall back to
// the built-in defaults.
func NewScorer(personas Taxonomy, jobs Taxonomy, lexicon Lexicon) *Scorer {
	if personas == nil {
		personas = DefaultPersonas()
	}
	if jobs == nil {
		jobs = DefaultJobs()
	}
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Scorer{personas: personas, jobs: jobs, lexicon: lexicon}
}

// Rank scores every section and returns them ordered by descending score
// with 1-based ranks. The sort is stable: ties keep input order, so
// repeated runs over the same input are reproducible. Unknown persona or job
// names contribute zero and produce generic match reasons.
func (s *Scorer) Rank(sections []section.Section, persona, job string) []ScoredSection {
	persona = strings.ToLower(strings.TrimSpace(persona))
	job = strings.ToLower(strings.TrimSpace(job))

	scored := make([]ScoredSection, 0, len(sections))
	for _, sec := range sections {
		text := normalizeText(sec.Title + " " + sec.Text)
		scored = append(scored, ScoredSection{
			Section:      sec,
			Score:        s.score(text, sec, persona, job),
			PersonaMatch: s.personaMatchReason(text, persona),
			JobMatch:     s.jobMatchReason(text, job),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}

func (s *Scorer) score(text string, sec section.Section, persona, job string) float64 {
	score := keywordScore(text, persona, s.personas) * personaWeight
	score += keywordScore(text, job, s.jobs) * jobWeight
	score += s.multilingualBonus(text, persona, job) * multilingualWeight
	score += structuralBonus(sec)

	if score > maxScore {
		return maxScore
	}
	if score < 0 {
		return 0
	}
	return score
}

// keywordScore sums keyword contributions for one taxonomy entry, floored at
// zero before weighting so a pile of "low" hits in one taxonomy cannot eat
// into the other's contribution.
func keywordScore(text, name string, tax Taxonomy) float64 {
	ks, ok := tax[name]
	if !ok {
		return 0
	}

	score := 0.0
	for _, kw := range ks.High {
		if strings.Contains(text, kw) {
			score += highKeywordScore
		}
	}
	for _, kw := range ks.Medium {
		if strings.Contains(text, kw) {
			score += mediumKeywordScore
		}
	}
	for _, kw := range ks.Low {
		if strings.Contains(text, kw) {
			score -= lowKeywordPenalty
		}
	}

	if score < 0 {
		return 0
	}
	return score
}

// multilingualBonus credits foreign-language synonyms of terms that are
// high- or medium-importance for the active persona or job.
func (s *Scorer) multilingualBonus(text, persona, job string) float64 {
	bonus := 0.0
	for _, terms := range s.lexicon {
		for english, synonyms := range terms {
			for _, syn := range synonyms {
				if strings.Contains(text, normalizeText(syn)) && s.termRelevant(english, persona, job) {
					bonus += 1.0
				}
			}
		}
	}
	return bonus
}

func (s *Scorer) termRelevant(term, persona, job string) bool {
	for _, ks := range []KeywordSet{s.personas[persona], s.jobs[job]} {
		for _, kw := range ks.High {
			if kw == term {
				return true
			}
		}
		for _, kw := range ks.Medium {
			if kw == term {
				return true
			}
		}
	}
	return false
}

// structuralBonus rewards top-level headings and early pages; opening pages
// tend to carry the introductory material most personas want.
func structuralBonus(sec section.Section) float64 {
	bonus := 0.0
	switch sec.Level {
	case 1:
		bonus += 0.5
	case 2:
		bonus += 0.3
	case 3:
		bonus += 0.1
	}
	switch {
	case sec.Page <= 3:
		bonus += 0.5
	case sec.Page <= 10:
		bonus += 0.2
	}
	return bonus
}

// normalizeText lowercases and NFC-normalizes text for matching. PDF
// extractors often emit decomposed accents, which would otherwise miss the
// accented Spanish/French/German lexicon entries.
func normalizeText(text string) string {
	return strings.ToLower(norm.NFC.String(text))
}
