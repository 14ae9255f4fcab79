package relevance

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeywordSet holds one persona's or job's weighted keyword categories. High
// and medium keywords add relevance; low keywords actively subtract it.
type KeywordSet struct {
	High   []string `yaml:"high"`
	Medium []string `yaml:"medium"`
	Low    []string `yaml:"low"`
}

// Taxonomy maps a lowercase persona or job name to its keyword set. It is
// read-only after construction and safe to share across workers without
// locking.
type Taxonomy map[string]KeywordSet

// Lexicon maps language -> canonical English term -> foreign synonyms, for
// cross-lingual keyword credit.
type Lexicon map[string]map[string][]string

// Lookup finds the keyword set for a name, case-insensitively.
func (t Taxonomy) Lookup(name string) (KeywordSet, bool) {
	ks, ok := t[strings.ToLower(strings.TrimSpace(name))]
	return ks, ok
}

// DefaultPersonas returns the built-in persona taxonomy.
func DefaultPersonas() Taxonomy {
	return Taxonomy{
		"researcher": {
			High: []string{"methodology", "methods", "approach", "experiment", "study", "analysis",
				"results", "findings", "conclusion", "discussion", "literature", "review",
				"dataset", "benchmark", "evaluation", "performance", "comparison"},
			Medium: []string{"introduction", "background", "related work", "future work", "limitations",
				"abstract", "summary", "overview"},
			Low: []string{"acknowledgments", "references", "appendix", "biography"},
		},
		"student": {
			High: []string{"definition", "concept", "principle", "theory", "example", "formula",
				"equation", "key", "important", "fundamental", "basic", "overview",
				"introduction", "summary", "conclusion"},
			Medium: []string{"application", "practice", "exercise", "problem", "solution",
				"case study", "illustration"},
			Low: []string{"advanced", "complex", "detailed", "technical", "specialized"},
		},
		"analyst": {
			High: []string{"revenue", "profit", "growth", "market", "trend", "analysis", "data",
				"statistics", "performance", "metrics", "kpi", "roi", "strategy",
				"competitive", "financial", "economic", "business"},
			Medium: []string{"overview", "summary", "background", "context", "industry",
				"sector", "comparison"},
			Low: []string{"technical", "implementation", "detailed", "appendix"},
		},
		"manager": {
			High: []string{"strategy", "planning", "decision", "management", "leadership",
				"team", "project", "goal", "objective", "outcome", "result",
				"performance", "efficiency", "productivity"},
			Medium: []string{"process", "workflow", "implementation", "execution",
				"coordination", "communication"},
			Low: []string{"technical", "detailed", "specification", "code"},
		},
	}
}

// DefaultJobs returns the built-in job taxonomy.
func DefaultJobs() Taxonomy {
	return Taxonomy{
		"literature review": {
			High: []string{"literature", "review", "survey", "related work", "previous",
				"existing", "comparison", "analysis", "methodology", "approach"},
			Medium: []string{"introduction", "background", "conclusion", "summary"},
			Low:    []string{"implementation", "technical", "detailed"},
		},
		"trend analysis": {
			High: []string{"trend", "pattern", "growth", "change", "evolution", "development",
				"analysis", "data", "statistics", "comparison", "temporal"},
			Medium: []string{"overview", "summary", "context", "background"},
			Low:    []string{"technical", "implementation", "detailed"},
		},
		"exam prep": {
			High: []string{"key", "important", "fundamental", "concept", "definition",
				"principle", "formula", "equation", "example", "summary"},
			Medium: []string{"overview", "introduction", "conclusion", "review"},
			Low:    []string{"advanced", "detailed", "complex", "specialized"},
		},
		"competitive analysis": {
			High: []string{"competitive", "competitor", "comparison", "market", "analysis",
				"strategy", "advantage", "position", "performance"},
			Medium: []string{"overview", "industry", "sector", "context"},
			Low:    []string{"technical", "implementation", "detailed"},
		},
		"research methodology": {
			High: []string{"methodology", "method", "approach", "technique", "procedure",
				"experiment", "study", "analysis", "evaluation"},
			Medium: []string{"background", "related work", "literature"},
			Low:    []string{"results", "conclusion", "discussion"},
		},
	}
}

// DefaultLexicon returns the built-in multilingual synonym tables.
func DefaultLexicon() Lexicon {
	return Lexicon{
		"spanish": {
			"methodology":  {"metodología", "método", "enfoque"},
			"results":      {"resultados", "hallazgos"},
			"analysis":     {"análisis", "estudio"},
			"conclusion":   {"conclusión", "resumen"},
			"introduction": {"introducción", "presentación"},
		},
		"french": {
			"methodology":  {"méthodologie", "méthode", "approche"},
			"results":      {"résultats", "conclusions"},
			"analysis":     {"analyse", "étude"},
			"conclusion":   {"conclusion", "résumé"},
			"introduction": {"introduction", "présentation"},
		},
		"german": {
			"methodology":  {"methodologie", "methode", "ansatz"},
			"results":      {"ergebnisse", "resultate"},
			"analysis":     {"analyse", "studie"},
			"conclusion":   {"fazit", "zusammenfassung"},
			"introduction": {"einführung", "einleitung"},
		},
	}
}

// Overlay is a YAML-loadable extension of the built-in tables. Entries merge
// by name: an overlay persona/job/language replaces the built-in one of the
// same name and otherwise extends the table.
type Overlay struct {
	Personas Taxonomy `yaml:"personas"`
	Jobs     Taxonomy `yaml:"jobs"`
	Lexicon  Lexicon  `yaml:"lexicon"`
}

// LoadOverlay reads a taxonomy overlay from a YAML file.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}
	var ov Overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parse taxonomy file: %w", err)
	}
	return &ov, nil
}

// Merge returns a new taxonomy with the overlay's entries applied on top of
// the receiver. The receiver is not modified.
func (t Taxonomy) Merge(over Taxonomy) Taxonomy {
	merged := make(Taxonomy, len(t)+len(over))
	for name, ks := range t {
		merged[name] = ks
	}
	for name, ks := range over {
		merged[strings.ToLower(name)] = ks
	}
	return merged
}

// Merge returns a new lexicon with the overlay's languages applied on top of
// the receiver. The receiver is not modified.
func (l Lexicon) Merge(over Lexicon) Lexicon {
	merged := make(Lexicon, len(l)+len(over))
	for lang, terms := range l {
		merged[lang] = terms
	}
	for lang, terms := range over {
		merged[strings.ToLower(lang)] = terms
	}
	return merged
}
