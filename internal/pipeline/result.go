package pipeline

import (
	"fmt"
	"math"
	"time"

	"github.com/dgallion1/docsift/internal/relevance"
)

// DocumentInfo summarizes one successfully processed document.
type DocumentInfo struct {
	Name          string `json:"name"`
	Title         string `json:"title"`
	SectionsCount int    `json:"sections_count"`
}

// Metadata describes one analysis run.
type Metadata struct {
	RunID                 string         `json:"run_id"`
	Documents             []DocumentInfo `json:"documents"`
	Persona               string         `json:"persona"`
	Job                   string         `json:"job"`
	Timestamp             time.Time      `json:"timestamp"`
	ProcessingSeconds     float64        `json:"processing_time_seconds"`
	TotalSectionsAnalyzed int            `json:"total_sections_analyzed"`
	TopSectionsSelected   int            `json:"top_sections_selected"`
	Reason                string         `json:"reason,omitempty"`
}

// SectionResult is one ranked section in the output record.
type SectionResult struct {
	DocName        string  `json:"doc_name"`
	Page           int     `json:"page"`
	SectionTitle   string  `json:"section_title"`
	Level          string  `json:"level"`
	ImportanceRank int     `json:"importance_rank"`
	RelevanceScore float64 `json:"relevance_score"`
	PersonaMatch   string  `json:"persona_match"`
	JobMatch       string  `json:"job_match"`
}

// SubsectionResult is one refined excerpt in the output record.
type SubsectionResult struct {
	DocName        string  `json:"doc_name"`
	Page           int     `json:"page"`
	SectionTitle   string  `json:"section_title"`
	RefinedText    string  `json:"refined_text"`
	RelevanceScore float64 `json:"relevance_score"`
	ImportanceRank int     `json:"importance_rank"`
}

// Result is the complete output of one batch analysis.
type Result struct {
	Metadata    Metadata           `json:"metadata"`
	Sections    []SectionResult    `json:"sections"`
	Subsections []SubsectionResult `json:"subsections"`
}

func sectionResults(ranked []relevance.ScoredSection, limit int) []SectionResult {
	if limit > len(ranked) {
		limit = len(ranked)
	}
	out := make([]SectionResult, 0, limit)
	for _, s := range ranked[:limit] {
		out = append(out, SectionResult{
			DocName:        s.DocName,
			Page:           s.Page,
			SectionTitle:   s.Title,
			Level:          fmt.Sprintf("H%d", s.Level),
			ImportanceRank: s.Rank,
			RelevanceScore: round2(s.Score),
			PersonaMatch:   s.PersonaMatch,
			JobMatch:       s.JobMatch,
		})
	}
	return out
}

func subsectionResults(subs []relevance.Subsection, limit int) []SubsectionResult {
	if limit > len(subs) {
		limit = len(subs)
	}
	out := make([]SubsectionResult, 0, limit)
	for _, s := range subs[:limit] {
		out = append(out, SubsectionResult{
			DocName:        s.DocName,
			Page:           s.Page,
			SectionTitle:   s.SectionTitle,
			RefinedText:    s.RefinedText,
			RelevanceScore: round2(s.Score),
			ImportanceRank: s.Rank,
		})
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
