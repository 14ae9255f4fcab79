package pipeline

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dgallion1/docsift/internal/config"
	"github.com/dgallion1/docsift/internal/relevance"
)

func testOrchestrator() *Orchestrator {
	cfg := config.Config{
		WorkerCount:     2,
		DocumentTimeout: 10 * time.Second,
		TopSections:     10,
		TopSubsections:  8,
		RefineTopN:      15,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewOrchestrator(cfg, relevance.NewScorer(nil, nil, nil), log)
}

const reportMarkdown = `# Annual Report

Detailed analysis of results and findings from the market study, covering growth trends and performance statistics across all business segments.

## Methodology Overview

The methodology and approach used for data collection and evaluation, with comparison against previous studies in the literature.
`

func TestAnalyze(t *testing.T) {
	o := testOrchestrator()
	inputs := []Input{
		{Filename: "report.md", Data: []byte(reportMarkdown)},
		{Filename: "notes.md", Data: []byte("# Meeting Notes\n\nGeneral discussion about analysis of market trends and statistics gathered this quarter for the growth review.\n")},
	}

	res := o.Analyze(context.Background(), inputs, "analyst", "trend analysis")

	if res.Metadata.RunID == "" {
		t.Error("expected a run ID")
	}
	if len(res.Metadata.Documents) != 2 {
		t.Fatalf("expected 2 processed documents, got %d", len(res.Metadata.Documents))
	}
	if res.Metadata.Documents[0].Title != "Annual Report" {
		t.Errorf("unexpected document title %q", res.Metadata.Documents[0].Title)
	}
	if res.Metadata.TotalSectionsAnalyzed < 3 {
		t.Errorf("expected at least 3 sections analyzed, got %d", res.Metadata.TotalSectionsAnalyzed)
	}
	if res.Metadata.Reason != "" {
		t.Errorf("unexpected reason %q", res.Metadata.Reason)
	}

	if len(res.Sections) == 0 {
		t.Fatal("expected ranked sections")
	}
	for i, sec := range res.Sections {
		if sec.ImportanceRank != i+1 {
			t.Errorf("section %d: rank %d", i, sec.ImportanceRank)
		}
		if !strings.HasPrefix(sec.Level, "H") {
			t.Errorf("section %d: level %q not H-formatted", i, sec.Level)
		}
		if i > 0 && res.Sections[i].RelevanceScore > res.Sections[i-1].RelevanceScore {
			t.Errorf("section scores not descending at index %d", i)
		}
	}

	if len(res.Subsections) == 0 {
		t.Error("expected refined subsections")
	}
	for _, sub := range res.Subsections {
		if len(sub.RefinedText) < relevance.MinRefinedChars {
			t.Errorf("refined text below minimum: %q", sub.RefinedText)
		}
	}
}

func TestAnalyze_ResultIsReproducible(t *testing.T) {
	o := testOrchestrator()
	inputs := []Input{
		{Filename: "a.md", Data: []byte(reportMarkdown)},
		{Filename: "b.md", Data: []byte(reportMarkdown)},
		{Filename: "c.md", Data: []byte(reportMarkdown)},
	}

	first := o.Analyze(context.Background(), inputs, "researcher", "literature review")
	second := o.Analyze(context.Background(), inputs, "researcher", "literature review")

	if len(first.Sections) != len(second.Sections) {
		t.Fatalf("section counts differ: %d vs %d", len(first.Sections), len(second.Sections))
	}
	for i := range first.Sections {
		a, b := first.Sections[i], second.Sections[i]
		if a.DocName != b.DocName || a.SectionTitle != b.SectionTitle || a.RelevanceScore != b.RelevanceScore {
			t.Errorf("runs diverge at section %d: %+v vs %+v", i, a, b)
		}
	}
}

func TestAnalyze_NoInputs(t *testing.T) {
	o := testOrchestrator()
	res := o.Analyze(context.Background(), nil, "analyst", "trend analysis")

	if res.Metadata.Reason != "No documents provided" {
		t.Errorf("unexpected reason %q", res.Metadata.Reason)
	}
	if len(res.Sections) != 0 || len(res.Subsections) != 0 {
		t.Error("empty batch must yield empty section lists")
	}
}

func TestAnalyze_NoSectionsExtracted(t *testing.T) {
	o := testOrchestrator()
	inputs := []Input{
		{Filename: "plain.txt", Data: []byte("just some ordinary lowercase prose with no structure at all\n")},
	}

	res := o.Analyze(context.Background(), inputs, "analyst", "trend analysis")
	if res.Metadata.Reason != "No sections extracted from documents" {
		t.Errorf("unexpected reason %q", res.Metadata.Reason)
	}
	if len(res.Metadata.Documents) != 1 {
		t.Errorf("document should still be reported as processed, got %d", len(res.Metadata.Documents))
	}
}

func TestAnalyze_SkipsFailedDocuments(t *testing.T) {
	o := testOrchestrator()
	inputs := []Input{
		{Filename: "image.png", Data: []byte{0x89, 0x50}},
		{Filename: "report.md", Data: []byte(reportMarkdown)},
	}

	res := o.Analyze(context.Background(), inputs, "analyst", "trend analysis")
	if len(res.Metadata.Documents) != 1 {
		t.Fatalf("expected 1 processed document after skip, got %d", len(res.Metadata.Documents))
	}
	if res.Metadata.Documents[0].Name != "report" {
		t.Errorf("unexpected surviving document %q", res.Metadata.Documents[0].Name)
	}
	if len(res.Sections) == 0 {
		t.Error("surviving document must still be ranked")
	}
}

func TestAnalyze_TimeoutSkipsDocument(t *testing.T) {
	cfg := config.Config{
		WorkerCount:     1,
		DocumentTimeout: time.Nanosecond,
		TopSections:     10,
		TopSubsections:  8,
		RefineTopN:      15,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	o := NewOrchestrator(cfg, relevance.NewScorer(nil, nil, nil), log)

	// Enough content that extraction cannot finish inside the window.
	inputs := []Input{{Filename: "report.md", Data: []byte(strings.Repeat(reportMarkdown, 200))}}
	res := o.Analyze(context.Background(), inputs, "analyst", "trend analysis")

	if len(res.Metadata.Documents) != 0 {
		t.Fatalf("expected expired document to be skipped, got %d processed", len(res.Metadata.Documents))
	}
	if res.Metadata.Reason != "No sections extracted from documents" {
		t.Errorf("unexpected reason %q", res.Metadata.Reason)
	}
	if len(res.Sections) != 0 || len(res.Subsections) != 0 {
		t.Error("expired batch must yield empty section lists")
	}
}

func TestAnalyze_ZeroWorkerConfig(t *testing.T) {
	cfg := config.Config{
		DocumentTimeout: 10 * time.Second,
		TopSections:     10,
		TopSubsections:  8,
		RefineTopN:      15,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	o := NewOrchestrator(cfg, relevance.NewScorer(nil, nil, nil), log)

	inputs := []Input{{Filename: "report.md", Data: []byte(reportMarkdown)}}
	res := o.Analyze(context.Background(), inputs, "analyst", "trend analysis")

	if len(res.Metadata.Documents) != 1 {
		t.Fatalf("zero-worker config must still process the batch, got %d documents", len(res.Metadata.Documents))
	}
	if len(res.Sections) == 0 {
		t.Error("expected ranked sections from the clamped pool")
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{3.14159, 3.14},
		{0.999, 1.0},
		{10, 10},
		{0, 0},
	}
	for _, tc := range cases {
		if got := round2(tc.in); got != tc.want {
			t.Errorf("round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
