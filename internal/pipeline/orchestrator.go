// Package pipeline runs the per-document structure-recovery stages on a
// worker pool and reduces the results into one globally ranked record.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dgallion1/docsift/internal/config"
	"github.com/dgallion1/docsift/internal/extractor"
	"github.com/dgallion1/docsift/internal/outline"
	"github.com/dgallion1/docsift/internal/relevance"
	"github.com/dgallion1/docsift/internal/section"
)

// Input is one document handed to an analysis run.
type Input struct {
	Filename string
	Data     []byte
}

// Orchestrator runs batch analyses. It is safe for concurrent use: the
// outline builder and scorer hold only read-only state.
type Orchestrator struct {
	cfg     config.Config
	builder *outline.Builder
	scorer  *relevance.Scorer
	log     *slog.Logger
}

func NewOrchestrator(cfg config.Config, scorer *relevance.Scorer, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:     cfg,
		builder: outline.NewBuilder(),
		scorer:  scorer,
		log:     log,
	}
}

type docOutput struct {
	info     DocumentInfo
	sections []section.Section
	err      error
}

// Analyze processes every input document on a worker pool, then scores and
// ranks the combined section set for the persona/job pair. Per-document
// failures are logged and skipped; the batch never aborts. A batch yielding
// zero sections produces a well-formed empty result.
func (o *Orchestrator) Analyze(ctx context.Context, inputs []Input, persona, job string) Result {
	start := time.Now()
	runID := uuid.NewString()
	log := o.log.With("run_id", runID, "persona", persona, "job", job)

	if len(inputs) == 0 {
		return o.emptyResult(runID, persona, job, "No documents provided")
	}

	// Per-document stages have no cross-document dependency; fan out.
	outputs := make([]docOutput, len(inputs))
	jobs := make(chan int)
	var wg sync.WaitGroup

	// A hand-built Config can carry a non-positive WorkerCount; zero
	// workers would leave the sends below blocked forever.
	workers := o.cfg.WorkerCount
	if workers < 1 {
		workers = 1
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outputs[i] = o.processDocument(ctx, inputs[i])
			}
		}()
	}
	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// Sequential reduction: ranks are global across the batch, and input
	// order must be preserved so score ties break reproducibly.
	var processed []DocumentInfo
	var allSections []section.Section
	for i, out := range outputs {
		if out.err != nil {
			log.Warn("document skipped", "filename", inputs[i].Filename, "error", out.err)
			continue
		}
		processed = append(processed, out.info)
		allSections = append(allSections, out.sections...)
	}

	if len(allSections) == 0 {
		r := o.emptyResult(runID, persona, job, "No sections extracted from documents")
		r.Metadata.Documents = processed
		r.Metadata.ProcessingSeconds = round2(time.Since(start).Seconds())
		return r
	}

	log.Info("ranking sections", "documents", len(processed), "sections", len(allSections))
	ranked := o.scorer.Rank(allSections, persona, job)
	subsections := relevance.Refine(ranked, o.cfg.RefineTopN)

	sections := sectionResults(ranked, o.cfg.TopSections)
	return Result{
		Metadata: Metadata{
			RunID:                 runID,
			Documents:             processed,
			Persona:               persona,
			Job:                   job,
			Timestamp:             time.Now(),
			ProcessingSeconds:     round2(time.Since(start).Seconds()),
			TotalSectionsAnalyzed: len(allSections),
			TopSectionsSelected:   len(sections),
		},
		Sections:    sections,
		Subsections: subsectionResults(subsections, o.cfg.TopSubsections),
	}
}

// processDocument runs extraction, outline recovery, and materialization for
// one document under the configured timeout. Extraction libraries are not
// context-aware, so expiry abandons the goroutine and skips the document.
func (o *Orchestrator) processDocument(ctx context.Context, in Input) docOutput {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.DocumentTimeout)
	defer cancel()

	ext, err := extractor.ForFile(in.Filename)
	if err != nil {
		return docOutput{err: err}
	}

	type extracted struct {
		doc *extractor.Document
		err error
	}
	ch := make(chan extracted, 1)
	go func() {
		doc, err := ext.Extract(bytes.NewReader(in.Data), in.Filename)
		ch <- extracted{doc: doc, err: err}
	}()

	var doc *extractor.Document
	select {
	case <-ctx.Done():
		return docOutput{err: fmt.Errorf("extract %s: %w", in.Filename, ctx.Err())}
	case e := <-ch:
		if e.err != nil {
			return docOutput{err: fmt.Errorf("extract %s: %w", in.Filename, e.err)}
		}
		doc = e.doc
	}

	ol := o.builder.Build(doc.Spans)
	sections := section.Materialize(doc, ol)

	return docOutput{
		info: DocumentInfo{
			Name:          doc.Name,
			Title:         ol.Title,
			SectionsCount: len(sections),
		},
		sections: sections,
	}
}

func (o *Orchestrator) emptyResult(runID, persona, job, reason string) Result {
	return Result{
		Metadata: Metadata{
			RunID:     runID,
			Documents: []DocumentInfo{},
			Persona:   persona,
			Job:       job,
			Timestamp: time.Now(),
			Reason:    reason,
		},
		Sections:    []SectionResult{},
		Subsections: []SubsectionResult{},
	}
}
