package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docsift/internal/config"
	"github.com/dgallion1/docsift/internal/extractor"
	"github.com/dgallion1/docsift/internal/pipeline"
)

var (
	analyzeInputDir  string
	analyzeOutputDir string
	analyzePersona   string
	analyzeJob       string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a directory of documents",
	Long: `Analyze every supported document in a directory and write the ranked
result JSON to the output directory.

With --persona and --job, all documents in the input directory form one
batch. Without them, the input directory is scanned for persona config JSON
files ({"persona":{"role":...},"job_to_be_done":{"task":...},"documents":
[{"filename":...}]}) and one batch is run per config.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInputDir, "input-dir", "input", "Directory with documents (and persona configs)")
	analyzeCmd.Flags().StringVar(&analyzeOutputDir, "output-dir", "output", "Directory for result JSON files")
	analyzeCmd.Flags().StringVar(&analyzePersona, "persona", "", "Reader persona (e.g. researcher)")
	analyzeCmd.Flags().StringVar(&analyzeJob, "job", "", "Job to be done (e.g. literature review)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	log := newLogger()
	cfg := config.Load()

	scorer, err := buildScorer(cfg)
	if err != nil {
		return err
	}
	orch := pipeline.NewOrchestrator(cfg, scorer, log)

	if err := os.MkdirAll(analyzeOutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	ctx := context.Background()

	if analyzePersona != "" && analyzeJob != "" {
		inputs, err := loadInputs(analyzeInputDir, nil)
		if err != nil {
			return err
		}
		result := orch.Analyze(ctx, inputs, analyzePersona, analyzeJob)
		path, err := writeResult(analyzeOutputDir, result)
		if err != nil {
			return err
		}
		log.Info("analysis complete", "output", path,
			"sections", result.Metadata.TotalSectionsAnalyzed,
			"seconds", result.Metadata.ProcessingSeconds)
		return nil
	}

	configs, err := findPersonaConfigs(analyzeInputDir, log)
	if err != nil {
		return err
	}
	if len(configs) == 0 {
		return fmt.Errorf("no persona config files found in %s (or pass --persona and --job)", analyzeInputDir)
	}

	for _, pc := range configs {
		inputs, err := loadInputs(pc.dir, pc.filenames)
		if err != nil {
			log.Warn("config skipped", "config", pc.file, "error", err)
			continue
		}
		result := orch.Analyze(ctx, inputs, pc.persona, pc.job)
		path, err := writeResult(analyzeOutputDir, result)
		if err != nil {
			return err
		}
		log.Info("analysis complete", "config", pc.file, "output", path,
			"sections", result.Metadata.TotalSectionsAnalyzed)
	}
	return nil
}

// personaConfig is one parsed persona config JSON.
type personaConfig struct {
	file      string
	dir       string
	persona   string
	job       string
	filenames []string
}

type personaConfigJSON struct {
	Persona struct {
		Role string `json:"role"`
	} `json:"persona"`
	JobToBeDone struct {
		Task string `json:"task"`
	} `json:"job_to_be_done"`
	Documents []struct {
		Filename string `json:"filename"`
	} `json:"documents"`
}

// findPersonaConfigs walks the input directory for persona config JSON
// files. Unreadable or malformed files are logged and skipped.
func findPersonaConfigs(dir string, log *slog.Logger) ([]personaConfig, error) {
	var configs []personaConfig
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("config unreadable", "path", path, "error", err)
			return nil
		}
		var pj personaConfigJSON
		if err := json.Unmarshal(data, &pj); err != nil {
			log.Warn("config malformed", "path", path, "error", err)
			return nil
		}

		pc := personaConfig{
			file:    filepath.Base(path),
			dir:     filepath.Dir(path),
			persona: pj.Persona.Role,
			job:     pj.JobToBeDone.Task,
		}
		if pc.persona == "" {
			pc.persona = "researcher"
		}
		if pc.job == "" {
			pc.job = "literature review"
		}
		for _, doc := range pj.Documents {
			if doc.Filename != "" {
				pc.filenames = append(pc.filenames, doc.Filename)
			}
		}
		configs = append(configs, pc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	return configs, nil
}

// loadInputs reads documents from a directory. With a filename list only
// those files are loaded (missing ones are skipped); otherwise every
// supported file in the directory is loaded.
func loadInputs(dir string, filenames []string) ([]pipeline.Input, error) {
	if filenames == nil {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read input dir: %w", err)
		}
		for _, e := range entries {
			if !e.IsDir() && extractor.IsSupportedExtension(e.Name()) {
				filenames = append(filenames, e.Name())
			}
		}
	}

	var inputs []pipeline.Input
	for _, name := range filenames {
		if !extractor.IsSupportedExtension(name) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue // missing documents are skipped, not fatal
		}
		inputs = append(inputs, pipeline.Input{Filename: name, Data: data})
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no supported documents in %s", dir)
	}
	return inputs, nil
}

func writeResult(dir string, result pipeline.Result) (string, error) {
	personaSafe := strings.ReplaceAll(result.Metadata.Persona, " ", "_")
	name := fmt.Sprintf("%s_%s_analysis.json", personaSafe, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write result: %w", err)
	}
	return path, nil
}
