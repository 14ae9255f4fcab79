// Command docsift analyzes batches of documents and ranks their sections
// for a reader persona and task.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dgallion1/docsift/internal/config"
	"github.com/dgallion1/docsift/internal/relevance"
)

var rootCmd = &cobra.Command{
	Use:   "docsift",
	Short: "Persona-driven document section ranking",
	Long: "docsift recovers the heading structure of PDF and office documents " +
		"and ranks the recovered sections by relevance to a reader persona and job.",
}

func main() {
	// Load .env file if it exists.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

// buildScorer assembles the scorer from the built-in taxonomies plus the
// optional YAML overlay named in the config.
func buildScorer(cfg config.Config) (*relevance.Scorer, error) {
	personas := relevance.DefaultPersonas()
	jobs := relevance.DefaultJobs()
	lexicon := relevance.DefaultLexicon()

	if cfg.TaxonomyFile != "" {
		ov, err := relevance.LoadOverlay(cfg.TaxonomyFile)
		if err != nil {
			return nil, fmt.Errorf("taxonomy overlay: %w", err)
		}
		personas = personas.Merge(ov.Personas)
		jobs = jobs.Merge(ov.Jobs)
		lexicon = lexicon.Merge(ov.Lexicon)
	}

	return relevance.NewScorer(personas, jobs, lexicon), nil
}
