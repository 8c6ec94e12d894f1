package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pzaremba/spanscope/internal/model"
	"github.com/pzaremba/spanscope/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	windowSize    int
	inputFormat   string
	outJSON       string
	layer         string
	metricWorkers int
	noCache       bool
	descriptions  bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <corpus>",
	Short: "Analyze a span-annotated corpus and print its diagnostics",
	Long: `Analyze computes the four span properties for every span layer and
span type in a corpus:
- Frequency: spans per type
- Length: geometric mean of span lengths in tokens
- Span distinctiveness: KL divergence of span vocabulary vs. corpus
- Boundary distinctiveness: KL divergence of span-edge vocabulary

The corpus may be a .spanscope file, a CoNLL/IOB or GENIA dump, or a
directory of BRAT .txt/.ann pairs. Raw dumps are converted on the fly
and the conversion cached.

Example:
  spanscope analyze corpus.spanscope
  spanscope analyze genia.iob2 --window 2 --json report.json
  spanscope analyze ./brat-dump --format brat --descriptions`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().IntVarP(&windowSize, "window", "w", 0, "boundary window size in tokens (default from config, minimum 1)")
	analyzeCmd.Flags().StringVar(&inputFormat, "format", "auto", "corpus format (auto, spanscope, conll, genia, brat)")
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "write JSON report to this path")
	analyzeCmd.Flags().StringVar(&layer, "layer", "", "span layer assigned by converters (default from config)")
	analyzeCmd.Flags().IntVar(&metricWorkers, "workers", 0, "workers for metric computation (default from config)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the conversion cache")
	analyzeCmd.Flags().BoolVar(&descriptions, "descriptions", false, "print an explanation above each metric table")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg := buildConfig()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Window:    %d\n", cfg.Analysis.WindowSize)
		fmt.Fprintf(os.Stderr, "Cache:     %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)

	result, err := p.AnalyzeFile(context.Background(), path, pipeline.Format(inputFormat))
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d documents, %d span layers\n\n", result.DocCount, len(result.Layers))
	}

	if err := p.RenderResult(result, outJSON); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	if outJSON != "" && verbose {
		fmt.Fprintf(os.Stderr, "\nJSON report written to %s\n", outJSON)
	}
	return nil
}

// buildConfig merges defaults, the config file, and flags, in that
// order of increasing priority.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring malformed configuration: %v\n", err)
		cfg = model.DefaultConfig()
	}

	if windowSize > 0 {
		cfg.Analysis.WindowSize = windowSize
	}
	if layer != "" {
		cfg.Analysis.DefaultLayer = layer
	}
	if metricWorkers > 0 {
		cfg.Concurrency.MetricWorkers = metricWorkers
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	cfg.Output.Verbose = verbose
	if descriptions {
		cfg.Output.Descriptions = true
	}
	return cfg
}
