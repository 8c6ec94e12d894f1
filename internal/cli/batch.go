package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pzaremba/spanscope/internal/pipeline"
	"github.com/pzaremba/spanscope/internal/store"
	"github.com/pzaremba/spanscope/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency int
	outputDir   string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple corpora from a list file in parallel",
	Long: `Batch analyzes multiple corpora concurrently:
- Read corpus paths from the input file (one per line)
- Analyze corpora in parallel with a configurable worker count
- Write one JSON report per corpus into the output directory

Example:
  spanscope batch corpora.txt
  spanscope batch corpora.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent analyses")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./spanscope-reports", "output directory for JSON reports")

	// Shared analysis flags
	batchCmd.Flags().IntVarP(&windowSize, "window", "w", 0, "boundary window size in tokens")
	batchCmd.Flags().StringVar(&layer, "layer", "", "span layer assigned by converters")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the conversion cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	listFile := args[0]
	cfg := buildConfig()

	fmt.Fprintf(os.Stderr, "Batch input:  %s\n", listFile)
	fmt.Fprintf(os.Stderr, "Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "Output dir:   %s\n", outputDir)
	fmt.Fprintln(os.Stderr)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pipeline.NewPipeline(cfg)
	run := func(ctx context.Context, path string) error {
		result, err := p.AnalyzeFile(ctx, path, pipeline.FormatAuto)
		if err != nil {
			return err
		}
		out := filepath.Join(outputDir, reportName(path))
		renderer := pipeline.NewRenderer(false)
		return renderer.WriteJSON(result, out)
	}

	processor := worker.NewBatchProcessor(run, concurrency)
	results, err := processor.ProcessFile(context.Background(), listFile)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Err)
		} else if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s\n", result.Path)
		}
	}

	fmt.Fprintf(os.Stderr, "\nAnalyzed %d corpora, %d failed; reports in %s\n", len(results), failed, outputDir)
	if failed > 0 {
		return fmt.Errorf("%d of %d corpora failed", failed, len(results))
	}
	return nil
}

// reportName derives the JSON report filename from the corpus path.
func reportName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, store.Ext)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".json"
}
