package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// AnalyzeFunc analyzes a single corpus file, including whatever output
// the caller wants rendered. Batch mode only tracks which paths failed.
type AnalyzeFunc func(ctx context.Context, path string) error

// FileJob is one corpus path to analyze.
type FileJob struct {
	Path string
	Run  AnalyzeFunc
}

// Execute runs the analysis for the path.
func (j *FileJob) Execute(ctx context.Context) Result {
	return &FileResult{Path: j.Path, Err: j.Run(ctx, j.Path)}
}

// FileResult is the outcome of one corpus analysis.
type FileResult struct {
	Path string
	Err  error
}

// GetError returns the error from the analysis.
func (r *FileResult) GetError() error {
	return r.Err
}

// BatchProcessor analyzes many corpus files concurrently.
type BatchProcessor struct {
	run         AnalyzeFunc
	concurrency int
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(run AnalyzeFunc, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		run:         run,
		concurrency: concurrency,
	}
}

// ProcessPaths analyzes the given corpus paths concurrently.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*FileResult {
	if len(paths) == 0 {
		return []*FileResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&FileJob{Path: path, Run: b.run})
	}
	results := pool.Wait()

	fileResults := make([]*FileResult, len(results))
	for i, result := range results {
		fileResults[i] = result.(*FileResult)
	}
	return fileResults
}

// ProcessFile reads corpus paths from a list file and analyzes them
// concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*FileResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}
	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads corpus paths from a file, one per line.
// Blank lines and #-comments are skipped; duplicates are dropped.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return paths, nil
}
