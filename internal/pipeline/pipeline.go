package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/pzaremba/spanscope/internal/analyze"
	"github.com/pzaremba/spanscope/internal/model"
	"github.com/pzaremba/spanscope/internal/worker"
)

// Pipeline orchestrates the complete analysis: load a corpus, compute
// the four metric tables, aggregate, render.
type Pipeline struct {
	loader   *Loader
	renderer *Renderer
	config   *model.Config
}

// NewPipeline creates a pipeline with the given configuration.
func NewPipeline(cfg *model.Config) *Pipeline {
	return &Pipeline{
		loader:   NewLoader(cfg),
		renderer: NewRenderer(cfg.Output.Descriptions),
		config:   cfg,
	}
}

// AnalysisResult is the complete outcome for one corpus.
type AnalysisResult struct {
	Path      string
	DocCount  int
	Layers    []string
	Report    *model.Report
	Summaries []model.Summary
	Warnings  []string
}

// AnalyzeFile loads the corpus at path and analyzes it.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string, format Format) (*AnalysisResult, error) {
	c, warnings, err := p.loader.Load(path, format)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := p.AnalyzeCorpus(c)
	if err != nil {
		return nil, err
	}
	result.Path = path
	result.Warnings = warnings
	return result, nil
}

// AnalyzeCorpus computes all metrics and the per-layer aggregation for
// an in-memory corpus.
func (p *Pipeline) AnalyzeCorpus(c model.Corpus) (*AnalysisResult, error) {
	a, err := analyze.New(c, p.config.Analysis.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("build analyzer: %w", err)
	}

	metrics, err := worker.ComputeMetrics(a, p.config.Concurrency.MetricWorkers)
	if err != nil {
		return nil, fmt.Errorf("compute metrics: %w", err)
	}

	summaries, err := summarize(metrics)
	if err != nil {
		return nil, fmt.Errorf("aggregate metrics: %w", err)
	}

	return &AnalysisResult{
		DocCount: len(c),
		Layers:   a.Layers(),
		Report: &model.Report{
			Metrics: *metrics,
			Config:  model.ReportConfig{WindowSize: a.Window()},
		},
		Summaries: summaries,
	}, nil
}

// RenderResult writes the tables to stdout and, when jsonPath is set,
// the interchange report to disk.
func (p *Pipeline) RenderResult(res *AnalysisResult, jsonPath string) error {
	if err := p.renderer.Render(res); err != nil {
		return fmt.Errorf("render tables: %w", err)
	}
	if jsonPath != "" {
		if err := p.renderer.WriteJSON(res, jsonPath); err != nil {
			return fmt.Errorf("write JSON report: %w", err)
		}
	}
	return nil
}

// summarize collapses each float metric into its frequency-weighted
// per-layer average.
func summarize(m *model.Metrics) ([]model.Summary, error) {
	length, err := analyze.WeightedAverage(m.Length, m.Frequencies)
	if err != nil {
		return nil, err
	}
	spanDist, err := analyze.WeightedAverage(m.SpanDistinctiveness, m.Frequencies)
	if err != nil {
		return nil, err
	}
	boundDist, err := analyze.WeightedAverage(m.BoundaryDistinctiveness, m.Frequencies)
	if err != nil {
		return nil, err
	}

	layers := make([]string, 0, len(m.Frequencies))
	for layer := range m.Frequencies {
		layers = append(layers, layer)
	}
	sort.Strings(layers)

	summaries := make([]model.Summary, 0, len(layers))
	for _, layer := range layers {
		total := 0
		for _, n := range m.Frequencies[layer] {
			total += n
		}
		summaries = append(summaries, model.Summary{
			Layer:                   layer,
			SpanCount:               total,
			Length:                  length[layer],
			SpanDistinctiveness:     spanDist[layer],
			BoundaryDistinctiveness: boundDist[layer],
		})
	}
	return summaries, nil
}
