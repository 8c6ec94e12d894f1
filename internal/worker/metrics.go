package worker

import (
	"context"
	"fmt"

	"github.com/pzaremba/spanscope/internal/analyze"
	"github.com/pzaremba/spanscope/internal/model"
)

// MetricKind identifies one of the four metric tables.
type MetricKind string

const (
	MetricFrequency               MetricKind = "frequency"
	MetricLength                  MetricKind = "length"
	MetricSpanDistinctiveness     MetricKind = "span_distinctiveness"
	MetricBoundaryDistinctiveness MetricKind = "boundary_distinctiveness"
)

// metricKinds in a fixed order so every fan-out submits all four.
var metricKinds = []MetricKind{
	MetricFrequency,
	MetricLength,
	MetricSpanDistinctiveness,
	MetricBoundaryDistinctiveness,
}

// MetricJob computes one metric table of an analyzer. The analyzer is
// read-only, so the four jobs share it without locking.
type MetricJob struct {
	Kind     MetricKind
	Analyzer *analyze.Analyzer
}

// Execute runs the metric computation.
func (j *MetricJob) Execute(_ context.Context) Result {
	res := &MetricResult{Kind: j.Kind}
	switch j.Kind {
	case MetricFrequency:
		res.Frequencies = j.Analyzer.Frequency()
	case MetricLength:
		res.Values, res.Err = j.Analyzer.Length()
	case MetricSpanDistinctiveness:
		res.Values, res.Err = j.Analyzer.SpanDistinctiveness()
	case MetricBoundaryDistinctiveness:
		res.Values, res.Err = j.Analyzer.BoundaryDistinctiveness()
	default:
		res.Err = fmt.Errorf("unknown metric kind %q", j.Kind)
	}
	return res
}

// MetricResult is the outcome of one metric job. Frequencies is set for
// MetricFrequency, Values for the three float-valued metrics.
type MetricResult struct {
	Kind        MetricKind
	Frequencies map[string]map[string]int
	Values      map[string]map[string]float64
	Err         error
}

// GetError returns the error from the metric computation.
func (r *MetricResult) GetError() error {
	return r.Err
}

// ComputeMetrics fans the four metric computations out on a pool and
// assembles the combined tables. Any metric failure fails the whole
// computation; a partially filled table is worse than none.
func ComputeMetrics(a *analyze.Analyzer, workers int) (*model.Metrics, error) {
	pool := NewPool(workers)
	pool.Start()

	for _, kind := range metricKinds {
		pool.Submit(&MetricJob{Kind: kind, Analyzer: a})
	}
	results := pool.Wait()

	metrics := &model.Metrics{}
	for _, result := range results {
		res, ok := result.(*MetricResult)
		if !ok {
			return nil, fmt.Errorf("unexpected result type %T", result)
		}
		if res.Err != nil {
			return nil, fmt.Errorf("%s: %w", res.Kind, res.Err)
		}
		switch res.Kind {
		case MetricFrequency:
			metrics.Frequencies = res.Frequencies
		case MetricLength:
			metrics.Length = res.Values
		case MetricSpanDistinctiveness:
			metrics.SpanDistinctiveness = res.Values
		case MetricBoundaryDistinctiveness:
			metrics.BoundaryDistinctiveness = res.Values
		}
	}
	return metrics, nil
}
