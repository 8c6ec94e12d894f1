package worker

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pzaremba/spanscope/internal/analyze"
	"github.com/pzaremba/spanscope/internal/model"
)

func testAnalyzer(t *testing.T) *analyze.Analyzer {
	t.Helper()
	doc := model.NewDocument([]string{"The", "drug", "aspirin", "reduces", "pain", "."})
	doc.SetSpans("sc", []model.Span{{Label: "DRUG", Start: 2, End: 3}})

	a, err := analyze.New(model.Corpus{doc}, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return a
}

func TestComputeMetrics(t *testing.T) {
	metrics, err := ComputeMetrics(testAnalyzer(t), 4)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if metrics.Frequencies["sc"]["DRUG"] != 1 {
		t.Errorf("expected frequency 1, got %d", metrics.Frequencies["sc"]["DRUG"])
	}
	if math.Abs(metrics.Length["sc"]["DRUG"]-1.0) > 1e-9 {
		t.Errorf("expected length 1.0, got %v", metrics.Length["sc"]["DRUG"])
	}
	if metrics.SpanDistinctiveness["sc"]["DRUG"] <= 0 {
		t.Errorf("expected positive span distinctiveness, got %v", metrics.SpanDistinctiveness["sc"]["DRUG"])
	}
	if metrics.BoundaryDistinctiveness["sc"]["DRUG"] <= 0 {
		t.Errorf("expected positive boundary distinctiveness, got %v", metrics.BoundaryDistinctiveness["sc"]["DRUG"])
	}
}

func TestComputeMetrics_SingleWorker(t *testing.T) {
	// The fan-out must not deadlock with fewer workers than jobs.
	if _, err := ComputeMetrics(testAnalyzer(t), 1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	proc := NewBatchProcessor(func(ctx context.Context, path string) error {
		if path == "bad" {
			return context.Canceled
		}
		return nil
	}, 2)

	results := proc.ProcessPaths(context.Background(), []string{"a", "bad", "c"})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	failed := 0
	for _, r := range results {
		if r.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("expected 1 failure, got %d", failed)
	}
}

func TestReadPathsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpora.txt")
	content := "# comment\n/data/a.spanscope\n\n/data/b.spanscope\n/data/a.spanscope\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	paths, err := ReadPathsFromFile(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("expected 2 deduplicated paths, got %v", paths)
	}
}
