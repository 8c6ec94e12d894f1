package analyze

import (
	"errors"
	"math"
	"testing"

	"github.com/pzaremba/spanscope/internal/model"
)

// aspirinCorpus is the single-document scenario used throughout:
// tokens ["The","drug","aspirin","reduces","pain","."] with one "sc"
// layer holding DRUG over [2,3).
func aspirinCorpus() model.Corpus {
	doc := model.NewDocument([]string{"The", "drug", "aspirin", "reduces", "pain", "."})
	doc.SetSpans("sc", []model.Span{{Label: "DRUG", Start: 2, End: 3}})
	return model.Corpus{doc}
}

func TestAnalyzer_Frequency(t *testing.T) {
	a, err := New(aspirinCorpus(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	freq := a.Frequency()
	if freq["sc"]["DRUG"] != 1 {
		t.Errorf("expected frequency 1 for sc/DRUG, got %d", freq["sc"]["DRUG"])
	}
}

func TestAnalyzer_FrequencySkipsUnlabeled(t *testing.T) {
	doc := model.NewDocument([]string{"a", "b", "c", "d"})
	doc.SetSpans("sc", []model.Span{
		{Label: "X", Start: 0, End: 1},
		{Label: "", Start: 1, End: 2},
		{Label: "X", Start: 2, End: 4},
	})

	a, err := New(model.Corpus{doc}, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	freq := a.Frequency()
	if freq["sc"]["X"] != 2 {
		t.Errorf("expected frequency 2 for sc/X, got %d", freq["sc"]["X"])
	}
	if _, ok := freq["sc"][""]; ok {
		t.Error("unlabeled spans must not appear in frequency")
	}
}

func TestAnalyzer_Length(t *testing.T) {
	doc := model.NewDocument([]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"})
	doc.SetSpans("sc", []model.Span{
		{Label: "X", Start: 0, End: 2},  // length 2
		{Label: "X", Start: 2, End: 10}, // length 8
	})

	a, err := New(model.Corpus{doc}, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	length, err := a.Length()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// geometric mean of (2, 8) = sqrt(16) = 4
	if math.Abs(length["sc"]["X"]-4.0) > 1e-9 {
		t.Errorf("expected geometric mean 4.0, got %v", length["sc"]["X"])
	}
}

func TestAnalyzer_LengthSingleton(t *testing.T) {
	a, err := New(aspirinCorpus(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	length, err := a.Length()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(length["sc"]["DRUG"]-1.0) > 1e-9 {
		t.Errorf("expected length 1.0 for sc/DRUG, got %v", length["sc"]["DRUG"])
	}
}

func TestAnalyzer_SpanDistinctiveness(t *testing.T) {
	a, err := New(aspirinCorpus(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	distinct, err := a.SpanDistinctiveness()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// P_span is {aspirin: 1.0}, P_corpus gives aspirin mass 1/6.
	want := math.Log(6.0)
	if math.Abs(distinct["sc"]["DRUG"]-want) > 1e-9 {
		t.Errorf("expected span distinctiveness ln 6 = %v, got %v", want, distinct["sc"]["DRUG"])
	}
}

func TestAnalyzer_BoundaryDistinctiveness(t *testing.T) {
	a, err := New(aspirinCorpus(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	distinct, err := a.BoundaryDistinctiveness()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// Boundary tokens are "drug" and "reduces", each with corpus mass
	// 1/6: 2 * (0.5 * ln(0.5/(1/6))) = ln 3.
	want := math.Log(3.0)
	if math.Abs(distinct["sc"]["DRUG"]-want) > 1e-9 {
		t.Errorf("expected boundary distinctiveness ln 3 = %v, got %v", want, distinct["sc"]["DRUG"])
	}
}

func TestAnalyzer_MalformedSpanFails(t *testing.T) {
	doc := model.NewDocument([]string{"a", "b"})
	doc.SetSpans("sc", []model.Span{{Label: "X", Start: 1, End: 1}})

	_, err := New(model.Corpus{doc}, 1)
	if err == nil {
		t.Fatal("expected validation error for start >= end, got nil")
	}
	var valErr *model.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestAnalyzer_SpanBeyondDocumentFails(t *testing.T) {
	doc := model.NewDocument([]string{"a", "b"})
	doc.SetSpans("sc", []model.Span{{Label: "X", Start: 0, End: 3}})

	if _, err := New(model.Corpus{doc}, 1); err == nil {
		t.Fatal("expected validation error for end beyond document, got nil")
	}
}

func TestAnalyzer_WindowDefault(t *testing.T) {
	a, err := New(aspirinCorpus(), 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if a.Window() != DefaultWindow {
		t.Errorf("expected default window %d, got %d", DefaultWindow, a.Window())
	}
}

func TestAnalyzer_DocumentOrderIrrelevant(t *testing.T) {
	docA := model.NewDocument([]string{"x", "y", "z"})
	docA.SetSpans("sc", []model.Span{{Label: "A", Start: 0, End: 1}})
	docB := model.NewDocument([]string{"p", "q"})
	docB.SetSpans("sc", []model.Span{{Label: "A", Start: 1, End: 2}})

	fwd, err := New(model.Corpus{docA, docB}, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	rev, err := New(model.Corpus{docB, docA}, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	f1, f2 := fwd.Frequency(), rev.Frequency()
	if f1["sc"]["A"] != f2["sc"]["A"] {
		t.Errorf("frequency depends on document order: %d vs %d", f1["sc"]["A"], f2["sc"]["A"])
	}

	d1, err := fwd.SpanDistinctiveness()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	d2, err := rev.SpanDistinctiveness()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(d1["sc"]["A"]-d2["sc"]["A"]) > 1e-12 {
		t.Errorf("span distinctiveness depends on document order: %v vs %v", d1["sc"]["A"], d2["sc"]["A"])
	}
}

func TestGeometricMean_EmptyFails(t *testing.T) {
	_, err := geometricMean(nil)
	if err == nil {
		t.Fatal("expected error for empty input, got nil")
	}
	var statErr *StatisticalDomainError
	if !errors.As(err, &statErr) {
		t.Fatalf("expected StatisticalDomainError, got %T", err)
	}
}
