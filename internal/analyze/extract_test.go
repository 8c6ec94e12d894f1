package analyze

import (
	"testing"

	"github.com/pzaremba/spanscope/internal/model"
)

func TestSpansByType(t *testing.T) {
	docA := model.NewDocument([]string{"a", "b", "c"})
	docA.SetSpans("sc", []model.Span{
		{Label: "X", Start: 0, End: 1},
		{Label: "Y", Start: 1, End: 3},
	})
	docB := model.NewDocument([]string{"d", "e"})
	docB.SetSpans("sc", []model.Span{{Label: "X", Start: 0, End: 2}})

	byType := SpansByType(model.Corpus{docA, docB}, "sc")

	if len(byType["X"]) != 2 {
		t.Errorf("expected 2 X spans, got %d", len(byType["X"]))
	}
	if len(byType["Y"]) != 1 {
		t.Errorf("expected 1 Y span, got %d", len(byType["Y"]))
	}

	got := byType["Y"][0].Tokens()
	if len(got) != 2 || got[0].Text != "b" || got[1].Text != "c" {
		t.Errorf("expected Y tokens [b c], got %v", got)
	}
}

func TestBoundaryTokens_Window1(t *testing.T) {
	doc := model.NewDocument([]string{"The", "drug", "aspirin", "reduces", "pain", "."})
	doc.SetSpans("sc", []model.Span{{Label: "DRUG", Start: 2, End: 3}})

	bounds := BoundaryTokens(model.Corpus{doc}, "sc", 1)

	got := bounds["DRUG"]
	if len(got) != 2 {
		t.Fatalf("expected 2 boundary tokens, got %d", len(got))
	}
	if got[0].Text != "drug" {
		t.Errorf("expected left boundary 'drug', got %q", got[0].Text)
	}
	if got[1].Text != "reduces" {
		t.Errorf("expected right boundary 'reduces', got %q", got[1].Text)
	}
}

func TestBoundaryTokens_ClippedAtDocumentEdges(t *testing.T) {
	doc := model.NewDocument([]string{"a", "b", "c"})
	doc.SetSpans("sc", []model.Span{
		{Label: "HEAD", Start: 0, End: 1}, // no left boundary
		{Label: "TAIL", Start: 2, End: 3}, // no right boundary
	})
	corpus := model.Corpus{doc}

	for _, window := range []int{1, 2, 5} {
		bounds := BoundaryTokens(corpus, "sc", window)

		for _, tok := range bounds["HEAD"] {
			if tok.I < 1 {
				t.Errorf("window %d: HEAD picked up left-boundary token %v", window, tok)
			}
		}
		for _, tok := range bounds["TAIL"] {
			if tok.I > 1 {
				t.Errorf("window %d: TAIL picked up right-boundary token %v", window, tok)
			}
		}
	}
}

func TestBoundaryTokens_WiderWindow(t *testing.T) {
	doc := model.NewDocument([]string{"a", "b", "c", "d", "e", "f"})
	doc.SetSpans("sc", []model.Span{{Label: "X", Start: 2, End: 4}})

	bounds := BoundaryTokens(model.Corpus{doc}, "sc", 2)

	got := bounds["X"]
	if len(got) != 4 {
		t.Fatalf("expected 4 boundary tokens, got %d", len(got))
	}
	want := []string{"a", "b", "e", "f"}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("boundary token %d: expected %q, got %q", i, w, got[i].Text)
		}
	}
}

func TestBoundaryTokens_SpanCoveringWholeDocument(t *testing.T) {
	doc := model.NewDocument([]string{"a", "b"})
	doc.SetSpans("sc", []model.Span{{Label: "X", Start: 0, End: 2}})

	bounds := BoundaryTokens(model.Corpus{doc}, "sc", 3)
	if len(bounds["X"]) != 0 {
		t.Errorf("expected zero boundary tokens, got %d", len(bounds["X"]))
	}
}
