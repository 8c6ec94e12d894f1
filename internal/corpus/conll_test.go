package corpus

import (
	"strings"
	"testing"
)

func TestParseCoNLL_BlankLineDocuments(t *testing.T) {
	input := strings.Join([]string{
		"The\tDT\tB-NP",
		"dog\tNN\tI-NP",
		"barked\tVBD\tB-VP",
		"",
		"Cats\tNNS\tB-NP",
		"sleep\tVBP\tB-VP",
		"",
	}, "\n")

	corpus, err := ParseCoNLL(strings.NewReader(input), "sc")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(corpus) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(corpus))
	}
	if corpus[0].Len() != 3 {
		t.Errorf("expected 3 tokens in first doc, got %d", corpus[0].Len())
	}

	spans := corpus[0].Spans["sc"]
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans in first doc, got %d", len(spans))
	}
	if spans[0].Label != "NP" || spans[0].Start != 0 || spans[0].End != 2 {
		t.Errorf("expected NP [0,2), got %s [%d,%d)", spans[0].Label, spans[0].Start, spans[0].End)
	}
	if spans[1].Label != "VP" || spans[1].Start != 2 || spans[1].End != 3 {
		t.Errorf("expected VP [2,3), got %s [%d,%d)", spans[1].Label, spans[1].Start, spans[1].End)
	}
}

func TestParseCoNLL_DocStartMarkers(t *testing.T) {
	input := strings.Join([]string{
		"-DOCSTART- -X- O O",
		"EU NNP B-ORG",
		"rejects VBZ O",
		"",
		"German JJ B-MISC",
		"call NN O",
		"",
		"-DOCSTART- -X- O O",
		"Peter NNP B-PER",
		"Blackburn NNP I-PER",
	}, "\n")

	corpus, err := ParseCoNLL(strings.NewReader(input), "sc")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Blank lines are sentence breaks here, so markers yield 2 docs.
	if len(corpus) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(corpus))
	}
	if corpus[0].Len() != 4 {
		t.Errorf("expected 4 tokens in first doc, got %d", corpus[0].Len())
	}

	spans := corpus[1].Spans["sc"]
	if len(spans) != 1 || spans[0].Label != "PER" || spans[0].Start != 0 || spans[0].End != 2 {
		t.Errorf("expected single PER [0,2) in second doc, got %v", spans)
	}
}

func TestParseCoNLL_MalformedLine(t *testing.T) {
	if _, err := ParseCoNLL(strings.NewReader("loneword\n"), "sc"); err == nil {
		t.Fatal("expected error for line without tag column, got nil")
	}
}

func TestDecodeBIO_IOpensSpan(t *testing.T) {
	// Tolerates non-strict IOB2: I- without a preceding B- opens a span.
	spans := decodeBIO([]string{"I-X", "I-X", "O", "I-Y"})

	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Label != "X" || spans[0].Start != 0 || spans[0].End != 2 {
		t.Errorf("expected X [0,2), got %s [%d,%d)", spans[0].Label, spans[0].Start, spans[0].End)
	}
	if spans[1].Label != "Y" || spans[1].Start != 3 || spans[1].End != 4 {
		t.Errorf("expected Y [3,4), got %s [%d,%d)", spans[1].Label, spans[1].Start, spans[1].End)
	}
}

func TestDecodeBIO_AdjacentSpans(t *testing.T) {
	spans := decodeBIO([]string{"B-X", "B-X", "I-X"})

	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].End != 1 || spans[1].Start != 1 || spans[1].End != 3 {
		t.Errorf("unexpected span boundaries: %v", spans)
	}
}

func TestDecodeBIO_SpanRunsToEnd(t *testing.T) {
	spans := decodeBIO([]string{"O", "B-X", "I-X"})

	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Start != 1 || spans[0].End != 3 {
		t.Errorf("expected X [1,3), got [%d,%d)", spans[0].Start, spans[0].End)
	}
}
