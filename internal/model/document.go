package model

import "fmt"

// Token is a single token of a document: its text and its 0-based
// position within the owning document.
type Token struct {
	Text string `json:"text"`
	I    int    `json:"i"`
}

// Span is a labeled, contiguous token range [Start, End) within a
// document. End is exclusive. Spans reference tokens by index only.
type Span struct {
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Len returns the span length in tokens.
func (s Span) Len() int {
	return s.End - s.Start
}

// Document is an ordered token sequence plus named span layers.
// A document may carry several layers (e.g. distinct annotation schemes)
// over the same tokens.
type Document struct {
	Tokens []Token           `json:"tokens"`
	Spans  map[string][]Span `json:"spans,omitempty"`
}

// NewDocument builds a document from raw token texts, assigning
// contiguous positions.
func NewDocument(words []string) *Document {
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = Token{Text: w, I: i}
	}
	return &Document{
		Tokens: tokens,
		Spans:  make(map[string][]Span),
	}
}

// Len returns the token count of the document.
func (d *Document) Len() int {
	return len(d.Tokens)
}

// SetSpans replaces the named span layer.
func (d *Document) SetSpans(layer string, spans []Span) {
	if d.Spans == nil {
		d.Spans = make(map[string][]Span)
	}
	d.Spans[layer] = spans
}

// SpanTokens returns the tokens covered by the span. The span must have
// been validated against this document.
func (d *Document) SpanTokens(s Span) []Token {
	return d.Tokens[s.Start:s.End]
}

// Corpus is an ordered collection of documents. Document order is
// irrelevant to every metric; all computations are corpus-wide
// aggregations. A corpus handed to the analyzer must not be mutated for
// the duration of the analysis session; concurrent metric computation
// relies on it being read-only.
type Corpus []*Document

// ValidationError reports a malformed span annotation. The analyzer
// fails fast on the first malformed span and never attempts to repair
// annotations.
type ValidationError struct {
	Doc   int    // document index within the corpus
	Layer string // span layer name
	Span  Span
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid span %q [%d,%d) in doc %d layer %q: %s",
		e.Span.Label, e.Span.Start, e.Span.End, e.Doc, e.Layer, e.Msg)
}

// Validate checks every span of every layer against its document bounds.
// A span is valid when 0 <= Start < End <= len(document).
func (c Corpus) Validate() error {
	for i, doc := range c {
		n := doc.Len()
		for layer, spans := range doc.Spans {
			for _, span := range spans {
				switch {
				case span.Start < 0:
					return &ValidationError{Doc: i, Layer: layer, Span: span, Msg: "negative start"}
				case span.Start >= span.End:
					return &ValidationError{Doc: i, Layer: layer, Span: span, Msg: "start >= end"}
				case span.End > n:
					return &ValidationError{Doc: i, Layer: layer, Span: span, Msg: fmt.Sprintf("end beyond document length %d", n)}
				}
			}
		}
	}
	return nil
}

// Layers returns the set of span layer names present anywhere in the
// corpus, sorted order not guaranteed.
func (c Corpus) Layers() []string {
	seen := make(map[string]bool)
	var layers []string
	for _, doc := range c {
		for layer := range doc.Spans {
			if !seen[layer] {
				seen[layer] = true
				layers = append(layers, layer)
			}
		}
	}
	return layers
}
