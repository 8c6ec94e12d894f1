package analyze

import "github.com/pzaremba/spanscope/internal/model"

// LocatedSpan pairs a span with its owning document so span tokens can
// be realized on demand.
type LocatedSpan struct {
	Doc  *model.Document
	Span model.Span
}

// Tokens returns the tokens inside the span.
func (s LocatedSpan) Tokens() []model.Token {
	return s.Doc.SpanTokens(s.Span)
}

// SpansByType groups the layer's spans by label across the whole corpus.
// Spans with an empty label are grouped under the empty key; the metric
// code skips that group.
func SpansByType(corpus model.Corpus, layer string) map[string][]LocatedSpan {
	byType := make(map[string][]LocatedSpan)
	for _, doc := range corpus {
		for _, span := range doc.Spans[layer] {
			byType[span.Label] = append(byType[span.Label], LocatedSpan{Doc: doc, Span: span})
		}
	}
	return byType
}

// BoundaryTokens returns, per span label, the combined left and right
// boundary tokens of every span of that label: the window tokens
// immediately preceding Start and immediately following End, clipped at
// the document edges. A span flush against a document edge contributes
// fewer than window tokens on that side, possibly zero.
func BoundaryTokens(corpus model.Corpus, layer string, window int) map[string][]model.Token {
	bounds := make(map[string][]model.Token)
	for _, doc := range corpus {
		n := doc.Len()
		for _, span := range doc.Spans[layer] {
			for i := span.Start - window; i < span.Start; i++ {
				if i >= 0 {
					bounds[span.Label] = append(bounds[span.Label], doc.Tokens[i])
				}
			}
			for i := span.End; i < span.End+window; i++ {
				if i < n {
					bounds[span.Label] = append(bounds[span.Label], doc.Tokens[i])
				}
			}
		}
	}
	return bounds
}
