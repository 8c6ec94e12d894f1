package analyze

import (
	"math"
	"sort"

	"github.com/pzaremba/spanscope/internal/model"
)

// DefaultWindow is the boundary window used when none is configured.
const DefaultWindow = 1

// Analyzer computes learnability diagnostics for a span-annotated
// corpus: per span type, how frequent the spans are, how long they run,
// and how sharply their interiors and edges stand out from the corpus
// vocabulary.
//
// The analyzer never mutates the corpus and holds no state beyond the
// whole-corpus distribution and the layer key set, both derived at
// construction. Each metric is recomputed on every call; repeated calls
// are not cheaper after the first. The metrics only read the corpus, so
// they may run concurrently. Mutating the corpus between or during
// metric calls is undefined behavior.
type Analyzer struct {
	corpus  model.Corpus
	window  int
	pCorpus Distribution
	layers  []string
}

// New validates the corpus and builds an analyzer with the given
// boundary window. A window below 1 falls back to DefaultWindow.
func New(corpus model.Corpus, window int) (*Analyzer, error) {
	if err := corpus.Validate(); err != nil {
		return nil, err
	}
	if window < 1 {
		window = DefaultWindow
	}

	seqs := make([][]model.Token, len(corpus))
	for i, doc := range corpus {
		seqs[i] = doc.Tokens
	}

	layers := corpus.Layers()
	sort.Strings(layers)

	return &Analyzer{
		corpus:  corpus,
		window:  window,
		pCorpus: WordDistribution(seqs, true),
		layers:  layers,
	}, nil
}

// Window returns the boundary window size in tokens.
func (a *Analyzer) Window() int {
	return a.window
}

// Layers returns the sorted span layer names present in the corpus.
func (a *Analyzer) Layers() []string {
	return a.layers
}

// CorpusDistribution returns the normalized unigram distribution over
// every document in the corpus, the reference for both distinctiveness
// metrics.
func (a *Analyzer) CorpusDistribution() Distribution {
	return a.pCorpus
}

// Frequency counts the spans of each type within each layer,
// corpus-wide. Spans with an empty label are excluded. Frequency tends
// to correlate positively with model performance and serves as the
// weighting signal for the per-layer aggregation.
func (a *Analyzer) Frequency() map[string]map[string]int {
	freq := make(map[string]map[string]int)
	for _, doc := range a.corpus {
		for layer, spans := range doc.Spans {
			if _, ok := freq[layer]; !ok {
				freq[layer] = make(map[string]int)
			}
			for _, span := range spans {
				if span.Label == "" {
					continue
				}
				freq[layer][span.Label]++
			}
		}
	}
	return freq
}

// Length computes the geometric mean of span lengths in tokens, per
// layer and span type. Spans with an empty label are skipped. Models
// with strict Markov assumptions tend to degrade on long spans, so high
// values flag types that need architectures carrying longer context.
func (a *Analyzer) Length() (map[string]map[string]float64, error) {
	length := make(map[string]map[string]float64)
	for _, layer := range a.layers {
		length[layer] = make(map[string]float64)
		for label, spans := range SpansByType(a.corpus, layer) {
			if label == "" {
				continue
			}
			lengths := make([]int, len(spans))
			for i, s := range spans {
				lengths[i] = s.Span.Len()
			}
			mean, err := geometricMean(lengths)
			if err != nil {
				return nil, err
			}
			length[layer][label] = mean
		}
	}
	return length, nil
}

// SpanDistinctiveness measures how much the vocabulary inside spans of
// each type diverges from the whole corpus: D(P_span || P_corpus).
// High values mean span membership is visible from local vocabulary
// alone; low values call for sequence information.
func (a *Analyzer) SpanDistinctiveness() (map[string]map[string]float64, error) {
	distinct := make(map[string]map[string]float64)
	for _, layer := range a.layers {
		distinct[layer] = make(map[string]float64)
		for label, spans := range SpansByType(a.corpus, layer) {
			if label == "" {
				continue
			}
			seqs := make([][]model.Token, len(spans))
			for i, s := range spans {
				seqs[i] = s.Tokens()
			}
			pSpan := WordDistribution(seqs, true)
			kl, err := KLDivergence(pSpan, a.pCorpus)
			if err != nil {
				return nil, err
			}
			distinct[layer][label] = kl
		}
	}
	return distinct, nil
}

// BoundaryDistinctiveness measures how sharply span edges are marked by
// local vocabulary: D(P_bounds || P_corpus) over the boundary-window
// tokens of each type. High values mean the start and end points are
// easy to spot; low values indicate smooth transitions.
func (a *Analyzer) BoundaryDistinctiveness() (map[string]map[string]float64, error) {
	distinct := make(map[string]map[string]float64)
	for _, layer := range a.layers {
		distinct[layer] = make(map[string]float64)
		bounds := BoundaryTokens(a.corpus, layer, a.window)
		// Iterate the span grouping, not the boundary map: a type whose
		// spans all touch the document edges has no boundary tokens, and
		// that is a domain error, not a missing row.
		for label := range SpansByType(a.corpus, layer) {
			if label == "" {
				continue
			}
			pBound := UnigramDistribution(bounds[label], true)
			kl, err := KLDivergence(pBound, a.pCorpus)
			if err != nil {
				return nil, err
			}
			distinct[layer][label] = kl
		}
	}
	return distinct, nil
}

// geometricMean computes exp(mean(ln x)). It is undefined for an empty
// input or any non-positive value and rejects both explicitly instead
// of returning a placeholder.
func geometricMean(xs []int) (float64, error) {
	if len(xs) == 0 {
		return 0, &StatisticalDomainError{Op: "geometric mean", Reason: "empty input"}
	}
	var logSum float64
	for _, x := range xs {
		if x <= 0 {
			return 0, &StatisticalDomainError{Op: "geometric mean", Reason: "non-positive value"}
		}
		logSum += math.Log(float64(x))
	}
	return math.Exp(logSum / float64(len(xs))), nil
}
