package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/pzaremba/spanscope/internal/model"
)

// Metric descriptions shown with --descriptions, one per table.
const (
	descFrequency = `Number of spans per type in the corpus. Frequency tends to be
positively correlated with model performance, although transfer
learning can shrink the data requirements and blunt the effect.`

	descLength = `Geometric mean of span lengths in tokens. Models with strict Markov
assumptions tend to perform poorly on long spans; architectures that
carry longer context (LSTMs, Transformers) should do better.`

	descSpanDistinctiveness = `KL divergence between the unigram distribution inside spans and the
corpus distribution. High values mean distinct vocabulary inside
spans, so local features carry span membership; low values call for
sequence information.`

	descBoundaryDistinctiveness = `KL divergence between the unigram distribution of boundary-window
tokens and the corpus distribution. High values mean span starts and
ends are easy to spot; low values indicate smooth transitions.`
)

// Renderer prints metric tables to stdout and writes JSON reports.
type Renderer struct {
	out          io.Writer
	descriptions bool
}

// NewRenderer creates a renderer. With descriptions set, each table is
// preceded by an explanation of its metric.
func NewRenderer(descriptions bool) *Renderer {
	return &Renderer{
		out:          os.Stdout,
		descriptions: descriptions,
	}
}

// Render prints all metric tables and the per-layer summary.
func (r *Renderer) Render(res *AnalysisResult) error {
	fmt.Fprintf(r.out, "Corpus: %s (%d documents)\n", displayPath(res.Path), res.DocCount)
	fmt.Fprintf(r.out, "Span layers: %s\n", strings.Join(res.Layers, ", "))

	m := &res.Report.Metrics

	r.divider("Span Type Frequency")
	r.describe(descFrequency)
	r.intTable("Frequency", m.Frequencies)

	r.divider("Span Length")
	r.describe(descLength)
	r.floatTable("Length", m.Length)

	r.divider("Span Distinctiveness")
	r.describe(descSpanDistinctiveness)
	r.floatTable("Span Distinctiveness", m.SpanDistinctiveness)

	r.divider("Span Boundary Distinctiveness")
	r.describe(descBoundaryDistinctiveness)
	r.floatTable("Boundary Distinctiveness", m.BoundaryDistinctiveness)

	r.divider("Weighted Averages (by span frequency)")
	r.summaryTable(res.Summaries)
	return nil
}

// WriteJSON writes the interchange report to path.
func (r *Renderer) WriteJSON(res *AnalysisResult, path string) error {
	data, err := json.MarshalIndent(res.Report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (r *Renderer) divider(title string) {
	fmt.Fprintf(r.out, "\n════ %s ════\n", title)
}

func (r *Renderer) describe(text string) {
	if r.descriptions {
		fmt.Fprintf(r.out, "%s\n\n", text)
	}
}

func (r *Renderer) intTable(header string, table map[string]map[string]int) {
	w := tabwriter.NewWriter(r.out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Layer\tSpan Type\t%s\n", header)
	for _, layer := range sortedKeys(table) {
		types := table[layer]
		labels := make([]string, 0, len(types))
		for label := range types {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Fprintf(w, "%s\t%s\t%d\n", layer, label, types[label])
		}
	}
	w.Flush()
}

func (r *Renderer) floatTable(header string, table map[string]map[string]float64) {
	w := tabwriter.NewWriter(r.out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Layer\tSpan Type\t%s\n", header)
	for _, layer := range sortedKeys(table) {
		types := table[layer]
		labels := make([]string, 0, len(types))
		for label := range types {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Fprintf(w, "%s\t%s\t%.4f\n", layer, label, types[label])
		}
	}
	w.Flush()
}

func (r *Renderer) summaryTable(summaries []model.Summary) {
	w := tabwriter.NewWriter(r.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Layer\tSpans\tLength\tSpan Dist.\tBoundary Dist.")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%.4f\t%.4f\t%.4f\n",
			s.Layer, s.SpanCount, s.Length, s.SpanDistinctiveness, s.BoundaryDistinctiveness)
	}
	w.Flush()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func displayPath(path string) string {
	if path == "" {
		return "(in-memory)"
	}
	return path
}
