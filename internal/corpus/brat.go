package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pzaremba/spanscope/internal/model"
)

// BRATResult is a converted BRAT document plus the annotations that
// could not be aligned. Unalignable annotations are reported, never
// fatal; the surrounding dump is still worth analyzing.
type BRATResult struct {
	Doc      *model.Document
	Warnings []string
}

// ParseBRATDir converts a directory of BRAT standoff annotations: every
// .ann file pairs with the .txt file of the same stem. Files with a
// missing .txt counterpart are skipped with a warning.
func ParseBRATDir(dir, layer string) (model.Corpus, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read annotation dir: %w", err)
	}

	var stems []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".ann") {
			continue
		}
		stems = append(stems, strings.TrimSuffix(entry.Name(), ".ann"))
	}
	sort.Strings(stems)

	var corpus model.Corpus
	var warnings []string
	for _, stem := range stems {
		text, err := os.ReadFile(filepath.Join(dir, stem+".txt"))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: no text file: %v", stem, err))
			continue
		}
		ann, err := os.Open(filepath.Join(dir, stem+".ann"))
		if err != nil {
			return nil, nil, fmt.Errorf("open annotations: %w", err)
		}
		res, err := ParseBRAT(string(text), ann, layer)
		ann.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", stem, err)
		}
		for _, w := range res.Warnings {
			warnings = append(warnings, stem+": "+w)
		}
		corpus = append(corpus, res.Doc)
	}

	if len(corpus) == 0 {
		return nil, warnings, fmt.Errorf("no .ann/.txt pairs found in %s", dir)
	}
	return corpus, warnings, nil
}

// ParseBRAT converts one document: the raw text plus its standoff
// annotation stream. T lines ("T1<TAB>LABEL start end<TAB>surface")
// carry the entity spans; everything else (events, relations, notes) is
// ignored. Character offsets are aligned onto token boundaries in
// expand mode: a span grows to cover every token it touches.
func ParseBRAT(text string, ann io.Reader, layer string) (*BRATResult, error) {
	tokens := tokenize(text)
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Text
	}
	doc := model.NewDocument(words)

	var spans []model.Span
	var warnings []string

	scanner := bufio.NewScanner(ann)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "T") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			warnings = append(warnings, fmt.Sprintf("malformed entity line %q", line))
			continue
		}
		label := fields[1]
		start, err1 := strconv.Atoi(fields[2])
		end, err2 := strconv.Atoi(fields[3])
		if err1 != nil || err2 != nil {
			// Discontinuous spans ("start end;start end") land here too.
			warnings = append(warnings, fmt.Sprintf("unparseable offsets in %q", line))
			continue
		}

		span, ok := alignCharSpan(tokens, label, start, end)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("could not align %s [%d,%d)", label, start, end))
			continue
		}
		spans = append(spans, span)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read annotations: %w", err)
	}

	doc.SetSpans(layer, spans)
	return &BRATResult{Doc: doc, Warnings: warnings}, nil
}

// alignCharSpan maps a character range onto token indices, expanding to
// the boundaries of every token the range overlaps.
func alignCharSpan(tokens []offsetToken, label string, start, end int) (model.Span, bool) {
	if start >= end {
		return model.Span{}, false
	}

	first, last := -1, -1
	for i, tok := range tokens {
		if tok.End > start && tok.Start < end {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return model.Span{}, false
	}
	return model.Span{Label: label, Start: first, End: last + 1}, true
}
