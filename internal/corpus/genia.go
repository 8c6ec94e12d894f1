package corpus

import (
	"fmt"
	"io"
	"strings"

	"github.com/pzaremba/spanscope/internal/model"
)

// GENIANestingLevels is how deep GENIA nests its entity annotations: a
// token carries up to four stacked labels.
const GENIANestingLevels = 4

// ParseGENIA reads the GENIA nested-IOB dump into a corpus. Documents
// are blank-line separated; each line is a token followed by one tag
// column per nesting level, tab-separated. Every level is BIO-decoded
// independently and the spans of all levels are merged into the one
// span layer, so nested and overlapping entities coexist there.
func ParseGENIA(r io.Reader, layer string, levels int) (model.Corpus, error) {
	if levels < 1 {
		levels = GENIANestingLevels
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	var corpus model.Corpus
	var words []string
	var tags [][]string // [level][token]

	flush := func() {
		if len(words) == 0 {
			return
		}
		doc := model.NewDocument(words)
		var spans []model.Span
		for _, levelTags := range tags {
			spans = append(spans, decodeBIO(levelTags)...)
		}
		doc.SetSpans(layer, spans)
		corpus = append(corpus, doc)
		words, tags = nil, nil
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected token and tag columns, got %q", i+1, line)
		}

		n := len(fields) - 1
		if n > levels {
			n = levels
		}
		if tags == nil {
			tags = make([][]string, n)
		}
		if n != len(tags) {
			return nil, fmt.Errorf("line %d: expected %d tag columns, got %d", i+1, len(tags), n)
		}

		words = append(words, fields[0])
		for level := 0; level < n; level++ {
			tags[level] = append(tags[level], fields[level+1])
		}
	}
	flush()

	return corpus, nil
}
