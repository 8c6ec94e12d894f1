package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pzaremba/spanscope/internal/model"
)

// docStartMarker delimits documents in CoNLL NER dumps.
const docStartMarker = "-DOCSTART-"

// ParseCoNLL reads IOB-tagged CoNLL data into a corpus, decoding the
// tags into the named span layer.
//
// Each non-blank line carries a token: the first column is its text, the
// last column its tag; columns split on tabs or spaces. When the input
// contains -DOCSTART- markers, those delimit documents and blank lines
// are sentence breaks within a document. Without markers, every
// blank-line-separated block is its own document (the shape of the
// conll2000/conll2003 training dumps, where each row is one sentence).
func ParseCoNLL(r io.Reader, layer string) (model.Corpus, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	hasMarkers := false
	for _, line := range lines {
		if strings.HasPrefix(line, docStartMarker) {
			hasMarkers = true
			break
		}
	}

	var corpus model.Corpus
	var words, tags []string

	flush := func() error {
		if len(words) == 0 {
			return nil
		}
		doc := model.NewDocument(words)
		doc.SetSpans(layer, decodeBIO(tags))
		corpus = append(corpus, doc)
		words, tags = nil, nil
		return nil
	}

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, docStartMarker):
			if err := flush(); err != nil {
				return nil, err
			}
		case strings.TrimSpace(line) == "":
			if !hasMarkers {
				if err := flush(); err != nil {
					return nil, err
				}
			}
			// With markers, a blank line is only a sentence break.
		default:
			fields := splitColumns(line)
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: expected token and tag columns, got %q", i+1, line)
			}
			words = append(words, fields[0])
			tags = append(tags, fields[len(fields)-1])
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return corpus, nil
}

func splitColumns(line string) []string {
	if strings.Contains(line, "\t") {
		return strings.Split(line, "\t")
	}
	return strings.Fields(line)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
