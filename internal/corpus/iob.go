package corpus

import (
	"strings"

	"github.com/pzaremba/spanscope/internal/model"
)

// decodeBIO turns a sequence of B-/I-/O tags into spans over the token
// positions. An I- tag that opens a sequence (or follows a different
// label) starts a new span; annotation dumps in the wild are not strict
// IOB2. Unknown tags close the running span and count as O.
func decodeBIO(tags []string) []model.Span {
	var spans []model.Span
	var open *model.Span

	flush := func(end int) {
		if open != nil {
			open.End = end
			spans = append(spans, *open)
			open = nil
		}
	}

	for i, tag := range tags {
		switch {
		case strings.HasPrefix(tag, "B-"):
			flush(i)
			open = &model.Span{Label: tag[2:], Start: i}
		case strings.HasPrefix(tag, "I-"):
			label := tag[2:]
			if open == nil || open.Label != label {
				flush(i)
				open = &model.Span{Label: label, Start: i}
			}
		default:
			flush(i)
		}
	}
	flush(len(tags))
	return spans
}
