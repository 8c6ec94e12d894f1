package analyze

import (
	"strings"

	"github.com/pzaremba/spanscope/internal/model"
)

// Distribution is a unigram word distribution: normalized word text to a
// non-negative mass. Depending on construction the masses are raw counts
// or probabilities summing to 1.0. A missing word has mass zero.
type Distribution map[string]float64

// NormalizeText folds token text into its distribution key: lowercase,
// with the Penn-Treebank quote pairs `` and '' folded to a plain double
// quote. Nothing else is folded; hand-verified corpora depend on this
// exact rule.
func NormalizeText(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "``", `"`)
	text = strings.ReplaceAll(text, "''", `"`)
	return text
}

// WordDistribution tallies every token of every sequence. With normalize
// set, counts are divided by the total so the masses sum to 1.0. An
// empty input yields an empty distribution, not an error.
func WordDistribution(seqs [][]model.Token, normalize bool) Distribution {
	d := make(Distribution)
	for _, seq := range seqs {
		for _, tok := range seq {
			d[NormalizeText(tok.Text)]++
		}
	}
	if normalize {
		d.normalize()
	}
	return d
}

// UnigramDistribution tallies one count per token of a flat token list.
// This is the boundary-token mode: the input is already a flat
// collection of tokens rather than token-bearing containers.
func UnigramDistribution(tokens []model.Token, normalize bool) Distribution {
	d := make(Distribution)
	for _, tok := range tokens {
		d[NormalizeText(tok.Text)]++
	}
	if normalize {
		d.normalize()
	}
	return d
}

// Mass returns the mass of a word, zero when absent.
func (d Distribution) Mass(word string) float64 {
	return d[word]
}

// Sum returns the total mass.
func (d Distribution) Sum() float64 {
	var total float64
	for _, v := range d {
		total += v
	}
	return total
}

func (d Distribution) normalize() {
	total := d.Sum()
	if total == 0 {
		return
	}
	for w, v := range d {
		d[w] = v / total
	}
}
