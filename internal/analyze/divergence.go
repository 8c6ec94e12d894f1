package analyze

import "math"

// KLDivergence computes D(P||Q) = sum over words w of P of
// P[w] * ln(P[w] / Q[w]).
//
// Only words present in P are summed; words in Q absent from P
// contribute nothing. The measure is asymmetric by design. A word of P
// missing from Q (or carried with zero mass) makes the divergence
// undefined and is a hard DivergenceError rather than a silently
// skipped term, because skipping would change the numeric meaning of
// the metric. Callers avoid it by construction: Q built over the whole
// corpus is always a vocabulary superset of any P drawn from that
// corpus's tokens.
func KLDivergence(p, q Distribution) (float64, error) {
	if len(p) == 0 {
		return 0, &StatisticalDomainError{Op: "kl divergence", Reason: "empty distribution"}
	}
	if len(q) == 0 {
		return 0, &StatisticalDomainError{Op: "kl divergence", Reason: "empty reference distribution"}
	}

	var total float64
	for word, pw := range p {
		if pw <= 0 {
			return 0, &DivergenceError{Word: word, Reason: "non-positive mass in P"}
		}
		qw := q.Mass(word)
		if qw <= 0 {
			return 0, &DivergenceError{Word: word, Reason: "no mass in reference distribution"}
		}
		total += pw * math.Log(pw/qw)
	}
	return total, nil
}
