package analyze

import "fmt"

// StatisticalDomainError reports a statistic that is undefined for its
// input, such as the geometric mean of an empty set or a divergence
// against an empty reference distribution. These never degrade to a
// placeholder value; downstream aggregation must not average in a
// fabricated number.
type StatisticalDomainError struct {
	Op     string
	Reason string
}

func (e *StatisticalDomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// DivergenceError reports an undefined KL-divergence term: the reference
// distribution carries no mass for a word of P, or P itself carries a
// non-positive mass. Callers that build the reference over the whole
// corpus and draw P from a token subset of the same corpus will never
// see this error.
type DivergenceError struct {
	Word   string
	Reason string
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("kl divergence undefined for word %q: %s", e.Word, e.Reason)
}
