package analyze

import "fmt"

// WeightedAverage collapses a per-(layer, type) metric table into one
// value per layer: the arithmetic mean of the type-level values weighted
// by each type's span frequency. Both tables must come from the same
// corpus and layer set; a type present in one table but not the other is
// a caller error.
func WeightedAverage(metric map[string]map[string]float64, freq map[string]map[string]int) (map[string]float64, error) {
	out := make(map[string]float64)
	for layer, values := range metric {
		weights, ok := freq[layer]
		if !ok {
			return nil, fmt.Errorf("layer %q has no frequency table", layer)
		}
		if len(values) != len(weights) {
			return nil, fmt.Errorf("layer %q: metric table has %d types, frequency table has %d", layer, len(values), len(weights))
		}

		var weighted float64
		var total int
		for label, v := range values {
			w, ok := weights[label]
			if !ok {
				return nil, fmt.Errorf("layer %q: type %q has no frequency weight", layer, label)
			}
			weighted += v * float64(w)
			total += w
		}
		if total == 0 {
			return nil, &StatisticalDomainError{Op: "weighted average", Reason: fmt.Sprintf("layer %q has no weighted types", layer)}
		}
		out[layer] = weighted / float64(total)
	}
	return out, nil
}
