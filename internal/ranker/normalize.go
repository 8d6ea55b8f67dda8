package ranker

// neutralScore is used where a component has no discriminating
// information: missing rating cells, unknown categories, degenerate
// value ranges.
const neutralScore = 0.5

// Normalize rescales values to [0, 1] via min-max. When all values are
// equal (including a single value) every output is 0.5, signalling
// that the column carries no discriminating information.
func Normalize(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(values))
	if max == min {
		for i := range out {
			out[i] = neutralScore
		}
		return out
	}
	for i, v := range values {
		out[i] = (v - min) / (max - min)
	}
	return out
}

// normalizeOptional rescales a column with gaps. Min and max are
// computed over the present values only; absent entries get the
// neutral 0.5 so every record still receives a score.
func normalizeOptional(values []*float64) []float64 {
	var min, max float64
	found := false
	for _, v := range values {
		if v == nil {
			continue
		}
		if !found || *v < min {
			min = *v
		}
		if !found || *v > max {
			max = *v
		}
		found = true
	}

	out := make([]float64, len(values))
	for i, v := range values {
		switch {
		case v == nil, !found, max == min:
			out[i] = neutralScore
		default:
			out[i] = (*v - min) / (max - min)
		}
	}
	return out
}
