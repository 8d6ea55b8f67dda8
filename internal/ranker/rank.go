package ranker

import (
	"sort"

	"github.com/tripdesk/getaway-cli/internal/dataset"
)

// TopN returns the n highest-scoring destinations in descending order
// of weekend score. Ties keep their relative input order. When n
// exceeds the input size the full set is returned.
func TopN(scored []Scored, n int) []Scored {
	out := make([]Scored, len(scored))
	copy(out, scored)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WeekendScore > out[j].WeekendScore
	})

	if n < 0 {
		n = 0
	}
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// ScoreAndRank scores the dataset from a source city and returns its
// top n destinations.
func (e *Engine) ScoreAndRank(t *dataset.Table, sourceCity string, n int) ([]Scored, error) {
	scored, err := e.Score(t, sourceCity)
	if err != nil {
		return nil, err
	}
	return TopN(scored, n), nil
}
