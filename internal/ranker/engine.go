// Package ranker scores destinations for weekend suitability relative
// to a source city and selects the top candidates.
package ranker

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/tripdesk/getaway-cli/internal/dataset"
	"github.com/tripdesk/getaway-cli/internal/geo"
)

// ErrCityNotFound is returned when the source city has no matching
// record in the dataset. Callers ranking a list of cities should skip
// the city and continue.
var ErrCityNotFound = eris.New("source city not found in dataset")

// Composite weights. Fixed policy: rating dominates, proximity second,
// category suitability last. They sum to 1.0, so a composite of
// in-range components stays in [0, 1].
const (
	ratingWeight    = 0.5
	proximityWeight = 0.3
	categoryWeight  = 0.2
)

// Scored pairs a destination with its derived scores. The source
// record is embedded unmodified; scoring never mutates the dataset.
type Scored struct {
	dataset.Destination

	RatingScore    float64
	ProximityScore float64
	CategoryScore  float64
	WeekendScore   float64
}

// Engine computes weekend suitability scores against a fixed set of
// knowledge tables.
type Engine struct {
	tables *geo.Tables
}

// New creates an Engine using the given tables.
func New(tables *geo.Tables) *Engine {
	return &Engine{tables: tables}
}

// Score enriches every destination outside the source city with its
// four derived scores. The result is unsorted; use TopN to rank.
// Returns ErrCityNotFound when the source city has no record.
func (e *Engine) Score(t *dataset.Table, sourceCity string) ([]Scored, error) {
	sourceState, ok := t.StateOf(sourceCity)
	if !ok {
		return nil, eris.Wrapf(ErrCityNotFound, "ranker: %q", sourceCity)
	}

	// A city cannot recommend itself.
	var candidates []dataset.Destination
	for _, d := range t.Destinations {
		if strings.EqualFold(d.City, sourceCity) {
			continue
		}
		candidates = append(candidates, d)
	}

	ratings := make([]*float64, len(candidates))
	if t.HasRating {
		for i, d := range candidates {
			ratings[i] = d.Rating
		}
	}
	ratingScores := normalizeOptional(ratings)

	scored := make([]Scored, len(candidates))
	for i, d := range candidates {
		s := Scored{
			Destination:    d,
			RatingScore:    ratingScores[i],
			ProximityScore: e.tables.ProximityWeight(sourceState, d.State),
			CategoryScore:  e.categoryScore(d.Type),
		}
		s.WeekendScore = ratingWeight*s.RatingScore +
			proximityWeight*s.ProximityScore +
			categoryWeight*s.CategoryScore
		scored[i] = s
	}

	zap.L().Debug("scored destinations",
		zap.String("source_city", sourceCity),
		zap.String("source_state", sourceState),
		zap.Int("candidates", len(scored)),
	)
	return scored, nil
}

// categoryScore splits a comma-joined category field and returns the
// weight of the single most weekend-suitable label. Empty or absent
// fields score neutral.
func (e *Engine) categoryScore(typeField string) float64 {
	if typeField == "" {
		return neutralScore
	}
	best := 0.0
	seen := false
	for _, label := range strings.Split(typeField, ",") {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if w := e.tables.CategoryWeight(label); !seen || w > best {
			best = w
			seen = true
		}
	}
	if !seen {
		return neutralScore
	}
	return best
}
