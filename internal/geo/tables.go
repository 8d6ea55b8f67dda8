// Package geo holds the static knowledge tables used for proximity and
// category scoring: a state adjacency map and per-category weekend
// suitability weights.
package geo

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Tables bundles the two static lookup tables. Instances are built once
// at startup and never mutated afterwards, so they are safe to share
// across concurrent rankings.
type Tables struct {
	// Neighbors maps a state to the states it borders. The relation is
	// directed: Neighbors["Delhi"] listing "Rajasthan" does not imply
	// the reverse entry exists.
	Neighbors map[string][]string `yaml:"neighbors"`

	// CategoryWeights maps a destination category label to a weekend
	// suitability coefficient in [0, 1].
	CategoryWeights map[string]float64 `yaml:"category_weights"`
}

// defaultNeighbors approximates geographic proximity at the state level.
// The dataset carries no coordinates, so bordering states stand in for
// "reachable over a weekend".
var defaultNeighbors = map[string][]string{
	"Delhi":         {"Haryana", "Uttar Pradesh", "Rajasthan", "Punjab"},
	"Maharashtra":   {"Gujarat", "Madhya Pradesh", "Karnataka", "Goa", "Telangana"},
	"Karnataka":     {"Maharashtra", "Goa", "Tamil Nadu", "Andhra Pradesh", "Telangana", "Kerala"},
	"Tamil Nadu":    {"Karnataka", "Kerala", "Andhra Pradesh"},
	"West Bengal":   {"Bihar", "Jharkhand", "Odisha", "Assam"},
	"Rajasthan":     {"Gujarat", "Madhya Pradesh", "Uttar Pradesh", "Haryana", "Punjab", "Delhi"},
	"Uttar Pradesh": {"Delhi", "Haryana", "Rajasthan", "Madhya Pradesh", "Bihar", "Uttarakhand"},
	"Gujarat":       {"Rajasthan", "Madhya Pradesh", "Maharashtra"},
	"Kerala":        {"Tamil Nadu", "Karnataka"},
	"Goa":           {"Maharashtra", "Karnataka"},
}

// defaultCategoryWeights scores destination types by how well they suit
// a short trip.
var defaultCategoryWeights = map[string]float64{
	"Hill Station": 1.0,
	"Beach":        1.0,
	"Wildlife":     0.8,
	"Historical":   0.9,
	"Religious":    0.9,
	"Adventure":    0.85,
	"Nature":       0.95,
	"Lake":         0.95,
	"Fort":         0.9,
	"Temple":       0.85,
	"Palace":       0.9,
}

// neutralCategoryWeight is used for category labels not present in the
// weight table.
const neutralCategoryWeight = 0.5

// Default returns the built-in tables.
func Default() *Tables {
	return &Tables{
		Neighbors:       defaultNeighbors,
		CategoryWeights: defaultCategoryWeights,
	}
}

// Load reads a YAML tables file and returns the resulting Tables. The
// file replaces the defaults wholesale; a section left empty in the
// file falls back to the built-in table for that section.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "geo: read tables file %s", path)
	}

	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, eris.Wrapf(err, "geo: parse tables file %s", path)
	}

	if t.Neighbors == nil {
		t.Neighbors = defaultNeighbors
	}
	if t.CategoryWeights == nil {
		t.CategoryWeights = defaultCategoryWeights
	}

	for cat, w := range t.CategoryWeights {
		if w < 0 || w > 1 {
			return nil, eris.Errorf("geo: category %q weight %v outside [0,1]", cat, w)
		}
	}

	return &t, nil
}

// CategoryWeight returns the suitability coefficient for a single
// category label, or the neutral 0.5 for unknown labels.
func (t *Tables) CategoryWeight(category string) float64 {
	if w, ok := t.CategoryWeights[category]; ok {
		return w
	}
	return neutralCategoryWeight
}
