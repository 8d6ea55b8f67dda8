package geo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProximityWeight(t *testing.T) {
	tables := Default()

	tests := []struct {
		name     string
		source   string
		dest     string
		expected float64
	}{
		{"same state", "Delhi", "Delhi", 1.0},
		{"neighbor", "Delhi", "Rajasthan", 0.7},
		{"distant", "Delhi", "Kerala", 0.4},
		{"unknown source state", "Atlantis", "Delhi", 0.4},
		{"unknown dest state", "Delhi", "Atlantis", 0.4},
		{"both unknown but equal", "Atlantis", "Atlantis", 1.0},
		{"empty source state", "", "Delhi", 0.4},
		{"empty dest state", "Delhi", "", 0.4},
		{"both states empty", "", "", 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tables.ProximityWeight(tt.source, tt.dest))
		})
	}
}

func TestProximityWeight_DirectedLookup(t *testing.T) {
	tables := Default()

	// Tamil Nadu lists Andhra Pradesh as a neighbor, but Andhra Pradesh
	// has no entry of its own. The lookup is directed, so the reverse
	// direction falls to the distant tier.
	assert.Equal(t, 0.7, tables.ProximityWeight("Tamil Nadu", "Andhra Pradesh"))
	assert.Equal(t, 0.4, tables.ProximityWeight("Andhra Pradesh", "Tamil Nadu"))
}

func TestCategoryWeight(t *testing.T) {
	tables := Default()

	assert.Equal(t, 1.0, tables.CategoryWeight("Beach"))
	assert.Equal(t, 0.9, tables.CategoryWeight("Fort"))
	assert.Equal(t, 0.5, tables.CategoryWeight("Shopping Mall"))
	assert.Equal(t, 0.5, tables.CategoryWeight(""))
}

func TestDefault_WeightsInRange(t *testing.T) {
	for cat, w := range Default().CategoryWeights {
		assert.GreaterOrEqual(t, w, 0.0, cat)
		assert.LessOrEqual(t, w, 1.0, cat)
	}
}

func TestLoad_OverridesNeighbors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	content := `neighbors:
  Delhi: [Haryana]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tables, err := Load(path)
	require.NoError(t, err)

	// The file replaces the neighbors table wholesale.
	assert.Equal(t, 0.7, tables.ProximityWeight("Delhi", "Haryana"))
	assert.Equal(t, 0.4, tables.ProximityWeight("Delhi", "Rajasthan"))

	// Category weights were not in the file, so defaults apply.
	assert.Equal(t, 1.0, tables.CategoryWeight("Beach"))
}

func TestLoad_InvalidCategoryWeight(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	content := `category_weights:
  Beach: 1.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside [0,1]")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read tables file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("neighbors: [not: a: map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse tables file")
}
