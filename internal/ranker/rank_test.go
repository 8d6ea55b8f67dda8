package ranker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdesk/getaway-cli/internal/dataset"
	"github.com/tripdesk/getaway-cli/internal/geo"
)

func TestTopN_Order(t *testing.T) {
	scored := []Scored{
		{Destination: dataset.Destination{Name: "low"}, WeekendScore: 0.2},
		{Destination: dataset.Destination{Name: "high"}, WeekendScore: 0.9},
		{Destination: dataset.Destination{Name: "mid"}, WeekendScore: 0.5},
	}

	got := TopN(scored, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "high", got[0].Name)
	assert.Equal(t, "mid", got[1].Name)
}

func TestTopN_FullSet(t *testing.T) {
	scored := []Scored{
		{Destination: dataset.Destination{Name: "a"}, WeekendScore: 0.3},
		{Destination: dataset.Destination{Name: "b"}, WeekendScore: 0.7},
		{Destination: dataset.Destination{Name: "c"}, WeekendScore: 0.1},
	}

	got := TopN(scored, 3)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].WeekendScore, got[i].WeekendScore)
	}

	names := map[string]bool{}
	for _, s := range got {
		assert.False(t, names[s.Name], "duplicate %s", s.Name)
		names[s.Name] = true
	}
}

func TestTopN_NLargerThanSet(t *testing.T) {
	scored := []Scored{
		{Destination: dataset.Destination{Name: "a"}, WeekendScore: 0.3},
	}
	got := TopN(scored, 10)
	assert.Len(t, got, 1)
}

func TestTopN_StableTies(t *testing.T) {
	scored := []Scored{
		{Destination: dataset.Destination{Name: "first"}, WeekendScore: 0.5},
		{Destination: dataset.Destination{Name: "second"}, WeekendScore: 0.5},
		{Destination: dataset.Destination{Name: "third"}, WeekendScore: 0.5},
	}

	got := TopN(scored, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "second", got[1].Name)
	assert.Equal(t, "third", got[2].Name)
}

func TestTopN_DoesNotMutateInput(t *testing.T) {
	scored := []Scored{
		{Destination: dataset.Destination{Name: "low"}, WeekendScore: 0.1},
		{Destination: dataset.Destination{Name: "high"}, WeekendScore: 0.9},
	}

	_ = TopN(scored, 1)
	assert.Equal(t, "low", scored[0].Name)
	assert.Equal(t, "high", scored[1].Name)
}

func TestTopN_Empty(t *testing.T) {
	assert.Empty(t, TopN(nil, 5))
}

func TestScoreAndRank(t *testing.T) {
	engine := New(geo.Default())

	got, err := engine.ScoreAndRank(testTable(), "Delhi", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.GreaterOrEqual(t, got[0].WeekendScore, got[1].WeekendScore)
}

func TestScoreAndRank_CityNotFound(t *testing.T) {
	engine := New(geo.Default())

	_, err := engine.ScoreAndRank(testTable(), "Nowhere", 5)
	require.Error(t, err)
}
