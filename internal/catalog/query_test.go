package catalog

import (
	"testing"

	"github.com/lshigami/Marmoset/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []model.Assignment {
	return []model.Assignment{
		{ID: 1, Title: "Intro to Algorithms", Difficulty: model.DifficultyEasy},
		{ID: 2, Title: "Advanced Algorithms", Difficulty: model.DifficultyHard},
		{ID: 3, Title: "Essay Writing", Difficulty: model.DifficultyEasy},
		{ID: 4, Title: "Graph Theory", Difficulty: model.DifficultyMedium},
	}
}

func titles(assignments []model.Assignment) []string {
	out := make([]string, len(assignments))
	for i, a := range assignments {
		out[i] = a.Title
	}
	return out
}

func TestQueryEmptyFilterReturnsAll(t *testing.T) {
	all := sampleCatalog()
	got := Query(all, Filter{})
	assert.Equal(t, all, got)
}

func TestQueryByDifficulty(t *testing.T) {
	got := Query(sampleCatalog(), Filter{Difficulty: "easy"})
	assert.Equal(t, []string{"Intro to Algorithms", "Essay Writing"}, titles(got))
}

func TestQueryBySearchIsCaseInsensitive(t *testing.T) {
	got := Query(sampleCatalog(), Filter{Search: "ALGO"})
	assert.Equal(t, []string{"Intro to Algorithms", "Advanced Algorithms"}, titles(got))

	got = Query(sampleCatalog(), Filter{Search: "graph"})
	assert.Equal(t, []string{"Graph Theory"}, titles(got))
}

func TestQueryFiltersIntersect(t *testing.T) {
	got := Query(sampleCatalog(), Filter{Difficulty: "easy", Search: "algo"})
	require.Len(t, got, 1)
	assert.Equal(t, "Intro to Algorithms", got[0].Title)
}

func TestQueryNoMatches(t *testing.T) {
	got := Query(sampleCatalog(), Filter{Difficulty: "hard", Search: "essay"})
	assert.Empty(t, got)

	got = Query(nil, Filter{Difficulty: "easy"})
	assert.Empty(t, got)
}

func TestQueryPreservesInputOrder(t *testing.T) {
	all := sampleCatalog()
	got := Query(all, Filter{Search: "a"})
	// Every sample title contains an "a"; order must match the input.
	assert.Equal(t, titles(all), titles(got))
}
