package core

import (
	"testing"

	"github.com/Texasdada13/apptriage/schema"
	"github.com/stretchr/testify/assert"
)

// TestRankResults tests result ordering and truncation.
func TestRankResults(t *testing.T) {
	results := []schema.AppResult{
		{Application: schema.Application{Name: "low"}, CompositeScore: 20},
		{Application: schema.Application{Name: "high"}, CompositeScore: 90},
		{Application: schema.Application{Name: "mid"}, CompositeScore: 55},
	}

	t.Run("sorts descending", func(t *testing.T) {
		ranked := RankResults(results, 0)
		assert.Equal(t, "high", ranked[0].Name)
		assert.Equal(t, "mid", ranked[1].Name)
		assert.Equal(t, "low", ranked[2].Name)
	})

	t.Run("applies limit", func(t *testing.T) {
		ranked := RankResults(results, 2)
		assert.Len(t, ranked, 2)
		assert.Equal(t, "high", ranked[0].Name)
	})

	t.Run("limit beyond length returns all", func(t *testing.T) {
		ranked := RankResults(results, 10)
		assert.Len(t, ranked, 3)
	})

	t.Run("ties break on name", func(t *testing.T) {
		tied := []schema.AppResult{
			{Application: schema.Application{Name: "zeta"}, CompositeScore: 50},
			{Application: schema.Application{Name: "alpha"}, CompositeScore: 50},
		}
		ranked := RankResults(tied, 0)
		assert.Equal(t, "alpha", ranked[0].Name)
	})
}

// TestFilterByMinScore tests the score floor filter.
func TestFilterByMinScore(t *testing.T) {
	results := []schema.AppResult{
		{Application: schema.Application{Name: "a"}, CompositeScore: 75},
		{Application: schema.Application{Name: "b"}, CompositeScore: 50},
		{Application: schema.Application{Name: "c"}, CompositeScore: 25},
	}

	t.Run("zero floor passes everything", func(t *testing.T) {
		assert.Len(t, FilterByMinScore(results, 0), 3)
	})

	t.Run("floor is inclusive", func(t *testing.T) {
		filtered := FilterByMinScore(results, 50)
		assert.Len(t, filtered, 2)
		assert.Equal(t, "a", filtered[0].Name)
		assert.Equal(t, "b", filtered[1].Name)
	})

	t.Run("floor above all scores", func(t *testing.T) {
		assert.Empty(t, FilterByMinScore(results, 90))
	})
}
