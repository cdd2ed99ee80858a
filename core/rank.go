package core

import (
	"sort"

	"github.com/Texasdada13/apptriage/schema"
)

// RankResults sorts applications by composite score in descending order and
// returns the top 'limit' entries. Ties break on name so repeated runs over
// the same inventory produce identical output.
func RankResults(results []schema.AppResult, limit int) []schema.AppResult {
	sort.Slice(results, func(i, j int) bool {
		if results[i].CompositeScore != results[j].CompositeScore {
			return results[i].CompositeScore > results[j].CompositeScore
		}
		return results[i].Name < results[j].Name
	})
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}

// FilterByMinScore returns only the results whose composite score is at or
// above the given floor. A zero floor passes everything through.
func FilterByMinScore(results []schema.AppResult, minScore float64) []schema.AppResult {
	if minScore <= 0 {
		return results
	}
	filtered := make([]schema.AppResult, 0, len(results))
	for _, r := range results {
		if r.CompositeScore >= minScore {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
