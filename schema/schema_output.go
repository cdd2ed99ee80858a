package schema

// EnrichedAppResult adds presentation data to an AppResult.
type EnrichedAppResult struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	AppResult
}

// Health label constants.
const (
	ExcellentLabel = "Excellent" // top band, no concerns
	GoodLabel      = "Good"      // healthy overall
	FairLabel      = "Fair"      // watch list
	PoorLabel      = "Poor"      // bottom band
)

// GetPlainLabel returns a plain text label indicating the health level
// based on the application's composite score.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 80:
		return ExcellentLabel
	case score >= 60:
		return GoodLabel
	case score >= 40:
		return FairLabel
	default:
		return PoorLabel
	}
}

// EnrichResults adds rank and label to a list of application results.
func EnrichResults(results []AppResult) []EnrichedAppResult {
	output := make([]EnrichedAppResult, len(results))
	for i, r := range results {
		output[i] = EnrichedAppResult{
			Rank:      i + 1,
			Label:     GetPlainLabel(r.CompositeScore),
			AppResult: r,
		}
	}
	return output
}
