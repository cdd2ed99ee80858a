package schema

// CriteriaWeightSet describes one weight set for the criteria display.
type CriteriaWeightSet struct {
	Name       string             `json:"name"`
	Purpose    string             `json:"purpose"`
	Factors    []string           `json:"factors"`
	FactorKeys []string           `json:"factor_keys"`
	Weights    map[string]float64 `json:"weights"`
	Formula    string             `json:"formula"`
}

// CriteriaRule describes one recommendation rule for the criteria display.
// Rules are evaluated in order; the first match wins.
type CriteriaRule struct {
	Order     int    `json:"order"`
	Name      string `json:"name"`
	Condition string `json:"condition"`
	Action    string `json:"action"`
}

// CriteriaRenderModel contains all processed data for criteria display.
type CriteriaRenderModel struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	WeightSets  []CriteriaWeightSet `json:"weight_sets"`
	Thresholds  map[string]float64  `json:"thresholds"`
	Rules       []CriteriaRule      `json:"rules"`
}
