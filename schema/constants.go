package schema

// Custom string types for type safety.
type (
	// WeightKey represents keys used in weight maps and score breakdowns.
	WeightKey string

	// WeightSet identifies one of the three configurable weight sets.
	WeightSet string

	// ActionLabel represents the discrete action recommendation for an application.
	ActionLabel string

	// QuadrantCategory represents the TIME quadrant placement of an application.
	QuadrantCategory string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for snapshots.
	DatabaseBackend string
)

// Weight keys used in the scoring logic.
const (
	WeightBusinessValue WeightKey = "business_value"
	WeightTechHealth    WeightKey = "tech_health"
	WeightCost          WeightKey = "cost"
	WeightUsage         WeightKey = "usage"
	WeightSecurity      WeightKey = "security"
	WeightStrategicFit  WeightKey = "strategic_fit"
	WeightRedundancy    WeightKey = "redundancy"
)

// All weight sets supported.
const (
	CompositeWeights     WeightSet = "composite"
	BusinessAxisWeights  WeightSet = "business_value_axis"
	TechnicalAxisWeights WeightSet = "technical_quality_axis"
)

// All action labels supported, from most to least urgent.
const (
	ImmediateAction   ActionLabel = "Immediate Action Required"
	ConsolidateAction ActionLabel = "Consolidate"
	MigrateAction     ActionLabel = "Migrate"
	InvestAction      ActionLabel = "Invest"
	RetainAction      ActionLabel = "Retain"
	MaintainAction    ActionLabel = "Maintain"
	TolerateAction    ActionLabel = "Tolerate"
	RetireAction      ActionLabel = "Retire"
)

// All TIME quadrants supported.
const (
	InvestQuadrant    QuadrantCategory = "Invest"
	TolerateQuadrant  QuadrantCategory = "Tolerate"
	MigrateQuadrant   QuadrantCategory = "Migrate"
	EliminateQuadrant QuadrantCategory = "Eliminate"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All snapshot backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllActionLabels returns the action labels in rule-precedence order.
var AllActionLabels = []ActionLabel{
	ImmediateAction,
	ConsolidateAction,
	MigrateAction,
	InvestAction,
	RetainAction,
	MaintainAction,
	TolerateAction,
	RetireAction,
}

// AllQuadrants lists the four TIME quadrants in display order.
var AllQuadrants = []QuadrantCategory{
	InvestQuadrant,
	TolerateQuadrant,
	MigrateQuadrant,
	EliminateQuadrant,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid snapshot backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// GetDefaultWeights returns the default weight map for a given weight set.
func GetDefaultWeights(set WeightSet) map[WeightKey]float64 {
	switch set {
	case BusinessAxisWeights:
		return map[WeightKey]float64{
			WeightBusinessValue: 0.50,
			WeightUsage:         0.20,
			WeightStrategicFit:  0.30,
		}
	case TechnicalAxisWeights:
		return map[WeightKey]float64{
			WeightTechHealth:   0.40,
			WeightSecurity:     0.30,
			WeightStrategicFit: 0.20,
			WeightCost:         0.10,
		}
	default: // CompositeWeights
		return map[WeightKey]float64{
			WeightBusinessValue: 0.25,
			WeightTechHealth:    0.20,
			WeightCost:          0.15,
			WeightUsage:         0.15,
			WeightSecurity:      0.10,
			WeightStrategicFit:  0.10,
			WeightRedundancy:    0.05,
		}
	}
}

// Default threshold values for quadrant placement and rule overrides.
const (
	DefaultBusinessValueThreshold    = 6.0
	DefaultTechnicalQualityThreshold = 6.0
	DefaultCriticalBusinessValue     = 8.0
	DefaultPoorTechHealth            = 4.0
	DefaultPoorSecurity              = 5.0
)

// Default normalization ceilings for cost and usage.
const (
	DefaultMaxCost  = 300000.0
	DefaultMaxUsage = 1000.0
)
