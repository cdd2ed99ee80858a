package contract

import (
	"fmt"
	"maps"
	"runtime"
	"strings"

	"github.com/Texasdada13/apptriage/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// weightSumTolerance is the allowed deviation when validating that a custom
// weight set sums to 1.0.
const weightSumTolerance = 0.001

// DimensionWeightsRaw holds custom weights for one weight set. Float64
// pointers distinguish "not provided" from an explicit zero.
type DimensionWeightsRaw struct {
	BusinessValue *float64 `mapstructure:"business_value"`
	TechHealth    *float64 `mapstructure:"tech_health"`
	Cost          *float64 `mapstructure:"cost"`
	Usage         *float64 `mapstructure:"usage"`
	Security      *float64 `mapstructure:"security"`
	StrategicFit  *float64 `mapstructure:"strategic_fit"`
	Redundancy    *float64 `mapstructure:"redundancy"`
}

// WeightsRawInput holds all custom weight definitions from the YAML config file.
type WeightsRawInput struct {
	Composite     *DimensionWeightsRaw `mapstructure:"composite"`
	BusinessAxis  *DimensionWeightsRaw `mapstructure:"business_value_axis"`
	TechnicalAxis *DimensionWeightsRaw `mapstructure:"technical_quality_axis"`
}

// ThresholdsRawInput holds threshold definitions from the YAML config file.
type ThresholdsRawInput struct {
	BusinessValue         *float64 `mapstructure:"business_value"`
	TechnicalQuality      *float64 `mapstructure:"technical_quality"`
	CriticalBusinessValue *float64 `mapstructure:"critical_business_value"`
	PoorTechHealth        *float64 `mapstructure:"poor_tech_health"`
	PoorSecurity          *float64 `mapstructure:"poor_security"`
}

// CeilingsRawInput holds normalization ceiling definitions from the YAML config file.
type CeilingsRawInput struct {
	MaxCost  *float64 `mapstructure:"max_cost"`
	MaxUsage *float64 `mapstructure:"max_usage"`
}

// Config holds the runtime configuration for an assessment.
// This struct is the "final, validated" config.
type Config struct {
	InventoryPath string
	ResultLimit   int
	Workers       int
	Precision     int
	Output        schema.OutputMode
	OutputFile    string
	Detail        bool
	Explain       bool
	MinScore      float64
	Width         int // Terminal width override (0 = auto-detect)
	UseColors     bool

	// Decision engine configuration, resolved from defaults + overrides.
	CompositeWeights map[schema.WeightKey]float64
	BusinessWeights  map[schema.WeightKey]float64
	TechnicalWeights map[schema.WeightKey]float64

	BusinessValueThreshold    float64
	TechnicalQualityThreshold float64
	CriticalBusinessValue     float64
	PoorTechHealth            float64
	PoorSecurity              float64

	MaxCost  float64
	MaxUsage float64

	SnapshotBackend   schema.DatabaseBackend
	SnapshotDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InventoryPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Limit             int     `mapstructure:"limit"`
	Workers           int     `mapstructure:"workers"`
	Precision         int     `mapstructure:"precision"`
	Output            string  `mapstructure:"output"`
	OutputFile        string  `mapstructure:"output-file"`
	Detail            bool    `mapstructure:"detail"`
	Explain           bool    `mapstructure:"explain"`
	MinScore          float64 `mapstructure:"min-score"`
	Width             int     `mapstructure:"width"`
	Color             string  `mapstructure:"color"`
	SnapshotBackend   string  `mapstructure:"snapshot-backend"`
	SnapshotDBConnect string  `mapstructure:"snapshot-db-connect"`

	// --- Custom weights from config file ---
	Weights WeightsRawInput `mapstructure:"weights"`

	// --- Thresholds from config file ---
	Thresholds ThresholdsRawInput `mapstructure:"thresholds"`

	// --- Normalization ceilings from config file ---
	Ceilings CeilingsRawInput `mapstructure:"ceilings"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.CompositeWeights = maps.Clone(c.CompositeWeights)
	clone.BusinessWeights = maps.Clone(c.BusinessWeights)
	clone.TechnicalWeights = maps.Clone(c.TechnicalWeights)
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processWeights(cfg, &input.Weights); err != nil {
		return err
	}
	if err := processThresholds(cfg, &input.Thresholds); err != nil {
		return err
	}
	if err := processCeilings(cfg, &input.Ceilings); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs handles the scalar flags with straightforward rules.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.InventoryPath = input.InventoryPathStr

	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	cfg.Workers = input.Workers
	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > 2 {
		cfg.Precision = 2
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Width = input.Width

	if input.MinScore < 0 || input.MinScore > 100 {
		return fmt.Errorf("min-score must be between 0 and 100 (received %.2f)", input.MinScore)
	}
	cfg.MinScore = input.MinScore

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = useColors

	return nil
}

// overlayWeights merges explicitly provided raw weights over a default map.
// The result must still sum to 1.0 within tolerance.
func overlayWeights(set schema.WeightSet, defaults map[schema.WeightKey]float64, raw *DimensionWeightsRaw) (map[schema.WeightKey]float64, error) {
	merged := maps.Clone(defaults)
	if raw == nil {
		return merged, nil
	}

	overrides := map[schema.WeightKey]*float64{
		schema.WeightBusinessValue: raw.BusinessValue,
		schema.WeightTechHealth:    raw.TechHealth,
		schema.WeightCost:          raw.Cost,
		schema.WeightUsage:         raw.Usage,
		schema.WeightSecurity:      raw.Security,
		schema.WeightStrategicFit:  raw.StrategicFit,
		schema.WeightRedundancy:    raw.Redundancy,
	}
	for key, v := range overrides {
		if v == nil {
			continue
		}
		if *v < 0 {
			return nil, fmt.Errorf("weights for %s: %s cannot be negative (received %.3f)", set, key, *v)
		}
		merged[key] = *v
	}

	var sum float64
	for _, w := range merged {
		sum += w
	}
	if sum < 1.0-weightSumTolerance || sum > 1.0+weightSumTolerance {
		return nil, fmt.Errorf("weights for %s must sum to 1.0, got %.3f", set, sum)
	}
	return merged, nil
}

// processWeights resolves the three weight sets from defaults + config
// overrides and validates each sum.
func processWeights(cfg *Config, input *WeightsRawInput) error {
	var err error
	cfg.CompositeWeights, err = overlayWeights(schema.CompositeWeights, schema.GetDefaultWeights(schema.CompositeWeights), input.Composite)
	if err != nil {
		return err
	}
	cfg.BusinessWeights, err = overlayWeights(schema.BusinessAxisWeights, schema.GetDefaultWeights(schema.BusinessAxisWeights), input.BusinessAxis)
	if err != nil {
		return err
	}
	cfg.TechnicalWeights, err = overlayWeights(schema.TechnicalAxisWeights, schema.GetDefaultWeights(schema.TechnicalAxisWeights), input.TechnicalAxis)
	if err != nil {
		return err
	}
	return nil
}

// processThresholds resolves threshold values from defaults + config overrides.
func processThresholds(cfg *Config, input *ThresholdsRawInput) error {
	cfg.BusinessValueThreshold = schema.DefaultBusinessValueThreshold
	cfg.TechnicalQualityThreshold = schema.DefaultTechnicalQualityThreshold
	cfg.CriticalBusinessValue = schema.DefaultCriticalBusinessValue
	cfg.PoorTechHealth = schema.DefaultPoorTechHealth
	cfg.PoorSecurity = schema.DefaultPoorSecurity

	overrides := []struct {
		name   string
		value  *float64
		target *float64
	}{
		{"business_value", input.BusinessValue, &cfg.BusinessValueThreshold},
		{"technical_quality", input.TechnicalQuality, &cfg.TechnicalQualityThreshold},
		{"critical_business_value", input.CriticalBusinessValue, &cfg.CriticalBusinessValue},
		{"poor_tech_health", input.PoorTechHealth, &cfg.PoorTechHealth},
		{"poor_security", input.PoorSecurity, &cfg.PoorSecurity},
	}
	for _, o := range overrides {
		if o.value == nil {
			continue
		}
		if *o.value < 0 || *o.value > 10 {
			return fmt.Errorf("threshold %s must be between 0.0 and 10.0 (received %.2f)", o.name, *o.value)
		}
		*o.target = *o.value
	}
	return nil
}

// processCeilings resolves the normalization ceilings from defaults + config
// overrides. A zero or negative ceiling would divide by zero downstream, so
// it is rejected here before any record is scored.
func processCeilings(cfg *Config, input *CeilingsRawInput) error {
	cfg.MaxCost = schema.DefaultMaxCost
	cfg.MaxUsage = schema.DefaultMaxUsage

	if input.MaxCost != nil {
		if *input.MaxCost <= 0 {
			return fmt.Errorf("ceiling max_cost must be positive (received %.2f)", *input.MaxCost)
		}
		cfg.MaxCost = *input.MaxCost
	}
	if input.MaxUsage != nil {
		if *input.MaxUsage <= 0 {
			return fmt.Errorf("ceiling max_usage must be positive (received %.2f)", *input.MaxUsage)
		}
		cfg.MaxUsage = *input.MaxUsage
	}
	return nil
}

// validateBackendConfig validates the snapshot backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	backend := schema.DatabaseBackend(strings.ToLower(input.SnapshotBackend))
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid snapshot backend '%s'. must be sqlite, mysql, postgresql, none", input.SnapshotBackend)
	}
	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = input.SnapshotDBConnect
	return ValidateDatabaseConnectionString(backend, cfg.SnapshotDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("snapshot-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("snapshot-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.HasPrefix(connStr, "postgres://") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter or use postgres:// URL format")
		}
	}
	return nil
}
