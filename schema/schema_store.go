package schema

import "time"

// AssessmentRunRecord represents a row from the apptriage_assessment_runs table.
type AssessmentRunRecord struct {
	RunID           int64
	StartTime       time.Time
	EndTime         *time.Time
	RunDurationMs   *int32
	TotalApps       int32
	RejectedRecords int32
	ConfigParams    *string
}

// AppScoreRecord represents a row from the apptriage_app_scores table.
type AppScoreRecord struct {
	RunID                int64
	AppName              string
	AssessmentTime       time.Time
	CompositeScore       float64
	RetentionScore       float64
	BusinessValueAxis    float64
	TechnicalQualityAxis float64
	AnnualCost           float64
	Quadrant             string
	Action               string
	Rationale            string
}
