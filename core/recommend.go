package core

import (
	"fmt"

	"github.com/Texasdada13/apptriage/schema"
)

// ruleInput carries everything a recommendation rule predicate can see.
type ruleInput struct {
	app       *schema.Application
	composite float64
	retention float64
	t         Thresholds
}

// actionRule is one entry in the ordered decision table: a predicate, the
// label it produces, and a rationale generator citing the numeric trigger.
type actionRule struct {
	name      string
	matches   func(in ruleInput) bool
	label     schema.ActionLabel
	rationale func(in ruleInput) string
}

// actionRules is evaluated top to bottom; the first match wins. Urgent and
// specific conditions are listed before the general score bands, so a
// security gap on a high-value app always beats a Retain-grade composite
// score.
var actionRules = []actionRule{
	{
		name: "security gap",
		matches: func(in ruleInput) bool {
			return in.app.Security < in.t.PoorSecurity && in.app.BusinessValue > 7
		},
		label: schema.ImmediateAction,
		rationale: func(in ruleInput) string {
			return fmt.Sprintf("Security %.1f < %.1f on a high-value application (business value %.1f > 7.0) -> Immediate Action Required",
				in.app.Security, in.t.PoorSecurity, in.app.BusinessValue)
		},
	},
	{
		name: "redundancy",
		matches: func(in ruleInput) bool {
			return in.app.Redundancy == 1
		},
		label: schema.ConsolidateAction,
		rationale: func(in ruleInput) string {
			return "Equivalent functionality exists elsewhere -> Consolidate"
		},
	},
	{
		name: "migration candidate",
		matches: func(in ruleInput) bool {
			criticalButBroken := in.app.BusinessValue >= in.t.CriticalBusinessValue && in.app.TechHealth < in.t.PoorTechHealth
			strategicUnderperformer := in.app.StrategicFit >= 8 && in.composite < 50
			return criticalButBroken || strategicUnderperformer
		},
		label: schema.MigrateAction,
		rationale: func(in ruleInput) string {
			if in.app.BusinessValue >= in.t.CriticalBusinessValue && in.app.TechHealth < in.t.PoorTechHealth {
				return fmt.Sprintf("Business value %.1f >= %.1f with tech health %.1f < %.1f -> Migrate",
					in.app.BusinessValue, in.t.CriticalBusinessValue, in.app.TechHealth, in.t.PoorTechHealth)
			}
			return fmt.Sprintf("Strategic fit %.1f >= 8.0 with composite score %.1f < 50 -> Migrate",
				in.app.StrategicFit, in.composite)
		},
	},
	{
		name: "top scorer",
		matches: func(in ruleInput) bool {
			return in.composite >= 70
		},
		label: schema.RetainAction, // may upgrade to Invest below
		rationale: func(in ruleInput) string {
			return fmt.Sprintf("Composite score %.1f >= 70 and no overriding flags -> Retain", in.composite)
		},
	},
	{
		name: "healthy",
		matches: func(in ruleInput) bool {
			return in.composite >= 50
		},
		label: schema.MaintainAction,
		rationale: func(in ruleInput) string {
			return fmt.Sprintf("Composite score %.1f in [50, 70) -> Maintain", in.composite)
		},
	},
	{
		name: "marginal",
		matches: func(in ruleInput) bool {
			return in.composite >= 30
		},
		label: schema.TolerateAction,
		rationale: func(in ruleInput) string {
			return fmt.Sprintf("Composite score %.1f in [30, 50) -> Tolerate", in.composite)
		},
	},
	{
		name: "bottom scorer",
		matches: func(in ruleInput) bool {
			return true // catch-all
		},
		label: schema.RetireAction,
		rationale: func(in ruleInput) string {
			return fmt.Sprintf("Composite score %.1f < 30 and no overriding flags -> Retire", in.composite)
		},
	},
}

// recommendAction runs the ordered decision table and returns the first
// matching action label plus its rationale. Strategically pivotal top
// scorers are upgraded from Retain to Invest: they deserve enhancement
// rather than mere retention.
func recommendAction(app *schema.Application, composite, retention float64, thresholds Thresholds) (schema.ActionLabel, string) {
	in := ruleInput{app: app, composite: composite, retention: retention, t: thresholds}

	for _, rule := range actionRules {
		if !rule.matches(in) {
			continue
		}
		label := rule.label
		rationale := rule.rationale(in)
		if label == schema.RetainAction && app.StrategicFit >= 8 && app.BusinessValue >= 8 {
			label = schema.InvestAction
			rationale = fmt.Sprintf("Composite score %.1f >= 70 with strategic fit %.1f >= 8.0 and business value %.1f >= 8.0 -> Invest",
				composite, app.StrategicFit, app.BusinessValue)
		}
		return label, rationale
	}

	// The last rule matches unconditionally; reaching this point is a logic
	// defect, not an input problem.
	panic(fmt.Sprintf("no recommendation rule matched for %q (composite %.2f)", app.Name, composite))
}
