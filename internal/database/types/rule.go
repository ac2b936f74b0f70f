package types

// Named alert rules seeded at process bootstrap. The rows are configuration:
// seeding never overwrites values an operator has already tuned.
const (
	RuleCriticalThreshold = "criticalThreshold"
	RuleHighThreshold     = "highThreshold"

	DefaultCriticalThreshold = 80
	DefaultHighThreshold     = 60
)

// AlertRule is a single named integer threshold in [0, 100].
type AlertRule struct {
	ID    string `bun:",pk"      json:"id"`
	Value int    `bun:",notnull" json:"value"`
}

// Thresholds carries the classification boundaries for one scoring run.
// Classification checks Critical before High, so a misconfigured pair
// (High > Critical) still resolves deterministically.
type Thresholds struct {
	High     int `json:"high"`
	Critical int `json:"critical"`
}

// DefaultThresholds returns the conventional threshold pair.
func DefaultThresholds() Thresholds {
	return Thresholds{
		High:     DefaultHighThreshold,
		Critical: DefaultCriticalThreshold,
	}
}
