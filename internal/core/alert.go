package core

import (
	"fmt"

	"github.com/robalyx/teampulse/internal/database/types"
)

// BuildAlerts emits one alert per member above the normal tier. The generator
// is pure and performs no deduplication across runs: identical input yields
// identical output.
func BuildAlerts(report *types.TeamReport) []types.Alert {
	alerts := make([]types.Alert, 0)

	for _, m := range report.Members {
		switch m.Status {
		case types.MemberStatusCritical:
			alerts = append(alerts, types.Alert{
				Type:     types.AlertTypeUserOverloaded,
				Severity: types.AlertSeverityHigh,
				Message: fmt.Sprintf(
					"%s is overloaded today (%d/100). Consider reassigning tasks.", m.DisplayName, m.StressScore,
				),
				UserID: m.UserID,
			})
		case types.MemberStatusHigh:
			alerts = append(alerts, types.Alert{
				Type:     types.AlertTypeUserHighLoad,
				Severity: types.AlertSeverityMedium,
				Message:  fmt.Sprintf("%s has high cognitive load (%d/100).", m.DisplayName, m.StressScore),
				UserID:   m.UserID,
			})
		case types.MemberStatusNormal:
		}
	}

	return alerts
}
