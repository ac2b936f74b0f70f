package core_test

import (
	"testing"

	"github.com/robalyx/teampulse/internal/core"
	"github.com/robalyx/teampulse/internal/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAlerts(t *testing.T) {
	t.Parallel()

	report := &types.TeamReport{
		Members: []types.ScoredMember{
			{
				PerUserStats: types.PerUserStats{UserID: "A", DisplayName: "Ada"},
				StressScore:  91,
				Status:       types.MemberStatusCritical,
			},
			{
				PerUserStats: types.PerUserStats{UserID: "B", DisplayName: "Ben"},
				StressScore:  65,
				Status:       types.MemberStatusHigh,
			},
			{
				PerUserStats: types.PerUserStats{UserID: "C", DisplayName: "Cyd"},
				StressScore:  10,
				Status:       types.MemberStatusNormal,
			},
		},
	}

	alerts := core.BuildAlerts(report)
	require.Len(t, alerts, 2)

	overloaded := alerts[0]
	assert.Equal(t, types.AlertTypeUserOverloaded, overloaded.Type)
	assert.Equal(t, types.AlertSeverityHigh, overloaded.Severity)
	assert.Equal(t, "A", overloaded.UserID)
	assert.Contains(t, overloaded.Message, "Ada")
	assert.Contains(t, overloaded.Message, "91/100")

	highLoad := alerts[1]
	assert.Equal(t, types.AlertTypeUserHighLoad, highLoad.Type)
	assert.Equal(t, types.AlertSeverityMedium, highLoad.Severity)
	assert.Equal(t, "B", highLoad.UserID)
	assert.Contains(t, highLoad.Message, "Ben")
}

func TestBuildAlertsIdempotent(t *testing.T) {
	t.Parallel()

	report := &types.TeamReport{
		Members: []types.ScoredMember{
			{
				PerUserStats: types.PerUserStats{UserID: "A", DisplayName: "Ada"},
				StressScore:  85,
				Status:       types.MemberStatusCritical,
			},
		},
	}

	assert.Equal(t, core.BuildAlerts(report), core.BuildAlerts(report))
}

func TestBuildAlertsAllNormal(t *testing.T) {
	t.Parallel()

	report := &types.TeamReport{
		Members: []types.ScoredMember{
			{PerUserStats: types.PerUserStats{UserID: "A"}, Status: types.MemberStatusNormal},
		},
	}

	assert.Empty(t, core.BuildAlerts(report))
}
