package core_test

import (
	"testing"
	"time"

	"github.com/robalyx/teampulse/internal/core"
	"github.com/robalyx/teampulse/internal/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportScenario(t *testing.T) {
	t.Parallel()

	users := []*types.User{
		{ID: "A", DisplayName: "Ada"},
		{ID: "B", DisplayName: "Ben"},
	}

	events := []*types.MessageEvent{
		{UserID: "A", ChannelID: "general", Timestamp: time.Date(2025, 8, 14, 9, 0, 0, 0, time.UTC), TextLength: 2},
		{
			UserID: "A", ChannelID: "general",
			Timestamp: time.Date(2025, 8, 14, 2, 0, 0, 0, time.UTC), TextLength: 3, IsLateNight: true,
		},
		{UserID: "B", ChannelID: "general", Timestamp: time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC), TextLength: 2},
	}

	report := core.BuildReport(events, users, 1, types.DefaultThresholds())
	require.Len(t, report.Members, 2)

	ada := report.Members[0]
	assert.Equal(t, "A", ada.UserID)
	assert.Equal(t, 2, ada.TotalMessages)
	assert.Equal(t, 1, ada.LateNightMessages)
	assert.Equal(t, 80, ada.StressScore)
	assert.Equal(t, types.MemberStatusCritical, ada.Status)

	ben := report.Members[1]
	assert.Equal(t, "B", ben.UserID)
	assert.Equal(t, 1, ben.TotalMessages)
	assert.Equal(t, 0, ben.LateNightMessages)
	assert.Equal(t, 25, ben.StressScore)
	assert.Equal(t, types.MemberStatusNormal, ben.Status)

	assert.Equal(t, 53, report.TeamScore) // round((80+25)/2)
	assert.Equal(t, 2, report.UsersCount)
	assert.Equal(t, 3, report.MessagesCount)
	assert.Equal(t, 1, report.ChannelsCount)
}

func TestBuildReportEmpty(t *testing.T) {
	t.Parallel()

	report := core.BuildReport(nil, nil, 0, types.DefaultThresholds())

	assert.Zero(t, report.TeamScore)
	assert.Empty(t, report.Members)
	assert.Zero(t, report.UsersCount)
	assert.Zero(t, report.MessagesCount)
}

func TestBuildReportZeroActivityUsers(t *testing.T) {
	t.Parallel()

	users := []*types.User{
		{ID: "A", DisplayName: "Ada"},
		{ID: "B", DisplayName: "Ben"},
	}

	report := core.BuildReport(nil, users, 0, types.DefaultThresholds())
	require.Len(t, report.Members, 2)

	for _, m := range report.Members {
		assert.Zero(t, m.TotalMessages)
		assert.Zero(t, m.StressScore)
		assert.Equal(t, types.MemberStatusNormal, m.Status)
	}

	assert.Zero(t, report.TeamScore)
	assert.Empty(t, core.BuildAlerts(report))
}

func TestBuildReportStableTieOrder(t *testing.T) {
	t.Parallel()

	// Three users with identical activity score identically; the ranked
	// report must keep their insertion order.
	users := []*types.User{
		{ID: "first", DisplayName: "First"},
		{ID: "second", DisplayName: "Second"},
		{ID: "third", DisplayName: "Third"},
	}

	events := []*types.MessageEvent{
		{UserID: "first", ChannelID: "general", Timestamp: time.Now(), TextLength: 1},
		{UserID: "second", ChannelID: "general", Timestamp: time.Now(), TextLength: 1},
		{UserID: "third", ChannelID: "general", Timestamp: time.Now(), TextLength: 1},
	}

	report := core.BuildReport(events, users, 1, types.DefaultThresholds())
	require.Len(t, report.Members, 3)

	assert.Equal(t, report.Members[0].StressScore, report.Members[1].StressScore)
	assert.Equal(t, report.Members[1].StressScore, report.Members[2].StressScore)
	assert.Equal(t, "first", report.Members[0].UserID)
	assert.Equal(t, "second", report.Members[1].UserID)
	assert.Equal(t, "third", report.Members[2].UserID)
}

func TestBuildReportIdempotent(t *testing.T) {
	t.Parallel()

	users := []*types.User{
		{ID: "A", DisplayName: "Ada"},
		{ID: "B", DisplayName: "Ben"},
		{ID: "C", DisplayName: "Cyd"},
	}

	events := []*types.MessageEvent{
		{UserID: "A", ChannelID: "general", Timestamp: time.Now(), TextLength: 12, IsLateNight: true},
		{UserID: "B", ChannelID: "random", Timestamp: time.Now(), TextLength: 7},
		{UserID: "A", ChannelID: "random", Timestamp: time.Now(), TextLength: 3},
	}

	first := core.BuildReport(events, users, 2, types.DefaultThresholds())
	second := core.BuildReport(events, users, 2, types.DefaultThresholds())

	assert.Equal(t, first, second)
}

func TestFindMember(t *testing.T) {
	t.Parallel()

	users := []*types.User{{ID: "A", DisplayName: "Ada"}}
	report := core.BuildReport(nil, users, 0, types.DefaultThresholds())

	member, ok := core.FindMember(report, "A")
	require.True(t, ok)
	assert.Equal(t, "Ada", member.DisplayName)

	// An unknown user is an explicit miss, not a zero-score member.
	_, ok = core.FindMember(report, "nobody")
	assert.False(t, ok)
}
