package core_test

import (
	"testing"

	"github.com/robalyx/teampulse/internal/core"
	"github.com/robalyx/teampulse/internal/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreMembersEmpty(t *testing.T) {
	t.Parallel()

	members := core.ScoreMembers(nil, types.DefaultThresholds())
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

func TestScoreMembersRelativeNormalization(t *testing.T) {
	t.Parallel()

	stats := []types.PerUserStats{
		{UserID: "a", TotalMessages: 2, LateNightMessages: 1, ChannelCount: 1},
		{UserID: "b", TotalMessages: 1, LateNightMessages: 0, ChannelCount: 1},
	}

	members := core.ScoreMembers(stats, types.DefaultThresholds())
	require.Len(t, members, 2)

	a := members[0]
	assert.InDelta(t, 100.0, a.LoadComponent, 0.001)
	assert.InDelta(t, 100.0, a.BurnoutComponent, 0.001)
	assert.Zero(t, a.ContextComponent)
	assert.Equal(t, 80, a.StressScore)
	assert.Equal(t, types.MemberStatusCritical, a.Status)

	b := members[1]
	assert.InDelta(t, 50.0, b.LoadComponent, 0.001)
	assert.Zero(t, b.BurnoutComponent)
	assert.Zero(t, b.ContextComponent)
	assert.Equal(t, 25, b.StressScore)
	assert.Equal(t, types.MemberStatusNormal, b.Status)
}

func TestScoreMembersContextCollapse(t *testing.T) {
	t.Parallel()

	// When everyone touched at most one channel the context component is
	// defined as exactly 0 for all members, never NaN.
	stats := []types.PerUserStats{
		{UserID: "a", TotalMessages: 5, ChannelCount: 1},
		{UserID: "b", TotalMessages: 3, ChannelCount: 1},
		{UserID: "c", TotalMessages: 1, ChannelCount: 1},
	}

	members := core.ScoreMembers(stats, types.DefaultThresholds())
	for _, m := range members {
		assert.Zero(t, m.ContextComponent)
		assert.False(t, m.ContextComponent != m.ContextComponent, "component must not be NaN")
	}
}

func TestScoreMembersContextSpread(t *testing.T) {
	t.Parallel()

	stats := []types.PerUserStats{
		{UserID: "a", TotalMessages: 1, ChannelCount: 5},
		{UserID: "b", TotalMessages: 1, ChannelCount: 3},
		{UserID: "c", TotalMessages: 1, ChannelCount: 1},
	}

	members := core.ScoreMembers(stats, types.DefaultThresholds())
	require.Len(t, members, 3)

	// Spread is anchored at one channel: (count-1)/(max-1).
	assert.InDelta(t, 100.0, members[0].ContextComponent, 0.001)
	assert.InDelta(t, 50.0, members[1].ContextComponent, 0.001)
	assert.Zero(t, members[2].ContextComponent)
}

func TestScoreMembersRangeInvariant(t *testing.T) {
	t.Parallel()

	stats := []types.PerUserStats{
		{UserID: "a", TotalMessages: 500, LateNightMessages: 500, ChannelCount: 40},
		{UserID: "b", TotalMessages: 0, LateNightMessages: 0, ChannelCount: 1},
		{UserID: "c", TotalMessages: 17, LateNightMessages: 3, ChannelCount: 4},
	}

	thresholds := types.DefaultThresholds()
	members := core.ScoreMembers(stats, thresholds)

	for _, m := range members {
		assert.GreaterOrEqual(t, m.StressScore, 0)
		assert.LessOrEqual(t, m.StressScore, 100)

		switch {
		case m.StressScore >= thresholds.Critical:
			assert.Equal(t, types.MemberStatusCritical, m.Status)
		case m.StressScore >= thresholds.High:
			assert.Equal(t, types.MemberStatusHigh, m.Status)
		default:
			assert.Equal(t, types.MemberStatusNormal, m.Status)
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		score      int
		thresholds types.Thresholds
		want       types.MemberStatus
	}{
		{name: "normal", score: 59, thresholds: types.DefaultThresholds(), want: types.MemberStatusNormal},
		{name: "high boundary", score: 60, thresholds: types.DefaultThresholds(), want: types.MemberStatusHigh},
		{name: "below critical", score: 79, thresholds: types.DefaultThresholds(), want: types.MemberStatusHigh},
		{name: "critical boundary", score: 80, thresholds: types.DefaultThresholds(), want: types.MemberStatusCritical},
		{name: "max score", score: 100, thresholds: types.DefaultThresholds(), want: types.MemberStatusCritical},
		{
			// With inverted thresholds every critical score also clears the high
			// bar; checking critical first keeps the result deterministic.
			name:       "inverted thresholds resolve critical first",
			score:      90,
			thresholds: types.Thresholds{High: 95, Critical: 85},
			want:       types.MemberStatusCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, core.Classify(tt.score, tt.thresholds))
		})
	}
}
