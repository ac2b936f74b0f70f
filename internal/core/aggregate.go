package core

import (
	"github.com/robalyx/teampulse/internal/database/types"
)

// runningTotals accumulates one user's counters during the aggregation pass.
type runningTotals struct {
	totalMessages     int
	lateNightMessages int
	totalLength       int
	channels          map[string]struct{}
}

// AggregateUsers computes raw per-user features from window-filtered events.
// Every known user appears in the output, in input order, so that a user who
// went silent still shows up with zero-valued stats instead of disappearing
// from the report. Events without a user ID are skipped.
func AggregateUsers(events []*types.MessageEvent, users []*types.User) []types.PerUserStats {
	totals := make(map[string]*runningTotals, len(users))

	for _, event := range events {
		if event.UserID == "" {
			continue
		}

		t, ok := totals[event.UserID]
		if !ok {
			t = &runningTotals{channels: make(map[string]struct{})}
			totals[event.UserID] = t
		}

		t.totalMessages++
		if event.IsLateNight {
			t.lateNightMessages++
		}

		t.totalLength += event.TextLength

		channelID := event.ChannelID
		if channelID == "" {
			channelID = types.DirectChannelID
		}

		t.channels[channelID] = struct{}{}
	}

	stats := make([]types.PerUserStats, 0, len(users))

	for _, user := range users {
		s := types.PerUserStats{
			UserID:       user.ID,
			DisplayName:  user.DisplayName,
			ChannelCount: 1,
		}

		if t, ok := totals[user.ID]; ok {
			s.TotalMessages = t.totalMessages
			s.LateNightMessages = t.lateNightMessages
			s.TotalLength = t.totalLength

			// Floor at 1 so the context-spread denominator never collapses to zero.
			if len(t.channels) > 1 {
				s.ChannelCount = len(t.channels)
			}

			if t.totalMessages > 0 {
				s.AvgLength = float64(t.totalLength) / float64(t.totalMessages)
			}
		}

		stats = append(stats, s)
	}

	return stats
}
