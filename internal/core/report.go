package core

import (
	"math"
	"sort"

	"github.com/robalyx/teampulse/internal/database/types"
)

// BuildReport runs the full pipeline over an already window-filtered event
// snapshot: aggregate per user, normalize, score, classify, and rank. The
// sort is stable, so members with equal scores keep their input order, and
// repeated calls with the same snapshot produce identical reports.
func BuildReport(
	events []*types.MessageEvent, users []*types.User, channelsCount int, thresholds types.Thresholds,
) *types.TeamReport {
	stats := AggregateUsers(events, users)
	members := ScoreMembers(stats, thresholds)

	sort.SliceStable(members, func(i, j int) bool {
		return members[i].StressScore > members[j].StressScore
	})

	teamScore := 0

	if len(members) > 0 {
		sum := 0
		for _, m := range members {
			sum += m.StressScore
		}

		teamScore = int(math.Round(float64(sum) / float64(len(members))))
	}

	return &types.TeamReport{
		TeamScore:     teamScore,
		Members:       members,
		UsersCount:    len(users),
		MessagesCount: len(events),
		ChannelsCount: channelsCount,
	}
}

// FindMember looks up a user in a computed report. The boolean result lets
// callers distinguish "not tracked today" from a zero-score member.
func FindMember(report *types.TeamReport, userID string) (*types.ScoredMember, bool) {
	for i := range report.Members {
		if report.Members[i].UserID == userID {
			return &report.Members[i], true
		}
	}

	return nil, false
}
