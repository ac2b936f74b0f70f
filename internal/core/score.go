package core

import (
	"math"

	"github.com/robalyx/teampulse/internal/database/types"
)

// Component weights for the combined stress score. Raw volume weighs
// heaviest, unsocial-hours activity next, context switching least.
// The weights sum to 1.0.
const (
	WeightLoad    = 0.5
	WeightBurnout = 0.3
	WeightContext = 0.2
)

// normalize rescales value from [min, max] into [0, 100], clamping outliers.
// A collapsed range (min == max) is defined as 0 rather than undefined, so a
// feature every user shares contributes nothing to anyone's score.
func normalize(value, minVal, maxVal float64) float64 {
	if maxVal == minVal {
		return 0
	}

	v := (value - minVal) / (maxVal - minVal)

	return math.Max(0, math.Min(1, v)) * 100
}

// ScoreMembers normalizes each user's raw features against the maximum
// observed across this run, combines them into a weighted stress score, and
// classifies it. Normalization is per-run: the 100 mark is always whoever did
// the most in this snapshot, so scores are relative to the current team
// rather than an absolute scale. Member order is preserved.
func ScoreMembers(stats []types.PerUserStats, thresholds types.Thresholds) []types.ScoredMember {
	if len(stats) == 0 {
		return []types.ScoredMember{}
	}

	maxMessages, maxLate, maxChannels := 1, 1, 1

	for _, s := range stats {
		maxMessages = max(maxMessages, s.TotalMessages)
		maxLate = max(maxLate, s.LateNightMessages)
		maxChannels = max(maxChannels, s.ChannelCount)
	}

	members := make([]types.ScoredMember, 0, len(stats))

	for _, s := range stats {
		load := normalize(float64(s.TotalMessages), 0, float64(maxMessages))
		burnout := normalize(float64(s.LateNightMessages), 0, float64(maxLate))
		// Context spread is anchored at 1, not 0: one channel is the baseline,
		// so only touching additional channels counts as spread.
		contextSpread := normalize(float64(s.ChannelCount), 1, float64(maxChannels))

		score := int(math.Round(load*WeightLoad + burnout*WeightBurnout + contextSpread*WeightContext))

		members = append(members, types.ScoredMember{
			PerUserStats:     s,
			LoadComponent:    load,
			BurnoutComponent: burnout,
			ContextComponent: contextSpread,
			StressScore:      score,
			Status:           Classify(score, thresholds),
		})
	}

	return members
}

// Classify maps a stress score to its status tier. Critical is checked before
// High so a score meeting both thresholds resolves to the more severe tier.
func Classify(score int, thresholds types.Thresholds) types.MemberStatus {
	switch {
	case score >= thresholds.Critical:
		return types.MemberStatusCritical
	case score >= thresholds.High:
		return types.MemberStatusHigh
	default:
		return types.MemberStatusNormal
	}
}
