package types

import "errors"

var ErrNoMemberData = errors.New("no data for member in current report")

// MemberStatus classifies a member's stress score against the thresholds.
type MemberStatus string

const (
	MemberStatusNormal   MemberStatus = "NORMAL"
	MemberStatusHigh     MemberStatus = "HIGH"
	MemberStatusCritical MemberStatus = "CRITICAL"
)

// AlertType identifies the condition an alert reports.
type AlertType string

const (
	AlertTypeUserOverloaded AlertType = "USER_OVERLOADED"
	AlertTypeUserHighLoad   AlertType = "USER_HIGH_LOAD"
)

// AlertSeverity ranks an alert for downstream consumers.
type AlertSeverity string

const (
	AlertSeverityHigh   AlertSeverity = "HIGH"
	AlertSeverityMedium AlertSeverity = "MEDIUM"
)

// PerUserStats holds the raw per-user features aggregated over the scoring
// window. ChannelCount is always at least 1, even for users with no messages,
// which keeps the normalization denominator safe.
type PerUserStats struct {
	UserID            string  `json:"id"`
	DisplayName       string  `json:"name"`
	TotalMessages     int     `json:"totalMessages"`
	LateNightMessages int     `json:"lateNightMessages"`
	TotalLength       int     `json:"-"`
	AvgLength         float64 `json:"avgLength"`
	ChannelCount      int     `json:"channelCount"`
}

// ScoredMember is PerUserStats plus the normalized components, the combined
// stress score, and its classification.
type ScoredMember struct {
	PerUserStats

	LoadComponent    float64      `json:"loadComponent"`
	BurnoutComponent float64      `json:"burnoutComponent"`
	ContextComponent float64      `json:"contextComponent"`
	StressScore      int          `json:"stressScore"`
	Status           MemberStatus `json:"status"`
}

// TeamReport is the ranked output of one scoring run. Members are sorted by
// stress score descending; ties keep their insertion order.
type TeamReport struct {
	TeamScore     int            `json:"teamScore"`
	Members       []ScoredMember `json:"members"`
	UsersCount    int            `json:"usersCount"`
	MessagesCount int            `json:"messagesCount"`
	ChannelsCount int            `json:"channelsCount"`
}

// Alert is an ephemeral event emitted for members above the normal tier.
type Alert struct {
	Type     AlertType     `json:"type"`
	Severity AlertSeverity `json:"severity"`
	Message  string        `json:"message"`
	UserID   string        `json:"userId"`
}
