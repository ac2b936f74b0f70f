package types

import "time"

// DailySummary is the persisted end-of-day snapshot of a team report,
// keyed by the local calendar date it covers.
type DailySummary struct {
	DateKey       string     `bun:",pk"         json:"dateKey"`
	TeamScore     int        `bun:",notnull"    json:"teamScore"`
	UsersCount    int        `bun:",notnull"    json:"usersCount"`
	MessagesCount int        `bun:",notnull"    json:"messagesCount"`
	ChannelsCount int        `bun:",notnull"    json:"channelsCount"`
	Report        TeamReport `bun:"type:jsonb"  json:"report"`
	CreatedAt     time.Time  `bun:",notnull"    json:"createdAt"`
}
