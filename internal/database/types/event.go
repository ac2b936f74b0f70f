package types

import (
	"time"

	"github.com/google/uuid"
)

// DirectChannelID is the sentinel channel assigned to messages that arrive
// without a channel, such as direct messages.
const DirectChannelID = "direct"

// LateNightStartHour and LateNightEndHour bound the late-night window.
// An event is late-night when its local hour falls in [0, 5] inclusive.
const (
	LateNightStartHour = 0
	LateNightEndHour   = 5
)

// MessageEvent is an immutable record of a single chat message. It is created
// once at ingestion and never mutated; the derived fields (TextLength,
// IsLateNight) are computed by the ingest service, never by callers.
type MessageEvent struct {
	ID          uuid.UUID `bun:",pk"      json:"id"`
	UserID      string    `bun:",notnull" json:"userId"`
	ChannelID   string    `bun:",notnull" json:"channelId"`
	Timestamp   time.Time `bun:",notnull" json:"timestamp"`
	TextLength  int       `bun:",notnull" json:"textLength"`
	IsLateNight bool      `bun:",notnull" json:"isLateNight"`
}
