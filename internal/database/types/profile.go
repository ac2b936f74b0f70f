package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrChannelNotFound = errors.New("channel not found")
)

// User is an identity record for a chat participant. CreatedAt fixes the
// insertion order that report ranking uses to break score ties.
type User struct {
	ID          string    `bun:",pk"      json:"id"`
	DisplayName string    `bun:",notnull" json:"name"`
	CreatedAt   time.Time `bun:",notnull" json:"createdAt"`
	UpdatedAt   time.Time `bun:",notnull" json:"updatedAt"`
}

// Channel is an identity record for a chat channel.
type Channel struct {
	ID          string    `bun:",pk"      json:"id"`
	DisplayName string    `bun:",notnull" json:"name"`
	CreatedAt   time.Time `bun:",notnull" json:"createdAt"`
	UpdatedAt   time.Time `bun:",notnull" json:"updatedAt"`
}

// UserPlaceholderName synthesizes the fallback display name used when a user
// has never supplied a name.
func UserPlaceholderName(id string) string {
	return fmt.Sprintf("User-%s", id)
}

// ChannelPlaceholderName synthesizes the fallback display name used when a
// channel has never supplied a name.
func ChannelPlaceholderName(id string) string {
	return fmt.Sprintf("Channel-%s", id)
}

// ResolveDisplayName applies the profile upsert naming rule: the last
// non-empty name wins and an empty name never overwrites a stored one.
func ResolveDisplayName(incoming, existing, placeholder string) string {
	if incoming != "" {
		return incoming
	}

	if existing != "" {
		return existing
	}

	return placeholder
}
