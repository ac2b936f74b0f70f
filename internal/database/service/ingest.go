package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/robalyx/teampulse/internal/core"
	"github.com/robalyx/teampulse/internal/database/types"
	"go.uber.org/zap"
)

// EventSink appends message events to the store.
type EventSink interface {
	Append(ctx context.Context, event *types.MessageEvent) error
}

// UserUpserter writes user profiles.
type UserUpserter interface {
	Upsert(ctx context.Context, id, name string) (*types.User, error)
}

// ChannelUpserter writes channel profiles.
type ChannelUpserter interface {
	Upsert(ctx context.Context, id, name string) (*types.Channel, error)
}

// InboundMessage is the raw tuple delivered by the ingestion boundary.
// Derived fields are computed here, never by the caller, so the derivation
// rules stay in one place.
type InboundMessage struct {
	UserID      string
	UserName    string
	ChannelID   string
	ChannelName string
	Text        string
	// Timestamp of the message; the zero value means "now".
	Timestamp time.Time
}

// IngestService turns inbound webhook tuples into profiles and immutable
// message events.
type IngestService struct {
	events   EventSink
	users    UserUpserter
	channels ChannelUpserter
	logger   *zap.Logger
}

// NewIngest creates an IngestService.
func NewIngest(events EventSink, users UserUpserter, channels ChannelUpserter, logger *zap.Logger) *IngestService {
	return &IngestService{
		events:   events,
		users:    users,
		channels: channels,
		logger:   logger.Named("ingest"),
	}
}

// RecordMessage upserts the sender and channel profiles and appends the
// derived message event. A message without a user ID is dropped silently.
func (s *IngestService) RecordMessage(ctx context.Context, msg InboundMessage) error {
	if msg.UserID == "" {
		s.logger.Debug("Dropped inbound message without user ID",
			zap.String("channelID", msg.ChannelID))
		return nil
	}

	if _, err := s.users.Upsert(ctx, msg.UserID, msg.UserName); err != nil {
		return fmt.Errorf("failed to upsert sender: %w", err)
	}

	if msg.ChannelID != "" {
		if _, err := s.channels.Upsert(ctx, msg.ChannelID, msg.ChannelName); err != nil {
			return fmt.Errorf("failed to upsert channel: %w", err)
		}
	}

	timestamp := msg.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	channelID := msg.ChannelID
	if channelID == "" {
		channelID = types.DirectChannelID
	}

	event := &types.MessageEvent{
		ID:          uuid.New(),
		UserID:      msg.UserID,
		ChannelID:   channelID,
		Timestamp:   timestamp,
		TextLength:  utf8.RuneCountInString(msg.Text),
		IsLateNight: core.IsLateNight(timestamp),
	}

	if err := s.events.Append(ctx, event); err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}

	return nil
}
