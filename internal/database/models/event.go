package models

import (
	"context"
	"fmt"
	"time"

	"github.com/robalyx/teampulse/internal/database/dbretry"
	"github.com/robalyx/teampulse/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// EventModel handles database operations for message events. The table is
// append-only: events are written once at ingestion and never updated.
type EventModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewEvent creates an EventModel with database access.
func NewEvent(db *bun.DB, logger *zap.Logger) *EventModel {
	return &EventModel{
		db:     db,
		logger: logger.Named("db_event"),
	}
}

// Append stores a new message event. Events without a user ID are dropped
// silently rather than failing the batch.
func (r *EventModel) Append(ctx context.Context, event *types.MessageEvent) error {
	if event.UserID == "" {
		r.logger.Debug("Dropped event without user ID", zap.String("channelID", event.ChannelID))
		return nil
	}

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().Model(event).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to append message event: %w (userID=%s)", err, event.UserID)
		}

		return nil
	})
}

// GetEventsSince returns all events with a timestamp at or after since,
// oldest first. The result is this invocation's snapshot; concurrent appends
// are not observed by a computation already holding the slice.
func (r *EventModel) GetEventsSince(ctx context.Context, since time.Time) ([]*types.MessageEvent, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.MessageEvent, error) {
		var events []*types.MessageEvent

		err := r.db.NewSelect().
			Model(&events).
			Where("timestamp >= ?", since).
			Order("timestamp ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get events since %v: %w", since, err)
		}

		return events, nil
	})
}

// PurgeOldEvents removes events older than the cutoff and returns how many
// rows were deleted.
func (r *EventModel) PurgeOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int64, error) {
		result, err := r.db.NewDelete().
			Model((*types.MessageEvent)(nil)).
			Where("timestamp < ?", cutoff).
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to purge old events: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get purged event count: %w", err)
		}

		return affected, nil
	})
}
