package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/robalyx/teampulse/internal/database/dbretry"
	"github.com/robalyx/teampulse/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

var ErrSummaryNotFound = errors.New("daily summary not found")

// SummaryModel handles database operations for daily summaries.
type SummaryModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewSummary creates a SummaryModel with database access.
func NewSummary(db *bun.DB, logger *zap.Logger) *SummaryModel {
	return &SummaryModel{
		db:     db,
		logger: logger.Named("db_summary"),
	}
}

// SaveDailySummary stores the end-of-day snapshot, replacing any earlier
// snapshot written for the same date.
func (r *SummaryModel) SaveDailySummary(ctx context.Context, summary *types.DailySummary) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().Model(summary).
			On("CONFLICT (date_key) DO UPDATE").
			Set("team_score = EXCLUDED.team_score").
			Set("users_count = EXCLUDED.users_count").
			Set("messages_count = EXCLUDED.messages_count").
			Set("channels_count = EXCLUDED.channels_count").
			Set("report = EXCLUDED.report").
			Set("created_at = EXCLUDED.created_at").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to save daily summary: %w (dateKey=%s)", err, summary.DateKey)
		}

		return nil
	})
}

// GetDailySummary retrieves the summary for a date key.
func (r *SummaryModel) GetDailySummary(ctx context.Context, dateKey string) (*types.DailySummary, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.DailySummary, error) {
		summary := new(types.DailySummary)

		err := r.db.NewSelect().Model(summary).Where("date_key = ?", dateKey).Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("%w (dateKey=%s)", ErrSummaryNotFound, dateKey)
			}

			return nil, fmt.Errorf("failed to get daily summary: %w (dateKey=%s)", err, dateKey)
		}

		return summary, nil
	})
}

// PurgeOldSummaries removes summaries created before the cutoff.
func (r *SummaryModel) PurgeOldSummaries(ctx context.Context, cutoff time.Time) (int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int64, error) {
		result, err := r.db.NewDelete().
			Model((*types.DailySummary)(nil)).
			Where("created_at < ?", cutoff).
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to purge old summaries: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get purged summary count: %w", err)
		}

		return affected, nil
	})
}
