package models

import (
	"context"
	"fmt"

	"github.com/robalyx/teampulse/internal/database/dbretry"
	"github.com/robalyx/teampulse/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// RuleModel handles database operations for alert rules.
type RuleModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewRule creates a RuleModel with database access.
func NewRule(db *bun.DB, logger *zap.Logger) *RuleModel {
	return &RuleModel{
		db:     db,
		logger: logger.Named("db_rule"),
	}
}

// SeedDefaults inserts the conventional threshold rules if they do not exist
// yet. Existing rows are never overwritten, so operator-tuned thresholds
// survive restarts. Safe to call once per process bootstrap.
func (r *RuleModel) SeedDefaults(ctx context.Context) error {
	defaults := []*types.AlertRule{
		{ID: types.RuleCriticalThreshold, Value: types.DefaultCriticalThreshold},
		{ID: types.RuleHighThreshold, Value: types.DefaultHighThreshold},
	}

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(&defaults).
			On("CONFLICT (id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed default alert rules: %w", err)
		}

		return nil
	})
}

// GetThresholds loads the classification thresholds, falling back to the
// defaults for any rule that is missing.
func (r *RuleModel) GetThresholds(ctx context.Context) (types.Thresholds, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (types.Thresholds, error) {
		var rules []*types.AlertRule

		err := r.db.NewSelect().Model(&rules).Scan(ctx)
		if err != nil {
			return types.Thresholds{}, fmt.Errorf("failed to get alert rules: %w", err)
		}

		thresholds := types.DefaultThresholds()

		for _, rule := range rules {
			switch rule.ID {
			case types.RuleCriticalThreshold:
				thresholds.Critical = rule.Value
			case types.RuleHighThreshold:
				thresholds.High = rule.Value
			}
		}

		return thresholds, nil
	})
}
