package migrations

import (
	"context"
	"fmt"

	"github.com/robalyx/teampulse/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		tables := []struct {
			model any
			name  string
		}{
			{(*types.MessageEvent)(nil), "message_events"},
			{(*types.User)(nil), "users"},
			{(*types.Channel)(nil), "channels"},
			{(*types.AlertRule)(nil), "alert_rules"},
			{(*types.DailySummary)(nil), "daily_summaries"},
		}

		for _, table := range tables {
			_, err := db.NewCreateTable().
				Model(table.model).
				ModelTableExpr(table.name).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table %s: %w", table.name, err)
			}
		}

		// Window reads scan by timestamp; upserts hit user_id.
		indexes := []struct {
			name    string
			table   string
			columns string
		}{
			{"idx_message_events_timestamp", "message_events", "timestamp"},
			{"idx_message_events_user_id", "message_events", "user_id"},
		}

		for _, idx := range indexes {
			_, err := db.ExecContext(ctx, fmt.Sprintf(
				"CREATE INDEX IF NOT EXISTS %s ON %s (%s)", idx.name, idx.table, idx.columns,
			))
			if err != nil {
				return fmt.Errorf("failed to create index %s: %w", idx.name, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		tables := []string{"message_events", "users", "channels", "alert_rules", "daily_summaries"}

		for _, table := range tables {
			_, err := db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table))
			if err != nil {
				return fmt.Errorf("failed to drop table %s: %w", table, err)
			}
		}

		return nil
	})
}
