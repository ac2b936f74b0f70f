// Package summary implements the daily summary worker.
package summary

import (
	"context"
	"time"

	"github.com/robalyx/teampulse/internal/core"
	"github.com/robalyx/teampulse/internal/database"
	"github.com/robalyx/teampulse/internal/database/types"
	"github.com/robalyx/teampulse/internal/setup"
	"github.com/robalyx/teampulse/internal/statistics"
	workercore "github.com/robalyx/teampulse/internal/worker/core"
	"go.uber.org/zap"
)

// Worker snapshots the closing day's team report at local midnight and
// prunes data past its retention window.
type Worker struct {
	db       database.Client
	stats    *statistics.Client
	reporter *workercore.StatusReporter
	logger   *zap.Logger

	eventRetention   time.Duration
	summaryRetention time.Duration
}

// New creates a summary worker.
func New(app *setup.App, logger *zap.Logger) *Worker {
	reporter := workercore.NewStatusReporter(app.StatusClient, "summary", logger)

	return &Worker{
		db:               app.DB,
		stats:            app.Statistics,
		reporter:         reporter,
		logger:           logger,
		eventRetention:   time.Duration(app.Config.Worker.EventRetentionDays) * 24 * time.Hour,
		summaryRetention: time.Duration(app.Config.Worker.SummaryRetentionDays) * 24 * time.Hour,
	}
}

// Start begins the summary worker's main loop.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Summary worker started", zap.String("workerID", w.reporter.GetWorkerID()))
	w.reporter.Start(ctx)
	defer w.reporter.Stop()

	for {
		w.reporter.SetHealthy(true)

		// Step 1: Wait until the next local midnight
		w.reporter.UpdateStatus("Waiting for midnight", 0)

		midnight := core.DayStart(time.Now()).AddDate(0, 0, 1)
		select {
		case <-time.After(time.Until(midnight)):
		case <-ctx.Done():
			w.logger.Info("Summary worker stopping")
			return
		}

		// Step 2: Compute the report for the day that just closed
		w.reporter.UpdateStatus("Computing report", 25)

		closing := midnight.Add(-time.Second)

		report, err := w.db.Service().Metrics().ComputeReport(ctx, closing)
		if err != nil {
			w.logger.Error("Failed to compute closing report", zap.Error(err))
			w.reporter.SetHealthy(false)

			continue
		}

		// Step 3: Persist the summary
		w.reporter.UpdateStatus("Saving summary", 50)

		summary := &types.DailySummary{
			DateKey:       core.DateKey(closing),
			TeamScore:     report.TeamScore,
			UsersCount:    report.UsersCount,
			MessagesCount: report.MessagesCount,
			ChannelsCount: report.ChannelsCount,
			Report:        *report,
		}
		if err := w.db.Model().Summary().SaveDailySummary(ctx, summary); err != nil {
			w.logger.Error("Failed to save daily summary", zap.Error(err))
			w.reporter.SetHealthy(false)

			continue
		}

		if err := w.stats.IncrementDailyStat(ctx, statistics.FieldSummariesSaved, 1); err != nil {
			w.logger.Warn("Failed to count saved summary", zap.Error(err))
		}

		// Step 4: Prune data past retention
		w.reporter.UpdateStatus("Purging old data", 75)

		eventsPurged, err := w.db.Model().Event().PurgeOldEvents(ctx, midnight.Add(-w.eventRetention))
		if err != nil {
			w.logger.Error("Failed to purge old events", zap.Error(err))
			w.reporter.SetHealthy(false)
		}

		summariesPurged, err := w.db.Model().Summary().PurgeOldSummaries(ctx, midnight.Add(-w.summaryRetention))
		if err != nil {
			w.logger.Error("Failed to purge old summaries", zap.Error(err))
			w.reporter.SetHealthy(false)
		}

		w.reporter.UpdateStatus("Summary saved", 100)
		w.logger.Info("Daily summary saved",
			zap.String("dateKey", summary.DateKey),
			zap.Int("teamScore", summary.TeamScore),
			zap.Int64("eventsPurged", eventsPurged),
			zap.Int64("summariesPurged", summariesPurged))
	}
}
