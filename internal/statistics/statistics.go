// Package statistics tracks ingest and alert counters in Redis.
package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

const (
	// DailyStatsKeyPrefix forms the base key for daily statistics in Redis.
	DailyStatsKeyPrefix = "daily_stats"

	// FieldMessagesIngested tracks how many message events were recorded.
	FieldMessagesIngested = "messages_ingested"
	// FieldAlertsGenerated tracks how many alerts were produced by scheduler runs.
	FieldAlertsGenerated = "alerts_generated"
	// FieldSummariesSaved tracks how many daily summaries were persisted.
	FieldSummariesSaved = "summaries_saved"

	// DailyStatsExpiry removes counters after they stop being interesting.
	DailyStatsExpiry = 30 * 24 * time.Hour
)

// DailyStats holds the counter values for a single day.
type DailyStats struct {
	Date             string `json:"date"`
	MessagesIngested int64  `json:"messagesIngested"`
	AlertsGenerated  int64  `json:"alertsGenerated"`
	SummariesSaved   int64  `json:"summariesSaved"`
}

// Client handles Redis operations for storing and retrieving statistics.
type Client struct {
	Client rueidis.Client
	logger *zap.Logger
}

// NewClient creates a Client with the provided Redis connection and logger.
func NewClient(client rueidis.Client, logger *zap.Logger) *Client {
	return &Client{
		Client: client,
		logger: logger.Named("statistics"),
	}
}

// IncrementDailyStat atomically increases a daily statistic counter.
// The field parameter determines which counter to increment.
func (c *Client) IncrementDailyStat(ctx context.Context, field string, count int) error {
	key := dailyKey(time.Now())

	cmd := c.Client.B().Hincrby().Key(key).Field(field).Increment(int64(count)).Build()
	if err := c.Client.Do(ctx, cmd).Error(); err != nil {
		c.logger.Error("Failed to increment daily stat",
			zap.Error(err),
			zap.String("field", field),
			zap.Int("count", count))

		return err
	}

	expireCmd := c.Client.B().Expire().Key(key).Seconds(int64(DailyStatsExpiry.Seconds())).Build()

	return c.Client.Do(ctx, expireCmd).Error()
}

// GetDailyStats retrieves the counters recorded for the given day.
// Missing fields are returned as zero.
func (c *Client) GetDailyStats(ctx context.Context, day time.Time) (*DailyStats, error) {
	key := dailyKey(day)

	cmd := c.Client.B().Hgetall().Key(key).Build()
	result, err := c.Client.Do(ctx, cmd).AsIntMap()
	if err != nil {
		c.logger.Error("Failed to get daily stats",
			zap.Error(err),
			zap.String("key", key))

		return nil, err
	}

	return &DailyStats{
		Date:             day.Format("2006-01-02"),
		MessagesIngested: result[FieldMessagesIngested],
		AlertsGenerated:  result[FieldAlertsGenerated],
		SummariesSaved:   result[FieldSummariesSaved],
	}, nil
}

func dailyKey(day time.Time) string {
	return fmt.Sprintf("%s:%s", DailyStatsKeyPrefix, day.Format("2006-01-02"))
}
