package statistics_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/rueidis"
	"github.com/robalyx/teampulse/internal/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTest(t *testing.T) (*statistics.Client, func()) {
	t.Helper()
	// Start miniredis server
	mr, err := miniredis.Run()
	require.NoError(t, err)

	// Create Redis client
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	// Create test logger
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	stats := statistics.NewClient(client, logger)

	cleanup := func() {
		mr.Close()
		client.Close()
		logger.Sync()
	}

	return stats, cleanup
}

func TestIncrementDailyStat(t *testing.T) {
	t.Parallel()
	stats, cleanup := setupTest(t)
	defer cleanup()

	ctx := t.Context()

	err := stats.IncrementDailyStat(ctx, statistics.FieldMessagesIngested, 1)
	require.NoError(t, err)

	err = stats.IncrementDailyStat(ctx, statistics.FieldMessagesIngested, 4)
	require.NoError(t, err)

	err = stats.IncrementDailyStat(ctx, statistics.FieldAlertsGenerated, 2)
	require.NoError(t, err)

	today, err := stats.GetDailyStats(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(5), today.MessagesIngested)
	assert.Equal(t, int64(2), today.AlertsGenerated)
	assert.Equal(t, int64(0), today.SummariesSaved)
}

func TestGetDailyStatsEmptyDay(t *testing.T) {
	t.Parallel()
	stats, cleanup := setupTest(t)
	defer cleanup()

	ctx := t.Context()

	yesterday, err := stats.GetDailyStats(ctx, time.Now().AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), yesterday.MessagesIngested)
	assert.Equal(t, int64(0), yesterday.AlertsGenerated)
	assert.Equal(t, int64(0), yesterday.SummariesSaved)
}
