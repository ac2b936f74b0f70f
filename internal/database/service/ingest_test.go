package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/robalyx/teampulse/internal/database/service"
	"github.com/robalyx/teampulse/internal/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newIngestFixture(t *testing.T) (*service.IngestService, *fakeEventStore, *fakeUserStore, *fakeChannelStore) {
	t.Helper()

	events := &fakeEventStore{}
	users := newFakeUserStore()
	channels := newFakeChannelStore()
	ingest := service.NewIngest(events, users, channels, zap.NewNop())

	return ingest, events, users, channels
}

func TestRecordMessageDerivation(t *testing.T) {
	t.Parallel()

	ingest, events, users, channels := newIngestFixture(t)
	ctx := t.Context()

	ts := time.Date(2025, 8, 14, 2, 30, 0, 0, time.Local)

	err := ingest.RecordMessage(ctx, service.InboundMessage{
		UserID:      "A",
		UserName:    "Ada",
		ChannelID:   "general",
		ChannelName: "General",
		Text:        "héllo",
		Timestamp:   ts,
	})
	require.NoError(t, err)

	require.Len(t, events.events, 1)
	event := events.events[0]
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, "A", event.UserID)
	assert.Equal(t, "general", event.ChannelID)
	assert.Equal(t, ts, event.Timestamp)
	// Length counts runes, not bytes.
	assert.Equal(t, 5, event.TextLength)
	// 02:30 local falls inside the late-night band.
	assert.True(t, event.IsLateNight)

	user, err := users.Upsert(ctx, "A", "")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.DisplayName)

	channel, err := channels.Upsert(ctx, "general", "")
	require.NoError(t, err)
	assert.Equal(t, "General", channel.DisplayName)
}

func TestRecordMessageDefaults(t *testing.T) {
	t.Parallel()

	ingest, events, _, channels := newIngestFixture(t)
	ctx := t.Context()

	before := time.Now()

	err := ingest.RecordMessage(ctx, service.InboundMessage{UserID: "A"})
	require.NoError(t, err)

	require.Len(t, events.events, 1)
	event := events.events[0]

	// Missing channel falls back to the direct sentinel with no channel upsert.
	assert.Equal(t, types.DirectChannelID, event.ChannelID)
	assert.Empty(t, channels.order)

	// Missing timestamp defaults to ingestion time; missing text to length 0.
	assert.False(t, event.Timestamp.Before(before))
	assert.Zero(t, event.TextLength)
}

func TestRecordMessageMissingIdentity(t *testing.T) {
	t.Parallel()

	ingest, events, users, channels := newIngestFixture(t)

	// No user ID: the whole message is a silent no-op.
	err := ingest.RecordMessage(t.Context(), service.InboundMessage{
		ChannelID: "general",
		Text:      "hello",
	})
	require.NoError(t, err)

	assert.Empty(t, events.events)
	assert.Empty(t, users.order)
	assert.Empty(t, channels.order)
}

func TestRecordMessageDaytimeNotLateNight(t *testing.T) {
	t.Parallel()

	ingest, events, _, _ := newIngestFixture(t)

	ts := time.Date(2025, 8, 14, 14, 0, 0, 0, time.Local)

	err := ingest.RecordMessage(t.Context(), service.InboundMessage{
		UserID:    "A",
		Timestamp: ts,
	})
	require.NoError(t, err)

	require.Len(t, events.events, 1)
	assert.False(t, events.events[0].IsLateNight)
}

func TestRecordMessageNamePreserved(t *testing.T) {
	t.Parallel()

	ingest, _, users, _ := newIngestFixture(t)
	ctx := t.Context()

	require.NoError(t, ingest.RecordMessage(ctx, service.InboundMessage{UserID: "A", UserName: "Ada"}))

	// A later message without a name must not wipe the stored one.
	require.NoError(t, ingest.RecordMessage(ctx, service.InboundMessage{UserID: "A"}))

	all, err := users.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ada", all[0].DisplayName)
}
