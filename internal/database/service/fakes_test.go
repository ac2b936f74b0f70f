package service_test

import (
	"context"
	"time"

	"github.com/robalyx/teampulse/internal/database/types"
)

// In-memory stores standing in for the database models.

type fakeEventStore struct {
	events []*types.MessageEvent
}

func (f *fakeEventStore) Append(_ context.Context, event *types.MessageEvent) error {
	if event.UserID == "" {
		return nil
	}

	f.events = append(f.events, event)

	return nil
}

func (f *fakeEventStore) GetEventsSince(_ context.Context, since time.Time) ([]*types.MessageEvent, error) {
	out := make([]*types.MessageEvent, 0, len(f.events))

	for _, e := range f.events {
		if !e.Timestamp.Before(since) {
			out = append(out, e)
		}
	}

	return out, nil
}

type fakeUserStore struct {
	order []string
	users map[string]*types.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*types.User)}
}

func (f *fakeUserStore) Upsert(_ context.Context, id, name string) (*types.User, error) {
	if id == "" {
		return nil, nil //nolint:nilnil
	}

	existingName := ""
	if existing, ok := f.users[id]; ok {
		existingName = existing.DisplayName
	} else {
		f.order = append(f.order, id)
	}

	user := &types.User{
		ID:          id,
		DisplayName: types.ResolveDisplayName(name, existingName, types.UserPlaceholderName(id)),
		UpdatedAt:   time.Now(),
	}
	f.users[id] = user

	return user, nil
}

func (f *fakeUserStore) GetAll(_ context.Context) ([]*types.User, error) {
	out := make([]*types.User, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.users[id])
	}

	return out, nil
}

type fakeChannelStore struct {
	order    []string
	channels map[string]*types.Channel
}

func newFakeChannelStore() *fakeChannelStore {
	return &fakeChannelStore{channels: make(map[string]*types.Channel)}
}

func (f *fakeChannelStore) Upsert(_ context.Context, id, name string) (*types.Channel, error) {
	if id == "" {
		return nil, nil //nolint:nilnil
	}

	existingName := ""
	if existing, ok := f.channels[id]; ok {
		existingName = existing.DisplayName
	} else {
		f.order = append(f.order, id)
	}

	channel := &types.Channel{
		ID:          id,
		DisplayName: types.ResolveDisplayName(name, existingName, types.ChannelPlaceholderName(id)),
		UpdatedAt:   time.Now(),
	}
	f.channels[id] = channel

	return channel, nil
}

func (f *fakeChannelStore) GetAll(_ context.Context) ([]*types.Channel, error) {
	out := make([]*types.Channel, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.channels[id])
	}

	return out, nil
}

type fakeRuleStore struct {
	thresholds types.Thresholds
}

func (f *fakeRuleStore) GetThresholds(_ context.Context) (types.Thresholds, error) {
	return f.thresholds, nil
}
