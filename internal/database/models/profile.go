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

// UserModel handles database operations for user profiles.
type UserModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewUser creates a UserModel with database access.
func NewUser(db *bun.DB, logger *zap.Logger) *UserModel {
	return &UserModel{
		db:     db,
		logger: logger.Named("db_user"),
	}
}

// Upsert creates or updates a user profile. The last non-empty name wins and
// an empty name never overwrites a stored one. An empty ID is a silent no-op
// returning no profile.
func (r *UserModel) Upsert(ctx context.Context, id, name string) (*types.User, error) {
	if id == "" {
		return nil, nil //nolint:nilnil // missing identity is skipped, not an error
	}

	return dbretry.Operation(ctx, func(ctx context.Context) (*types.User, error) {
		existingName := ""

		existing := new(types.User)

		err := r.db.NewSelect().Model(existing).Where("id = ?", id).Scan(ctx)
		switch {
		case err == nil:
			existingName = existing.DisplayName
		case errors.Is(err, sql.ErrNoRows):
		default:
			return nil, fmt.Errorf("failed to load user profile: %w (userID=%s)", err, id)
		}

		now := time.Now()
		user := &types.User{
			ID:          id,
			DisplayName: types.ResolveDisplayName(name, existingName, types.UserPlaceholderName(id)),
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		_, err = r.db.NewInsert().Model(user).
			On("CONFLICT (id) DO UPDATE").
			Set("display_name = EXCLUDED.display_name").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert user profile: %w (userID=%s)", err, id)
		}

		return user, nil
	})
}

// GetAll returns all user profiles in insertion order.
func (r *UserModel) GetAll(ctx context.Context) ([]*types.User, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.User, error) {
		var users []*types.User

		err := r.db.NewSelect().
			Model(&users).
			Order("created_at ASC", "id ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get users: %w", err)
		}

		return users, nil
	})
}

// ChannelModel handles database operations for channel profiles. It follows
// the same upsert rule as users, scoped to channels.
type ChannelModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewChannel creates a ChannelModel with database access.
func NewChannel(db *bun.DB, logger *zap.Logger) *ChannelModel {
	return &ChannelModel{
		db:     db,
		logger: logger.Named("db_channel"),
	}
}

// Upsert creates or updates a channel profile with last-non-empty-name-wins
// semantics. An empty ID is a silent no-op.
func (r *ChannelModel) Upsert(ctx context.Context, id, name string) (*types.Channel, error) {
	if id == "" {
		return nil, nil //nolint:nilnil // missing identity is skipped, not an error
	}

	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Channel, error) {
		existingName := ""

		existing := new(types.Channel)

		err := r.db.NewSelect().Model(existing).Where("id = ?", id).Scan(ctx)
		switch {
		case err == nil:
			existingName = existing.DisplayName
		case errors.Is(err, sql.ErrNoRows):
		default:
			return nil, fmt.Errorf("failed to load channel profile: %w (channelID=%s)", err, id)
		}

		now := time.Now()
		channel := &types.Channel{
			ID:          id,
			DisplayName: types.ResolveDisplayName(name, existingName, types.ChannelPlaceholderName(id)),
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		_, err = r.db.NewInsert().Model(channel).
			On("CONFLICT (id) DO UPDATE").
			Set("display_name = EXCLUDED.display_name").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert channel profile: %w (channelID=%s)", err, id)
		}

		return channel, nil
	})
}

// GetAll returns all channel profiles in insertion order.
func (r *ChannelModel) GetAll(ctx context.Context) ([]*types.Channel, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Channel, error) {
		var channels []*types.Channel

		err := r.db.NewSelect().
			Model(&channels).
			Order("created_at ASC", "id ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get channels: %w", err)
		}

		return channels, nil
	})
}
