// Package service implements the business logic on top of the database
// models: message ingestion and report computation.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robalyx/teampulse/internal/core"
	"github.com/robalyx/teampulse/internal/database/types"
	"go.uber.org/zap"
)

// EventSource reads message event snapshots for scoring.
type EventSource interface {
	GetEventsSince(ctx context.Context, since time.Time) ([]*types.MessageEvent, error)
}

// UserSource lists the known user profiles.
type UserSource interface {
	GetAll(ctx context.Context) ([]*types.User, error)
}

// ChannelSource lists the known channel profiles.
type ChannelSource interface {
	GetAll(ctx context.Context) ([]*types.Channel, error)
}

// RuleSource loads the classification thresholds.
type RuleSource interface {
	GetThresholds(ctx context.Context) (types.Thresholds, error)
}

// MetricsService computes team reports and alerts. It loads one consistent
// snapshot per invocation and hands it to the pure scoring pipeline, so a
// computation never observes events appended while it runs.
type MetricsService struct {
	events   EventSource
	users    UserSource
	channels ChannelSource
	rules    RuleSource
	logger   *zap.Logger
}

// NewMetrics creates a MetricsService.
func NewMetrics(
	events EventSource, users UserSource, channels ChannelSource, rules RuleSource, logger *zap.Logger,
) *MetricsService {
	return &MetricsService{
		events:   events,
		users:    users,
		channels: channels,
		rules:    rules,
		logger:   logger.Named("metrics"),
	}
}

// ComputeReport builds the team report for the calendar day containing now.
func (s *MetricsService) ComputeReport(ctx context.Context, now time.Time) (*types.TeamReport, error) {
	thresholds, err := s.rules.GetThresholds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load thresholds: %w", err)
	}

	windowStart := core.DayStart(now)

	events, err := s.events.GetEventsSince(ctx, windowStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load event snapshot: %w", err)
	}

	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	channels, err := s.channels.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load channels: %w", err)
	}

	// The store already bounds the read, but the filter also snapshots the
	// slice so the pipeline owns its input.
	report := core.BuildReport(core.FilterWindow(events, windowStart), users, len(channels), thresholds)

	s.logger.Debug("Computed team report",
		zap.Int("teamScore", report.TeamScore),
		zap.Int("members", len(report.Members)),
		zap.Int("messages", report.MessagesCount))

	return report, nil
}

// ComputeAlerts builds the team report and the alerts derived from it.
func (s *MetricsService) ComputeAlerts(ctx context.Context, now time.Time) (*types.TeamReport, []types.Alert, error) {
	report, err := s.ComputeReport(ctx, now)
	if err != nil {
		return nil, nil, err
	}

	return report, core.BuildAlerts(report), nil
}

// MemberLoad looks up one user inside a freshly computed report. A user
// absent from the report yields ErrNoMemberData, distinct from a member with
// a zero score.
func (s *MetricsService) MemberLoad(ctx context.Context, now time.Time, userID string) (*types.ScoredMember, error) {
	report, err := s.ComputeReport(ctx, now)
	if err != nil {
		return nil, err
	}

	member, ok := core.FindMember(report, userID)
	if !ok {
		return nil, fmt.Errorf("%w (userID=%s)", types.ErrNoMemberData, userID)
	}

	return member, nil
}
