// Package chat serves the platform webhook, slash commands, and widget API.
package chat

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/robalyx/teampulse/internal/database/service"
	"github.com/robalyx/teampulse/internal/database/types"
	"github.com/robalyx/teampulse/internal/statistics"
	"go.uber.org/zap"
)

// TopMembersShown caps how many members the team summary command lists.
const TopMembersShown = 5

// Ingestor records inbound platform messages.
type Ingestor interface {
	RecordMessage(ctx context.Context, msg service.InboundMessage) error
}

// Reporter computes reports, alerts, and single-member lookups.
type Reporter interface {
	ComputeReport(ctx context.Context, now time.Time) (*types.TeamReport, error)
	ComputeAlerts(ctx context.Context, now time.Time) (*types.TeamReport, []types.Alert, error)
	MemberLoad(ctx context.Context, now time.Time, userID string) (*types.ScoredMember, error)
}

// StatsRecorder bumps the daily operational counters.
type StatsRecorder interface {
	IncrementDailyStat(ctx context.Context, field string, count int) error
}

// Handler holds the dependencies for all HTTP endpoints.
type Handler struct {
	ingest  Ingestor
	metrics Reporter
	stats   StatsRecorder
	logger  *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(ingest Ingestor, metrics Reporter, stats StatsRecorder, logger *zap.Logger) *Handler {
	return &Handler{
		ingest:  ingest,
		metrics: metrics,
		stats:   stats,
		logger:  logger.Named("chat"),
	}
}

// webhookPayload is the envelope the chat platform posts for every hook type.
type webhookPayload struct {
	Type        string `json:"type"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	Text        string `json:"text"`
	// Ts is the message timestamp in epoch milliseconds; zero means "now".
	Ts int64 `json:"ts"`
}

// commandPayload carries the identity of the member invoking a slash command.
type commandPayload struct {
	SourceUserID string `json:"source_user_id"`
}

// Webhook dispatches platform webhook deliveries by payload type.
func (h *Handler) Webhook(c *fiber.Ctx) error {
	var payload webhookPayload
	if err := c.BodyParser(&payload); err != nil {
		h.logger.Warn("Failed to parse webhook payload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "Invalid payload"})
	}

	switch payload.Type {
	case "message":
		return h.handleMessage(c, payload)
	case "scheduler":
		return h.handleScheduler(c)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "Unknown webhook type"})
	}
}

func (h *Handler) handleMessage(c *fiber.Ctx, payload webhookPayload) error {
	msg := service.InboundMessage{
		UserID:      payload.UserID,
		UserName:    payload.UserName,
		ChannelID:   payload.ChannelID,
		ChannelName: payload.ChannelName,
		Text:        payload.Text,
	}
	if payload.Ts != 0 {
		msg.Timestamp = time.UnixMilli(payload.Ts)
	}

	if err := h.ingest.RecordMessage(c.Context(), msg); err != nil {
		h.logger.Error("Failed to record message", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
	}

	if err := h.stats.IncrementDailyStat(c.Context(), statistics.FieldMessagesIngested, 1); err != nil {
		h.logger.Warn("Failed to count ingested message", zap.Error(err))
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (h *Handler) handleScheduler(c *fiber.Ctx) error {
	report, alerts, err := h.metrics.ComputeAlerts(c.Context(), time.Now())
	if err != nil {
		h.logger.Error("Failed to compute scheduler alerts", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
	}

	if len(alerts) > 0 {
		if err := h.stats.IncrementDailyStat(c.Context(), statistics.FieldAlertsGenerated, len(alerts)); err != nil {
			h.logger.Warn("Failed to count generated alerts", zap.Error(err))
		}
	}

	h.logger.Info("Scheduler run completed",
		zap.Int("teamScore", report.TeamScore),
		zap.Int("alerts", len(alerts)))

	return c.JSON(fiber.Map{"ok": true, "metrics": report, "alerts": alerts})
}

// TeamHealth renders the team summary text for the teamhealth slash command.
func (h *Handler) TeamHealth(c *fiber.Ctx) error {
	report, err := h.metrics.ComputeReport(c.Context(), time.Now())
	if err != nil {
		h.logger.Error("Failed to compute team report", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
	}

	var b strings.Builder

	b.WriteString("Team Cognitive Load Summary\n\n")
	fmt.Fprintf(&b, "Team Stress Index: %d/100\n", report.TeamScore)
	fmt.Fprintf(&b, "Members analysed: %d, Messages today: %d\n\n", report.UsersCount, report.MessagesCount)
	b.WriteString("Top members:\n")

	for i, member := range report.Members {
		if i >= TopMembersShown {
			break
		}

		fmt.Fprintf(&b, "%d. %s – %d/100 (%s) | msgs: %d, late-night: %d\n",
			i+1, member.DisplayName, member.StressScore, member.Status,
			member.TotalMessages, member.LateNightMessages)
	}

	return c.JSON(fiber.Map{"text": b.String()})
}

// MyLoad renders the caller's own load for the myload slash command.
func (h *Handler) MyLoad(c *fiber.Ctx) error {
	var payload commandPayload
	if err := c.BodyParser(&payload); err != nil {
		h.logger.Warn("Failed to parse command payload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "Invalid payload"})
	}

	member, err := h.metrics.MemberLoad(c.Context(), time.Now(), payload.SourceUserID)
	if err != nil {
		if errors.Is(err, types.ErrNoMemberData) {
			return c.JSON(fiber.Map{
				"text": "No data for you yet today. Start chatting and I'll track your load.",
			})
		}

		h.logger.Error("Failed to compute member load", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
	}

	var b strings.Builder

	b.WriteString("Your Cognitive Load Today\n\n")
	fmt.Fprintf(&b, "Name: %s\n", member.DisplayName)
	fmt.Fprintf(&b, "Stress Score: %d/100 (%s)\n", member.StressScore, member.Status)
	fmt.Fprintf(&b, "Messages: %d\n", member.TotalMessages)
	fmt.Fprintf(&b, "Late-night messages: %d\n", member.LateNightMessages)
	fmt.Fprintf(&b, "Avg. message length: %d chars\n", int(math.Round(member.AvgLength)))

	return c.JSON(fiber.Map{"text": b.String()})
}

// WidgetSummary returns the dashboard widget JSON.
func (h *Handler) WidgetSummary(c *fiber.Ctx) error {
	report, err := h.metrics.ComputeReport(c.Context(), time.Now())
	if err != nil {
		h.logger.Error("Failed to compute widget summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
	}

	return c.JSON(fiber.Map{
		"teamScore": report.TeamScore,
		"members":   report.Members,
	})
}

// Health is the liveness endpoint.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "service": "teampulse"})
}
