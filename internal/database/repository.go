package database

import (
	"github.com/robalyx/teampulse/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	event   *models.EventModel
	user    *models.UserModel
	channel *models.ChannelModel
	rule    *models.RuleModel
	summary *models.SummaryModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		event:   models.NewEvent(db, logger),
		user:    models.NewUser(db, logger),
		channel: models.NewChannel(db, logger),
		rule:    models.NewRule(db, logger),
		summary: models.NewSummary(db, logger),
	}
}

// Event returns the message event model repository.
func (r *Repository) Event() *models.EventModel {
	return r.event
}

// User returns the user profile model repository.
func (r *Repository) User() *models.UserModel {
	return r.user
}

// Channel returns the channel profile model repository.
func (r *Repository) Channel() *models.ChannelModel {
	return r.channel
}

// Rule returns the alert rule model repository.
func (r *Repository) Rule() *models.RuleModel {
	return r.rule
}

// Summary returns the daily summary model repository.
func (r *Repository) Summary() *models.SummaryModel {
	return r.summary
}
