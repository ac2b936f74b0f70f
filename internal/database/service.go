package database

import (
	"github.com/robalyx/teampulse/internal/database/service"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	metrics *service.MetricsService
	ingest  *service.IngestService
}

// NewService creates a new service instance with all services.
func NewService(repository *Repository, logger *zap.Logger) *Service {
	return &Service{
		metrics: service.NewMetrics(repository.Event(), repository.User(), repository.Channel(), repository.Rule(), logger),
		ingest:  service.NewIngest(repository.Event(), repository.User(), repository.Channel(), logger),
	}
}

// Metrics returns the metrics service.
func (s *Service) Metrics() *service.MetricsService {
	return s.metrics
}

// Ingest returns the ingest service.
func (s *Service) Ingest() *service.IngestService {
	return s.ingest
}
