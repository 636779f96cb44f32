// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/missionctl/missionctl/pkg/config"
	"github.com/missionctl/missionctl/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes LLM usage events past their retention horizon
//   - Deletes expired login sessions
//
// Calendar snapshots prune themselves lazily on ingest and are not handled
// here. All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config   *config.RetentionConfig
	catalog  *services.CatalogService
	sessions *services.SessionService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	catalog *services.CatalogService,
	sessions *services.SessionService,
) *Service {
	return &Service{
		config:   cfg,
		catalog:  catalog,
		sessions: sessions,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"usage_event_retention_days", s.config.UsageEventRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.pruneUsageEvents(ctx)
	s.sweepExpiredSessions(ctx)
}

func (s *Service) pruneUsageEvents(ctx context.Context) {
	if s.config.UsageEventRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -s.config.UsageEventRetentionDays)
	count, err := s.catalog.PruneUsage(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: usage event prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned usage events", "count", count)
	}
}

func (s *Service) sweepExpiredSessions(ctx context.Context) {
	count, err := s.sessions.SweepExpired(ctx, time.Now().UTC())
	if err != nil {
		slog.Error("Retention: session sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed expired sessions", "count", count)
	}
}
