package mission

import (
	"context"
	"log/slog"
	"time"

	"github.com/scribe-research/scribe/pkg/services"
)

// RetentionConfig controls the periodic cleanup loop.
type RetentionConfig struct {
	EventTTLDays    int
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		EventTTLDays:    3,
		CleanupInterval: 6 * time.Hour,
	}
}

// CleanupService periodically removes persisted bus events past their TTL.
// Terminal-mission event cleanup happens separately on the grace-period
// timer; this loop catches events orphaned by crashes.
type CleanupService struct {
	cfg    RetentionConfig
	events *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewCleanupService creates the cleanup service.
func NewCleanupService(cfg RetentionConfig, events *services.EventService) *CleanupService {
	return &CleanupService{cfg: cfg, events: events}
}

// Start launches the background cleanup loop.
func (s *CleanupService) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl_days", s.cfg.EventTTLDays,
		"interval", s.cfg.CleanupInterval)
}

// Stop signals the loop to exit and waits for it.
func (s *CleanupService) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *CleanupService) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)
	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *CleanupService) sweep(ctx context.Context) {
	n, err := s.events.CleanupOldEvents(ctx, s.cfg.EventTTLDays)
	if err != nil {
		slog.Warn("Event retention sweep failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("Event retention sweep removed old events", "count", n)
	}
}
