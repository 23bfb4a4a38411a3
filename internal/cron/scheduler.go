package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"paybridge/internal/paypro"
)

// Scheduler runs background maintenance jobs.
type Scheduler struct {
	cron   *cron.Cron
	tokens *paypro.TokenSource
	logger *zap.Logger
}

// New creates the scheduler.
func New(tokens *paypro.TokenSource, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		tokens: tokens,
		logger: logger,
	}
}

// Start registers and starts all jobs. The token keep-warm job refreshes the
// cached credential before it goes stale, so the first order after an idle
// period doesn't pay the auth round-trip.
func (s *Scheduler) Start() {
	s.logger.Info("Starting cron scheduler...")

	s.cron.AddFunc("@every 5m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := s.tokens.Token(ctx); err != nil {
			s.logger.Warn("Token keep-warm failed", zap.Error(err))
		}
	})

	s.cron.Start()
}

// Stop stops the scheduler and returns a context that is done once running
// jobs have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
