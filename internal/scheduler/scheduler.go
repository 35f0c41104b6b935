package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type snapshotter interface {
	Snapshot() int
}

// Scheduler periodically checkpoints the live state so callers always
// have a recent snapshot to roll back to.
type Scheduler struct {
	engine   snapshotter
	interval time.Duration
	logger   logger.Logger
}

func New(
	engine snapshotter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		engine:   engine,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("snapshot scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("snapshot scheduler stopped")
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Scheduler) tick() {
	index := s.engine.Snapshot()
	s.logger.Info("periodic snapshot saved",
		logger.Int("index", index),
	)
}
