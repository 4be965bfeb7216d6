// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs background maintenance jobs on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/divecms-go/internal/config"
	"github.com/olegiv/divecms-go/internal/translation"
)

// pruneTimeout bounds a single janitor run.
const pruneTimeout = 5 * time.Minute

// Scheduler removes translation rows whose owner entity no longer exists.
type Scheduler struct {
	store    *translation.Store
	registry *translation.Registry
	cron     *cron.Cron
	logger   *slog.Logger

	mu         sync.Mutex
	lastRun    time.Time
	lastPruned int64
}

// New creates a new scheduler instance.
func New(tr *translation.Translator, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		store:    tr.Store(),
		registry: tr.Registry(),
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start schedules the orphan janitor. An empty schedule or "off" starts nothing.
func (s *Scheduler) Start(schedule string) error {
	if schedule == "" || schedule == config.PruneOff {
		s.logger.Info("translation janitor disabled")
		return nil
	}

	_, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
		defer cancel()
		if _, err := s.PruneOrphans(ctx); err != nil {
			s.logger.Error("failed to prune orphaned translations", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()), "schedule", schedule)
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// PruneOrphans deletes orphaned translations of every registered kind and
// returns the number of rows removed. A failing kind does not stop the others.
func (s *Scheduler) PruneOrphans(ctx context.Context) (int64, error) {
	var (
		total    int64
		firstErr error
	)

	for _, kind := range s.registry.Kinds() {
		n, err := s.store.PruneOrphans(ctx, kind)
		if err != nil {
			s.logger.Error("failed to prune translations", "kind", kind, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if n > 0 {
			s.logger.Info("pruned orphaned translations", "kind", kind, "rows", n)
		}
		total += n
	}

	s.mu.Lock()
	s.lastRun = time.Now()
	s.lastPruned = total
	s.mu.Unlock()

	return total, firstErr
}

// LastRun reports when the janitor last ran and how many rows it removed.
func (s *Scheduler) LastRun() (time.Time, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun, s.lastPruned
}
