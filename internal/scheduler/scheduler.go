// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the periodic background jobs: database
// reconnection while degraded, analytics retention pruning, and GeoIP
// database reloads.
package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/alqudimi/portfolio-go/internal/geoip"
	"github.com/alqudimi/portfolio-go/internal/service"
	"github.com/alqudimi/portfolio-go/internal/storage"
)

// pruneSpec runs retention pruning nightly at 03:00 server time, when
// visitor traffic bottoms out.
const pruneSpec = "0 3 * * *"

// geoipReloadSpec checks for a replaced GeoIP database file every six
// hours; MaxMind publishes updates twice a week.
const geoipReloadSpec = "@every 6h"

// Scheduler owns the cron instance and the jobs attached to it.
type Scheduler struct {
	cron *cron.Cron
	log  *slog.Logger

	mgr       *storage.Manager
	analytics *service.AnalyticsService
	geo       *geoip.Resolver
}

// New creates a scheduler. geo may be nil when GeoIP is not configured;
// the reload job is then skipped.
func New(mgr *storage.Manager, analytics *service.AnalyticsService, geo *geoip.Resolver, log *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		log:       log,
		mgr:       mgr,
		analytics: analytics,
		geo:       geo,
	}
}

// Start registers all jobs and starts the cron loop. reconnectSpec is
// the cron expression for reconnection attempts (e.g. "@every 1m").
func (s *Scheduler) Start(reconnectSpec string) error {
	if _, err := s.cron.AddFunc(reconnectSpec, s.tryReconnect); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(pruneSpec, s.pruneAnalytics); err != nil {
		return err
	}
	if s.geo != nil {
		if _, err := s.cron.AddFunc(geoipReloadSpec, s.reloadGeoIP); err != nil {
			return err
		}
	}

	s.cron.Start()
	s.log.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop waits for running jobs to finish and stops the cron loop.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}

// tryReconnect promotes a degraded process back onto the database. When
// the process is already database-active or runs memory-only by choice,
// the attempt is a no-op.
func (s *Scheduler) tryReconnect() {
	if s.mgr.UsingDatabase() {
		return
	}
	s.mgr.AttemptDatabaseReconnection(context.Background())
}

// pruneAnalytics enforces the analytics retention window. While the
// process is degraded the memory backend holds no events, so pruning is
// skipped entirely.
func (s *Scheduler) pruneAnalytics() {
	if !s.mgr.UsingDatabase() {
		return
	}
	if _, err := s.analytics.Prune(context.Background()); err != nil {
		s.log.Error("analytics pruning failed", "error", err)
	}
}

// reloadGeoIP picks up a replaced GeoLite2 database file.
func (s *Scheduler) reloadGeoIP() {
	if err := s.geo.Reload(); err != nil {
		s.log.Warn("geoip database reload failed", "error", err)
	}
}
