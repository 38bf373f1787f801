// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alqudimi/portfolio-go/internal/auth"
)

// ConnectTimeout bounds the connectivity probe so a dead database cannot
// stall startup.
const ConnectTimeout = 5 * time.Second

// Initializer prepares a freshly opened database for serving: connectivity
// probe, schema migrations, the admin account, and first-run content.
type Initializer struct {
	store *DatabaseStore
	log   *slog.Logger
}

// NewInitializer builds an Initializer over an open database store.
func NewInitializer(store *DatabaseStore, log *slog.Logger) *Initializer {
	return &Initializer{store: store, log: log}
}

// TestConnection reports whether the database answers a ping within
// ConnectTimeout. It never returns an error: an unreachable database is an
// expected condition, answered with false, so callers can fall back instead
// of failing startup.
func (i *Initializer) TestConnection(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, ConnectTimeout)
	defer cancel()

	if err := i.store.Ping(ctx); err != nil {
		i.log.Warn("database connection test failed", "error", err)
		return false
	}
	return true
}

// EnsureAdminUser creates the admin account if no user with the configured
// username exists. Idempotent across restarts. An empty password falls back
// to the development default.
func (i *Initializer) EnsureAdminUser(ctx context.Context, username, email, password string) error {
	if username == "" {
		username = DefaultAdminUsername
	}
	if email == "" {
		email = DefaultAdminEmail
	}
	if password == "" {
		password = DefaultAdminPassword
		i.log.Warn("no admin password configured, using default", "username", username)
	}

	existing, err := i.store.GetAdminUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("checking admin user: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	if _, err := i.store.CreateAdminUser(ctx, CreateAdminUserParams{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}); err != nil {
		// A concurrent boot may have raced us to the insert.
		if IsConflict(err) {
			return nil
		}
		return fmt.Errorf("creating admin user: %w", err)
	}

	i.log.Info("admin user created", "username", username)
	return nil
}

// SeedInitialData inserts the default bilingual content on first run. The
// services table is the sentinel: any existing row means the database has
// been seeded before and the whole step is skipped, so user edits and
// deletions of other seeded rows are never reverted.
func (i *Initializer) SeedInitialData(ctx context.Context) error {
	existing, err := i.store.GetServices(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing content: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, params := range defaultServices() {
		if _, err := i.store.CreateService(ctx, params); err != nil {
			return fmt.Errorf("seeding service %q: %w", params.Title, err)
		}
	}
	for _, params := range defaultProjects() {
		if _, err := i.store.CreateProject(ctx, params); err != nil {
			return fmt.Errorf("seeding project %q: %w", params.Title, err)
		}
	}
	for _, params := range defaultCvData() {
		if _, err := i.store.CreateCvData(ctx, params); err != nil {
			return fmt.Errorf("seeding cv entry %q: %w", params.Title, err)
		}
	}
	for _, params := range defaultContactInfo() {
		if _, err := i.store.CreateContactInfo(ctx, params); err != nil {
			return fmt.Errorf("seeding contact info %q: %w", params.Label, err)
		}
	}
	for _, params := range defaultSiteSettings() {
		if _, err := i.store.CreateSiteSetting(ctx, params); err != nil {
			return fmt.Errorf("seeding site setting %q: %w", params.Key, err)
		}
	}

	i.log.Info("seeded initial content")
	return nil
}

// Run executes the full preparation sequence against a reachable database:
// migrations, admin account, then first-run content.
func (i *Initializer) Run(ctx context.Context, dialect Dialect, username, email, password string) error {
	if err := Migrate(i.store.DB(), dialect); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	if err := i.EnsureAdminUser(ctx, username, email, password); err != nil {
		return err
	}
	if err := i.SeedInitialData(ctx); err != nil {
		return err
	}
	return nil
}
