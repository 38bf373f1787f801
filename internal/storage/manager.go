// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// State names which backend the manager is currently routing to.
type State string

const (
	// MemoryActive means requests are served from the in-memory store,
	// either because no database is configured or because it was
	// unreachable at startup.
	MemoryActive State = "memory"

	// DatabaseActive means requests are served from the database.
	DatabaseActive State = "database"
)

// Health statuses reported by HealthStatus.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// HealthStatus is the snapshot returned to the health endpoint.
type HealthStatus struct {
	Storage       string `json:"storage"`
	UsingDatabase bool   `json:"using_database"`
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
}

// ManagerConfig carries everything Initialize needs to stand up a backend.
type ManagerConfig struct {
	// DatabaseURL selects the backend: empty means memory-only, a
	// mysql:// URL means a remote MySQL server, anything else is treated
	// as a SQLite path or DSN.
	DatabaseURL string

	// RelaxTLS permits self-signed certificates on MySQL connections.
	// Set only in development.
	RelaxTLS bool

	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// Manager selects and owns the active storage backend. It starts every
// process in a known-good state: Initialize probes the configured database
// once, falls back to memory when the probe fails, and the process serves
// traffic either way. The scheduler later drives AttemptDatabaseReconnection
// to promote a degraded process back onto the database.
type Manager struct {
	cfg ManagerConfig
	log *slog.Logger

	mu      sync.RWMutex
	state   State
	mem     *MemoryStore
	db      *DatabaseStore
	dialect Dialect
	reason  string
}

// NewManager builds an uninitialized manager. Call Initialize before
// serving requests.
func NewManager(cfg ManagerConfig, log *slog.Logger) *Manager {
	return &Manager{cfg: cfg, log: log}
}

// Initialize decides the backend for this process. It must complete before
// the HTTP listener binds so the first request already sees a working store.
// It returns an error only for misconfiguration (an unparseable database
// URL); an unreachable database is handled by falling back to memory.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cfg.DatabaseURL == "" {
		m.log.Info("no database configured, using in-memory storage")
		return m.activateMemoryLocked("no database configured")
	}

	dialect, dsn, err := ParseDatabaseURL(m.cfg.DatabaseURL, m.cfg.RelaxTLS)
	if err != nil {
		return fmt.Errorf("parsing database url: %w", err)
	}

	db, err := NewDB(dialect, dsn)
	if err != nil {
		// Opening rarely fails (drivers defer connecting), but if it
		// does the process still comes up on memory.
		m.log.Error("opening database failed, falling back to memory", "error", err)
		return m.activateMemoryLocked("database open failed")
	}

	m.db = NewDatabaseStore(db)
	m.dialect = dialect

	init := NewInitializer(m.db, m.log)
	if !init.TestConnection(ctx) {
		m.log.Warn("database unreachable at startup, falling back to memory",
			"dialect", string(dialect))
		return m.activateMemoryLocked("database unreachable")
	}

	if err := init.Run(ctx, dialect, m.cfg.AdminUsername, m.cfg.AdminEmail, m.cfg.AdminPassword); err != nil {
		m.log.Error("database initialization failed, falling back to memory", "error", err)
		return m.activateMemoryLocked("database initialization failed")
	}

	m.state = DatabaseActive
	m.reason = ""
	m.log.Info("database storage active", "dialect", string(dialect))
	return nil
}

// activateMemoryLocked stands up the in-memory store. Caller holds m.mu.
func (m *Manager) activateMemoryLocked(reason string) error {
	mem, err := NewMemoryStore("")
	if err != nil {
		return fmt.Errorf("initializing memory storage: %w", err)
	}
	m.mem = mem
	m.state = MemoryActive
	m.reason = reason
	return nil
}

// Store returns the currently active backend.
func (m *Manager) Store() Storage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state == DatabaseActive {
		return m.db
	}
	return m.mem
}

// State returns the current routing state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// UsingDatabase reports whether the database backend is active.
func (m *Manager) UsingDatabase() bool {
	return m.State() == DatabaseActive
}

// AttemptDatabaseReconnection retries the database when the process is
// degraded. Returns true when the database backend is active afterwards.
// Already being database-active is a successful no-op. Writes that landed in
// the memory store during the outage are not migrated; they stay visible
// until the switch and are then gone, which a warning makes explicit.
func (m *Manager) AttemptDatabaseReconnection(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == DatabaseActive {
		return true
	}
	if m.db == nil {
		// Memory-only configuration: nothing to reconnect to.
		return false
	}

	init := NewInitializer(m.db, m.log)
	if !init.TestConnection(ctx) {
		return false
	}

	if err := init.Run(ctx, m.dialect, m.cfg.AdminUsername, m.cfg.AdminEmail, m.cfg.AdminPassword); err != nil {
		m.log.Error("database reconnection initialization failed", "error", err)
		return false
	}

	m.state = DatabaseActive
	m.reason = ""
	m.log.Warn("database reconnected, switching backends; in-memory changes are not migrated")
	return true
}

// Health reports the manager's view of storage for the health endpoint.
// Memory mode is always degraded: writes do not survive a restart, so
// monitoring should flag it even when no database was configured.
func (m *Manager) Health() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state == DatabaseActive {
		return HealthStatus{
			Storage:       string(DatabaseActive),
			UsingDatabase: true,
			Status:        StatusHealthy,
		}
	}

	return HealthStatus{
		Storage: string(MemoryActive),
		Status:  StatusDegraded,
		Message: m.reason,
	}
}

// Close releases the database handle if one was opened.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db != nil {
		return m.db.DB().Close()
	}
	return nil
}
