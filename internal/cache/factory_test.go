// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_DefaultsToMemory(t *testing.T) {
	c := New(DefaultConfig(), discardLogger())
	defer func() { _ = c.Close() }()

	if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("New without redis URL = %T, want *MemoryCache", c)
	}
}

func TestNew_FallsBackWhenRedisUnreachable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RedisURL = "redis://127.0.0.1:1/0" // refused immediately

	c := New(cfg, discardLogger())
	defer func() { _ = c.Close() }()

	if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("New with unreachable redis = %T, want *MemoryCache fallback", c)
	}

	// The fallback must be usable.
	ctx := context.Background()
	if err := c.Set(ctx, "key", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set on fallback failed: %v", err)
	}
	if _, err := c.Get(ctx, "key"); err != nil {
		t.Fatalf("Get on fallback failed: %v", err)
	}
}
