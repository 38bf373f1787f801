// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a custom slog handler that records recent
// warnings and errors in memory. The captured entries feed the diagnostics
// endpoint, so a degraded process can report what went wrong without a
// database to write an audit trail to.
package logging

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultCapacity is the number of entries kept when none is specified.
const DefaultCapacity = 100

// Entry is one captured log record.
type Entry struct {
	Time    time.Time         `json:"time"`
	Level   string            `json:"level"`
	Message string            `json:"message"`
	Attrs   map[string]string `json:"attrs,omitempty"`
}

// RecentHandler is a slog.Handler that wraps another handler and also
// retains records at WARN level and above in a fixed-size ring buffer.
type RecentHandler struct {
	inner slog.Handler
	buf   *ringBuffer
	level slog.Level // Minimum level to retain (default: WARN)
}

// ringBuffer is shared across WithAttrs/WithGroup clones so every derived
// logger feeds the same capture.
type ringBuffer struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
}

func newRingBuffer(capacity int) *ringBuffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ringBuffer{entries: make([]Entry, capacity)}
}

func (b *ringBuffer) add(e Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[b.next] = e
	b.next++
	if b.next == len(b.entries) {
		b.next = 0
		b.full = true
	}
}

// snapshot returns the retained entries oldest-first.
func (b *ringBuffer) snapshot() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.full {
		out := make([]Entry, b.next)
		copy(out, b.entries[:b.next])
		return out
	}
	out := make([]Entry, 0, len(b.entries))
	out = append(out, b.entries[b.next:]...)
	out = append(out, b.entries[:b.next]...)
	return out
}

// NewRecentHandler creates a handler that wraps inner and retains the last
// DefaultCapacity records at WARN level and above.
func NewRecentHandler(inner slog.Handler) *RecentHandler {
	return NewRecentHandlerWithOptions(inner, slog.LevelWarn, DefaultCapacity)
}

// NewRecentHandlerWithOptions creates a handler with a custom retention
// level and buffer capacity.
func NewRecentHandlerWithOptions(inner slog.Handler, level slog.Level, capacity int) *RecentHandler {
	return &RecentHandler{
		inner: inner,
		buf:   newRingBuffer(capacity),
		level: level,
	}
}

// Recent returns the retained entries, oldest first.
func (h *RecentHandler) Recent() []Entry {
	return h.buf.snapshot()
}

// Enabled implements slog.Handler.
func (h *RecentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *RecentHandler) Handle(ctx context.Context, r slog.Record) error {
	// Always forward to the inner handler first
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level {
		h.buf.add(toEntry(r))
	}

	return nil
}

// WithAttrs implements slog.Handler.
func (h *RecentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &RecentHandler{
		inner: h.inner.WithAttrs(attrs),
		buf:   h.buf,
		level: h.level,
	}
}

// WithGroup implements slog.Handler.
func (h *RecentHandler) WithGroup(name string) slog.Handler {
	return &RecentHandler{
		inner: h.inner.WithGroup(name),
		buf:   h.buf,
		level: h.level,
	}
}

func toEntry(r slog.Record) Entry {
	e := Entry{
		Time:    r.Time,
		Level:   levelName(r.Level),
		Message: r.Message,
	}
	if r.NumAttrs() > 0 {
		e.Attrs = make(map[string]string, r.NumAttrs())
		r.Attrs(func(a slog.Attr) bool {
			e.Attrs[a.Key] = a.Value.String()
			return true
		})
	}
	return e
}

func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "error"
	case level >= slog.LevelWarn:
		return "warning"
	default:
		return "info"
	}
}

// ParseLevel converts a config string into a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
