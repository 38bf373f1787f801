// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
)

// discardHandler is a slog.Handler that discards all logs.
type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func TestRecentHandler_RetainsWarnAndAbove(t *testing.T) {
	h := NewRecentHandler(discardHandler{})
	log := slog.New(h)

	log.Info("routine message")
	log.Warn("something odd", "component", "storage")
	log.Error("something failed")

	entries := h.Recent()
	if len(entries) != 2 {
		t.Fatalf("Recent() = %d entries, want 2", len(entries))
	}
	if entries[0].Level != "warning" || entries[0].Message != "something odd" {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[0].Attrs["component"] != "storage" {
		t.Errorf("attrs = %v", entries[0].Attrs)
	}
	if entries[1].Level != "error" {
		t.Errorf("second entry level = %q, want error", entries[1].Level)
	}
}

func TestRecentHandler_RingBufferWraps(t *testing.T) {
	h := NewRecentHandlerWithOptions(discardHandler{}, slog.LevelWarn, 3)
	log := slog.New(h)

	for i := 0; i < 5; i++ {
		log.Warn(fmt.Sprintf("warning %d", i))
	}

	entries := h.Recent()
	if len(entries) != 3 {
		t.Fatalf("Recent() = %d entries, want 3", len(entries))
	}
	// Oldest first, only the last three survive.
	for i, want := range []string{"warning 2", "warning 3", "warning 4"} {
		if entries[i].Message != want {
			t.Errorf("entries[%d].Message = %q, want %q", i, entries[i].Message, want)
		}
	}
}

func TestRecentHandler_SharedAcrossWithAttrs(t *testing.T) {
	h := NewRecentHandler(discardHandler{})
	log := slog.New(h).With("request_id", "abc")

	log.Warn("derived logger warning")

	entries := h.Recent()
	if len(entries) != 1 {
		t.Fatalf("Recent() = %d entries, want 1", len(entries))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
