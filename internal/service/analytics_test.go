// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alqudimi/portfolio-go/internal/geoip"
	"github.com/alqudimi/portfolio-go/internal/model"
	"github.com/alqudimi/portfolio-go/internal/storage"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func setupAnalyticsService(t *testing.T, retentionDays int) (*AnalyticsService, *storage.DatabaseStore) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := storage.Migrate(db, storage.DialectSQLite); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	store := storage.NewDatabaseStore(db)
	geo, _ := geoip.NewResolver("")
	svc := NewAnalyticsService(staticProvider{s: store}, geo, testLogger(), retentionDays)
	return svc, store
}

func TestAnalyticsService_TrackEnriches(t *testing.T) {
	svc, store := setupAnalyticsService(t, 90)
	ctx := context.Background()

	err := svc.Track(ctx, TrackInput{
		Type:      model.AnalyticsTypePageView,
		Path:      "/projects",
		IP:        "192.168.1.10",
		UserAgent: chromeUA,
	})
	if err != nil {
		t.Fatalf("Track: %v", err)
	}

	events, err := store.GetAnalyticsEvents(ctx, time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("GetAnalyticsEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Country == nil || *ev.Country != "LOCAL" {
		t.Errorf("country = %v, want LOCAL for a private IP", ev.Country)
	}
	if ev.Metadata["browser"] != "Chrome" {
		t.Errorf("browser = %v, want Chrome", ev.Metadata["browser"])
	}
	if ev.Metadata["device"] != "desktop" {
		t.Errorf("device = %v, want desktop", ev.Metadata["device"])
	}
}

func TestAnalyticsService_TrackRejectsUnknownType(t *testing.T) {
	svc, _ := setupAnalyticsService(t, 90)

	if err := svc.Track(context.Background(), TrackInput{Type: "clickjack"}); err == nil {
		t.Error("expected an error for an unknown event type")
	}
}

func TestAnalyticsService_TrackDropsOnMemoryBackend(t *testing.T) {
	mem, err := storage.NewMemoryStore("$argon2id$test-hash")
	if err != nil {
		t.Fatalf("NewMemoryStore: %v", err)
	}
	svc := NewAnalyticsService(staticProvider{s: mem}, nil, testLogger(), 90)

	err = svc.Track(context.Background(), TrackInput{
		Type: model.AnalyticsTypePageView,
		Path: "/",
	})
	if err != nil {
		t.Errorf("tracking against the memory backend should be a silent drop, got %v", err)
	}
}

func TestAnalyticsService_Summarize(t *testing.T) {
	svc, _ := setupAnalyticsService(t, 90)
	ctx := context.Background()

	track := func(typ, path, ip string) {
		t.Helper()
		if err := svc.Track(ctx, TrackInput{Type: typ, Path: path, IP: ip}); err != nil {
			t.Fatalf("Track(%s): %v", typ, err)
		}
	}
	track(model.AnalyticsTypePageView, "/", "10.0.0.1")
	track(model.AnalyticsTypePageView, "/", "10.0.0.2")
	track(model.AnalyticsTypePageView, "/blog", "10.0.0.1")
	track(model.AnalyticsTypeProjectView, "/projects/x", "10.0.0.3")
	track(model.AnalyticsTypeContactForm, "/contact", "")

	sum, err := svc.Summarize(ctx, 1, "en")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Total != 5 {
		t.Errorf("total = %d, want 5", sum.Total)
	}
	if sum.PageViews != 3 || sum.ProjectViews != 1 || sum.ContactForms != 1 {
		t.Errorf("per-type counts = %d/%d/%d, want 3/1/1",
			sum.PageViews, sum.ProjectViews, sum.ContactForms)
	}
	if len(sum.TopPaths) == 0 || sum.TopPaths[0].Path != "/" || sum.TopPaths[0].Count != 2 {
		t.Errorf("top path = %+v, want / with count 2", sum.TopPaths)
	}
	if len(sum.TopCountries) != 1 || sum.TopCountries[0].Code != "LOCAL" {
		t.Fatalf("top countries = %+v, want a single LOCAL entry", sum.TopCountries)
	}
	if sum.TopCountries[0].Name != "Local" {
		t.Errorf("country name = %q, want Local", sum.TopCountries[0].Name)
	}

	arabic, err := svc.Summarize(ctx, 1, "ar")
	if err != nil {
		t.Fatalf("Summarize(ar): %v", err)
	}
	if arabic.TopCountries[0].Name != "محلي" {
		t.Errorf("arabic country name = %q, want محلي", arabic.TopCountries[0].Name)
	}
}

func TestAnalyticsService_Prune(t *testing.T) {
	svc, store := setupAnalyticsService(t, 0)
	ctx := context.Background()

	if err := svc.Track(ctx, TrackInput{Type: model.AnalyticsTypePageView, Path: "/"}); err != nil {
		t.Fatalf("Track: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	// Zero retention makes everything already recorded prunable.
	n, err := svc.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned %d events, want 1", n)
	}

	count, err := store.CountAnalyticsEvents(ctx, model.AnalyticsTypePageView, time.Time{})
	if err != nil {
		t.Fatalf("CountAnalyticsEvents: %v", err)
	}
	if count != 0 {
		t.Errorf("%d events remain after prune, want 0", count)
	}
}

func TestAnalyticsService_PruneOnMemoryBackend(t *testing.T) {
	mem, err := storage.NewMemoryStore("$argon2id$test-hash")
	if err != nil {
		t.Fatalf("NewMemoryStore: %v", err)
	}
	svc := NewAnalyticsService(staticProvider{s: mem}, nil, testLogger(), 90)

	n, err := svc.Prune(context.Background())
	if err != nil {
		t.Errorf("Prune on memory backend: %v", err)
	}
	if n != 0 {
		t.Errorf("pruned %d, want 0", n)
	}
}
