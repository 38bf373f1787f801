// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alqudimi/portfolio-go/internal/model"
)

func TestContentCache_ServesFromCache(t *testing.T) {
	backend := newTestCache(t)
	cc := NewContentCache(backend, time.Minute)
	ctx := context.Background()

	calls := 0
	fetch := func() ([]model.Service, error) {
		calls++
		return []model.Service{{ID: "1", Title: "خدمة"}}, nil
	}

	first, err := cc.ActiveServices(ctx, fetch)
	if err != nil {
		t.Fatalf("ActiveServices failed: %v", err)
	}
	second, err := cc.ActiveServices(ctx, fetch)
	if err != nil {
		t.Fatalf("ActiveServices failed: %v", err)
	}

	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Title != "خدمة" {
		t.Errorf("results = %v, %v", first, second)
	}
}

func TestContentCache_InvalidateRefetches(t *testing.T) {
	backend := newTestCache(t)
	cc := NewContentCache(backend, time.Minute)
	ctx := context.Background()

	calls := 0
	fetch := func() ([]model.Project, error) {
		calls++
		return []model.Project{{ID: "1"}}, nil
	}

	if _, err := cc.ActiveProjects(ctx, fetch); err != nil {
		t.Fatalf("ActiveProjects failed: %v", err)
	}
	if _, err := cc.FeaturedProjects(ctx, fetch); err != nil {
		t.Fatalf("FeaturedProjects failed: %v", err)
	}

	cc.InvalidateProjects(ctx)

	if _, err := cc.ActiveProjects(ctx, fetch); err != nil {
		t.Fatalf("ActiveProjects failed: %v", err)
	}
	if calls != 3 {
		t.Errorf("fetch called %d times, want 3", calls)
	}
}

func TestContentCache_CvKeysPerType(t *testing.T) {
	backend := newTestCache(t)
	cc := NewContentCache(backend, time.Minute)
	ctx := context.Background()

	skills := func() ([]model.CvData, error) {
		return []model.CvData{{ID: "s", Type: "skill"}}, nil
	}
	education := func() ([]model.CvData, error) {
		return []model.CvData{{ID: "e", Type: "education"}}, nil
	}

	gotSkills, err := cc.ActiveCvByType(ctx, "skill", skills)
	if err != nil {
		t.Fatalf("ActiveCvByType failed: %v", err)
	}
	gotEducation, err := cc.ActiveCvByType(ctx, "education", education)
	if err != nil {
		t.Fatalf("ActiveCvByType failed: %v", err)
	}

	if gotSkills[0].ID != "s" || gotEducation[0].ID != "e" {
		t.Error("cv types share a cache key")
	}
}

func TestContentCache_InvalidateAll(t *testing.T) {
	backend := newTestCache(t)
	cc := NewContentCache(backend, time.Minute)
	ctx := context.Background()

	settingsCalls := 0
	if _, err := cc.SiteSettings(ctx, func() ([]model.SiteSetting, error) {
		settingsCalls++
		return nil, nil
	}); err != nil {
		t.Fatalf("SiteSettings failed: %v", err)
	}

	cc.InvalidateAll(ctx)

	if _, err := cc.SiteSettings(ctx, func() ([]model.SiteSetting, error) {
		settingsCalls++
		return nil, nil
	}); err != nil {
		t.Fatalf("SiteSettings failed: %v", err)
	}
	if settingsCalls != 2 {
		t.Errorf("fetch called %d times after InvalidateAll, want 2", settingsCalls)
	}
}
