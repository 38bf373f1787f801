// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alqudimi/portfolio-go/internal/model"
)

func setupMemoryStore(t *testing.T) *MemoryStore {
	t.Helper()

	// Pre-hashed value avoids paying argon2 cost in every test.
	store, err := NewMemoryStore("$argon2id$test-hash")
	if err != nil {
		t.Fatalf("NewMemoryStore failed: %v", err)
	}
	return store
}

func TestMemoryStore_SeedContent(t *testing.T) {
	store := setupMemoryStore(t)
	ctx := context.Background()

	services, err := store.GetServices(ctx)
	if err != nil {
		t.Fatalf("GetServices failed: %v", err)
	}
	if len(services) == 0 {
		t.Error("memory store should start with seeded services")
	}
	for _, svc := range services {
		if svc.ID == "" {
			t.Error("seeded service has empty id")
		}
		if svc.Features == nil {
			t.Error("seeded service Features should not be nil")
		}
	}

	admin, err := store.GetAdminUserByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		t.Fatalf("GetAdminUserByUsername failed: %v", err)
	}
	if admin == nil {
		t.Fatal("memory store should start with the admin user")
	}
	if admin.PasswordHash != "$argon2id$test-hash" {
		t.Error("admin should carry the provided password hash")
	}

	settings, err := store.GetSiteSettings(ctx)
	if err != nil {
		t.Fatalf("GetSiteSettings failed: %v", err)
	}
	if len(settings) == 0 {
		t.Error("memory store should start with seeded settings")
	}
}

func TestMemoryStore_ServiceCRUD(t *testing.T) {
	store := setupMemoryStore(t)
	ctx := context.Background()

	created, err := store.CreateService(ctx, CreateServiceParams{
		Title:       "استشارات تقنية",
		Description: "d",
		Icon:        "Settings",
		Color:       "green",
	})
	if err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}
	if !created.IsActive || created.Order != 0 {
		t.Errorf("defaults not applied: IsActive=%v Order=%d", created.IsActive, created.Order)
	}

	updated, err := store.UpdateService(ctx, created.ID, UpdateServiceParams{
		Order: intPtr(5),
	})
	if err != nil {
		t.Fatalf("UpdateService failed: %v", err)
	}
	if updated.Order != 5 {
		t.Errorf("Order = %d after update, want 5", updated.Order)
	}
	if updated.Title != "استشارات تقنية" {
		t.Error("partial update should not clear other fields")
	}

	missing, err := store.UpdateService(ctx, "no-such-id", UpdateServiceParams{Order: intPtr(1)})
	if err != nil {
		t.Fatalf("UpdateService failed: %v", err)
	}
	if missing != nil {
		t.Error("UpdateService should return nil for missing id")
	}

	ok, err := store.DeleteService(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteService failed: %v", err)
	}
	if !ok {
		t.Error("DeleteService returned false for existing id")
	}

	ok, err = store.DeleteService(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteService failed: %v", err)
	}
	if ok {
		t.Error("second DeleteService should return false")
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := setupMemoryStore(t)
	ctx := context.Background()

	services, err := store.GetServices(ctx)
	if err != nil {
		t.Fatalf("GetServices failed: %v", err)
	}
	id := services[0].ID

	// Mutating a returned record must not leak into the store.
	services[0].Title = "mutated"
	if len(services[0].Features) > 0 {
		services[0].Features[0] = "mutated"
	}

	again, err := store.GetService(ctx, id)
	if err != nil {
		t.Fatalf("GetService failed: %v", err)
	}
	if again.Title == "mutated" {
		t.Error("store record title aliased to caller slice")
	}
	if len(again.Features) > 0 && again.Features[0] == "mutated" {
		t.Error("store record features aliased to caller slice")
	}
}

func TestMemoryStore_SettingKeyConflict(t *testing.T) {
	store := setupMemoryStore(t)
	ctx := context.Background()

	settings, err := store.GetSiteSettings(ctx)
	if err != nil {
		t.Fatalf("GetSiteSettings failed: %v", err)
	}
	if len(settings) == 0 {
		t.Fatal("expected seeded settings")
	}

	_, err = store.CreateSiteSetting(ctx, CreateSiteSettingParams{
		Key: settings[0].Key, Value: "v", Type: "text", Category: "general",
	})
	if !IsConflict(err) {
		t.Errorf("duplicate key error = %v, want ErrDuplicate", err)
	}
}

func TestMemoryStore_StubbedEntities(t *testing.T) {
	store := setupMemoryStore(t)
	ctx := context.Background()

	posts, err := store.GetBlogPosts(ctx)
	if err != nil {
		t.Fatalf("GetBlogPosts failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("GetBlogPosts = %d entries, want 0", len(posts))
	}

	post, err := store.GetBlogPostBySlug(ctx, "anything")
	if err != nil {
		t.Fatalf("GetBlogPostBySlug failed: %v", err)
	}
	if post != nil {
		t.Error("GetBlogPostBySlug should return nil in memory mode")
	}

	_, err = store.CreateBlogPost(ctx, CreateBlogPostParams{Title: "t", Slug: "s", Content: "c"})
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("CreateBlogPost error = %v, want ErrNotImplemented", err)
	}

	_, err = store.CreateTestimonial(ctx, CreateTestimonialParams{ClientName: "n", Testimonial: "t", Rating: 5})
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("CreateTestimonial error = %v, want ErrNotImplemented", err)
	}

	_, err = store.CreateSubscriber(ctx, CreateSubscriberParams{Email: "a@b.c"})
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("CreateSubscriber error = %v, want ErrNotImplemented", err)
	}

	_, err = store.TrackEvent(ctx, CreateAnalyticsEventParams{Type: model.AnalyticsTypePageView})
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("TrackEvent error = %v, want ErrNotImplemented", err)
	}

	count, err := store.CountAnalyticsEvents(ctx, model.AnalyticsTypePageView, time.Time{})
	if err != nil {
		t.Fatalf("CountAnalyticsEvents failed: %v", err)
	}
	if count != 0 {
		t.Errorf("CountAnalyticsEvents = %d, want 0", count)
	}
}

func TestMemoryStore_ConcurrentWrites(t *testing.T) {
	store := setupMemoryStore(t)
	ctx := context.Background()

	before, err := store.GetContactMessages(ctx)
	if err != nil {
		t.Fatalf("GetContactMessages failed: %v", err)
	}

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.CreateContactMessage(ctx, CreateContactMessageParams{
				Name:    fmt.Sprintf("user-%d", i),
				Email:   fmt.Sprintf("user-%d@example.com", i),
				Message: "hi",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("CreateContactMessage failed: %v", err)
		}
	}

	after, err := store.GetContactMessages(ctx)
	if err != nil {
		t.Fatalf("GetContactMessages failed: %v", err)
	}
	if len(after) != len(before)+n {
		t.Errorf("message count = %d, want %d", len(after), len(before)+n)
	}
}
