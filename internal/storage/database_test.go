// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *DatabaseStore {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// An in-memory SQLite database exists per connection.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(db, DialectSQLite); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return NewDatabaseStore(db)
}

func TestDatabaseStore_ServiceCRUD(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	created, err := store.CreateService(ctx, CreateServiceParams{
		Title:       "تطوير المواقع",
		TitleEn:     strPtr("Web Development"),
		Description: "بناء مواقع حديثة",
		Icon:        "Code",
		Color:       "blue",
		Features:    []string{"React", "Go"},
	})
	if err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}
	if created.ID == "" {
		t.Error("created service has empty id")
	}
	if !created.IsActive {
		t.Error("IsActive should default to true")
	}
	if created.Order != 0 {
		t.Errorf("Order = %d, want 0", created.Order)
	}
	if created.FeaturesEn == nil {
		t.Error("FeaturesEn should be an empty list, not nil")
	}

	got, err := store.GetService(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetService failed: %v", err)
	}
	if got == nil {
		t.Fatal("GetService returned nil for existing id")
	}
	if got.Title != "تطوير المواقع" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.TitleEn == nil || *got.TitleEn != "Web Development" {
		t.Errorf("TitleEn = %v", got.TitleEn)
	}
	if len(got.Features) != 2 {
		t.Errorf("Features = %v, want 2 entries", got.Features)
	}

	updated, err := store.UpdateService(ctx, created.ID, UpdateServiceParams{
		Title:    strPtr("خدمات الويب"),
		IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("UpdateService failed: %v", err)
	}
	if updated.Title != "خدمات الويب" {
		t.Errorf("Title = %q after update", updated.Title)
	}
	if updated.IsActive {
		t.Error("IsActive should be false after update")
	}
	// Untouched fields survive a partial update.
	if updated.Icon != "Code" {
		t.Errorf("Icon = %q after partial update", updated.Icon)
	}

	deleted, err := store.DeleteService(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteService failed: %v", err)
	}
	if !deleted {
		t.Error("DeleteService returned false for existing id")
	}

	gone, err := store.GetService(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetService after delete failed: %v", err)
	}
	if gone != nil {
		t.Error("GetService should return nil after delete")
	}
}

func TestDatabaseStore_MissingIDSemantics(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	got, err := store.GetService(ctx, "no-such-id")
	if err != nil {
		t.Fatalf("GetService failed: %v", err)
	}
	if got != nil {
		t.Error("GetService should return nil for missing id")
	}

	updated, err := store.UpdateService(ctx, "no-such-id", UpdateServiceParams{Title: strPtr("x")})
	if err != nil {
		t.Fatalf("UpdateService failed: %v", err)
	}
	if updated != nil {
		t.Error("UpdateService should return nil for missing id")
	}

	deleted, err := store.DeleteService(ctx, "no-such-id")
	if err != nil {
		t.Fatalf("DeleteService failed: %v", err)
	}
	if deleted {
		t.Error("DeleteService should return false for missing id")
	}
}

func TestDatabaseStore_ProjectFilters(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	mk := func(title, category string, featured, active bool, order int) {
		t.Helper()
		_, err := store.CreateProject(ctx, CreateProjectParams{
			Title:       title,
			Description: "d",
			Category:    category,
			IsFeatured:  boolPtr(featured),
			IsActive:    boolPtr(active),
			Order:       intPtr(order),
		})
		if err != nil {
			t.Fatalf("CreateProject(%s) failed: %v", title, err)
		}
	}
	mk("b", "web", true, true, 2)
	mk("a", "web", false, true, 1)
	mk("c", "mobile", true, false, 0)

	all, err := store.GetProjects(ctx)
	if err != nil {
		t.Fatalf("GetProjects failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("GetProjects = %d entries, want 3", len(all))
	}
	if all[0].Title != "c" || all[1].Title != "a" || all[2].Title != "b" {
		t.Errorf("projects not ordered by sort_order: %s, %s, %s",
			all[0].Title, all[1].Title, all[2].Title)
	}

	active, err := store.GetActiveProjects(ctx)
	if err != nil {
		t.Fatalf("GetActiveProjects failed: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("GetActiveProjects = %d entries, want 2", len(active))
	}

	featured, err := store.GetFeaturedProjects(ctx)
	if err != nil {
		t.Fatalf("GetFeaturedProjects failed: %v", err)
	}
	if len(featured) != 1 || featured[0].Title != "b" {
		t.Errorf("GetFeaturedProjects = %v", featured)
	}

	web, err := store.GetProjectsByCategory(ctx, "web")
	if err != nil {
		t.Fatalf("GetProjectsByCategory failed: %v", err)
	}
	if len(web) != 2 {
		t.Errorf("GetProjectsByCategory(web) = %d entries, want 2", len(web))
	}
}

func TestDatabaseStore_ContactMessages(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	first, err := store.CreateContactMessage(ctx, CreateContactMessageParams{
		Name:    "Ali",
		Email:   "ali@example.com",
		Message: "hello",
	})
	if err != nil {
		t.Fatalf("CreateContactMessage failed: %v", err)
	}
	if first.Status != "unread" {
		t.Errorf("Status = %q, want unread", first.Status)
	}

	read, err := store.UpdateContactMessageStatus(ctx, first.ID, "read")
	if err != nil {
		t.Fatalf("UpdateContactMessageStatus failed: %v", err)
	}
	if read.Status != "read" {
		t.Errorf("Status = %q after update, want read", read.Status)
	}

	missing, err := store.UpdateContactMessageStatus(ctx, "no-such-id", "read")
	if err != nil {
		t.Fatalf("UpdateContactMessageStatus failed: %v", err)
	}
	if missing != nil {
		t.Error("UpdateContactMessageStatus should return nil for missing id")
	}
}

func TestDatabaseStore_SiteSettingKeyUnique(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	_, err := store.CreateSiteSetting(ctx, CreateSiteSettingParams{
		Key: "site_title", Value: "Alqudimi", Type: "text", Category: "general",
	})
	if err != nil {
		t.Fatalf("CreateSiteSetting failed: %v", err)
	}

	_, err = store.CreateSiteSetting(ctx, CreateSiteSettingParams{
		Key: "site_title", Value: "Other", Type: "text", Category: "general",
	})
	if !IsConflict(err) {
		t.Errorf("duplicate key error = %v, want ErrDuplicate", err)
	}

	updated, err := store.UpdateSiteSettingByKey(ctx, "site_title", "Updated")
	if err != nil {
		t.Fatalf("UpdateSiteSettingByKey failed: %v", err)
	}
	if updated.Value != "Updated" {
		t.Errorf("Value = %q after update", updated.Value)
	}

	missing, err := store.UpdateSiteSettingByKey(ctx, "no_such_key", "x")
	if err != nil {
		t.Fatalf("UpdateSiteSettingByKey failed: %v", err)
	}
	if missing != nil {
		t.Error("UpdateSiteSettingByKey should return nil for missing key")
	}
}

func TestDatabaseStore_BlogSlugUnique(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	_, err := store.CreateBlogPost(ctx, CreateBlogPostParams{
		Title: "First", Slug: "first-post", Content: "body",
	})
	if err != nil {
		t.Fatalf("CreateBlogPost failed: %v", err)
	}

	_, err = store.CreateBlogPost(ctx, CreateBlogPostParams{
		Title: "Second", Slug: "first-post", Content: "body",
	})
	if !IsConflict(err) {
		t.Errorf("duplicate slug error = %v, want ErrDuplicate", err)
	}

	got, err := store.GetBlogPostBySlug(ctx, "first-post")
	if err != nil {
		t.Fatalf("GetBlogPostBySlug failed: %v", err)
	}
	if got == nil || got.Title != "First" {
		t.Errorf("GetBlogPostBySlug = %v", got)
	}
}

func TestDatabaseStore_IncrementBlogPostViewsConcurrent(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	post, err := store.CreateBlogPost(ctx, CreateBlogPostParams{
		Title: "Counted", Slug: "counted", Content: "body",
	})
	if err != nil {
		t.Fatalf("CreateBlogPost failed: %v", err)
	}
	if post.ViewCount != 0 {
		t.Fatalf("ViewCount = %d for new post, want 0", post.ViewCount)
	}

	const n = 25
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.IncrementBlogPostViews(ctx, post.ID)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("IncrementBlogPostViews failed: %v", err)
		}
	}

	got, err := store.GetBlogPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetBlogPost failed: %v", err)
	}
	if got.ViewCount != n {
		t.Errorf("ViewCount = %d after %d increments", got.ViewCount, n)
	}
}

func TestDatabaseStore_Newsletter(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	sub, err := store.CreateSubscriber(ctx, CreateSubscriberParams{
		Email: "reader@example.com",
		Name:  strPtr("Reader"),
	})
	if err != nil {
		t.Fatalf("CreateSubscriber failed: %v", err)
	}
	if !sub.IsActive {
		t.Error("new subscriber should be active")
	}
	if sub.UnsubscribedAt != nil {
		t.Error("new subscriber should have nil UnsubscribedAt")
	}

	_, err = store.CreateSubscriber(ctx, CreateSubscriberParams{Email: "reader@example.com"})
	if !IsConflict(err) {
		t.Errorf("duplicate email error = %v, want ErrDuplicate", err)
	}

	ok, err := store.UnsubscribeByEmail(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("UnsubscribeByEmail failed: %v", err)
	}
	if !ok {
		t.Error("UnsubscribeByEmail returned false for active subscriber")
	}

	// Second unsubscribe is a no-op.
	ok, err = store.UnsubscribeByEmail(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("UnsubscribeByEmail failed: %v", err)
	}
	if ok {
		t.Error("UnsubscribeByEmail should return false for inactive subscriber")
	}

	got, err := store.GetSubscriberByEmail(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("GetSubscriberByEmail failed: %v", err)
	}
	if got.IsActive {
		t.Error("subscriber should be inactive after unsubscribe")
	}
	if got.UnsubscribedAt == nil {
		t.Error("UnsubscribedAt should be set after unsubscribe")
	}

	active, err := store.GetActiveSubscribers(ctx)
	if err != nil {
		t.Fatalf("GetActiveSubscribers failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("GetActiveSubscribers = %d entries, want 0", len(active))
	}
}

func TestDatabaseStore_Analytics(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	ev, err := store.TrackEvent(ctx, CreateAnalyticsEventParams{
		Type: "page_view",
		Path: strPtr("/projects"),
	})
	if err != nil {
		t.Fatalf("TrackEvent failed: %v", err)
	}
	if ev.Metadata == nil {
		t.Error("Metadata should be an empty map, not nil")
	}

	_, err = store.TrackEvent(ctx, CreateAnalyticsEventParams{
		Type: "contact_form",
	})
	if err != nil {
		t.Fatalf("TrackEvent failed: %v", err)
	}

	since := time.Now().Add(-time.Hour)
	all, err := store.GetAnalyticsEvents(ctx, since)
	if err != nil {
		t.Fatalf("GetAnalyticsEvents failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("GetAnalyticsEvents = %d entries, want 2", len(all))
	}

	views, err := store.GetAnalyticsEventsByType(ctx, "page_view", since)
	if err != nil {
		t.Fatalf("GetAnalyticsEventsByType failed: %v", err)
	}
	if len(views) != 1 {
		t.Errorf("GetAnalyticsEventsByType = %d entries, want 1", len(views))
	}

	count, err := store.CountAnalyticsEvents(ctx, "page_view", since)
	if err != nil {
		t.Fatalf("CountAnalyticsEvents failed: %v", err)
	}
	if count != 1 {
		t.Errorf("CountAnalyticsEvents = %d, want 1", count)
	}

	pruned, err := store.DeleteAnalyticsEventsBefore(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("DeleteAnalyticsEventsBefore failed: %v", err)
	}
	if pruned != 2 {
		t.Errorf("DeleteAnalyticsEventsBefore = %d, want 2", pruned)
	}
}

func TestDatabaseStore_AdminUserUnique(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	_, err := store.CreateAdminUser(ctx, CreateAdminUserParams{
		Username: "admin", Email: "admin@example.com", PasswordHash: "h",
	})
	if err != nil {
		t.Fatalf("CreateAdminUser failed: %v", err)
	}

	_, err = store.CreateAdminUser(ctx, CreateAdminUserParams{
		Username: "admin", Email: "other@example.com", PasswordHash: "h",
	})
	if !IsConflict(err) {
		t.Errorf("duplicate username error = %v, want ErrDuplicate", err)
	}

	got, err := store.GetAdminUserByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetAdminUserByUsername failed: %v", err)
	}
	if got == nil || got.Email != "admin@example.com" {
		t.Errorf("GetAdminUserByUsername = %v", got)
	}
}
