// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/alqudimi/portfolio-go/internal/storage"
)

// staticProvider serves a fixed backend, standing in for the connection
// manager in tests.
type staticProvider struct {
	s storage.Storage
}

func (p staticProvider) Store() storage.Storage { return p.s }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupBlogService(t *testing.T) *BlogService {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// An in-memory SQLite database exists per connection.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := storage.Migrate(db, storage.DialectSQLite); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	store := storage.NewDatabaseStore(db)
	return NewBlogService(staticProvider{s: store}, testLogger())
}

func TestBlogService_CreateDerivesSlug(t *testing.T) {
	svc := setupBlogService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, storage.CreateBlogPostParams{
		Title:   "بناء الخدمات الخلفية بلغة Go",
		Content: "مقدمة في بناء الخدمات.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.Slug == "" {
		t.Fatal("expected a derived slug")
	}
	if strings.ContainsAny(post.Slug, " ءابتثجحخ") {
		t.Errorf("slug %q should be transliterated ASCII", post.Slug)
	}
	if post.ReadingTime == nil || *post.ReadingTime < 1 {
		t.Errorf("expected reading time >= 1, got %v", post.ReadingTime)
	}
}

func TestBlogService_SlugCollisionsGetSuffixed(t *testing.T) {
	svc := setupBlogService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, storage.CreateBlogPostParams{Title: "Go Tips", Content: "a"})
	if err != nil {
		t.Fatalf("Create first: %v", err)
	}
	second, err := svc.Create(ctx, storage.CreateBlogPostParams{Title: "Go Tips", Content: "b"})
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}
	if first.Slug != "go-tips" {
		t.Errorf("first slug = %q, want go-tips", first.Slug)
	}
	if second.Slug != "go-tips-2" {
		t.Errorf("second slug = %q, want go-tips-2", second.Slug)
	}

	// Updating a post to its own slug must not trigger a suffix.
	slug := "go-tips"
	updated, err := svc.Update(ctx, first.ID, storage.UpdateBlogPostParams{Slug: &slug})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Slug != "go-tips" {
		t.Errorf("self-update slug = %q, want go-tips", updated.Slug)
	}
}

func TestBlogService_PublishStampsTime(t *testing.T) {
	svc := setupBlogService(t)
	ctx := context.Background()

	published := true
	post, err := svc.Create(ctx, storage.CreateBlogPostParams{
		Title:       "Announcing",
		Content:     "hello",
		IsPublished: &published,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.PublishedAt == nil {
		t.Fatal("publishing without a timestamp should stamp published_at")
	}
	stamped := *post.PublishedAt

	// Re-publishing must keep the original timestamp.
	again, err := svc.Update(ctx, post.ID, storage.UpdateBlogPostParams{IsPublished: &published})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if again.PublishedAt == nil || !again.PublishedAt.Equal(stamped) {
		t.Errorf("published_at changed on re-publish: %v -> %v", stamped, again.PublishedAt)
	}
}

func TestBlogService_GetBySlugCountsViews(t *testing.T) {
	svc := setupBlogService(t)
	ctx := context.Background()

	published := true
	post, err := svc.Create(ctx, storage.CreateBlogPostParams{
		Title: "Counting", Content: "x", IsPublished: &published,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.GetBySlug(ctx, post.Slug); err != nil {
			t.Fatalf("GetBySlug: %v", err)
		}
	}
	got, err := svc.GetBySlug(ctx, post.Slug)
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ViewCount != 4 {
		t.Errorf("view count = %d, want 4", got.ViewCount)
	}
}

func TestBlogService_GetBySlugHidesDrafts(t *testing.T) {
	svc := setupBlogService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, storage.CreateBlogPostParams{Title: "Draft", Content: "wip"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := svc.GetBySlug(ctx, post.Slug)
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got != nil {
		t.Error("draft posts must not be served by slug")
	}
}

func TestBlogService_RenderSanitizes(t *testing.T) {
	svc := setupBlogService(t)
	ctx := context.Background()

	en := "# Heading\n\n<script>alert(1)</script>\n\nSome **bold** text."
	post, err := svc.Create(ctx, storage.CreateBlogPostParams{
		Title:     "عنوان",
		Content:   "نص **عريض** هنا.",
		ContentEn: &en,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rendered, err := svc.Render(post)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(rendered.HTML), "<strong>عريض</strong>") {
		t.Errorf("arabic bold not rendered: %s", rendered.HTML)
	}
	if strings.Contains(string(rendered.HTMLEn), "<script>") {
		t.Errorf("script tag survived sanitization: %s", rendered.HTMLEn)
	}
	if !strings.Contains(string(rendered.HTMLEn), "<strong>bold</strong>") {
		t.Errorf("english bold not rendered: %s", rendered.HTMLEn)
	}
}

func TestEstimateReadingTime(t *testing.T) {
	short := estimateReadingTime("hello world", nil)
	if short != 1 {
		t.Errorf("short content = %d minutes, want 1", short)
	}

	long := strings.Repeat("word ", 450)
	if got := estimateReadingTime(long, nil); got != 3 {
		t.Errorf("450 words = %d minutes, want 3", got)
	}

	// The longer variant wins.
	en := strings.Repeat("word ", 450)
	if got := estimateReadingTime("short", &en); got != 3 {
		t.Errorf("longer english variant = %d minutes, want 3", got)
	}
}
