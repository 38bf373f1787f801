// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides business logic on top of the storage facade.
package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/alqudimi/portfolio-go/internal/model"
	"github.com/alqudimi/portfolio-go/internal/storage"
	"github.com/alqudimi/portfolio-go/internal/util"
)

// StoreProvider hands out the currently active storage backend. The
// connection manager satisfies this; services must not hold a backend
// directly because the active one can change after a reconnection.
type StoreProvider interface {
	Store() storage.Storage
}

// htmlSanitizer strips dangerous markup (scripts, event handlers) from
// rendered post content while keeping the usual article tags.
var htmlSanitizer = bluemonday.UGCPolicy()

// markdown renders GitHub-flavored markdown. Arabic text passes through
// untouched since goldmark is byte-oriented.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// wordsPerMinute is the reading-speed assumption behind reading-time
// estimates. Applied to whichever content variant is longer.
const wordsPerMinute = 200

// maxSlugAttempts bounds the -2, -3, ... suffix search for a free slug.
const maxSlugAttempts = 50

// RenderedPost is a blog post with its markdown content converted to
// sanitized HTML, ready for embedding in a page.
type RenderedPost struct {
	model.BlogPost
	HTML   template.HTML `json:"html"`
	HTMLEn template.HTML `json:"html_en,omitempty"`
}

// BlogService owns slug assignment, reading-time estimation and markdown
// rendering for blog posts. Persistence goes through whatever backend the
// provider currently serves.
type BlogService struct {
	stores StoreProvider
	log    *slog.Logger
}

// NewBlogService creates a BlogService.
func NewBlogService(stores StoreProvider, log *slog.Logger) *BlogService {
	return &BlogService{stores: stores, log: log}
}

// Create stores a new post. An empty slug is derived from the title by
// transliteration; either way the slug is made unique by suffixing a
// counter. Reading time is estimated from the content when not supplied,
// and publishing without an explicit timestamp stamps the current time.
func (s *BlogService) Create(ctx context.Context, params storage.CreateBlogPostParams) (*model.BlogPost, error) {
	base := params.Slug
	if base == "" {
		base = util.Slugify(params.Title)
	} else {
		base = util.Slugify(base)
	}
	if base == "" {
		return nil, fmt.Errorf("cannot derive a slug from title %q", params.Title)
	}

	slug, err := s.freeSlug(ctx, base, "")
	if err != nil {
		return nil, err
	}
	params.Slug = slug

	if params.ReadingTime == nil {
		rt := estimateReadingTime(params.Content, params.ContentEn)
		params.ReadingTime = &rt
	}
	if params.IsPublished != nil && *params.IsPublished && params.PublishedAt == nil {
		now := time.Now()
		params.PublishedAt = &now
	}

	post, err := s.stores.Store().CreateBlogPost(ctx, params)
	if err != nil {
		return nil, err
	}
	s.log.Info("blog post created", "id", post.ID, "slug", post.Slug)
	return post, nil
}

// Update patches a post. A supplied slug is re-slugified and kept unique
// against every other post; content changes re-estimate reading time
// unless the caller pinned one. Flipping is_published on stamps
// published_at when the post never had one.
func (s *BlogService) Update(ctx context.Context, id string, params storage.UpdateBlogPostParams) (*model.BlogPost, error) {
	current, err := s.stores.Store().GetBlogPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	if params.Slug != nil {
		base := util.Slugify(*params.Slug)
		if base == "" {
			return nil, fmt.Errorf("invalid slug %q", *params.Slug)
		}
		slug, err := s.freeSlug(ctx, base, id)
		if err != nil {
			return nil, err
		}
		params.Slug = &slug
	}

	if params.Content != nil && params.ReadingTime == nil {
		contentEn := current.ContentEn
		if params.ContentEn != nil {
			contentEn = params.ContentEn
		}
		rt := estimateReadingTime(*params.Content, contentEn)
		params.ReadingTime = &rt
	}

	if params.IsPublished != nil && *params.IsPublished &&
		params.PublishedAt == nil && current.PublishedAt == nil {
		now := time.Now()
		params.PublishedAt = &now
	}

	return s.stores.Store().UpdateBlogPost(ctx, id, params)
}

// GetBySlug returns a published post and records the view. The counter
// bump is best-effort; a failed increment never hides the post.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	post, err := s.stores.Store().GetBlogPostBySlug(ctx, slug)
	if err != nil || post == nil {
		return post, err
	}
	if !post.IsPublished {
		return nil, nil
	}
	if err := s.stores.Store().IncrementBlogPostViews(ctx, post.ID); err != nil {
		s.log.Warn("failed to record blog post view", "id", post.ID, "error", err)
	} else {
		post.ViewCount++
	}
	return post, nil
}

// Render converts a post's markdown bodies to sanitized HTML.
func (s *BlogService) Render(post *model.BlogPost) (*RenderedPost, error) {
	html, err := renderMarkdown(post.Content)
	if err != nil {
		return nil, fmt.Errorf("rendering post %s: %w", post.ID, err)
	}
	out := &RenderedPost{BlogPost: *post, HTML: html}
	if post.ContentEn != nil && *post.ContentEn != "" {
		htmlEn, err := renderMarkdown(*post.ContentEn)
		if err != nil {
			return nil, fmt.Errorf("rendering post %s (en): %w", post.ID, err)
		}
		out.HTMLEn = htmlEn
	}
	return out, nil
}

// freeSlug returns base or base-2, base-3, ... — the first variant not
// used by any post other than excludeID.
func (s *BlogService) freeSlug(ctx context.Context, base, excludeID string) (string, error) {
	slug := base
	for i := 2; i <= maxSlugAttempts; i++ {
		existing, err := s.stores.Store().GetBlogPostBySlug(ctx, slug)
		if err != nil {
			return "", err
		}
		if existing == nil || existing.ID == excludeID {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("no free slug for %q after %d attempts", base, maxSlugAttempts)
}

func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(htmlSanitizer.SanitizeBytes(buf.Bytes())), nil
}

// estimateReadingTime returns whole minutes, at least 1, for the longer
// of the two language variants. Arabic has no spaces inside words, so
// Fields-based counting works for both scripts.
func estimateReadingTime(content string, contentEn *string) int {
	words := countWords(content)
	if contentEn != nil {
		if en := countWords(*contentEn); en > words {
			words = en
		}
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func countWords(s string) int {
	if !utf8.ValidString(s) {
		return 0
	}
	return len(strings.Fields(s))
}
