// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// BlogPost represents an article. Slug is unique across all posts.
// ViewCount is a monotonic counter incremented atomically by the backend.
type BlogPost struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	TitleEn     *string    `json:"title_en,omitempty"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	ContentEn   *string    `json:"content_en,omitempty"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	ExcerptEn   *string    `json:"excerpt_en,omitempty"`
	Tags        StringList `json:"tags"`
	TagsEn      StringList `json:"tags_en"`
	Category    *string    `json:"category,omitempty"`
	CategoryEn  *string    `json:"category_en,omitempty"`
	IsPublished bool       `json:"is_published"`
	IsFeatured  bool       `json:"is_featured"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	ViewCount   int64      `json:"view_count"`
	ReadingTime *int       `json:"reading_time,omitempty"`
	AuthorID    *string    `json:"author_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
