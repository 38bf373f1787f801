// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Project represents a portfolio project.
type Project struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	TitleEn            *string    `json:"title_en,omitempty"`
	Description        string     `json:"description"`
	DescriptionEn      *string    `json:"description_en,omitempty"`
	ShortDescription   *string    `json:"short_description,omitempty"`
	ShortDescriptionEn *string    `json:"short_description_en,omitempty"`
	Technologies       StringList `json:"technologies"`
	Images             StringList `json:"images"`
	LiveURL            *string    `json:"live_url,omitempty"`
	GithubURL          *string    `json:"github_url,omitempty"`
	Category           string     `json:"category"`
	IsActive           bool       `json:"is_active"`
	IsFeatured         bool       `json:"is_featured"`
	Order              int        `json:"order"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
