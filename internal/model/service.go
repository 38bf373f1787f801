// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Service represents an offered service listing. The Arabic fields are
// primary; the *En counterparts are optional and the UI falls back to the
// primary value when they are absent, so nil must be preserved faithfully.
type Service struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	TitleEn       *string    `json:"title_en,omitempty"`
	Description   string     `json:"description"`
	DescriptionEn *string    `json:"description_en,omitempty"`
	Icon          string     `json:"icon"`
	Color         string     `json:"color"`
	Features      StringList `json:"features"`
	FeaturesEn    StringList `json:"features_en"`
	IsActive      bool       `json:"is_active"`
	Order         int        `json:"order"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
