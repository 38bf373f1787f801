// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Setting value types
const (
	SettingTypeString = "string"
	SettingTypeInt    = "int"
	SettingTypeBool   = "bool"
	SettingTypeJSON   = "json"
)

// Setting categories
const (
	SettingCategoryGeneral = "general"
	SettingCategorySEO     = "seo"
	SettingCategorySocial  = "social"
)

// Well-known setting keys
const (
	SettingKeySiteName        = "site_name"
	SettingKeySiteDescription = "site_description"
	SettingKeyDefaultLanguage = "default_language"
	SettingKeyPostsPerPage    = "posts_per_page"
)

// SiteSetting represents a keyed configuration value. Value is a string
// interpreted by the caller according to Type; the storage core never
// looks inside it.
type SiteSetting struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
