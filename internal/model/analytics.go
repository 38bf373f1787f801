// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Analytics event types
const (
	AnalyticsTypePageView    = "page_view"
	AnalyticsTypeContactForm = "contact_form"
	AnalyticsTypeProjectView = "project_view"
	AnalyticsTypeDownload    = "download"
)

// AnalyticsEvent represents one recorded event.
type AnalyticsEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Path      *string   `json:"path,omitempty"`
	UserAgent *string   `json:"user_agent,omitempty"`
	IP        *string   `json:"ip,omitempty"`
	Country   *string   `json:"country,omitempty"`
	Referrer  *string   `json:"referrer,omitempty"`
	SessionID *string   `json:"session_id,omitempty"`
	Metadata  Metadata  `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}

// IsValidAnalyticsType reports whether t is one of the known event types.
func IsValidAnalyticsType(t string) bool {
	switch t {
	case AnalyticsTypePageView, AnalyticsTypeContactForm,
		AnalyticsTypeProjectView, AnalyticsTypeDownload:
		return true
	}
	return false
}
