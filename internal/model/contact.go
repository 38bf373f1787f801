// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Contact channel types
const (
	ContactTypeEmail   = "email"
	ContactTypePhone   = "phone"
	ContactTypeSocial  = "social"
	ContactTypeAddress = "address"
)

// Contact message statuses
const (
	MessageStatusUnread  = "unread"
	MessageStatusRead    = "read"
	MessageStatusReplied = "replied"
)

// ContactInfo represents a displayed contact channel.
type ContactInfo struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Label     string    `json:"label"`
	LabelEn   *string   `json:"label_en,omitempty"`
	Value     string    `json:"value"`
	Icon      *string   `json:"icon,omitempty"`
	URL       *string   `json:"url,omitempty"`
	IsPrimary bool      `json:"is_primary"`
	IsActive  bool      `json:"is_active"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactMessage represents a submitted inbound inquiry.
type ContactMessage struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     *string   `json:"subject,omitempty"`
	ServiceType *string   `json:"service_type,omitempty"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsUnread returns true if the message has not been read yet.
func (m *ContactMessage) IsUnread() bool {
	return m.Status == MessageStatusUnread
}
