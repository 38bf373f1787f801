// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Testimonial represents a client review. Rating is an integer in [1,5].
type Testimonial struct {
	ID              string    `json:"id"`
	ClientName      string    `json:"client_name"`
	ClientNameEn    *string   `json:"client_name_en,omitempty"`
	ClientTitle     *string   `json:"client_title,omitempty"`
	ClientTitleEn   *string   `json:"client_title_en,omitempty"`
	ClientCompany   *string   `json:"client_company,omitempty"`
	ClientCompanyEn *string   `json:"client_company_en,omitempty"`
	Testimonial     string    `json:"testimonial"`
	TestimonialEn   *string   `json:"testimonial_en,omitempty"`
	Rating          int       `json:"rating"`
	ClientImage     *string   `json:"client_image,omitempty"`
	ProjectID       *string   `json:"project_id,omitempty"`
	IsPublished     bool      `json:"is_published"`
	IsFeatured      bool      `json:"is_featured"`
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
