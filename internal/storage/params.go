// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"time"

	"github.com/alqudimi/portfolio-go/internal/model"
)

// Create* params are the validated insertable subsets of each entity:
// everything the caller supplies, excluding server-assigned fields
// (id, created_at, updated_at). Optional columns are pointers so absent
// values are stored as NULL rather than empty strings.
//
// Update* params are partial patches. Only non-nil fields are applied;
// UpdatedAt is always refreshed by the backend.

// CreateAdminUserParams holds the insertable fields of an admin user.
// PasswordHash must already be hashed; backends never see plaintext.
type CreateAdminUserParams struct {
	Username     string
	PasswordHash string
	Email        string
}

// UpdateAdminUserParams is a partial admin user patch.
type UpdateAdminUserParams struct {
	Username     *string
	PasswordHash *string
	Email        *string
}

// CreateServiceParams holds the insertable fields of a service.
type CreateServiceParams struct {
	Title         string
	TitleEn       *string
	Description   string
	DescriptionEn *string
	Icon          string
	Color         string
	Features      model.StringList
	FeaturesEn    model.StringList
	IsActive      *bool // defaults to true
	Order         *int  // defaults to 0
}

// UpdateServiceParams is a partial service patch.
type UpdateServiceParams struct {
	Title         *string
	TitleEn       *string
	Description   *string
	DescriptionEn *string
	Icon          *string
	Color         *string
	Features      model.StringList
	FeaturesEn    model.StringList
	IsActive      *bool
	Order         *int
}

// CreateProjectParams holds the insertable fields of a project.
type CreateProjectParams struct {
	Title              string
	TitleEn            *string
	Description        string
	DescriptionEn      *string
	ShortDescription   *string
	ShortDescriptionEn *string
	Technologies       model.StringList
	Images             model.StringList
	LiveURL            *string
	GithubURL          *string
	Category           string
	IsActive           *bool
	IsFeatured         *bool
	Order              *int
}

// UpdateProjectParams is a partial project patch.
type UpdateProjectParams struct {
	Title              *string
	TitleEn            *string
	Description        *string
	DescriptionEn      *string
	ShortDescription   *string
	ShortDescriptionEn *string
	Technologies       model.StringList
	Images             model.StringList
	LiveURL            *string
	GithubURL          *string
	Category           *string
	IsActive           *bool
	IsFeatured         *bool
	Order              *int
}

// CreateCvDataParams holds the insertable fields of a CV entry.
type CreateCvDataParams struct {
	Type          string
	Title         string
	TitleEn       *string
	Subtitle      *string
	SubtitleEn    *string
	Description   *string
	DescriptionEn *string
	StartDate     *string
	EndDate       *string
	Location      *string
	LocationEn    *string
	Skills        model.StringList
	Level         *int
	URL           *string
	Icon          *string
	IsActive      *bool
	Order         *int
}

// UpdateCvDataParams is a partial CV entry patch. Type is immutable.
type UpdateCvDataParams struct {
	Title         *string
	TitleEn       *string
	Subtitle      *string
	SubtitleEn    *string
	Description   *string
	DescriptionEn *string
	StartDate     *string
	EndDate       *string
	Location      *string
	LocationEn    *string
	Skills        model.StringList
	Level         *int
	URL           *string
	Icon          *string
	IsActive      *bool
	Order         *int
}

// CreateContactInfoParams holds the insertable fields of a contact channel.
type CreateContactInfoParams struct {
	Type      string
	Label     string
	LabelEn   *string
	Value     string
	Icon      *string
	URL       *string
	IsPrimary *bool
	IsActive  *bool
	Order     *int
}

// UpdateContactInfoParams is a partial contact channel patch.
type UpdateContactInfoParams struct {
	Type      *string
	Label     *string
	LabelEn   *string
	Value     *string
	Icon      *string
	URL       *string
	IsPrimary *bool
	IsActive  *bool
	Order     *int
}

// CreateContactMessageParams holds the insertable fields of an inquiry.
// Status always starts as unread.
type CreateContactMessageParams struct {
	Name        string
	Email       string
	Subject     *string
	ServiceType *string
	Message     string
}

// CreateSiteSettingParams holds the insertable fields of a setting.
type CreateSiteSettingParams struct {
	Key      string
	Value    string
	Type     string
	Category string
}

// CreateBlogPostParams holds the insertable fields of a blog post.
type CreateBlogPostParams struct {
	Title       string
	TitleEn     *string
	Slug        string
	Content     string
	ContentEn   *string
	Excerpt     *string
	ExcerptEn   *string
	Tags        model.StringList
	TagsEn      model.StringList
	Category    *string
	CategoryEn  *string
	IsPublished *bool
	IsFeatured  *bool
	PublishedAt *time.Time
	ReadingTime *int
	AuthorID    *string
}

// UpdateBlogPostParams is a partial blog post patch. ViewCount is only
// mutated through IncrementBlogPostViews.
type UpdateBlogPostParams struct {
	Title       *string
	TitleEn     *string
	Slug        *string
	Content     *string
	ContentEn   *string
	Excerpt     *string
	ExcerptEn   *string
	Tags        model.StringList
	TagsEn      model.StringList
	Category    *string
	CategoryEn  *string
	IsPublished *bool
	IsFeatured  *bool
	PublishedAt *time.Time
	ReadingTime *int
	AuthorID    *string
}

// CreateTestimonialParams holds the insertable fields of a testimonial.
type CreateTestimonialParams struct {
	ClientName      string
	ClientNameEn    *string
	ClientTitle     *string
	ClientTitleEn   *string
	ClientCompany   *string
	ClientCompanyEn *string
	Testimonial     string
	TestimonialEn   *string
	Rating          int
	ClientImage     *string
	ProjectID       *string
	IsPublished     *bool
	IsFeatured      *bool
	Order           *int
}

// UpdateTestimonialParams is a partial testimonial patch.
type UpdateTestimonialParams struct {
	ClientName      *string
	ClientNameEn    *string
	ClientTitle     *string
	ClientTitleEn   *string
	ClientCompany   *string
	ClientCompanyEn *string
	Testimonial     *string
	TestimonialEn   *string
	Rating          *int
	ClientImage     *string
	ProjectID       *string
	IsPublished     *bool
	IsFeatured      *bool
	Order           *int
}

// CreateSubscriberParams holds the insertable fields of a subscriber.
type CreateSubscriberParams struct {
	Email string
	Name  *string
}

// CreateAnalyticsEventParams holds the insertable fields of an event.
type CreateAnalyticsEventParams struct {
	Type      string
	Path      *string
	UserAgent *string
	IP        *string
	Country   *string
	Referrer  *string
	SessionID *string
	Metadata  model.Metadata
}
