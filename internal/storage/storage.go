// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

// Package storage implements the persistence core: one uniform contract
// over two interchangeable backends (relational database or in-memory),
// plus the initializer and the adaptive manager that picks between them.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/alqudimi/portfolio-go/internal/model"
)

// Error sentinels for the storage contract.
var (
	// ErrDuplicate indicates a unique-constraint violation (username, email,
	// slug, or setting key). It must surface to the caller, never be swallowed.
	ErrDuplicate = errors.New("duplicate unique field")

	// ErrNotImplemented is returned by the memory backend for entities it
	// intentionally does not support (blog, testimonials, newsletter,
	// analytics). Callers relying on those operations fail loudly rather
	// than losing data unnoticed.
	ErrNotImplemented = errors.New("not implemented in memory storage")
)

// IsConflict reports whether err represents a unique-constraint violation.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// Storage is the contract every backend implements. Route handlers call
// it without knowing which backend answers.
//
// Conventions:
//   - Lookups for a missing id return (nil, nil); deletes return (false, nil).
//     Only genuine failures produce a non-nil error.
//   - Updates are partial patches merged over the existing record with
//     UpdatedAt refreshed; a missing id yields (nil, nil).
//   - "Get many" results are explicitly ordered: Order ascending with ties
//     broken by creation order for display entities, CreatedAt descending
//     for feeds (messages, blog posts, subscribers, analytics).
//   - List-typed fields come back as empty lists, never nil.
type Storage interface {
	// Admin users
	GetAdminUser(ctx context.Context, id string) (*model.AdminUser, error)
	GetAdminUserByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	CreateAdminUser(ctx context.Context, params CreateAdminUserParams) (*model.AdminUser, error)
	UpdateAdminUser(ctx context.Context, id string, params UpdateAdminUserParams) (*model.AdminUser, error)

	// Services
	GetServices(ctx context.Context) ([]model.Service, error)
	GetActiveServices(ctx context.Context) ([]model.Service, error)
	GetService(ctx context.Context, id string) (*model.Service, error)
	CreateService(ctx context.Context, params CreateServiceParams) (*model.Service, error)
	UpdateService(ctx context.Context, id string, params UpdateServiceParams) (*model.Service, error)
	DeleteService(ctx context.Context, id string) (bool, error)

	// Projects
	GetProjects(ctx context.Context) ([]model.Project, error)
	GetActiveProjects(ctx context.Context) ([]model.Project, error)
	GetFeaturedProjects(ctx context.Context) ([]model.Project, error)
	GetProjectsByCategory(ctx context.Context, category string) ([]model.Project, error)
	GetProject(ctx context.Context, id string) (*model.Project, error)
	CreateProject(ctx context.Context, params CreateProjectParams) (*model.Project, error)
	UpdateProject(ctx context.Context, id string, params UpdateProjectParams) (*model.Project, error)
	DeleteProject(ctx context.Context, id string) (bool, error)

	// CV entries
	GetCvData(ctx context.Context) ([]model.CvData, error)
	GetActiveCvData(ctx context.Context) ([]model.CvData, error)
	GetCvDataByType(ctx context.Context, cvType string) ([]model.CvData, error)
	GetCvDataByID(ctx context.Context, id string) (*model.CvData, error)
	CreateCvData(ctx context.Context, params CreateCvDataParams) (*model.CvData, error)
	UpdateCvData(ctx context.Context, id string, params UpdateCvDataParams) (*model.CvData, error)
	DeleteCvData(ctx context.Context, id string) (bool, error)

	// Contact info
	GetContactInfo(ctx context.Context) ([]model.ContactInfo, error)
	GetActiveContactInfo(ctx context.Context) ([]model.ContactInfo, error)
	GetContactInfoByID(ctx context.Context, id string) (*model.ContactInfo, error)
	CreateContactInfo(ctx context.Context, params CreateContactInfoParams) (*model.ContactInfo, error)
	UpdateContactInfo(ctx context.Context, id string, params UpdateContactInfoParams) (*model.ContactInfo, error)
	DeleteContactInfo(ctx context.Context, id string) (bool, error)

	// Contact messages
	GetContactMessages(ctx context.Context) ([]model.ContactMessage, error)
	GetContactMessage(ctx context.Context, id string) (*model.ContactMessage, error)
	CreateContactMessage(ctx context.Context, params CreateContactMessageParams) (*model.ContactMessage, error)
	UpdateContactMessageStatus(ctx context.Context, id, status string) (*model.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id string) (bool, error)

	// Site settings
	GetSiteSettings(ctx context.Context) ([]model.SiteSetting, error)
	GetSiteSettingByKey(ctx context.Context, key string) (*model.SiteSetting, error)
	CreateSiteSetting(ctx context.Context, params CreateSiteSettingParams) (*model.SiteSetting, error)
	UpdateSiteSettingByKey(ctx context.Context, key, value string) (*model.SiteSetting, error)
	DeleteSiteSetting(ctx context.Context, id string) (bool, error)

	// Blog posts
	GetBlogPosts(ctx context.Context) ([]model.BlogPost, error)
	GetPublishedBlogPosts(ctx context.Context) ([]model.BlogPost, error)
	GetFeaturedBlogPosts(ctx context.Context) ([]model.BlogPost, error)
	GetBlogPost(ctx context.Context, id string) (*model.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	CreateBlogPost(ctx context.Context, params CreateBlogPostParams) (*model.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id string, params UpdateBlogPostParams) (*model.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id string) (bool, error)
	// IncrementBlogPostViews bumps the view counter atomically so concurrent
	// requests never lose an update.
	IncrementBlogPostViews(ctx context.Context, id string) error

	// Testimonials
	GetTestimonials(ctx context.Context) ([]model.Testimonial, error)
	GetPublishedTestimonials(ctx context.Context) ([]model.Testimonial, error)
	GetFeaturedTestimonials(ctx context.Context) ([]model.Testimonial, error)
	GetTestimonialsByProject(ctx context.Context, projectID string) ([]model.Testimonial, error)
	GetTestimonial(ctx context.Context, id string) (*model.Testimonial, error)
	CreateTestimonial(ctx context.Context, params CreateTestimonialParams) (*model.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, params UpdateTestimonialParams) (*model.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) (bool, error)

	// Newsletter subscribers
	GetSubscribers(ctx context.Context) ([]model.NewsletterSubscriber, error)
	GetActiveSubscribers(ctx context.Context) ([]model.NewsletterSubscriber, error)
	GetSubscriberByEmail(ctx context.Context, email string) (*model.NewsletterSubscriber, error)
	CreateSubscriber(ctx context.Context, params CreateSubscriberParams) (*model.NewsletterSubscriber, error)
	UnsubscribeByEmail(ctx context.Context, email string) (bool, error)
	DeleteSubscriber(ctx context.Context, id string) (bool, error)

	// Analytics
	TrackEvent(ctx context.Context, params CreateAnalyticsEventParams) (*model.AnalyticsEvent, error)
	GetAnalyticsEvents(ctx context.Context, since time.Time) ([]model.AnalyticsEvent, error)
	GetAnalyticsEventsByType(ctx context.Context, eventType string, since time.Time) ([]model.AnalyticsEvent, error)
	CountAnalyticsEvents(ctx context.Context, eventType string, since time.Time) (int64, error)
	DeleteAnalyticsEventsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
