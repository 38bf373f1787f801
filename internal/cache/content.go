// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"time"

	"github.com/alqudimi/portfolio-go/internal/model"
)

// Key prefixes for the public content caches. Admin writes invalidate by
// prefix so list and filtered variants go together.
const (
	KeyPrefixServices    = "content:services:"
	KeyPrefixProjects    = "content:projects:"
	KeyPrefixCv          = "content:cv:"
	KeyPrefixContactInfo = "content:contact:"
	KeyPrefixSettings    = "content:settings:"
)

// ContentCache caches the public read endpoints' payloads. The portfolio's
// content changes rarely and is read constantly, so even a short TTL keeps
// nearly every public request off the storage backend.
type ContentCache struct {
	backend Cacher

	services    *TypedCache[[]model.Service]
	projects    *TypedCache[[]model.Project]
	cv          *TypedCache[[]model.CvData]
	contactInfo *TypedCache[[]model.ContactInfo]
	settings    *TypedCache[[]model.SiteSetting]
}

// NewContentCache builds the typed caches over a shared backend.
func NewContentCache(backend Cacher, ttl time.Duration) *ContentCache {
	return &ContentCache{
		backend:     backend,
		services:    NewTypedCache[[]model.Service](backend, ttl),
		projects:    NewTypedCache[[]model.Project](backend, ttl),
		cv:          NewTypedCache[[]model.CvData](backend, ttl),
		contactInfo: NewTypedCache[[]model.ContactInfo](backend, ttl),
		settings:    NewTypedCache[[]model.SiteSetting](backend, ttl),
	}
}

// ActiveServices returns the cached active services, computing on miss.
func (c *ContentCache) ActiveServices(ctx context.Context, fetch func() ([]model.Service, error)) ([]model.Service, error) {
	out, err := c.services.GetOrSet(ctx, KeyPrefixServices+"active", func() (*[]model.Service, error) {
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// ActiveProjects returns the cached active projects, computing on miss.
func (c *ContentCache) ActiveProjects(ctx context.Context, fetch func() ([]model.Project, error)) ([]model.Project, error) {
	out, err := c.projects.GetOrSet(ctx, KeyPrefixProjects+"active", func() (*[]model.Project, error) {
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// FeaturedProjects returns the cached featured projects, computing on miss.
func (c *ContentCache) FeaturedProjects(ctx context.Context, fetch func() ([]model.Project, error)) ([]model.Project, error) {
	out, err := c.projects.GetOrSet(ctx, KeyPrefixProjects+"featured", func() (*[]model.Project, error) {
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// ActiveCvByType returns the cached cv entries for one section type.
func (c *ContentCache) ActiveCvByType(ctx context.Context, cvType string, fetch func() ([]model.CvData, error)) ([]model.CvData, error) {
	out, err := c.cv.GetOrSet(ctx, KeyPrefixCv+cvType, func() (*[]model.CvData, error) {
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// ActiveContactInfo returns the cached active contact channels.
func (c *ContentCache) ActiveContactInfo(ctx context.Context, fetch func() ([]model.ContactInfo, error)) ([]model.ContactInfo, error) {
	out, err := c.contactInfo.GetOrSet(ctx, KeyPrefixContactInfo+"active", func() (*[]model.ContactInfo, error) {
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// SiteSettings returns the cached settings list.
func (c *ContentCache) SiteSettings(ctx context.Context, fetch func() ([]model.SiteSetting, error)) ([]model.SiteSetting, error) {
	out, err := c.settings.GetOrSet(ctx, KeyPrefixSettings+"all", func() (*[]model.SiteSetting, error) {
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// InvalidateServices drops the cached service lists after an admin write.
func (c *ContentCache) InvalidateServices(ctx context.Context) {
	_ = c.backend.DeleteByPrefix(ctx, KeyPrefixServices)
}

// InvalidateProjects drops the cached project lists after an admin write.
func (c *ContentCache) InvalidateProjects(ctx context.Context) {
	_ = c.backend.DeleteByPrefix(ctx, KeyPrefixProjects)
}

// InvalidateCv drops the cached cv sections after an admin write.
func (c *ContentCache) InvalidateCv(ctx context.Context) {
	_ = c.backend.DeleteByPrefix(ctx, KeyPrefixCv)
}

// InvalidateContactInfo drops the cached contact channels after an admin write.
func (c *ContentCache) InvalidateContactInfo(ctx context.Context) {
	_ = c.backend.DeleteByPrefix(ctx, KeyPrefixContactInfo)
}

// InvalidateSettings drops the cached settings after an admin write.
func (c *ContentCache) InvalidateSettings(ctx context.Context) {
	_ = c.backend.DeleteByPrefix(ctx, KeyPrefixSettings)
}

// InvalidateAll drops every cached payload. Used when the storage manager
// switches backends so stale memory-era content never outlives the switch.
func (c *ContentCache) InvalidateAll(ctx context.Context) {
	_ = c.backend.DeleteByPrefix(ctx, "content:")
}
