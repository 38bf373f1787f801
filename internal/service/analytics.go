// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/mileusna/useragent"

	"github.com/alqudimi/portfolio-go/internal/geoip"
	"github.com/alqudimi/portfolio-go/internal/model"
	"github.com/alqudimi/portfolio-go/internal/storage"
)

// TrackInput carries the raw request facts for one analytics event.
// IP and UserAgent are enriched into country and browser metadata before
// the event is stored.
type TrackInput struct {
	Type      string
	Path      string
	Referrer  string
	SessionID string
	IP        string
	UserAgent string
	Metadata  model.Metadata
}

// Summary aggregates recent events for the admin dashboard.
type Summary struct {
	Since        time.Time      `json:"since"`
	Total        int64          `json:"total"`
	PageViews    int64          `json:"page_views"`
	ProjectViews int64          `json:"project_views"`
	ContactForms int64          `json:"contact_forms"`
	Downloads    int64          `json:"downloads"`
	TopPaths     []PathCount    `json:"top_paths"`
	TopCountries []CountryCount `json:"top_countries"`
}

// PathCount is one entry of a most-visited-paths ranking.
type PathCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}

// CountryCount is one entry of a visitors-by-country ranking. Name is
// localized for the requested language.
type CountryCount struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// topN caps ranking lengths in Summary.
const topN = 10

// AnalyticsService enriches and records visitor events and aggregates
// them for reporting. The memory backend does not persist events, so
// tracking degrades to a silent drop while the database is unavailable.
type AnalyticsService struct {
	stores        StoreProvider
	geo           *geoip.Resolver
	log           *slog.Logger
	retentionDays int
}

// NewAnalyticsService creates an AnalyticsService. geo may be nil when
// no GeoIP database is configured.
func NewAnalyticsService(stores StoreProvider, geo *geoip.Resolver, log *slog.Logger, retentionDays int) *AnalyticsService {
	return &AnalyticsService{stores: stores, geo: geo, log: log, retentionDays: retentionDays}
}

// Track validates, enriches and stores one event. Unknown event types are
// rejected; a backend that cannot persist events drops the event without
// error so public pages never fail on analytics.
func (s *AnalyticsService) Track(ctx context.Context, in TrackInput) error {
	if !model.IsValidAnalyticsType(in.Type) {
		return fmt.Errorf("unknown analytics event type %q", in.Type)
	}

	meta := model.Metadata{}
	for k, v := range in.Metadata {
		meta[k] = v
	}
	if in.UserAgent != "" {
		ua := useragent.Parse(in.UserAgent)
		meta["browser"] = ua.Name
		meta["os"] = ua.OS
		meta["device"] = deviceKind(ua)
		if ua.Bot {
			meta["bot"] = true
		}
	}

	params := storage.CreateAnalyticsEventParams{
		Type:     in.Type,
		Metadata: meta,
	}
	if in.Path != "" {
		params.Path = &in.Path
	}
	if in.UserAgent != "" {
		params.UserAgent = &in.UserAgent
	}
	if in.Referrer != "" {
		params.Referrer = &in.Referrer
	}
	if in.SessionID != "" {
		params.SessionID = &in.SessionID
	}
	if in.IP != "" {
		params.IP = &in.IP
		if s.geo != nil {
			if country := s.geo.Country(in.IP); country != "" {
				params.Country = &country
			}
		}
	}

	_, err := s.stores.Store().TrackEvent(ctx, params)
	if errors.Is(err, storage.ErrNotImplemented) {
		s.log.Debug("analytics event dropped, active backend does not persist events", "type", in.Type)
		return nil
	}
	return err
}

// Summarize aggregates events recorded in the last days days. lang
// selects "ar" or "en" country names.
func (s *AnalyticsService) Summarize(ctx context.Context, days int, lang string) (*Summary, error) {
	since := time.Now().AddDate(0, 0, -days)
	store := s.stores.Store()

	events, err := store.GetAnalyticsEvents(ctx, since)
	if err != nil {
		return nil, err
	}

	sum := &Summary{Since: since, Total: int64(len(events))}
	paths := make(map[string]int64)
	countries := make(map[string]int64)
	for _, ev := range events {
		switch ev.Type {
		case model.AnalyticsTypePageView:
			sum.PageViews++
		case model.AnalyticsTypeProjectView:
			sum.ProjectViews++
		case model.AnalyticsTypeContactForm:
			sum.ContactForms++
		case model.AnalyticsTypeDownload:
			sum.Downloads++
		}
		if ev.Path != nil {
			paths[*ev.Path]++
		}
		if ev.Country != nil {
			countries[*ev.Country]++
		}
	}

	sum.TopPaths = rankPaths(paths)
	sum.TopCountries = rankCountries(countries, lang)
	return sum, nil
}

// Prune deletes events older than the retention window and returns how
// many were removed. A backend without event storage prunes nothing.
func (s *AnalyticsService) Prune(ctx context.Context) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)
	n, err := s.stores.Store().DeleteAnalyticsEventsBefore(ctx, cutoff)
	if errors.Is(err, storage.ErrNotImplemented) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("pruned analytics events", "deleted", n, "cutoff", cutoff.Format(time.RFC3339))
	}
	return n, nil
}

func deviceKind(ua useragent.UserAgent) string {
	switch {
	case ua.Mobile:
		return "mobile"
	case ua.Tablet:
		return "tablet"
	case ua.Desktop:
		return "desktop"
	default:
		return "other"
	}
}

func rankPaths(counts map[string]int64) []PathCount {
	out := make([]PathCount, 0, len(counts))
	for p, n := range counts {
		out = append(out, PathCount{Path: p, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Path < out[j].Path
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

func rankCountries(counts map[string]int64, lang string) []CountryCount {
	out := make([]CountryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CountryCount{Code: c, Name: geoip.CountryName(c, lang), Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Code < out[j].Code
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
