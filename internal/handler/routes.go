// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/alqudimi/portfolio-go/internal/middleware"
)

// requestTimeout bounds every request; storage calls inherit it through
// the request context.
const requestTimeout = 30 * time.Second

// Routes assembles the API router: public read endpoints, rate-limited
// public write endpoints, and the token-protected admin surface.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(h.cfg.IsDevelopment())))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Language())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Get("/services", h.ListServices)
		r.Get("/projects", h.ListProjects)
		r.Get("/projects/{id}", h.GetProject)
		r.Get("/cv", h.GetCv)
		r.Get("/cv/{type}", h.GetCvByType)
		r.Get("/contact-info", h.ListContactInfo)
		r.Get("/settings", h.ListSettings)
		r.Get("/blog", h.ListBlogPosts)
		r.Get("/blog/{slug}", h.GetBlogPost)
		r.Get("/testimonials", h.ListTestimonials)

		// Public write endpoints share one per-IP rate limit.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(h.cfg.RateLimitPerMinute))
			r.Post("/contact", h.SubmitContactMessage)
			r.Post("/newsletter/subscribe", h.Subscribe)
			r.Post("/newsletter/unsubscribe", h.Unsubscribe)
			r.Post("/analytics/track", h.TrackEvent)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.BearerAuth(h.cfg.APIToken))

			r.Get("/diagnostics", h.Diagnostics)
			r.Post("/reconnect", h.Reconnect)

			r.Get("/services", h.AdminListServices)
			r.Post("/services", h.AdminCreateService)
			r.Get("/services/{id}", h.AdminGetService)
			r.Put("/services/{id}", h.AdminUpdateService)
			r.Delete("/services/{id}", h.AdminDeleteService)

			r.Get("/projects", h.AdminListProjects)
			r.Post("/projects", h.AdminCreateProject)
			r.Get("/projects/{id}", h.AdminGetProject)
			r.Put("/projects/{id}", h.AdminUpdateProject)
			r.Delete("/projects/{id}", h.AdminDeleteProject)

			r.Get("/cv", h.AdminListCv)
			r.Post("/cv", h.AdminCreateCvEntry)
			r.Get("/cv/{id}", h.AdminGetCvEntry)
			r.Put("/cv/{id}", h.AdminUpdateCvEntry)
			r.Delete("/cv/{id}", h.AdminDeleteCvEntry)

			r.Get("/contact-info", h.AdminListContactInfo)
			r.Post("/contact-info", h.AdminCreateContactInfo)
			r.Put("/contact-info/{id}", h.AdminUpdateContactInfo)
			r.Delete("/contact-info/{id}", h.AdminDeleteContactInfo)

			r.Get("/messages", h.AdminListMessages)
			r.Get("/messages/{id}", h.AdminGetMessage)
			r.Patch("/messages/{id}", h.AdminUpdateMessageStatus)
			r.Delete("/messages/{id}", h.AdminDeleteMessage)

			r.Get("/settings", h.AdminListSettings)
			r.Post("/settings", h.AdminCreateSetting)
			r.Put("/settings/{key}", h.AdminUpdateSetting)
			r.Delete("/settings/{id}", h.AdminDeleteSetting)

			r.Get("/blog", h.AdminListBlogPosts)
			r.Post("/blog", h.AdminCreateBlogPost)
			r.Get("/blog/{id}", h.AdminGetBlogPost)
			r.Put("/blog/{id}", h.AdminUpdateBlogPost)
			r.Delete("/blog/{id}", h.AdminDeleteBlogPost)

			r.Get("/testimonials", h.AdminListTestimonials)
			r.Post("/testimonials", h.AdminCreateTestimonial)
			r.Get("/testimonials/{id}", h.AdminGetTestimonial)
			r.Put("/testimonials/{id}", h.AdminUpdateTestimonial)
			r.Delete("/testimonials/{id}", h.AdminDeleteTestimonial)

			r.Get("/subscribers", h.AdminListSubscribers)
			r.Delete("/subscribers/{id}", h.AdminDeleteSubscriber)

			r.Get("/analytics/summary", h.AdminAnalyticsSummary)
		})
	})

	return r
}
