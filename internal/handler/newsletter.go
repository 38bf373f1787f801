// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/alqudimi/portfolio-go/internal/model"
	"github.com/alqudimi/portfolio-go/internal/storage"
)

// SubscribeRequest is the body for POST /api/newsletter/subscribe.
type SubscribeRequest struct {
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

// Subscribe handles POST /api/newsletter/subscribe. Re-subscribing an
// address that already exists answers 409; the frontend treats that as
// "you are already subscribed".
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !isPlausibleEmail(email) {
		WriteValidationError(w, map[string]string{"email": "a valid email address is required"})
		return
	}

	sub, err := h.store().CreateSubscriber(r.Context(), storage.CreateSubscriberParams{
		Email: email,
		Name:  req.Name,
	})
	if err != nil {
		h.writeStoreError(w, "subscribe", err)
		return
	}
	WriteCreated(w, sub)
}

// UnsubscribeRequest is the body for POST /api/newsletter/unsubscribe.
type UnsubscribeRequest struct {
	Email string `json:"email"`
}

// Unsubscribe handles POST /api/newsletter/unsubscribe. The subscriber
// row is kept with is_active lowered; an unknown or already inactive
// address answers 404.
func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req UnsubscribeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		WriteValidationError(w, map[string]string{"email": "email is required"})
		return
	}

	done, err := h.store().UnsubscribeByEmail(r.Context(), email)
	if err != nil {
		h.writeStoreError(w, "unsubscribe", err)
		return
	}
	if !done {
		WriteNotFound(w, "No active subscription for this address")
		return
	}
	WriteSuccess(w, map[string]bool{"unsubscribed": true}, nil)
}

// AdminListSubscribers handles GET /api/admin/subscribers.
// ?active=true narrows to current subscribers.
func (h *Handler) AdminListSubscribers(w http.ResponseWriter, r *http.Request) {
	var (
		subs []model.NewsletterSubscriber
		err  error
	)
	if r.URL.Query().Get("active") == "true" {
		subs, err = h.store().GetActiveSubscribers(r.Context())
	} else {
		subs, err = h.store().GetSubscribers(r.Context())
	}
	if err != nil {
		h.writeStoreError(w, "list subscribers", err)
		return
	}
	WriteList(w, subs)
}

// AdminDeleteSubscriber handles DELETE /api/admin/subscribers/{id}:
// a hard delete for data removal requests, unlike public unsubscribe.
func (h *Handler) AdminDeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store().DeleteSubscriber(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "delete subscriber", err)
		return
	}
	if !deleted {
		WriteNotFound(w, "Subscriber not found")
		return
	}
	WriteJSON(w, http.StatusOK, Response{Data: map[string]bool{"deleted": true}})
}
