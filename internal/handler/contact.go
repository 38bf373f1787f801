// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/alqudimi/portfolio-go/internal/middleware"
	"github.com/alqudimi/portfolio-go/internal/model"
	"github.com/alqudimi/portfolio-go/internal/service"
	"github.com/alqudimi/portfolio-go/internal/storage"
)

// ContactMessageRequest is the public contact form body.
type ContactMessageRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Subject     *string `json:"subject,omitempty"`
	ServiceType *string `json:"service_type,omitempty"`
	Message     string  `json:"message"`
}

func (req *ContactMessageRequest) validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "name is required"
	}
	if !isPlausibleEmail(req.Email) {
		errs["email"] = "a valid email address is required"
	}
	if strings.TrimSpace(req.Message) == "" {
		errs["message"] = "message is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// isPlausibleEmail does a shape check only. Real validation happens when
// a reply is sent; rejecting aggressively here just loses inquiries.
func isPlausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t\n")
}

// SubmitContactMessage handles POST /api/contact.
func (h *Handler) SubmitContactMessage(w http.ResponseWriter, r *http.Request) {
	var req ContactMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.validate(); errs != nil {
		WriteValidationError(w, errs)
		return
	}

	msg, err := h.store().CreateContactMessage(r.Context(), storage.CreateContactMessageParams{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Subject:     req.Subject,
		ServiceType: req.ServiceType,
		Message:     req.Message,
	})
	if err != nil {
		h.writeStoreError(w, "submit message", err)
		return
	}

	h.trackRequest(r, model.AnalyticsTypeContactForm, nil)
	WriteCreated(w, msg)
}

// trackRequest records an analytics event for the current request,
// best-effort.
func (h *Handler) trackRequest(r *http.Request, eventType string, meta model.Metadata) {
	if h.analytics == nil {
		return
	}
	err := h.analytics.Track(r.Context(), service.TrackInput{
		Type:      eventType,
		Path:      r.URL.Path,
		Referrer:  r.Referer(),
		IP:        middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
		Metadata:  meta,
	})
	if err != nil {
		h.log.Warn("failed to track analytics event", "type", eventType, "error", err)
	}
}

// ListContactInfo handles GET /api/contact-info (active channels, cached).
func (h *Handler) ListContactInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.content.ActiveContactInfo(r.Context(), func() ([]model.ContactInfo, error) {
		return h.store().GetActiveContactInfo(r.Context())
	})
	if err != nil {
		h.writeStoreError(w, "list contact info", err)
		return
	}
	WriteList(w, info)
}

// CreateContactInfoRequest is the request body for creating a contact
// channel.
type CreateContactInfoRequest struct {
	Type      string  `json:"type"`
	Label     string  `json:"label"`
	LabelEn   *string `json:"label_en,omitempty"`
	Value     string  `json:"value"`
	Icon      *string `json:"icon,omitempty"`
	URL       *string `json:"url,omitempty"`
	IsPrimary *bool   `json:"is_primary,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
	Order     *int    `json:"order,omitempty"`
}

// UpdateContactInfoRequest is the request body for patching a contact
// channel.
type UpdateContactInfoRequest struct {
	Type      *string `json:"type,omitempty"`
	Label     *string `json:"label,omitempty"`
	LabelEn   *string `json:"label_en,omitempty"`
	Value     *string `json:"value,omitempty"`
	Icon      *string `json:"icon,omitempty"`
	URL       *string `json:"url,omitempty"`
	IsPrimary *bool   `json:"is_primary,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
	Order     *int    `json:"order,omitempty"`
}

// AdminListContactInfo handles GET /api/admin/contact-info.
func (h *Handler) AdminListContactInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.store().GetContactInfo(r.Context())
	if err != nil {
		h.writeStoreError(w, "list contact info", err)
		return
	}
	WriteList(w, info)
}

// AdminCreateContactInfo handles POST /api/admin/contact-info.
func (h *Handler) AdminCreateContactInfo(w http.ResponseWriter, r *http.Request) {
	var req CreateContactInfoRequest
	if !decodeBody(w, r, &req) {
		return
	}
	errs := make(map[string]string)
	if strings.TrimSpace(req.Label) == "" {
		errs["label"] = "label is required"
	}
	if strings.TrimSpace(req.Value) == "" {
		errs["value"] = "value is required"
	}
	if len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	info, err := h.store().CreateContactInfo(r.Context(), storage.CreateContactInfoParams{
		Type:      req.Type,
		Label:     req.Label,
		LabelEn:   req.LabelEn,
		Value:     req.Value,
		Icon:      req.Icon,
		URL:       req.URL,
		IsPrimary: req.IsPrimary,
		IsActive:  req.IsActive,
		Order:     req.Order,
	})
	if err != nil {
		h.writeStoreError(w, "create contact info", err)
		return
	}
	h.content.InvalidateContactInfo(r.Context())
	WriteCreated(w, info)
}

// AdminUpdateContactInfo handles PUT /api/admin/contact-info/{id}.
func (h *Handler) AdminUpdateContactInfo(w http.ResponseWriter, r *http.Request) {
	var req UpdateContactInfoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	info, err := h.store().UpdateContactInfo(r.Context(), chi.URLParam(r, "id"), storage.UpdateContactInfoParams{
		Type:      req.Type,
		Label:     req.Label,
		LabelEn:   req.LabelEn,
		Value:     req.Value,
		Icon:      req.Icon,
		URL:       req.URL,
		IsPrimary: req.IsPrimary,
		IsActive:  req.IsActive,
		Order:     req.Order,
	})
	if err != nil {
		h.writeStoreError(w, "update contact info", err)
		return
	}
	if info == nil {
		WriteNotFound(w, "Contact channel not found")
		return
	}
	h.content.InvalidateContactInfo(r.Context())
	WriteSuccess(w, info, nil)
}

// AdminDeleteContactInfo handles DELETE /api/admin/contact-info/{id}.
func (h *Handler) AdminDeleteContactInfo(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store().DeleteContactInfo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "delete contact info", err)
		return
	}
	if !deleted {
		WriteNotFound(w, "Contact channel not found")
		return
	}
	h.content.InvalidateContactInfo(r.Context())
	WriteJSON(w, http.StatusOK, Response{Data: map[string]bool{"deleted": true}})
}

// AdminListMessages handles GET /api/admin/messages (newest first).
func (h *Handler) AdminListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.store().GetContactMessages(r.Context())
	if err != nil {
		h.writeStoreError(w, "list messages", err)
		return
	}
	WriteList(w, messages)
}

// AdminGetMessage handles GET /api/admin/messages/{id}.
func (h *Handler) AdminGetMessage(w http.ResponseWriter, r *http.Request) {
	msg, err := h.store().GetContactMessage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "get message", err)
		return
	}
	if msg == nil {
		WriteNotFound(w, "Message not found")
		return
	}
	WriteSuccess(w, msg, nil)
}

// UpdateMessageStatusRequest is the body for PATCH /api/admin/messages/{id}.
type UpdateMessageStatusRequest struct {
	Status string `json:"status"`
}

// AdminUpdateMessageStatus handles PATCH /api/admin/messages/{id}.
func (h *Handler) AdminUpdateMessageStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateMessageStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	switch req.Status {
	case model.MessageStatusUnread, model.MessageStatusRead, model.MessageStatusReplied:
	default:
		WriteValidationError(w, map[string]string{"status": "status must be unread, read or replied"})
		return
	}

	msg, err := h.store().UpdateContactMessageStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.writeStoreError(w, "update message", err)
		return
	}
	if msg == nil {
		WriteNotFound(w, "Message not found")
		return
	}
	WriteSuccess(w, msg, nil)
}

// AdminDeleteMessage handles DELETE /api/admin/messages/{id}.
func (h *Handler) AdminDeleteMessage(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store().DeleteContactMessage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, "delete message", err)
		return
	}
	if !deleted {
		WriteNotFound(w, "Message not found")
		return
	}
	WriteJSON(w, http.StatusOK, Response{Data: map[string]bool{"deleted": true}})
}
