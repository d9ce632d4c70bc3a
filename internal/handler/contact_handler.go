package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mvicsa/portfolio-backend/internal/model"
	"github.com/mvicsa/portfolio-backend/internal/ratelimit"
	"github.com/mvicsa/portfolio-backend/internal/repository"
	"github.com/mvicsa/portfolio-backend/internal/service"
)

// ContactHandler handles contact form submission, the internal notify
// endpoint and admin triage.
type ContactHandler struct {
	contactService service.ContactService
	limiter        ratelimit.Limiter
	notifier       service.Notifier
}

// NewContactHandler creates a ContactHandler with the given collaborators.
func NewContactHandler(contactService service.ContactService, limiter ratelimit.Limiter, notifier service.Notifier) *ContactHandler {
	return &ContactHandler{contactService: contactService, limiter: limiter, notifier: notifier}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// submitResponse is the success body for POST /api/contact.
type submitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Submit handles POST /api/contact.
// Order matters: the rate limit is checked before the body is even parsed,
// and validation runs before any persistence attempt.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ip := clientAddress(r)

	allowed, err := h.limiter.Allow(r.Context(), ip)
	if err != nil {
		// Advisory limiter: fail open rather than block submissions.
		slog.Warn("rate limiter unavailable", "error", err)
		allowed = true
	}
	if !allowed {
		writeError(w, http.StatusTooManyRequests, "Too many submissions. Please try again later.")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		IP:      ip,
	}

	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		slog.Error("contact submission failed", "error", err, "client", ip)
		if repository.IsConnectivityError(err) {
			writeError(w, http.StatusServiceUnavailable, "Database connection error. Please try again later.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Success:   true,
		Message:   "Contact form submitted successfully",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// paginationResponse describes one page of triage results.
type paginationResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// messagesResponse is the JSON response for GET /api/contact/messages.
type messagesResponse struct {
	Messages   []*model.ContactMessage `json:"messages"`
	Pagination paginationResponse      `json:"pagination"`
	Counts     model.ContactCounts     `json:"counts"`
}

// Messages handles GET /api/contact/messages (admin).
// Query params: page (>=1), limit (1..100), status (all/unread/read/replied),
// search (case-insensitive substring over name/email/subject/message).
func (h *ContactHandler) Messages(w http.ResponseWriter, r *http.Request) {
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	limit := 10
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	opts := model.ContactListOptions{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	list, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		slog.Error("listing contact messages failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	// Return [] not null for empty lists
	if list.Messages == nil {
		list.Messages = []*model.ContactMessage{}
	}

	writeJSON(w, http.StatusOK, messagesResponse{
		Messages: list.Messages,
		Pagination: paginationResponse{
			Page:  page,
			Limit: limit,
			Total: list.Total,
			Pages: (list.Total + limit - 1) / limit,
		},
		Counts: list.Counts,
	})
}

// updateStatusRequest is the expected JSON body for PATCH /api/contact/messages.
type updateStatusRequest struct {
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
}

// updateStatusResponse is the success body for PATCH /api/contact/messages.
type updateStatusResponse struct {
	Message string                `json:"message"`
	Data    *model.ContactMessage `json:"data"`
}

// UpdateStatus handles PATCH /api/contact/messages (admin).
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.MessageID == "" || req.Status == "" {
		writeError(w, http.StatusBadRequest, "Message ID and status are required")
		return
	}

	updated, err := h.contactService.UpdateStatus(r.Context(), req.MessageID, req.Status)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "Message not found")
		default:
			slog.Error("updating message status failed", "error", err, "message_id", req.MessageID)
			writeError(w, http.StatusInternalServerError, "Failed to update message status")
		}
		return
	}

	writeJSON(w, http.StatusOK, updateStatusResponse{
		Message: "Status updated successfully",
		Data:    updated,
	})
}

// notifyResponse is the success body for POST /api/contact/notify.
type notifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Notify handles POST /api/contact/notify (internal use). Unlike the
// dispatch that runs after a submission, this endpoint attempts delivery
// synchronously and reports the outcome.
func (h *ContactHandler) Notify(w http.ResponseWriter, r *http.Request) {
	var n service.Notification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.notifier.Send(r.Context(), n); err != nil {
		slog.Error("notification delivery failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to send email notification")
		return
	}

	writeJSON(w, http.StatusOK, notifyResponse{
		Success: true,
		Message: "Email notification sent successfully",
	})
}
