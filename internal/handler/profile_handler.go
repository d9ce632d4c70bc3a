package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mvicsa/portfolio-backend/internal/model"
	"github.com/mvicsa/portfolio-backend/internal/repository"
	"github.com/mvicsa/portfolio-backend/internal/service"
)

// ProfileHandler handles the public profile read and the admin update.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a ProfileHandler with the given service.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// profileResponse wraps the profile document with a success flag.
type profileResponse struct {
	Success bool           `json:"success"`
	Data    *model.Profile `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Get handles GET /api/profile (public). A missing profile is seeded with
// defaults by the service.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.profileService.Get(r.Context())
	if err != nil {
		slog.Error("fetching profile failed", "error", err)
		if repository.IsConnectivityError(err) {
			writeJSON(w, http.StatusInternalServerError, profileResponse{Error: "Database connection failed"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, profileResponse{Error: "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{Success: true, Data: p})
}

// Update handles PUT /api/profile (admin).
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p model.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.profileService.Update(r.Context(), &p)
	if err != nil {
		slog.Error("updating profile failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, profileResponse{Error: "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{Success: true, Data: updated})
}
