package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mvicsa/portfolio-backend/internal/model"
	"github.com/mvicsa/portfolio-backend/internal/repository"
	"github.com/mvicsa/portfolio-backend/internal/service"
)

// ProjectHandler handles public project reads and admin project CRUD.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a ProjectHandler with the given service.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List handles GET /api/projects (public).
// Query params: featured=true, category.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.ProjectListOptions{
		Category: r.URL.Query().Get("category"),
	}
	if r.URL.Query().Get("featured") == "true" {
		featured := true
		opts.Featured = &featured
	}

	projects, err := h.projectService.List(r.Context(), opts)
	if err != nil {
		slog.Error("listing projects failed", "error", err)
		if repository.IsConnectivityError(err) {
			writeError(w, http.StatusInternalServerError, "Database connection failed")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if projects == nil {
		projects = []*model.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// Get handles GET /api/projects/{id} (public).
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		slog.Error("fetching project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Create handles POST /api/projects (admin).
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.projectService.Create(r.Context(), &p); err != nil {
		slog.Error("creating project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, &p)
}

// Update handles PUT /api/projects/{id} (admin).
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p model.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	p.ID = r.PathValue("id")

	if err := h.projectService.Update(r.Context(), &p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		slog.Error("updating project failed", "error", err, "project_id", p.ID)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, &p)
}

// Delete handles DELETE /api/projects/{id} (admin).
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		slog.Error("deleting project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
