package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/solar-crm/internal/entity"
)

type SalespersonHandler struct {
	repo entity.SalespersonRepositoryInterface
}

func NewSalespersonHandler(repo entity.SalespersonRepositoryInterface) *SalespersonHandler {
	return &SalespersonHandler{repo: repo}
}

func (h *SalespersonHandler) List(w http.ResponseWriter, r *http.Request) {
	people, err := h.repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "LIST_FAILED", "failed to load salespersons")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"salespersons": people, "count": len(people)})
}

func (h *SalespersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p entity.Salesperson
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}
	if p.Name == "" || p.Email == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "name and email are required")
		return
	}

	if err := h.repo.Upsert(r.Context(), &p); err != nil {
		writeError(w, http.StatusInternalServerError, "CREATE_FAILED", "failed to save salesperson")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *SalespersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "salesperson id is required")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "salesperson not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "DELETE_FAILED", "failed to delete salesperson")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
