// internal/handler/owner.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fieldstonehq/fieldstone/internal/metrics"
	"github.com/fieldstonehq/fieldstone/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OwnerHandler struct {
	owners  *service.OwnerService
	offices *service.OfficeService
	reports *service.ReportService
}

func NewOwnerHandler(owners *service.OwnerService, offices *service.OfficeService, reports *service.ReportService) *OwnerHandler {
	return &OwnerHandler{owners: owners, offices: offices, reports: reports}
}

func (h *OwnerHandler) List(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	owners, err := h.owners.List(r.Context(), ac)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, owners)
}

func (h *OwnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var input service.CreateOwnerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	owner, err := h.owners.Create(r.Context(), ac, input)
	if err != nil {
		handleError(w, err)
		return
	}

	metrics.EntityMutationCounter.WithLabelValues("owner", "create").Inc()
	respondWithJSON(w, http.StatusCreated, owner)
}

func (h *OwnerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ownerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid owner ID")
		return
	}

	dashboard, err := h.owners.Dashboard(r.Context(), ac, ownerID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, dashboard)
}

func (h *OwnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ownerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid owner ID")
		return
	}

	var input service.UpdateOwnerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	owner, err := h.owners.Update(r.Context(), ac, ownerID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	metrics.EntityMutationCounter.WithLabelValues("owner", "update").Inc()
	respondWithJSON(w, http.StatusOK, owner)
}

func (h *OwnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ownerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid owner ID")
		return
	}

	if err := h.owners.Delete(r.Context(), ac, ownerID); err != nil {
		handleError(w, err)
		return
	}

	metrics.EntityMutationCounter.WithLabelValues("owner", "delete").Inc()
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// CreateOffice opens a new office with this owner as its primary contact.
func (h *OwnerHandler) CreateOffice(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ownerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid owner ID")
		return
	}

	var input service.OfficeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	office, err := h.offices.Create(r.Context(), ac, ownerID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	metrics.EntityMutationCounter.WithLabelValues("office", "create").Inc()
	respondWithJSON(w, http.StatusCreated, office)
}

// LogReport commits a communication report from the owner context.
func (h *OwnerHandler) LogReport(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ownerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid owner ID")
		return
	}

	var input service.LogReportInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	report, err := h.reports.LogFromOwner(r.Context(), ac, ownerID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	metrics.ReportCommitCounter.Inc()
	respondWithJSON(w, http.StatusCreated, report)
}
