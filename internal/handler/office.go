// internal/handler/office.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fieldstonehq/fieldstone/internal/metrics"
	"github.com/fieldstonehq/fieldstone/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OfficeHandler struct {
	offices   *service.OfficeService
	employees *service.EmployeeService
	reports   *service.ReportService
}

func NewOfficeHandler(offices *service.OfficeService, employees *service.EmployeeService, reports *service.ReportService) *OfficeHandler {
	return &OfficeHandler{offices: offices, employees: employees, reports: reports}
}

func (h *OfficeHandler) List(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	offices, err := h.offices.List(r.Context(), ac)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, offices)
}

func (h *OfficeHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	officeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid office ID")
		return
	}

	dashboard, err := h.offices.Dashboard(r.Context(), ac, officeID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, dashboard)
}

func (h *OfficeHandler) Update(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	officeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid office ID")
		return
	}

	var input service.OfficeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	office, err := h.offices.Update(r.Context(), ac, officeID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	metrics.EntityMutationCounter.WithLabelValues("office", "update").Inc()
	respondWithJSON(w, http.StatusOK, office)
}

func (h *OfficeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	officeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid office ID")
		return
	}

	if err := h.offices.Delete(r.Context(), ac, officeID); err != nil {
		handleError(w, err)
		return
	}

	metrics.EntityMutationCounter.WithLabelValues("office", "delete").Inc()
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// AddOwnerRequest associates an existing owner with the office.
type AddOwnerRequest struct {
	OwnerID    uuid.UUID `json:"owner_id"`
	SetPrimary bool      `json:"set_primary"`
}

func (h *OfficeHandler) AddOwner(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	officeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid office ID")
		return
	}

	var req AddOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	office, err := h.offices.AddOwner(r.Context(), ac, officeID, req.OwnerID, req.SetPrimary)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, office)
}

// SetOwnersRequest replaces the office's owner membership in one shot.
type SetOwnersRequest struct {
	OwnerIDs  []uuid.UUID `json:"owner_ids"`
	PrimaryID *uuid.UUID  `json:"primary_id,omitempty"`
}

func (h *OfficeHandler) SetOwners(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	officeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid office ID")
		return
	}

	var req SetOwnersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	office, err := h.offices.SetOwners(r.Context(), ac, officeID, req.OwnerIDs, req.PrimaryID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, office)
}

func (h *OfficeHandler) RemoveOwner(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	officeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid office ID")
		return
	}

	ownerID, err := uuid.Parse(chi.URLParam(r, "ownerID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid owner ID")
		return
	}

	office, err := h.offices.RemoveOwner(r.Context(), ac, officeID, ownerID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, office)
}

func (h *OfficeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	officeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid office ID")
		return
	}

	var input service.EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	employee, err := h.employees.Create(r.Context(), ac, officeID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	metrics.EntityMutationCounter.WithLabelValues("employee", "create").Inc()
	respondWithJSON(w, http.StatusCreated, employee)
}

// LogReport commits a communication report from the office context.
func (h *OfficeHandler) LogReport(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	officeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid office ID")
		return
	}

	var input service.LogReportInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	report, err := h.reports.LogFromOffice(r.Context(), ac, officeID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	metrics.ReportCommitCounter.Inc()
	respondWithJSON(w, http.StatusCreated, report)
}
