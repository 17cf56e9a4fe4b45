// internal/handler/employee.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fieldstonehq/fieldstone/internal/metrics"
	"github.com/fieldstonehq/fieldstone/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type EmployeeHandler struct {
	employees *service.EmployeeService
	reports   *service.ReportService
}

func NewEmployeeHandler(employees *service.EmployeeService, reports *service.ReportService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, reports: reports}
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	employeeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	var input service.EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	employee, err := h.employees.Update(r.Context(), ac, employeeID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	metrics.EntityMutationCounter.WithLabelValues("employee", "update").Inc()
	respondWithJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	employeeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	if err := h.employees.Delete(r.Context(), ac, employeeID); err != nil {
		handleError(w, err)
		return
	}

	metrics.EntityMutationCounter.WithLabelValues("employee", "delete").Inc()
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// LogReport commits a communication report attributed to the employee's office.
func (h *EmployeeHandler) LogReport(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	employeeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	var input service.LogReportInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	report, err := h.reports.LogFromEmployee(r.Context(), ac, employeeID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	metrics.ReportCommitCounter.Inc()
	respondWithJSON(w, http.StatusCreated, report)
}
