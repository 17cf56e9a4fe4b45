// internal/handler/activity.go
package handler

import (
	"net/http"
	"time"

	"github.com/fieldstonehq/fieldstone/internal/service"
)

type ActivityHandler struct {
	activity *service.ActivityService
}

func NewActivityHandler(activity *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// Summary serves the dashboard roll-up across all reporting windows.
func (h *ActivityHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	summary, err := h.activity.Summary(r.Context(), ac)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}

// Matrix serves the owner-by-call-type breakdown. The start_date and
// end_date query params are optional; both bounds are inclusive whole days.
func (h *ActivityHandler) Matrix(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	startDate, err := parseDateParam(r, "start_date")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	endDate, err := parseDateParam(r, "end_date")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD")
		return
	}

	matrix, err := h.activity.Matrix(r.Context(), ac, startDate, endDate)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, matrix)
}

func parseDateParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
