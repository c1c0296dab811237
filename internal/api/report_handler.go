package api

import (
	"net/http"

	"bookstore-be/internal/report"
)

func (h *Handler) revenue(w http.ResponseWriter, r *http.Request) {
	var filter report.RevenueFilter
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	rows, err := h.Reports.Revenue(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build revenue report")
		return
	}
	if rows == nil {
		rows = []report.RevenueRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}
