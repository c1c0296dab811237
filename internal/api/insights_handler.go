package api

import (
	"errors"
	"net/http"
	"strconv"

	"bookstore-be/internal/book"
)

func (h *Handler) profit(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.Insights.AnalyzeProfit(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to analyze profit")
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (h *Handler) demand(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		writeError(w, http.StatusBadRequest, "title query parameter is required")
		return
	}

	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "days must be a number")
			return
		}
		days = parsed
	}

	forecast, err := h.Insights.PredictDemand(r.Context(), title, days)
	if errors.Is(err, book.ErrBookNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to predict demand")
		return
	}

	writeJSON(w, http.StatusOK, forecast)
}

func (h *Handler) restock(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		writeError(w, http.StatusBadRequest, "title query parameter is required")
		return
	}

	suggestion, err := h.Insights.SuggestRestock(r.Context(), title)
	if errors.Is(err, book.ErrBookNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to suggest restock")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"suggestion": suggestion})
}

func (h *Handler) optimize(w http.ResponseWriter, r *http.Request) {
	advice, err := h.Insights.OptimizeInventory(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to optimize inventory")
		return
	}
	writeJSON(w, http.StatusOK, advice)
}

func (h *Handler) promptContext(w http.ResponseWriter, r *http.Request) {
	text, err := h.Insights.PromptContext(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build context")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"context": text})
}
