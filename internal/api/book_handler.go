package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookstore-be/internal/book"
	"bookstore-be/internal/utils"
)

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.Books.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list books")
		return
	}
	if books == nil {
		books = []book.Book{}
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *Handler) searchBook(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		writeError(w, http.StatusBadRequest, "title query parameter is required")
		return
	}

	b, err := h.Books.FindByTitle(r.Context(), title)
	if errors.Is(err, book.ErrBookNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to search book")
		return
	}

	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) addBook(w http.ResponseWriter, r *http.Request) {
	var b book.Book
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Books.Add(r.Context(), b)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToInt64(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	if err := h.Books.Delete(r.Context(), id); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete book")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addStockRequest struct {
	Quantity int64 `json:"quantity"`
}

func (h *Handler) addStock(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToInt64(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	var req addStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Books.AddStock(r.Context(), id, req.Quantity); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
