package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookstore-be/internal/book"
	"bookstore-be/internal/order"
)

type createOrderRequest struct {
	Items []order.LineItemInput `json:"items"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.Orders.Create(r.Context(), req.Items)
	if err != nil {
		if h.Metrics != nil {
			h.Metrics.OrderFailures.Inc()
		}
		switch {
		case errors.Is(err, order.ErrEmptyOrder):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, book.ErrBookNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to create order")
		}
		return
	}

	if h.Metrics != nil {
		h.Metrics.OrdersCreated.Inc()
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) orderItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Orders.Items(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load order items")
		return
	}
	if items == nil {
		items = []order.LineItemView{}
	}
	writeJSON(w, http.StatusOK, items)
}
