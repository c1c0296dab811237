package api

import (
	"net/http"

	"bookstore-be/internal/book"
	"bookstore-be/internal/insights"
	"bookstore-be/internal/metrics"
	"bookstore-be/internal/middleware"
	"bookstore-be/internal/order"
	"bookstore-be/internal/report"
	"bookstore-be/internal/user"
)

// Handler exposes the store's operations as a local JSON API. It is the
// surface the GUI shell and chat layers consume.
type Handler struct {
	Books    book.Service
	Orders   order.Service
	Reports  report.Service
	Insights insights.Service
	Users    user.Service
	Metrics  *metrics.Registry
}

func NewHandler(
	books book.Service,
	orders order.Service,
	reports report.Service,
	insightsSvc insights.Service,
	users user.Service,
	reg *metrics.Registry,
) *Handler {
	return &Handler{
		Books:    books,
		Orders:   orders,
		Reports:  reports,
		Insights: insightsSvc,
		Users:    users,
		Metrics:  reg,
	}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	staff := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireStaff(fn)
	}

	mux.HandleFunc("POST /auth/register", h.register)
	mux.HandleFunc("POST /auth/login", h.login)

	mux.HandleFunc("GET /books", h.listBooks)
	mux.HandleFunc("GET /books/search", h.searchBook)
	mux.Handle("POST /books", staff(h.addBook))
	mux.Handle("DELETE /books/{id}", staff(h.deleteBook))
	mux.Handle("POST /books/{id}/stock", staff(h.addStock))

	mux.Handle("POST /orders", staff(h.createOrder))
	mux.HandleFunc("GET /orders", h.listOrders)
	mux.HandleFunc("GET /orders/{id}/items", h.orderItems)

	mux.HandleFunc("GET /reports/revenue", h.revenue)

	mux.Handle("GET /insights/profit", staff(h.profit))
	mux.Handle("GET /insights/demand", staff(h.demand))
	mux.Handle("GET /insights/restock", staff(h.restock))
	mux.Handle("GET /insights/optimize", staff(h.optimize))
	mux.Handle("GET /insights/context", staff(h.promptContext))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics.Handler())
	}

	return mux
}
