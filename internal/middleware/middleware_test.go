package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore-be/internal/metrics"
	"bookstore-be/internal/user"
	"bookstore-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("ValidTokenSetsIdentity", func(t *testing.T) {
		token, err := user.GenerateJWT(7, "staff@example.com", "staff")
		require.NoError(t, err)

		var gotID uint
		var gotOK bool
		handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, gotOK = utils.GetUserIDFromContext(r.Context())
		}))

		req := httptest.NewRequest("GET", "/books", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, gotOK)
		assert.Equal(t, uint(7), gotID)
	})

	t.Run("MissingTokenPassesThroughAnonymous", func(t *testing.T) {
		var gotOK bool
		handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, gotOK = utils.GetUserIDFromContext(r.Context())
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/books", nil))
		assert.False(t, gotOK)
	})

	t.Run("GarbageTokenPassesThroughAnonymous", func(t *testing.T) {
		var gotOK bool
		handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, gotOK = utils.GetUserIDFromContext(r.Context())
		}))

		req := httptest.NewRequest("GET", "/books", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.False(t, gotOK)
	})

	t.Run("RequireStaffRejectsAnonymous", func(t *testing.T) {
		handler := RequireStaff(okHandler)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("POST", "/books", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("RequireStaffAllowsAuthenticated", func(t *testing.T) {
		handler := RequireStaff(okHandler)

		req := httptest.NewRequest("POST", "/books", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), 7, "staff@example.com", "staff"))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Burst is 20; the 21st immediate request from the same client must be
	// rejected.
	var lastCode int
	for i := 0; i < burstGeneral+1; i++ {
		req := httptest.NewRequest("GET", "/books", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		lastCode = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)

	// A different client is unaffected.
	req := httptest.NewRequest("GET", "/books", nil)
	req.RemoteAddr = "10.0.0.10:1234"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsMiddleware(t *testing.T) {
	reg := metrics.NewRegistry()

	handler := MetricsMiddleware(reg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/orders", nil))

	// Scrape the registry and check the counter landed with the right labels.
	w := httptest.NewRecorder()
	reg.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	body := w.Body.String()
	assert.Contains(t, body, `bookstore_http_requests_total{method="POST",path="/orders",status="201"} 1`)
}
