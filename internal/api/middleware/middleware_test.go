package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelreservation/backend/internal/infrastructure/observability"
)

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = observability.RequestIDFromContext(r.Context())
	}))

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})

	t.Run("generates one when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	called := false
	handler := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/reservations/1/cancel", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	assert.Equal(t, RequestIDHeader, w.Header().Get("Access-Control-Expose-Headers"))
}

func TestCORSMiddleware_ConfiguredOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://front.example.com, https://admin.example.com")
	handler := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		origin string
		want   string
	}{
		{"https://admin.example.com", "https://admin.example.com"},
		{"https://evil.example.com", ""},
		{"", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
		if tt.origin != "" {
			req.Header.Set("Origin", tt.origin)
		}
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"), tt.origin)
		if tt.want != "" {
			assert.Equal(t, "Origin", w.Header().Get("Vary"))
		}
	}
}

func TestNewCORSPolicy(t *testing.T) {
	assert.Equal(t, "*", newCORSPolicy("").allowOrigin("https://a.example.com"))
	assert.Equal(t, "*", newCORSPolicy(" , ").allowOrigin("https://a.example.com"))
	assert.Equal(t, "*", newCORSPolicy("https://b.example.com,*").allowOrigin("https://a.example.com"))
	assert.Equal(t, "", newCORSPolicy("https://b.example.com").allowOrigin("https://a.example.com"))
}

func TestLoggingMiddleware_CapturesStatus(t *testing.T) {
	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestObservabilityMiddleware_NilMetrics(t *testing.T) {
	handler := ObservabilityMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCompression(t *testing.T) {
	handler := Compression(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1}]`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	gz, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(body))
}

func TestCompression_NoContent(t *testing.T) {
	handler := Compression(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
}

func TestETag_NotModified(t *testing.T) {
	handler := ETag(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":3}`))
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rooms/3", nil))
	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/api/rooms/3", nil)
	req.Header.Set("If-None-Match", etag)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotModified, w.Code)
}

func TestCacheControl(t *testing.T) {
	handler := CacheControl(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	cases := map[string]string{
		"GET /api/rooms/available":  "public, max-age=30, must-revalidate",
		"GET /api/rooms/3":          "public, max-age=120, must-revalidate",
		"GET /api/reservations/1":   "private, no-cache, must-revalidate",
		"POST /api/reservations":    "no-store",
		"DELETE /api/reservations/": "no-store",
	}
	for route, expected := range cases {
		method, path, _ := strings.Cut(route, " ")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		assert.Equal(t, expected, w.Header().Get("Cache-Control"), route)
	}
}
