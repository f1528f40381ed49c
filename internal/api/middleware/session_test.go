package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elegant-tiles/storefront/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureSession(captured *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = GetSessionID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

// ============================================
// Session Middleware Tests
// ============================================

func TestSession_CreatesWhenMissing(t *testing.T) {
	registry := session.NewRegistry()
	var captured string

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	Session(registry)(captureSession(&captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, captured)
	assert.True(t, registry.Exists(captured))
	assert.Equal(t, captured, rec.Header().Get(SessionHeaderName))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, captured, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSession_ReusesCookie(t *testing.T) {
	registry := session.NewRegistry()
	id := registry.Create()
	var captured string

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: id})
	rec := httptest.NewRecorder()
	Session(registry)(captureSession(&captured)).ServeHTTP(rec, req)

	assert.Equal(t, id, captured)
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, 1, registry.Len())
}

func TestSession_ReusesHeader(t *testing.T) {
	registry := session.NewRegistry()
	id := registry.Create()
	var captured string

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(SessionHeaderName, id)
	rec := httptest.NewRecorder()
	Session(registry)(captureSession(&captured)).ServeHTTP(rec, req)

	assert.Equal(t, id, captured)
}

func TestSession_ReplacesStaleID(t *testing.T) {
	registry := session.NewRegistry()
	var captured string

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "swept-long-ago"})
	rec := httptest.NewRecorder()
	Session(registry)(captureSession(&captured)).ServeHTTP(rec, req)

	assert.NotEqual(t, "swept-long-ago", captured)
	assert.True(t, registry.Exists(captured))
	require.Len(t, rec.Result().Cookies(), 1)
}

func TestRequireSession(t *testing.T) {
	var captured string
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()

	RequireSession(captureSession(&captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"session required"}`, rec.Body.String())
}
