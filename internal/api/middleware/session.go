package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/elegant-tiles/storefront/internal/session"
)

const (
	SessionCookieName = "session_id"
	SessionHeaderName = "X-Session-ID"
)

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// ExtractSessionID reads the session id from cookie or header
func ExtractSessionID(r *http.Request) string {
	// Try cookie first (for browser)
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	// Fall back to header (for API clients)
	return r.Header.Get(SessionHeaderName)
}

type contextKey string

const SessionContextKey contextKey = "session"

// Session attaches a live session to every request. A missing or expired id
// gets a fresh session, returned in both the cookie and the header.
func Session(registry *session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ExtractSessionID(r)
			if id == "" || !registry.Exists(id) {
				id = registry.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(SessionHeaderName, id)

			ctx := context.WithValue(r.Context(), SessionContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession rejects requests that reached a handler without a session.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetSessionID(r.Context()) == "" {
			respondError(w, "session required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSessionID returns the session id attached by Session
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionContextKey).(string)
	return id
}
