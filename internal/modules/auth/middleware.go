package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey struct{}

// FromContext returns the session placed by RequireAuth.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok
}

// Middleware authenticates requests with a bearer session token.
type Middleware struct{ tokens *TokenIssuer }

func NewMiddleware(tokens *TokenIssuer) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireAuth rejects requests without a valid session and stores the
// session in the request context.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "sign in to continue", http.StatusUnauthorized)
			return
		}
		sess, err := m.tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			http.Error(w, "sign in to continue", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, sess)))
	})
}

// RequireAdmin additionally demands the admin capability.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := FromContext(r.Context())
		if sess == nil || !sess.Admin {
			http.Error(w, "admin capability required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}
