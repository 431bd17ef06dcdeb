package auth

import (
	"net/http"
	"strings"
)

// Middleware enforces bearer-token auth on HTTP handlers.
type Middleware struct {
	secret []byte
}

// NewMiddleware constructs an auth middleware.
func NewMiddleware(secret []byte) *Middleware {
	return &Middleware{secret: secret}
}

// Wrap requires a valid token. Mutating methods additionally require the
// operator role.
func (m *Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.claimsFrom(r)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.Method != http.MethodGet && claims.Role != RoleOperator {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) claimsFrom(r *http.Request) (*Claims, error) {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		token = ""
	}
	return ParseJWT(token, m.secret)
}
