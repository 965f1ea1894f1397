package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tair/gog-commerce/pkg/auth"
	"github.com/tair/gog-commerce/pkg/response"
)

type contextKey string

const claimsKey contextKey = "claims"

// RoleAdmin is the role value required by RequireAdmin
const RoleAdmin = "admin"

// Authenticator guards handlers behind a bearer token
type Authenticator struct {
	tokens *auth.TokenManager
}

// NewAuthenticator creates an authenticator backed by tokens
func NewAuthenticator(tokens *auth.TokenManager) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// Authenticate rejects requests without a token (401) or with a token that
// fails verification (403), and stores the claims in the request context
func (a *Authenticator) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			response.Message(w, http.StatusUnauthorized, "Unauthorized: Token missing")
			return
		}

		claims, err := a.tokens.ValidateToken(token)
		if err != nil {
			response.Message(w, http.StatusForbidden, "Unauthorized: Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	}
}

// RequireAdmin authenticates and then requires the admin role
func (a *Authenticator) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return a.Authenticate(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Role != RoleAdmin {
			response.Message(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithClaims returns a copy of ctx carrying claims
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the token claims stored by Authenticate
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok && claims != nil
}

// bearerToken accepts both "Bearer <token>" and a bare token
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if scheme, token, found := strings.Cut(header, " "); found {
		if !strings.EqualFold(scheme, "Bearer") {
			return ""
		}
		return strings.TrimSpace(token)
	}
	return header
}
