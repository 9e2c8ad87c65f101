package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/utils"
)

type SessionResolver interface {
	Session(ctx context.Context, token string) (entities.Session, error)
}

// Auth resolves the bearer token into a session stored in the request
// context. Browsers cannot set headers on websocket upgrades, so the token
// may also come in the "token" query parameter.
func Auth(resolver SessionResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				utils.WriteError(w, "missing session token", http.StatusUnauthorized)
				return
			}

			session, err := resolver.Session(r.Context(), token)
			if err != nil {
				utils.WriteError(w, "invalid session", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(entities.WithSession(r.Context(), session)))
		})
	}
}

// RequireRole rejects sessions whose role is not one of roles.
func RequireRole(roles ...entities.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := entities.SessionFrom(r.Context())
			if !ok {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !slices.Contains(roles, session.Role) {
				utils.WriteError(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return r.URL.Query().Get("token")
}
