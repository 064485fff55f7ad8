package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/session"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/utils"
)

const SessionHeader = "X-Session-Token"

type SessionResolver interface {
	Get(ctx context.Context, token string) (session.Session, error)
}

// Session rejects requests without a valid session and stores the session in the request context.
// Roles, when given, restrict the route to those roles.
func Session(resolver SessionResolver, roles ...entities.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := resolver.Get(r.Context(), Token(r))
			if err != nil {
				httpSessionRefusals.WithLabelValues("unauthorized").Inc()
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			recordRole(r.Context(), s.Role)

			if len(roles) > 0 && !hasRole(s.Role, roles) {
				httpSessionRefusals.WithLabelValues("forbidden").Inc()
				utils.WriteError(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
		})
	}
}

// Token reads the session token from the session header or a bearer authorization header.
func Token(r *http.Request) string {
	if t := r.Header.Get(SessionHeader); t != "" {
		return t
	}
	auth := r.Header.Get("Authorization")
	if t, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(t)
	}
	return ""
}

func hasRole(role entities.Role, roles []entities.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
