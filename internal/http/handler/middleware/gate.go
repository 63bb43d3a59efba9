package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"portfolio/internal/session"

	"go.uber.org/zap"
)

// LoginPath is where unauthenticated browsers are sent.
const LoginPath = "/login"

type identityContextKeyType struct{}

var identityKey = identityContextKeyType{}

// IdentityFromContext returns the identity the gate admitted.
func IdentityFromContext(ctx context.Context) (session.Identity, bool) {
	id, ok := ctx.Value(identityKey).(session.Identity)
	return id, ok
}

type SessionReader interface {
	Current(r *http.Request) (session.Identity, bool)
}

// Gate admits only requests carrying an authenticated session. The wrapped
// handler never runs for anonymous clients.
type Gate struct {
	logs     *zap.SugaredLogger
	sessions SessionReader
}

func NewGate(logger *zap.SugaredLogger, sessions SessionReader) *Gate {
	return &Gate{
		logs:     logger,
		sessions: sessions,
	}
}

// RequireLogin guards browser routes, redirecting anonymous clients to the
// login page.
func (g *Gate) RequireLogin(next http.Handler) http.Handler {
	return g.require(next, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, LoginPath, http.StatusFound)
	})
}

// RequireLoginAPI guards JSON routes, answering 401 to anonymous clients.
func (g *Gate) RequireLoginAPI(next http.Handler) http.Handler {
	return g.require(next, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "error",
			"message": "Authentication required",
		})
	})
}

func (g *Gate) require(next http.Handler, deny http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := g.sessions.Current(r)
		if !ok {
			g.logs.Infow("unauthenticated access denied",
				"path", r.URL.Path,
				"request_id", RequestIDFromContext(r.Context()))
			deny(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
