package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/logging"
)

// BearerGuard checks "Authorization: Bearer <jwt>" against an HMAC secret.
// With an empty secret the guard is disabled and every request passes.
type BearerGuard struct {
	secret []byte
	log    *zerolog.Logger
}

func NewBearerGuard(secret string, logger *zerolog.Logger) *BearerGuard {
	return &BearerGuard{secret: []byte(secret), log: logger}
}

func (g *BearerGuard) Enabled() bool { return len(g.secret) > 0 }

func (g *BearerGuard) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		if !g.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := g.parseFromRequest(r); err != nil {
				logging.With(r.Context(), g.log).Warn().Err(err).Msg("rejected dispatch request")
				writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (g *BearerGuard) parseFromRequest(r *http.Request) (*jwt.RegisteredClaims, error) {
	hdr := r.Header.Get("Authorization")
	if !strings.HasPrefix(strings.ToLower(hdr), "bearer ") {
		return nil, errors.New("missing token")
	}
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(strings.TrimSpace(hdr[7:]), claims, func(t *jwt.Token) (any, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
