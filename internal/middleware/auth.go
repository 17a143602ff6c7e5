package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mvdutta/honey-rae-server/internal/config"
	"github.com/mvdutta/honey-rae-server/internal/utils"
)

type ctxKey string

const (
	CtxUserID ctxKey = "uid"
	CtxStaff  ctxKey = "staff"
)

// WithAuth resolves the caller's identity from a "Token <jwt>" or
// "Bearer <jwt>" Authorization header and stores it in the request context.
// Requests without (or with invalid) credentials pass through unauthenticated;
// the guards in authorization.go decide what that means per route.
func WithAuth(log zerolog.Logger, cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tok string
			h := r.Header.Get("Authorization")
			switch {
			case strings.HasPrefix(h, "Token "):
				tok = strings.TrimPrefix(h, "Token ")
			case strings.HasPrefix(h, "Bearer "):
				tok = strings.TrimPrefix(h, "Bearer ")
			}

			if tok == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := utils.ParseJWT(cfg.SessionSecret, tok)
			if err != nil {
				log.Debug().Err(err).Msg("rejected token")
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
			ctx = context.WithValue(ctx, CtxStaff, claims.Staff)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
