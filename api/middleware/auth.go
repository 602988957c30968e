package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cinebase/cinebase-backend/api/responses"
	pkgAuth "github.com/cinebase/cinebase-backend/pkg/auth"
	"github.com/cinebase/cinebase-backend/pkg/config"
	"github.com/cinebase/cinebase-backend/pkg/db/models"
	pkgerrors "github.com/cinebase/cinebase-backend/pkg/errors"
	"github.com/cinebase/cinebase-backend/pkg/logger"
)

const credentialsMessage = "Could not validate credentials"

type userLoader interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// Auth validates a bearer token, resolves the subject against the user store,
// and seeds the request context. Every failure mode answers with the same
// message so callers cannot probe which accounts exist.
func Auth(cfg config.JWTConfig, users userLoader, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, credentialsMessage))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, credentialsMessage))
				return
			}

			userID, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, credentialsMessage))
				return
			}

			if users != nil {
				if _, err := users.FindByID(r.Context(), userID); err != nil {
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, credentialsMessage))
					return
				}
			}

			ctx := WithUserID(r.Context(), userID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, userID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
