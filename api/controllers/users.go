package controllers

import (
	"net/http"

	"github.com/cinebase/cinebase-backend/api/middleware"
	"github.com/cinebase/cinebase-backend/api/responses"
	"github.com/cinebase/cinebase-backend/api/validators"
	"github.com/cinebase/cinebase-backend/internal/auth"
	"github.com/cinebase/cinebase-backend/internal/users"
	pkgerrors "github.com/cinebase/cinebase-backend/pkg/errors"
	"github.com/cinebase/cinebase-backend/pkg/logger"
)

// UsersCreate handles account registration.
func UsersCreate(svc auth.RegisterService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "register service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.RegisterRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Register(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, created)
	}
}

// UsersMe returns the authenticated user's profile.
func UsersMe(repo *users.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middleware.UserIDFromContext(ctx)
		if userID == 0 {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Could not validate credentials"))
			return
		}

		user, err := repo.FindByID(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "Could not validate credentials"))
			return
		}

		responses.WriteJSON(w, http.StatusOK, users.FromModel(user))
	}
}
