package controllers

import (
	"net/http"

	"github.com/cinebase/cinebase-backend/api/middleware"
	"github.com/cinebase/cinebase-backend/api/responses"
	"github.com/cinebase/cinebase-backend/api/validators"
	"github.com/cinebase/cinebase-backend/internal/reviews"
	pkgerrors "github.com/cinebase/cinebase-backend/pkg/errors"
	"github.com/cinebase/cinebase-backend/pkg/logger"
)

// ReviewsCreate stores a review for a cataloged movie on behalf of the
// authenticated user.
func ReviewsCreate(svc reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "review service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		if userID == 0 {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Could not validate credentials"))
			return
		}

		movieID, err := validators.ParseIDParam(r, "movie_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body reviews.CreateReviewDTO
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		created, err := svc.Create(ctx, userID, movieID, body)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, created)
	}
}

// ReviewsList returns all reviews for a cataloged movie.
func ReviewsList(svc reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "review service unavailable"))
			return
		}

		movieID, err := validators.ParseIDParam(r, "movie_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		listed, err := svc.ListByMovie(ctx, movieID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, listed)
	}
}
