package controllers

import (
	"net/http"

	"github.com/cinebase/cinebase-backend/api/responses"
	"github.com/cinebase/cinebase-backend/api/validators"
	"github.com/cinebase/cinebase-backend/internal/movies"
	pkgerrors "github.com/cinebase/cinebase-backend/pkg/errors"
	"github.com/cinebase/cinebase-backend/pkg/logger"
)

// MoviesSearch resolves a title query against the local catalog with a
// provider fallback.
func MoviesSearch(svc movies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "movie service unavailable"))
			return
		}

		query, err := validators.RequireQuery(r, "query")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		results, err := svc.SearchByTitle(ctx, query)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, results)
	}
}

// MovieByID resolves one movie by its provider id.
func MovieByID(svc movies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "movie service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "movie_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		movie, err := svc.GetByID(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, movie)
	}
}

// MoviesNowPlaying lists the current theatrical page for a region.
func MoviesNowPlaying(svc movies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "movie service unavailable"))
			return
		}

		listing, err := svc.NowPlaying(ctx, r.URL.Query().Get("regiao"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, listing)
	}
}
