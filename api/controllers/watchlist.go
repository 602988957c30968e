package controllers

import (
	"net/http"

	"github.com/cinebase/cinebase-backend/api/middleware"
	"github.com/cinebase/cinebase-backend/api/responses"
	"github.com/cinebase/cinebase-backend/api/validators"
	"github.com/cinebase/cinebase-backend/internal/watchlist"
	pkgerrors "github.com/cinebase/cinebase-backend/pkg/errors"
	"github.com/cinebase/cinebase-backend/pkg/logger"
)

func watchlistUserID(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (int64, bool) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == 0 {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Could not validate credentials"))
		return 0, false
	}
	return userID, true
}

// WatchlistAdd puts a cataloged movie on the authenticated user's watchlist.
func WatchlistAdd(svc watchlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "watchlist service unavailable"))
			return
		}

		userID, ok := watchlistUserID(w, r, logg)
		if !ok {
			return
		}

		var body watchlist.AddEntryRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		entry, err := svc.Add(ctx, userID, body)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, entry)
	}
}

// WatchlistList returns the authenticated user's watchlist.
func WatchlistList(svc watchlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "watchlist service unavailable"))
			return
		}

		userID, ok := watchlistUserID(w, r, logg)
		if !ok {
			return
		}

		listed, err := svc.List(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, listed)
	}
}

// WatchlistMarkWatched toggles the watched flag on an entry.
func WatchlistMarkWatched(svc watchlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "watchlist service unavailable"))
			return
		}

		userID, ok := watchlistUserID(w, r, logg)
		if !ok {
			return
		}

		movieID, err := validators.ParseIDParam(r, "movie_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body watchlist.MarkWatchedRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		entry, err := svc.MarkWatched(ctx, userID, movieID, body.Watched)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, entry)
	}
}

// WatchlistRemove drops an entry from the authenticated user's watchlist.
func WatchlistRemove(svc watchlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "watchlist service unavailable"))
			return
		}

		userID, ok := watchlistUserID(w, r, logg)
		if !ok {
			return
		}

		movieID, err := validators.ParseIDParam(r, "movie_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Remove(ctx, userID, movieID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
