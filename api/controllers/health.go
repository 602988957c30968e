package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/cinebase/cinebase-backend/api/responses"
	"github.com/cinebase/cinebase-backend/pkg/config"
	"github.com/cinebase/cinebase-backend/pkg/db"
	pkgerrors "github.com/cinebase/cinebase-backend/pkg/errors"
	"github.com/cinebase/cinebase-backend/pkg/logger"
)

const readinessTimeout = 2 * time.Second

// Root answers the API banner.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, map[string]string{
			"mensagem": "CineBase API está online!",
			"status":   "OK",
		})
	}
}

// HealthLive reports process liveness.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CineBase-Env", cfg.App.Env)
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the datasource before declaring readiness.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CineBase-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
				return
			}
		}

		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
