package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cinebase/cinebase-backend/api/controllers"
	"github.com/cinebase/cinebase-backend/api/middleware"
	"github.com/cinebase/cinebase-backend/internal/auth"
	"github.com/cinebase/cinebase-backend/internal/movies"
	"github.com/cinebase/cinebase-backend/internal/reviews"
	"github.com/cinebase/cinebase-backend/internal/users"
	"github.com/cinebase/cinebase-backend/internal/watchlist"
	"github.com/cinebase/cinebase-backend/pkg/config"
	"github.com/cinebase/cinebase-backend/pkg/db"
	"github.com/cinebase/cinebase-backend/pkg/logger"
	"github.com/cinebase/cinebase-backend/pkg/metrics"
	"github.com/cinebase/cinebase-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config           *config.Config
	Logger           *logger.Logger
	DBPinger         db.Pinger
	RedisClient      *redis.Client
	HTTPMetrics      *metrics.HTTPMetrics
	MetricsHandler   http.Handler
	UserRepo         *users.Repository
	AuthService      auth.Service
	RegisterService  auth.RegisterService
	MovieService     movies.Service
	ReviewService    reviews.Service
	WatchlistService watchlist.Service
}

// NewRouter assembles the public HTTP surface.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	// A typed nil must not reach the limiter as a non-nil interface.
	rateLimit := func(policy middleware.AuthRateLimitPolicy) func(http.Handler) http.Handler {
		if p.RedisClient == nil {
			return middleware.AuthRateLimit(policy, nil, logg)
		}
		return middleware.AuthRateLimit(policy, p.RedisClient, logg)
	}

	requireAuth := middleware.Auth(cfg.JWT, p.UserRepo, logg)

	r.Get("/", controllers.Root())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DBPinger))
	})

	if p.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", p.MetricsHandler)
	}

	r.With(rateLimit(loginPolicy)).
		Post("/login/", controllers.AuthLogin(p.AuthService, logg))

	r.Route("/usuarios", func(r chi.Router) {
		r.With(rateLimit(registerPolicy)).
			Post("/", controllers.UsersCreate(p.RegisterService, logg))

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/me", controllers.UsersMe(p.UserRepo, logg))

			r.Route("/me/watchlist", func(r chi.Router) {
				r.Post("/", controllers.WatchlistAdd(p.WatchlistService, logg))
				r.Get("/", controllers.WatchlistList(p.WatchlistService, logg))
				r.Patch("/{movie_id}", controllers.WatchlistMarkWatched(p.WatchlistService, logg))
				r.Delete("/{movie_id}", controllers.WatchlistRemove(p.WatchlistService, logg))
			})
		})
	})

	r.Route("/filmes", func(r chi.Router) {
		r.Get("/search", controllers.MoviesSearch(p.MovieService, logg))

		r.Route("/{movie_id}", func(r chi.Router) {
			r.Get("/", controllers.MovieByID(p.MovieService, logg))
			r.Get("/avaliacoes", controllers.ReviewsList(p.ReviewService, logg))
			r.With(requireAuth).Post("/avaliacoes", controllers.ReviewsCreate(p.ReviewService, logg))
		})
	})

	r.Get("/em_cartaz", controllers.MoviesNowPlaying(p.MovieService, logg))

	return r
}
