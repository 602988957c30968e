package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cinebase/cinebase-backend/api/routes"
	"github.com/cinebase/cinebase-backend/internal/auth"
	"github.com/cinebase/cinebase-backend/internal/movies"
	"github.com/cinebase/cinebase-backend/internal/reviews"
	"github.com/cinebase/cinebase-backend/internal/users"
	"github.com/cinebase/cinebase-backend/internal/watchlist"
	"github.com/cinebase/cinebase-backend/pkg/config"
	"github.com/cinebase/cinebase-backend/pkg/db"
	"github.com/cinebase/cinebase-backend/pkg/logger"
	"github.com/cinebase/cinebase-backend/pkg/metrics"
	"github.com/cinebase/cinebase-backend/pkg/migrate"
	"github.com/cinebase/cinebase-backend/pkg/redis"
	"github.com/cinebase/cinebase-backend/pkg/tmdb"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, auth rate limiting disabled")
	}

	tmdbClient, err := tmdb.NewClient(cfg.TMDB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create tmdb client", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	userRepo := users.NewRepository(dbClient.DB())
	movieRepo := movies.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:  userRepo,
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	movieService, err := movies.NewService(movies.ServiceParams{
		Repo:          movieRepo,
		Gateway:       tmdbClient,
		DefaultRegion: cfg.TMDB.DefaultRegion,
		Logger:        logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create movie service", err)
		os.Exit(1)
	}

	reviewService, err := reviews.NewService(reviews.ServiceParams{
		Repo:      reviews.NewRepository(dbClient.DB()),
		MovieRepo: movieRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create review service", err)
		os.Exit(1)
	}

	watchlistService, err := watchlist.NewService(watchlist.ServiceParams{
		Repo:      watchlist.NewRepository(dbClient.DB()),
		MovieRepo: movieRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create watchlist service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:           cfg,
			Logger:           logg,
			DBPinger:         dbClient,
			RedisClient:      redisClient,
			HTTPMetrics:      httpMetrics,
			MetricsHandler:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			UserRepo:         userRepo,
			AuthService:      authService,
			RegisterService:  registerService,
			MovieService:     movieService,
			ReviewService:    reviewService,
			WatchlistService: watchlistService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
