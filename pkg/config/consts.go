package config

const EnvPrefix = "CINEBASE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Env var names shared with tests and tooling.
const (
	EnvAppEnv      = "CINEBASE_APP_ENV"
	EnvPort        = "CINEBASE_APP_PORT"
	EnvDBDSN       = "CINEBASE_DATABASE_URL"
	EnvJWTSecret   = "CINEBASE_SECRET_KEY"
	EnvJWTAlg      = "CINEBASE_ALGORITHM"
	EnvJWTExpMins  = "CINEBASE_ACCESS_TOKEN_EXPIRE_MINUTES"
	EnvTMDBBaseURL = "CINEBASE_TMDB_URL"
	EnvTMDBAPIKey  = "CINEBASE_TMDB_API_KEY_V3"
	EnvTMDBBearer  = "CINEBASE_TMDB_BEARER_TOKEN"
	EnvRedisURL    = "CINEBASE_REDIS_URL"
)
