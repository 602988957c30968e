package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	TMDB          TMDBConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.JWT.validateAlgorithm(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CINEBASE_APP_ENV" required:"true"`
	Port         string `envconfig:"CINEBASE_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"CINEBASE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CINEBASE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CINEBASE_DATABASE_URL" required:"true"`
	Driver string `envconfig:"CINEBASE_DB_DRIVER" default:"postgres"`

	MaxOpenConns    int           `envconfig:"CINEBASE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CINEBASE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CINEBASE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CINEBASE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional; rate limiting switches off when URL is empty.
type RedisConfig struct {
	URL          string        `envconfig:"CINEBASE_REDIS_URL"`
	PoolSize     int           `envconfig:"CINEBASE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CINEBASE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CINEBASE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CINEBASE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CINEBASE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"CINEBASE_SECRET_KEY" required:"true"`
	Algorithm         string `envconfig:"CINEBASE_ALGORITHM" default:"HS256"`
	ExpirationMinutes int    `envconfig:"CINEBASE_ACCESS_TOKEN_EXPIRE_MINUTES" required:"true"`
}

// TTL returns the access token lifetime.
func (j JWTConfig) TTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

func (j JWTConfig) validateAlgorithm() error {
	switch strings.ToUpper(strings.TrimSpace(j.Algorithm)) {
	case "HS256", "HS384", "HS512":
		return nil
	default:
		return fmt.Errorf("unsupported signing algorithm %q", j.Algorithm)
	}
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"CINEBASE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"CINEBASE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"CINEBASE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"CINEBASE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"CINEBASE_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"CINEBASE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"CINEBASE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"CINEBASE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"CINEBASE_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"CINEBASE_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"CINEBASE_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"CINEBASE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"CINEBASE_AUTO_MIGRATE" default:"false"`
}

type TMDBConfig struct {
	BaseURL       string `envconfig:"CINEBASE_TMDB_URL" required:"true"`
	APIKey        string `envconfig:"CINEBASE_TMDB_API_KEY_V3"`
	BearerToken   string `envconfig:"CINEBASE_TMDB_BEARER_TOKEN"`
	UseBearer     bool   `envconfig:"CINEBASE_TMDB_USE_BEARER" default:"false"`
	Language      string `envconfig:"CINEBASE_TMDB_LANGUAGE" default:"pt-BR"`
	DefaultRegion string `envconfig:"CINEBASE_TMDB_DEFAULT_REGION" default:"BR"`
}
