package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration
type Config struct {
	Port            int           `envconfig:"PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	MaxRequestBytes int64         `envconfig:"MAX_REQUEST_BYTES" default:"1048576"`
	CORSOrigins     []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	TrustedProxies  []string      `envconfig:"TRUSTED_PROXIES"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text"`
	LogDir      string `envconfig:"LOG_DIR" default:"logs"`
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`
	Version     string `envconfig:"VERSION" default:"dev"`
	DevMode     bool   `envconfig:"DEV_MODE" default:"false"`

	DBUser             string        `envconfig:"DB_USER" default:"postgres"`
	DBPassword         string        `envconfig:"DB_PASSWORD" default:"postgres"`
	DBHost             string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort             string        `envconfig:"DB_PORT" default:"5432"`
	DBName             string        `envconfig:"DB_NAME" default:"questboard"`
	DBSSLMode          string        `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns         int           `envconfig:"DB_MAX_CONNS" default:"20"`
	DBMaxConnIdleTime  time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"5m"`
	DBMaxConnLifetime  time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	DBStatementTimeout time.Duration `envconfig:"DB_STATEMENT_TIMEOUT" default:"5s"`
	DBLockTimeout      time.Duration `envconfig:"DB_LOCK_TIMEOUT" default:"2s"`

	SessionSecret string        `envconfig:"SESSION_SECRET"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"168h"`

	CacheType     string `envconfig:"CACHE_TYPE" default:"memory"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	CatalogTTL             time.Duration `envconfig:"CATALOG_TTL" default:"10m"`
	CatalogRefreshInterval time.Duration `envconfig:"CATALOG_REFRESH_INTERVAL" default:"5m"`
	ActivityRetentionDays  int           `envconfig:"ACTIVITY_RETENTION_DAYS" default:"30"`
	ActivityCleanupEvery   time.Duration `envconfig:"ACTIVITY_CLEANUP_INTERVAL" default:"24h"`
}

// Load loads the configuration from environment variables and validates it
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadFailed, err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot check on its own
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf(ErrMsgInvalidPort, c.Port)
	}
	if c.DBMaxConns <= 0 {
		return fmt.Errorf(ErrMsgInvalidMaxConns, c.DBMaxConns)
	}
	if c.CacheType != CacheTypeMemory && c.CacheType != CacheTypeRedis {
		return fmt.Errorf(ErrMsgInvalidCacheType, CacheTypeMemory, CacheTypeRedis, c.CacheType)
	}
	if c.ActivityRetentionDays < 0 {
		return fmt.Errorf(ErrMsgInvalidRetention, c.ActivityRetentionDays)
	}

	for name, d := range map[string]time.Duration{
		"SESSION_TTL":               c.SessionTTL,
		"CATALOG_REFRESH_INTERVAL":  c.CatalogRefreshInterval,
		"ACTIVITY_CLEANUP_INTERVAL": c.ActivityCleanupEvery,
	} {
		if d <= 0 {
			return fmt.Errorf(ErrMsgInvalidInterval, name, d)
		}
	}

	if c.SessionSecret == "" {
		if !c.IsDev() {
			return errors.New(ErrMsgSessionSecretRequired)
		}
	} else if len(c.SessionSecret) < MinSessionSecretLength {
		return fmt.Errorf(ErrMsgSessionSecretShort, MinSessionSecretLength)
	}

	return nil
}

// IsDev reports whether development-only features are enabled
func (c *Config) IsDev() bool {
	return c.DevMode || c.Environment == EnvDev
}

// DBConnString returns the PostgreSQL connection string.
// Statement and lock timeouts are passed as runtime parameters so every pooled
// connection starts with them.
func (c *Config) DBConnString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}

	q := url.Values{}
	q.Set("sslmode", c.DBSSLMode)
	if c.DBStatementTimeout > 0 {
		q.Set("statement_timeout", strconv.FormatInt(c.DBStatementTimeout.Milliseconds(), 10))
	}
	if c.DBLockTimeout > 0 {
		q.Set("lock_timeout", strconv.FormatInt(c.DBLockTimeout.Milliseconds(), 10))
	}
	u.RawQuery = q.Encode()

	return u.String()
}
