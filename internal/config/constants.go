package config

// Environment names
const (
	EnvDev        = "dev"
	EnvStaging    = "staging"
	EnvProduction = "prod"
	EnvTest       = "test"
)

// Cache backends
const (
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
)

// MinSessionSecretLength matches the HMAC key size the session tokens are signed with
const MinSessionSecretLength = 32

// Error messages
const (
	ErrMsgLoadFailed            = "failed to load config: %w"
	ErrMsgSessionSecretRequired = "SESSION_SECRET must be set outside dev mode"
	ErrMsgSessionSecretShort    = "SESSION_SECRET must be at least %d bytes"
	ErrMsgInvalidPort           = "PORT must be between 1 and 65535, got %d"
	ErrMsgInvalidCacheType      = "CACHE_TYPE must be %q or %q, got %q"
	ErrMsgInvalidMaxConns       = "DB_MAX_CONNS must be positive, got %d"
	ErrMsgInvalidRetention      = "ACTIVITY_RETENTION_DAYS must not be negative, got %d"
	ErrMsgInvalidInterval       = "%s must be positive, got %s"
)
