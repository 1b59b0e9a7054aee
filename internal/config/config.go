package config

import (
	"os"
	"strconv"
	"time"
)

// Environment names accepted in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is the process-wide settings snapshot. It is built once at startup
// from environment variables and passed to each component at construction
// time; nothing reads the environment after Load returns.
type Config struct {
	Port        int
	Env         string
	EnableRedis bool
	RedisURL    string

	CacheTTL time.Duration

	// UserStore selects the resolver backing: "memory" or "sqlite".
	UserStore  string
	SQLitePath string

	AuthEnabled bool
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	LogDir string

	RequestTimeout time.Duration
	ShutdownGrace  time.Duration
}

// Load reads the environment and applies defaults for absent or empty
// variables. Malformed numeric or boolean values also fall back to their
// defaults rather than aborting startup.
func Load() Config {
	return Config{
		Port:        getEnvInt("PORT", 4000),
		Env:         getEnv("APP_ENV", EnvDevelopment),
		EnableRedis: getEnvBool("ENABLE_REDIS", false),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),

		CacheTTL: time.Duration(getEnvInt("CACHE_TTL_SECONDS", 3600)) * time.Second,

		UserStore:  getEnv("USER_STORE", "memory"),
		SQLitePath: getEnv("SQLITE_PATH", "bff-users.db"),

		AuthEnabled: getEnvBool("AUTH_ENABLED", false),
		JWTSecret:   getEnv("JWT_SECRET", "development-insecure-secret-change-me"),
		JWTIssuer:   getEnv("JWT_ISSUER", "graphql-bff-api"),
		JWTAudience: getEnv("JWT_AUDIENCE", "graphql-bff-clients"),

		LogDir: getEnv("LOG_DIR", "logs"),

		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		ShutdownGrace:  time.Duration(getEnvInt("SHUTDOWN_GRACE_SECONDS", 10)) * time.Second,
	}
}

// Production reports whether the service runs with production settings.
func (c Config) Production() bool {
	return c.Env == EnvProduction
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
