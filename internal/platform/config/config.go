package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// RedisConfig tunes the profile cache connection.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Config captures everything the server needs from the environment.
// The compiler itself is configuration-free apart from the weight table path;
// everything else wires the service shell.
type Config struct {
	Addr           string
	PostgresDSN    string
	Redis          RedisConfig
	KafkaBrokers   []string
	JWTSigningKey  string
	ServiceKeyHash string
	WeightsPath    string
	CacheTTL       time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		Addr:        envOr("CLAUSEGUARD_ADDR", ":8080"),
		PostgresDSN: os.Getenv("CLAUSEGUARD_POSTGRES_DSN"),
		Redis: RedisConfig{
			URL:          os.Getenv("CLAUSEGUARD_REDIS_URL"),
			PoolSize:     envIntOr("CLAUSEGUARD_REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("CLAUSEGUARD_REDIS_MIN_IDLE", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		KafkaBrokers:   splitNonEmpty(os.Getenv("CLAUSEGUARD_KAFKA_BROKERS")),
		JWTSigningKey:  envOr("CLAUSEGUARD_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		ServiceKeyHash: os.Getenv("CLAUSEGUARD_SERVICE_KEY_HASH"),
		WeightsPath:    os.Getenv("CLAUSEGUARD_WEIGHTS_PATH"),
		CacheTTL:       envDurationOr("CLAUSEGUARD_CACHE_TTL", 15*time.Minute),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
