// Package config
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Address        string
	SampleInterval time.Duration
	NetDevPath     string
	RootFSPath     string
	DBPath         string
	JWTSecret      string
	JWTExpiry      time.Duration
	AllowedOrigins []string
	AdminEmail     string
	AdminPassword  string
	LogLevel       string
	LogFormat      string
}

func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		Address:        getEnv("HTTP_ADDR", ":3000"),
		NetDevPath:     getEnv("PROC_NET_DEV", "/proc/net/dev"),
		RootFSPath:     getEnv("ROOT_FS_PATH", "/"),
		DBPath:         getEnv("DB_PATH", "pulsedeck.db"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		SampleInterval: time.Second,
		JWTExpiry:      24 * time.Hour,
	}

	if raw := os.Getenv("SAMPLE_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			cfg.SampleInterval = parsed
		}
	}

	if raw := os.Getenv("JWT_EXPIRY"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			cfg.JWTExpiry = parsed
		}
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
