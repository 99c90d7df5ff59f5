package config

import (
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// loadDotEnv copies variables from ./.env into the process environment.
// Variables that are already set win; a missing file is not an error.
func loadDotEnv() {
	_ = godotenv.Load()
}

// parseEnv overlays cfg with the variables visible through lookup.
// Malformed numeric or duration values are ignored.
//
//	HTTP_ADDR, DATABASE_DSN, SECRET_KEY, SESSION_VALIDITY (e.g. "12h"),
//	APP_NAME, LOG_LEVEL, S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET,
//	S3_REGION, S3_BASE_ENDPOINT, MAX_UPLOAD_SIZE (bytes)
func parseEnv(cfg *Config, lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("HTTP_ADDR", &cfg.EndpointAddrHTTP)
	str("DATABASE_DSN", &cfg.DatabaseDSN)
	str("SECRET_KEY", &cfg.SecretKey)
	str("APP_NAME", &cfg.AppName)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("S3_ROOT_USER", &cfg.S3RootUser)
	str("S3_ROOT_PASSWORD", &cfg.S3RootPassword)
	str("S3_BUCKET", &cfg.S3Bucket)
	str("S3_REGION", &cfg.S3Region)
	str("S3_BASE_ENDPOINT", &cfg.S3BaseEndpoint)

	if v, ok := lookup("SESSION_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SessionValidityDuration = d
		}
	}
	if v, ok := lookup("MAX_UPLOAD_SIZE"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadSize = n
		}
	}
}
