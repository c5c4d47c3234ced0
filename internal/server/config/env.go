package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from a .env file (if present in the working
// directory) and from process environment variables. Real environment
// variables win over .env entries, which godotenv guarantees by never
// overwriting variables that are already set.
//
// Recognized variables:
//
//	ADDRESS          bind address (e.g. ":3000"); PORT is accepted as a
//	                 shorthand when ADDRESS is unset
//	DATABASE_DSN     PostgreSQL DSN
//	JWT_SECRET       HMAC signing secret
//	TOKEN_TTL        token validity, Go duration syntax (e.g. "2h")
//	DB_QUERY_TIMEOUT storage call timeout, Go duration syntax (e.g. "3s")
func parseEnv(config *Config) {
	// Missing .env is fine; only the process environment applies then.
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.Addr = v
	} else if v, ok := os.LookupEnv("PORT"); ok {
		config.Addr = ":" + v
	}

	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}

	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}

	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenTTL = d
		}
	}

	if v, ok := os.LookupEnv("DB_QUERY_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.DBQueryTimeout = d
		}
	}
}
