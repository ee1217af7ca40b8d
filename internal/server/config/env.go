package config

import (
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/weatherhub/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from the process environment.
//
// An optional dotenv file is loaded first: the path from the -c/-config flag
// if given, otherwise ".env" in the working directory. A missing file is not
// an error; variables already set in the environment win over file values
// (godotenv.Load never overrides).
//
// Recognized variables:
//
//	ADDRESS                  bind address (e.g. ":3000")
//	PORT                     port shorthand, used when ADDRESS is not set
//	DATABASE_DSN             PostgreSQL DSN
//	JWT_SECRET               token signing secret
//	TOKEN_VALIDITY_MINUTES   session token lifetime, minutes
//	OPENWEATHERMAP_API_KEY   provider API key
//	OPENWEATHERMAP_ENDPOINT  provider base URL
func parseEnv(config *Config) {

	envFile := flagx.EnvFileFlags()
	if envFile == "" {
		envFile = ".env"
	}
	_ = godotenv.Load(envFile)

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	} else if v, ok := os.LookupEnv("PORT"); ok {
		config.EndpointAddr = ":" + v
	}

	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}

	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}

	if v, ok := os.LookupEnv("TOKEN_VALIDITY_MINUTES"); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}

	if v, ok := os.LookupEnv("OPENWEATHERMAP_API_KEY"); ok {
		config.WeatherAPIKey = v
	}

	if v, ok := os.LookupEnv("OPENWEATHERMAP_ENDPOINT"); ok {
		config.WeatherEndpoint = v
	}
}
