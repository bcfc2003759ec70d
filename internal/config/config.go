package config // package config loads application configuration from environment variables

import (
	"os" // os provides access to environment variables

	"github.com/joho/godotenv" // godotenv loads a .env file into the environment
)

// Defaults applied when the corresponding environment variable is unset or empty.
const (
	defaultPort = "3000" // default HTTP port
	defaultEnv  = "dev"  // default environment label
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The server is stateless, so configuration is
// limited to the listener itself.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on
}

// Load reads configuration values from environment variables and returns a
// Config.  A .env file in the working directory is applied first when one
// exists; a missing file is not an error.  Every variable has a default, so
// Load never fails.
func Load() Config {
	_ = godotenv.Load() // best effort; real env vars take precedence

	return Config{
		Env:  envOr("APP_ENV", defaultEnv), // environment label for the startup log
		Port: envOr("PORT", defaultPort),   // port to bind the HTTP server
	}
}

// envOr retrieves the value of an environment variable, falling back to the
// given default when the variable is unset or empty.
func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
