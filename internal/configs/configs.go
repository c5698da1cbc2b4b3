/*
Package configs loads the server and client settings from environment variables.

Both binaries call godotenv first, so a local .env file can supply any of the variables
below. The server reads the running environment, listen port, CORS origins, JWT secret,
database DSN, auth rate limits, proxy trust and the optional Ark model; the terminal client reads the
API base URL, token file location, request timeout and debug flag.
*/
package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	EnvDevelopment = "development"

	defaultPort      = 5000
	defaultAuthRate  = 0.2
	defaultAuthBurst = 5

	DefaultAPIURL        = "http://localhost:5000/api"
	DefaultClientTimeout = 15 * time.Second

	devJWTSecret = "dev_insecure_secret_change_me"
)

// AppConfig contains all configuration parameters required for the server to run.
type AppConfig struct {
	// General Server Settings
	Environment string
	Port        int

	// Security Settings
	AllowedOrigins []string
	JWTSecret      string
	AuthRate       float64
	AuthBurst      int
	// TrustProxy takes the client IP from X-Forwarded-For / X-Real-IP. Enable only
	// behind a reverse proxy that overwrites those headers.
	TrustProxy bool

	// Database Settings. Empty selects the in-memory store.
	DatabaseDSN string

	// Chatbot Settings. The LLM responder is used only when key and model are set.
	ArkAPIKey  string
	ArkModel   string
	ArkBaseURL string
	ArkRegion  string
}

// IsDevelopment reports whether the server runs in the development environment.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// LoadConfig reads and validates the server configuration.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Server Settings ---
	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = EnvDevelopment
	}

	port, err := intEnv("PORT", defaultPort)
	if err != nil {
		return nil, err
	}
	if port < 1024 || port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", port, 1024, 65535)
	}
	cfg.Port = port

	// --- Security Settings ---
	cfg.AllowedOrigins = splitList(os.Getenv("ALLOWED_ORIGINS"))

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("JWT_SECRET environment variable is required in %s environment for security", cfg.Environment)
		}
		cfg.JWTSecret = devJWTSecret
	}

	if cfg.AuthRate, err = floatEnv("AUTH_RATE", defaultAuthRate); err != nil {
		return nil, err
	}
	if cfg.AuthBurst, err = intEnv("AUTH_BURST", defaultAuthBurst); err != nil {
		return nil, err
	}
	if cfg.AuthRate <= 0 || cfg.AuthBurst < 1 {
		return nil, fmt.Errorf("AUTH_RATE and AUTH_BURST must be positive")
	}
	if cfg.TrustProxy, err = boolEnv("TRUST_PROXY"); err != nil {
		return nil, err
	}

	// --- Database Settings ---
	cfg.DatabaseDSN = os.Getenv("DATABASE_URL")
	if cfg.DatabaseDSN == "" && !cfg.IsDevelopment() {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required in %s environment", cfg.Environment)
	}

	// --- Chatbot Settings ---
	cfg.ArkAPIKey = os.Getenv("ARK_API_KEY")
	cfg.ArkModel = os.Getenv("ARK_MODEL")
	cfg.ArkBaseURL = os.Getenv("ARK_BASE_URL")
	cfg.ArkRegion = os.Getenv("ARK_REGION")

	return cfg, nil
}

// ClientConfig holds the settings of the terminal client.
type ClientConfig struct {
	APIURL    string
	TokenFile string
	Timeout   time.Duration
	Debug     bool
}

// LoadClientConfig reads the client configuration. The token file defaults to
// $HOME/.gametracker/session.json.
func LoadClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{
		APIURL:    strings.TrimRight(os.Getenv("TRACKER_API_URL"), "/"),
		TokenFile: os.Getenv("TRACKER_TOKEN_FILE"),
		Timeout:   DefaultClientTimeout,
	}

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	if cfg.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory for token file: %w", err)
		}
		cfg.TokenFile = filepath.Join(home, ".gametracker", "session.json")
	}

	if v := os.Getenv("TRACKER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid TRACKER_TIMEOUT %q: expected a positive duration such as 15s", v)
		}
		cfg.Timeout = d
	}

	debug, err := boolEnv("TRACKER_DEBUG")
	if err != nil {
		return nil, err
	}
	cfg.Debug = debug

	return cfg, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return n, nil
}

func boolEnv(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return b, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return f, nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
