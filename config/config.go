// Package config provides configuration management for the archon backend.
// It handles loading and validation of configuration values from environment
// variables, with support for required variables, default values, and
// collective error reporting: every problem found while loading is gathered
// and reported in a single error, so a misconfigured deployment fails fast
// with the full picture instead of one variable at a time.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment mode values recognized in APP_ENV. The mode gates the
// registration endpoint: provisioning is only available outside production.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// PoolConfig represents configuration for the database connection pool.
type PoolConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxSize  int
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret     string        // Secret key for signing JWTs
	TokenDuration time.Duration // Lifetime of issued tokens
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port           string // Port for the HTTP server
	FrontendOrigin string // Allowed CORS origin for the React frontend
	Environment    string // EnvDevelopment or EnvProduction
}

// AssistantConfig holds configuration for the upstream inference service the
// chat endpoint relays to.
type AssistantConfig struct {
	BaseURL string        // Base URL of the assistant service
	Timeout time.Duration // Bound on a single relay call
}

// ChatConfig holds chat-history tuning knobs.
type ChatConfig struct {
	HistoryLimit int // Max records returned by the recent-chats read path
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB        *PoolConfig
	Auth      *AuthConfig
	Server    *ServerConfig
	Assistant *AssistantConfig
	Chat      *ChatConfig
}

// getRequiredEnv returns a required environment variable, appending to the
// errors slice when it is missing.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv returns an environment variable or the given default.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt returns an environment variable parsed as an int.
// Uses defaultValue if not set; appends an error if the value does not parse.
func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// getOptionalEnvDuration returns an environment variable parsed as a
// time.Duration ("30s", "24h"). Uses defaultValue if not set; appends an
// error if the value does not parse.
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampInt keeps an integer configuration value inside [min, max], recording
// a note in the errors slice when clamping occurred. Clamping is reported but
// not fatal: the collected messages only fail the load when a required value
// is missing or unparsable.
func clampInt(value, min, max int, varName string, notes *[]string) int {
	if value < min {
		*notes = append(*notes, fmt.Sprintf("%s (%d) is less than minimum %d, clamping to %d", varName, value, min, min))
		return min
	}
	if value > max {
		*notes = append(*notes, fmt.Sprintf("%s (%d) is greater than maximum %d, clamping to %d", varName, value, max, max))
		return max
	}
	return value
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading
// and returns a single aggregated error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string
	var notes []string

	// Database configuration
	dbUser := getRequiredEnv("DB_USER", &errors)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errors)
	dbName := getRequiredEnv("DB_NAME", &errors)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errors)
	poolSize := clampInt(getOptionalEnvInt("DB_POOL_SIZE", 10, &errors), 2, 50, "DB_POOL_SIZE", &notes)

	dbConfig := &PoolConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		MaxSize:  poolSize,
	}

	// Auth configuration. The signing secret is injected here and nowhere
	// else; the token codec receives it as an explicit value at startup.
	// The 24h default matches the token lifetime the frontend expects.
	jwtSecret := getRequiredEnv("JWT_SECRET", &errors)
	tokenDuration := getOptionalEnvDuration("JWT_TOKEN_DURATION", 24*time.Hour, &errors)

	authConfig := &AuthConfig{
		JWTSecret:     jwtSecret,
		TokenDuration: tokenDuration,
	}

	// Server configuration
	environment := getOptionalEnv("APP_ENV", EnvDevelopment)
	if environment != EnvDevelopment && environment != EnvProduction {
		errors = append(errors, fmt.Sprintf("invalid value for APP_ENV: expected '%s' or '%s', got '%s'", EnvDevelopment, EnvProduction, environment))
	}
	serverConfig := &ServerConfig{
		Port:           getOptionalEnv("PORT", "4000"),
		FrontendOrigin: getOptionalEnv("FRONTEND_ORIGIN", "*"),
		Environment:    environment,
	}

	// Assistant (upstream inference) configuration
	assistantConfig := &AssistantConfig{
		BaseURL: strings.TrimRight(getRequiredEnv("ASSISTANT_BASE_URL", &errors), "/"),
		Timeout: getOptionalEnvDuration("ASSISTANT_TIMEOUT", 30*time.Second, &errors),
	}

	// Chat configuration. History grows without bound on the write side;
	// the read path is explicitly bounded here.
	chatConfig := &ChatConfig{
		HistoryLimit: clampInt(getOptionalEnvInt("CHAT_HISTORY_LIMIT", 50, &errors), 1, 500, "CHAT_HISTORY_LIMIT", &notes),
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(append(errors, notes...), "\n- "))
	}

	return &AppConfig{
		DB:        dbConfig,
		Auth:      authConfig,
		Server:    serverConfig,
		Assistant: assistantConfig,
		Chat:      chatConfig,
	}, nil
}

// RegistrationEnabled reports whether the provisioning endpoint may be used.
// Registration is a trusted-environment operation and is shut off entirely
// when the process runs in production mode.
func (c *ServerConfig) RegistrationEnabled() bool {
	return c.Environment != EnvProduction
}
