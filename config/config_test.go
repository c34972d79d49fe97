package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets every required variable to a valid value. Individual
// tests override or unset what they exercise. t.Setenv restores the previous
// values on cleanup, so these tests must not be parallel.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "archon")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "archon_db")
	t.Setenv("JWT_SECRET", "test-signing-secret")
	t.Setenv("ASSISTANT_BASE_URL", "http://localhost:8000")
}

// unsetEnv removes a variable for the duration of the test. t.Setenv records
// the original value for restore; the follow-up Unsetenv makes the variable
// genuinely absent rather than empty.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_POOL_SIZE",
		"JWT_TOKEN_DURATION", "APP_ENV", "PORT", "FRONTEND_ORIGIN",
		"ASSISTANT_TIMEOUT", "CHAT_HISTORY_LIMIT",
	} {
		unsetEnv(t, key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 10, cfg.DB.MaxSize)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.FrontendOrigin)
	assert.Equal(t, EnvDevelopment, cfg.Server.Environment)
	assert.Equal(t, 30*time.Second, cfg.Assistant.Timeout)
	assert.Equal(t, 50, cfg.Chat.HistoryLimit)
}

func TestLoadConfigCollectsAllErrors(t *testing.T) {
	setRequiredEnv(t)
	unsetEnv(t, "DB_USER")
	unsetEnv(t, "JWT_SECRET")
	unsetEnv(t, "ASSISTANT_BASE_URL")
	t.Setenv("DB_PORT", "not-a-number")

	_, err := LoadConfig()
	require.Error(t, err)

	// One aggregated error naming every problem, not just the first.
	msg := err.Error()
	assert.Contains(t, msg, "DB_USER")
	assert.Contains(t, msg, "JWT_SECRET")
	assert.Contains(t, msg, "ASSISTANT_BASE_URL")
	assert.Contains(t, msg, "DB_PORT")
}

func TestLoadConfigInvalidEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "staging")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_ENV")
}

func TestLoadConfigInvalidDuration(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_TOKEN_DURATION", "one day")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_TOKEN_DURATION")
}

func TestLoadConfigClampsHistoryLimit(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  int
	}{
		{"below minimum", "0", 1},
		{"above maximum", "10000", 500},
		{"in range", "200", 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("CHAT_HISTORY_LIMIT", tc.value)

			cfg, err := LoadConfig()
			require.NoError(t, err, "clamping alone must not fail the load")
			assert.Equal(t, tc.want, cfg.Chat.HistoryLimit)
		})
	}
}

func TestLoadConfigClampsPoolSize(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_POOL_SIZE", "1000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.DB.MaxSize)
}

func TestLoadConfigTrimsAssistantBaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ASSISTANT_BASE_URL", "http://localhost:8000/")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Assistant.BaseURL)
}

func TestRegistrationEnabled(t *testing.T) {
	dev := &ServerConfig{Environment: EnvDevelopment}
	prod := &ServerConfig{Environment: EnvProduction}
	assert.True(t, dev.RegistrationEnabled())
	assert.False(t, prod.RegistrationEnabled())
}
