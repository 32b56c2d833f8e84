package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOT_TOKEN", "BOT_PASSWORD", "API_ADDR",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			envValue:     "",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.envValue)

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name        string
		botToken    string
		botPassword string
		dbPassword  string
		expectedErr string
	}{
		{
			name:        "missing bot token",
			botPassword: "secret",
			dbPassword:  "dbpass",
			expectedErr: "BOT_TOKEN",
		},
		{
			name:        "missing bot password",
			botToken:    "token",
			dbPassword:  "dbpass",
			expectedErr: "BOT_PASSWORD",
		},
		{
			name:        "missing db password",
			botToken:    "token",
			botPassword: "secret",
			expectedErr: "DB_PASSWORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("BOT_TOKEN", tt.botToken)
			t.Setenv("BOT_PASSWORD", tt.botPassword)
			t.Setenv("DB_PASSWORD", tt.dbPassword)

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("BOT_PASSWORD", "test_password")
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "test_password", cfg.BotPassword)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "operkassa", cfg.Database.Name)
	assert.Equal(t, "operkassa", cfg.Database.User)
}

func TestLoadAPI(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := LoadAPI()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	// Bot credentials are not required for the read API
	assert.Equal(t, ":8080", cfg.Addr)

	t.Setenv("API_ADDR", ":9090")

	cfg, err = LoadAPI()
	assert.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestLoadAPI_MissingDBPassword(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadAPI()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}
