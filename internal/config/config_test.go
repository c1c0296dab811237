package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_PATH", "/tmp/test-store.db")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("JWT_SECRET", "test-secret")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "/tmp/test-store.db", cfg.DBPath)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "test-secret", cfg.JWTSecret)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DB_PATH", "")
		t.Setenv("APP_PORT", "")
		t.Setenv("APP_ENV", "")

		cfg := LoadConfig()

		assert.Equal(t, "bookstore.db", cfg.DBPath)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "development", cfg.AppEnv)
	})
}
