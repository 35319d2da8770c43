package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "migrations", cfg.MigrationsPath)
	require.False(t, cfg.MigrateOnStart)
	require.Empty(t, cfg.CORSOrigins)
}

func TestLoad_StoreURLFallback(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("STORE_URL", "")
	t.Setenv("DATABASE_URL", "postgres://db.example.com/dragonfire")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://db.example.com/dragonfire", cfg.StoreURL)
}

func TestLoad_StoreURLPrecedence(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("STORE_URL", "postgres://primary.example.com/dragonfire")
	t.Setenv("DATABASE_URL", "postgres://fallback.example.com/dragonfire")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://primary.example.com/dragonfire", cfg.StoreURL)
}

func TestLoad_KeyFallbacks(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("STORE_READ_KEY", "")
	t.Setenv("STORE_SERVICE_KEY", "")
	t.Setenv("STORE_ANON_KEY", "events_read:readpass")
	t.Setenv("STORE_SECRET_KEY", "events_admin:adminpass")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "events_read:readpass", cfg.StoreReadKey)
	require.Equal(t, "events_admin:adminpass", cfg.StoreServiceKey)
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://dragonfire.example, https://staging.dragonfire.example ,")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"https://dragonfire.example", "https://staging.dragonfire.example"}, cfg.CORSOrigins)
}

func TestLoad_MigrateOnStart(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("MIGRATE_ON_START", "true")
	t.Setenv("MIGRATIONS_PATH", "db/migrations")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.MigrateOnStart)
	require.Equal(t, "db/migrations", cfg.MigrationsPath)
}
