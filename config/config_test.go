package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "flashdeck.db", cfg.DBURL)
	assert.Equal(t, 10, cfg.ShareIDLength)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Origins())
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("FLASHDECK_PORT", "9090")
	t.Setenv("FLASHDECK_DB_DRIVER", "postgres")
	t.Setenv("FLASHDECK_DB_URL", "postgres://localhost/flashdeck")
	t.Setenv("FLASHDECK_SHARE_ID_LENGTH", "16")
	t.Setenv("FLASHDECK_ENVIRONMENT", "production")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "postgres://localhost/flashdeck", cfg.DBURL)
	assert.Equal(t, 16, cfg.ShareIDLength)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadFlagsWinOverEnvironment(t *testing.T) {
	t.Setenv("FLASHDECK_PORT", "9090")
	t.Setenv("FLASHDECK_LOG_LEVEL", "warn")

	cfg, err := Load([]string{"--port", "7070", "--allowed-origins", " https://a.example , ,https://b.example"})
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	cases := map[string][]string{
		"unknown driver":    {"--db-driver", "mysql"},
		"empty dsn":         {"--db-url", ""},
		"zero share length": {"--share-id-length", "0"},
		"unknown flag":      {"--nope"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(args)
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(Config{LogLevel: "debug", Environment: EnvProduction})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger(Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestOpenMigratesSQLite(t *testing.T) {
	db, err := Connect(Config{DBDriver: DriverSQLite, DBURL: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	for _, table := range []string{"decks", "cards", "study_sessions"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	_, err = Open("mysql", "x")
	assert.Error(t, err)
}

func TestSQLiteDSNEnablesForeignKeys(t *testing.T) {
	assert.Equal(t, "file.db?_foreign_keys=on", sqliteDSN("file.db"))
	assert.Equal(t, "file.db?cache=shared&_foreign_keys=on", sqliteDSN("file.db?cache=shared"))
}
