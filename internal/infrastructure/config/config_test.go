package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shipdesk-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "redis", cfg.Picking.ProgressStore)
	assert.Zero(t, cfg.Picking.DefaultLimit)
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins, "no cross-origin access until configured")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SHIPDESK_DATABASE_HOST", "db.internal")
	t.Setenv("SHIPDESK_PICKING_DEFAULT_LIMIT", "50")
	t.Setenv("SHIPDESK_PICKING_PROGRESS_STORE", "database")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 50, cfg.Picking.DefaultLimit)
	assert.Equal(t, "database", cfg.Picking.ProgressStore)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, base().validate())
	})

	t.Run("idle conns cannot exceed open conns", func(t *testing.T) {
		cfg := base()
		cfg.Database.MaxIdleConns = 100
		assert.Error(t, cfg.validate())
	})

	t.Run("unknown progress store rejected", func(t *testing.T) {
		cfg := base()
		cfg.Picking.ProgressStore = "tape"
		assert.Error(t, cfg.validate())
	})

	t.Run("negative picking limit rejected", func(t *testing.T) {
		cfg := base()
		cfg.Picking.DefaultLimit = -1
		assert.Error(t, cfg.validate())
	})

	t.Run("sampling ratio range enforced", func(t *testing.T) {
		cfg := base()
		cfg.Telemetry.SamplingRatio = 1.5
		assert.Error(t, cfg.validate())
	})

	t.Run("production requirements", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		assert.Error(t, cfg.validate(), "missing password")

		cfg.Database.Password = "secret"
		assert.Error(t, cfg.validate(), "sslmode disable")

		cfg.Database.SSLMode = "require"
		assert.NoError(t, cfg.validate())

		cfg.Picking.ProgressStore = "memory"
		assert.Error(t, cfg.validate(), "memory progress store")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "shipdesk",
		SSLMode:  "disable",
	}
	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%2Fword", "password is escaped")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}
