package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "localmarket-backend", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "/assets/images", cfg.Storage.PublicBase)
	assert.EqualValues(t, 10<<20, cfg.Media.MaxUploadBytes)
	assert.EqualValues(t, 1<<20, cfg.Media.MaxStoredBytes)
	assert.Equal(t, 80, cfg.Media.QualityStart)
	assert.Equal(t, 20, cfg.Media.QualityMin)
	assert.Equal(t, []int{1200, 1000, 800}, cfg.Media.MaxDimensions)
}

func TestValidate(t *testing.T) {
	t.Run("s3 driver requires bucket and region", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.Storage.Driver = "s3"

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "s3_bucket")
	})

	t.Run("unknown storage driver rejected", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.Storage.Driver = "ftp"

		err := cfg.validate()
		require.Error(t, err)
	})

	t.Run("production requires database password", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.App.Env = "production"
		cfg.Database.SSLMode = "require"

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("development defaults pass", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		require.NoError(t, cfg.validate())
	})
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "market",
		Password: "p@ss/word",
		DBName:   "localmarket",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// special characters in the password must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}
