package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
matching:
  amount_tolerance: 0.05
  acceptance_threshold: 0.7
  own_company: Example Company Oy
storage:
  database_path: /tmp/test.db
server:
  port: 9090
  allowed_origins:
    - http://localhost:3000
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.Matching.AmountTolerance)
	assert.Equal(t, "Example Company Oy", cfg.Matching.OwnCompany)
	assert.Equal(t, "/tmp/test.db", cfg.Storage.DatabasePath)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_DB_PATH", "/data/match.db")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  database_path: ${TEST_DB_PATH}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/match.db", cfg.Storage.DatabasePath)
}

func TestLoadOrEnvWithPath_FallsBackToEnv(t *testing.T) {
	t.Setenv("DOCMATCH_DB_PATH", "env.db")
	cfg := LoadOrEnvWithPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, "env.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestToMatcherConfig(t *testing.T) {
	t.Run("defaults when zero", func(t *testing.T) {
		cfg := MatchingConfig{}.ToMatcherConfig()
		assert.True(t, cfg.AmountTolerance.Equal(decimal.NewFromFloat(0.01)))
		assert.Equal(t, 0.60, cfg.AcceptanceThreshold)
		assert.Equal(t, 0.20, cfg.NameMinScore)
	})

	t.Run("overrides applied", func(t *testing.T) {
		cfg := MatchingConfig{
			AmountTolerance:     0.05,
			AcceptanceThreshold: 0.75,
			OwnCompany:          "Example Company Oy",
		}.ToMatcherConfig()
		assert.True(t, cfg.AmountTolerance.Equal(decimal.NewFromFloat(0.05)))
		assert.Equal(t, 0.75, cfg.AcceptanceThreshold)
		assert.Equal(t, "Example Company Oy", cfg.OwnCompany)
	})
}
