package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load parses os.Args for the --config flag, so tests pin the args
// to avoid choking on the go test flags.
func pinArgs(t *testing.T) {
	t.Helper()
	origArgs := os.Args
	os.Args = []string{"shopease"}
	t.Cleanup(func() { os.Args = origArgs })
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		pinArgs(t)

		cfg := config.Load()

		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
		assert.Equal(t, ":3000", cfg.HTTPServerAddr)
		assert.Equal(t, 10, cfg.SQLDB.MaxOpenConns)
		assert.Contains(t, cfg.SQLDB.DSN, "postgres://")
	})

	t.Run("ConfigFile", func(t *testing.T) {
		pinArgs(t)

		content := `
log_level: -4
http_server_addr: ":8081"
sql_db:
  dsn: "postgres://user:secret@db:5432/shopease?sslmode=disable"
  max_open_conns: 5
`
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		t.Setenv("SHOPEASE_CONFIG_FILE", path)

		cfg := config.Load()

		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.Equal(t, ":8081", cfg.HTTPServerAddr)
		assert.Equal(t, 5, cfg.SQLDB.MaxOpenConns)
		assert.Equal(t,
			"postgres://user:secret@db:5432/shopease?sslmode=disable",
			cfg.SQLDB.DSN)
	})

	t.Run("EnvOverride", func(t *testing.T) {
		pinArgs(t)
		t.Setenv("SHOPEASE_HTTP_SERVER_ADDR", ":4000")

		cfg := config.Load()

		assert.Equal(t, ":4000", cfg.HTTPServerAddr)
	})
}
