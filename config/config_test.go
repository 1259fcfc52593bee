package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, 1880, cfg.Web.Port)
	assert.NotEmpty(t, cfg.Smtp.Host)
}

func TestLoadConfigFromFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	cfile := filepath.Join(dir, "storefront.yml")
	data := `
system:
  workdir: /tmp/storefront
web:
  host: 127.0.0.1
  port: 9090
database:
  type: sqlite
smtp:
  host: mail.example.com
  port: 587
`
	require.NoError(t, os.WriteFile(cfile, []byte(data), 0o644))

	t.Setenv("STOREFRONT_WEB_PORT", "9191")
	t.Setenv("STOREFRONT_DB_TYPE", "postgres")

	cfg := LoadConfig(cfile)
	assert.Equal(t, "127.0.0.1", cfg.Web.Host)
	// env override wins over the file value
	assert.Equal(t, 9191, cfg.Web.Port)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "mail.example.com", cfg.Smtp.Host)
	// filename defaults under workdir when unset
	assert.Equal(t, "/tmp/storefront/storefront.log", cfg.Logger.Filename)
}
