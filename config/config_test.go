package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
store:
  db_path: /tmp/test.sqlite
report:
  timezone: America/New_York
payout:
  policy: settled
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.sqlite", cfg.Store.DBPath)
	assert.Equal(t, "America/New_York", cfg.Report.Timezone)
	assert.Equal(t, "settled", cfg.Payout.Policy)
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
  "store": {"db_path": "/tmp/test.sqlite"},
  "report": {"timezone": "UTC"},
  "payout": {"policy": "all"}
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "all", cfg.Payout.Policy)
}

func TestValidateFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing db path", func(c *Config) { c.Store.DBPath = "" }, "db_path"},
		{"missing timezone", func(c *Config) { c.Report.Timezone = "" }, "timezone"},
		{"bad timezone", func(c *Config) { c.Report.Timezone = "Mars/Olympus" }, "timezone"},
		{"bad policy", func(c *Config) { c.Payout.Policy = "sometimes" }, "policy"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "roundtrip.yaml")

	cfg := Default()
	cfg.Report.Timezone = "Europe/Paris"
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
