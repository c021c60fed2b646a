package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoproute/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, config.SourceFile, cfg.Source)
	assert.Equal(t, "routes.json", cfg.Routes.Path)
	assert.Equal(t, 10*time.Second, cfg.GTFSRT.Timeout())
	require.NotNil(t, cfg.Builder.DefaultDistanceKM)
	assert.Equal(t, 1.0, *cfg.Builder.DefaultDistanceKM)
	assert.False(t, cfg.Builder.QuietSkips)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Full(t *testing.T) {
	p := writeConfig(t, `
source: gtfsrt
routes:
  path: data/routes.yaml
  format: yaml
gtfsrt:
  tripUpdatesURL: https://feeds.example.org/tripupdates.pb
  timeoutMS: 2500
  routeKM: 3.5
builder:
  defaultDistanceKM: 0
  quietSkips: true
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, config.SourceGTFSRT, cfg.Source)
	assert.Equal(t, "yaml", cfg.Routes.Format)
	assert.Equal(t, 2500*time.Millisecond, cfg.GTFSRT.Timeout())
	require.NotNil(t, cfg.GTFSRT.RouteKM)
	assert.Equal(t, 3.5, *cfg.GTFSRT.RouteKM)
	require.NotNil(t, cfg.Builder.DefaultDistanceKM)
	assert.Equal(t, 0.0, *cfg.Builder.DefaultDistanceKM, "explicit zero is kept")
	assert.True(t, cfg.Builder.QuietSkips)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown source":     "source: ftp\n",
		"bad url":            "gtfsrt:\n  tripUpdatesURL: not a url\n",
		"negative timeout":   "gtfsrt:\n  timeoutMS: -5\n",
		"negative distance":  "builder:\n  defaultDistanceKM: -1\n",
		"bad format":         "routes:\n  format: csv\n",
		"gtfsrt without url": "source: gtfsrt\n",
		"mysql without dsn":  "source: mysql\n",
		"unknown field":      "colour: blue\n",
		"malformed yaml":     "source: [file\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_SearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("source: mysql\nmysql:\n  dsn: u:p@tcp(db:3306)/transit\n"), 0o600))
	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.SourceMySQL, cfg.Source)
	assert.Equal(t, "u:p@tcp(db:3306)/transit", cfg.MySQL.DSN)
}
