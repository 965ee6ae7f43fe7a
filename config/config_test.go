package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leeforge/resolution/catalog"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func testOptions(dir string) Options {
	return Options{
		BasePath: dir,
		FileName: "config",
		FileType: "yaml",
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", "catalog: tiered\n")

	settings, err := LoadSettings(testOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, "tiered", settings.Catalog)
	assert.Equal(t, int64(2000), settings.Resolver.FallbackDistance)
	assert.Equal(t, int64(8_000_000), settings.Resolver.TierPixels4K)
	assert.Equal(t, 1696, settings.Resolver.PinWidth)
	assert.Equal(t, "info", settings.Logging.Level)
}

func TestLoadSettingsOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", `
catalog: legacy
resolver:
  fallback-distance: 8000
logging:
  level: debug
`)

	settings, err := LoadSettings(testOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, "legacy", settings.Catalog)
	assert.Equal(t, int64(8000), settings.Resolver.FallbackDistance)
	assert.Equal(t, "debug", settings.Logging.Level)
	// Untouched knobs keep their defaults.
	assert.Equal(t, int64(2_000_000), settings.Resolver.TierPixels2K)
}

func TestLocalFileWins(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", "catalog: tiered\n")
	writeConfig(t, dir, "config.local.yaml", "catalog: legacy\n")

	settings, err := LoadSettings(testOptions(dir))
	require.NoError(t, err)
	assert.Equal(t, "legacy", settings.Catalog)
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", "catalog: tiered\n")

	t.Setenv("RESOLUTION_CATALOG", "legacy")

	opts := testOptions(dir)
	opts.EnvPrefix = "RESOLUTION"

	settings, err := LoadSettings(opts)
	require.NoError(t, err)
	assert.Equal(t, "legacy", settings.Catalog)
}

func TestLoadSettingsRejectsBadPolicy(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", `
catalog: tiered
resolver:
  fallback-distance: -1
`)

	_, err := LoadSettings(testOptions(dir))
	assert.Error(t, err)
}

func TestLoadSettingsRejectsUnknownCatalog(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", "catalog: missing\n")

	_, err := LoadSettings(testOptions(dir))
	assert.Error(t, err)
}

func TestLoadSettingsCatalogFile(t *testing.T) {
	defer catalog.Clear()

	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`{
		"name": "from-file",
		"tiers": [{"name": "only", "buckets": [{"width": 1024, "height": 1024}]}]
	}`), 0o644))

	writeConfig(t, dir, "config.yaml", `
catalog: from-file
catalog-file: `+catalogPath+`
`)

	settings, err := LoadSettings(testOptions(dir))
	require.NoError(t, err)
	assert.Equal(t, "from-file", settings.Catalog)

	cat, err := catalog.Get("from-file")
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, cat.TierNames())
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(testOptions(filepath.Join(t.TempDir(), "missing")))
	assert.Error(t, err)
}
