package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	svc := NewConfigServiceWithBus(nil, filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeSidebar, cfg.UI.Theme)
	assert.Equal(t, 200, cfg.UI.SwapDelayMS)
	assert.Equal(t, 50, cfg.UI.RevealDelayMS)
	assert.Equal(t, "https://demismatch.com/api/faq", cfg.Feed.URL)
	assert.Equal(t, 60, cfg.Feed.RevalidateSeconds)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceWithBus(nil, path)

	cfg := DefaultConfig()
	cfg.UI.Theme = ThemeBlocks
	cfg.Feed.File = "faq.yaml"
	cfg.Storage.Backend = "sqlite"
	cfg.Version = 0
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeBlocks, loaded.UI.Theme)
	assert.Equal(t, "faq.yaml", loaded.Feed.File)
	assert.Equal(t, "sqlite", loaded.Storage.Backend)
	assert.Equal(t, CurrentVersion, loaded.Version)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"basic\"\n"), 0o644))

	cfg, err := NewConfigServiceWithBus(nil, path).Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeBasic, cfg.UI.Theme)
	assert.Equal(t, 4, cfg.UI.Lookahead)
	assert.Equal(t, "https://demismatch.com", cfg.Feed.BaseURL)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[ui\n"), 0o644))
	_, err := NewConfigServiceWithBus(nil, broken).Load()
	assert.Error(t, err)

	badTheme := filepath.Join(dir, "theme.toml")
	require.NoError(t, os.WriteFile(badTheme, []byte("[ui]\ntheme = \"neon\"\n"), 0o644))
	_, err = NewConfigServiceWithBus(nil, badTheme).Load()
	assert.ErrorContains(t, err, "neon")
}

func TestValidateRejectsZeroTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Feed.TimeoutSeconds = 0
	assert.ErrorContains(t, cfg.Validate(), "timeout_seconds")
}

func TestValidateNormalisesBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Backend = " SQLite "
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "sqlite", cfg.Storage.Backend)

	cfg.Storage.Backend = "redis"
	assert.ErrorContains(t, cfg.Validate(), "redis")
}

func TestStoragePathPerBackend(t *testing.T) {
	file := StorageSettings{Backend: "file"}
	sqlite := StorageSettings{Backend: "sqlite"}
	assert.Equal(t, filepath.Join(Dir(), "progress.toml"), file.ResolvedPath())
	assert.Equal(t, filepath.Join(Dir(), "progress.db"), sqlite.ResolvedPath())

	sqlite.Path = "/tmp/custom.db"
	assert.Equal(t, "/tmp/custom.db", sqlite.ResolvedPath())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FAQFLIP_THEME", "basic")
	t.Setenv("FAQFLIP_FEED_FILE", "/tmp/faq.json")
	t.Setenv("FAQFLIP_REVALIDATE_SECONDS", "5")
	t.Setenv("FAQFLIP_DEBUG", "true")
	t.Setenv("FAQFLIP_STORAGE", "memory")

	cfg, err := NewConfigServiceWithBus(nil, filepath.Join(t.TempDir(), "none.toml")).Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeBasic, cfg.UI.Theme)
	assert.Equal(t, "/tmp/faq.json", cfg.Feed.File)
	assert.Equal(t, 5, cfg.Feed.RevalidateSeconds)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "memory", cfg.Storage.Backend)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FAQFLIP_TEST_DOTENV=loaded\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("FAQFLIP_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), envFile))
	assert.Equal(t, "loaded", os.Getenv("FAQFLIP_TEST_DOTENV"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}

func TestDurations(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "200ms", cfg.UI.SwapDelay().String())
	assert.Equal(t, "50ms", cfg.UI.RevealDelay().String())
	assert.Equal(t, "1m0s", cfg.Feed.Revalidate().String())
	assert.Equal(t, "15s", cfg.Feed.Timeout().String())
}
