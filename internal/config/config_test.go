package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/menuctl/internal/core"
	"github.com/atomicstack/menuctl/internal/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
root = "/srv/roms"
width = 60
footer = true
log_file = "/tmp/menuctl-test.log"

[core]
name = "Snes9x"
version = "1.60"

[settings]
menu_navigation_wraparound = false
browser_size_units = "iec"

[[cores]]
name = "Snes9x"
version = "1.60"
extensions = ["sfc", "smc"]

[[cores]]
name = "Genesis Plus GX"
version = "1.7.4"
extensions = ["md"]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadArgsReadsConfigFile(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	cfg, err := LoadArgs([]string{"-config", path}, nil)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, "/srv/roms", cfg.App.Root)
	assert.Equal(t, 60, cfg.App.Width)
	assert.True(t, cfg.App.ShowFooter)
	assert.Equal(t, "/tmp/menuctl-test.log", cfg.Logging.FilePath)
	assert.Equal(t, menu.CoreInfo{Name: "Snes9x", Version: "1.60"}, cfg.App.Core)
	assert.Equal(t, []core.Definition{
		{Name: "Snes9x", Version: "1.60", Extensions: []string{"sfc", "smc"}},
		{Name: "Genesis Plus GX", Version: "1.7.4", Extensions: []string{"md"}},
	}, cfg.App.Cores)
	assert.Equal(t, "iec", cfg.App.Settings["browser_size_units"])
	assert.Contains(t, []string{"0", "false"}, cfg.App.Settings["menu_navigation_wraparound"])
}

func TestLoadArgsPrecedence(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	environ := []string{
		envConfigFile + "=" + path,
		envWidth + "=70",
		envHeight + "=20",
		envVerbose + "=true",
	}

	cfg, err := LoadArgs(nil, environ)
	require.NoError(t, err)
	assert.Equal(t, 70, cfg.App.Width, "environment overrides the file")
	assert.Equal(t, 20, cfg.App.Height)
	assert.True(t, cfg.App.Verbose)

	cfg, err = LoadArgs([]string{"-width", "90", "-verbose=false"}, environ)
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.App.Width, "flags override the environment")
	assert.False(t, cfg.App.Verbose)
	assert.Equal(t, 20, cfg.App.Height)
	assert.Equal(t, "90", cfg.Flags["width"])
}

func TestLoadArgsIgnoresInvalidEnvironment(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	cfg, err := LoadArgs(nil, []string{envConfigFile + "=" + path, envWidth + "=wide", envTrace + "=maybe"})
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.App.Width)
	assert.False(t, cfg.Logging.Trace)
}

func TestLoadArgsResolvesRoot(t *testing.T) {
	path := writeConfig(t, "")
	dir := t.TempDir()
	cfg, err := LoadArgs([]string{"-config", path, "-root", dir}, nil)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.App.Root)

	cfg, err = LoadArgs([]string{"-config", path}, nil)
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, cfg.App.Root)
}

func TestLoadArgsErrors(t *testing.T) {
	path := writeConfig(t, "")

	_, err := LoadArgs([]string{"-config", filepath.Join(t.TempDir(), "missing.toml")}, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadArgs([]string{"-config", path, "-width", "-1"}, nil)
	assert.Error(t, err)

	_, err = LoadArgs([]string{"-config", path, "-nope"}, nil)
	assert.Error(t, err)

	bad := writeConfig(t, "width = [")
	_, err = LoadArgs([]string{"-config", bad}, nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{}
	cfg.App.Root = dir
	assert.NoError(t, Validate(cfg))

	cfg.App.Cores = []core.Definition{{Name: "", Extensions: nil}}
	assert.Error(t, Validate(cfg))

	filePath := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(filePath, nil, 0o644))
	cfg = Config{}
	cfg.App.Root = filePath
	assert.ErrorIs(t, Validate(cfg), errNotDirectory)

	cfg.App.Root = filepath.Join(dir, "missing")
	assert.ErrorIs(t, Validate(cfg), os.ErrNotExist)
}
