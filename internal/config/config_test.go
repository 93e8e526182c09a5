package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoot(t *testing.T) {
	wd, _ := os.Getwd()
	assert.Equal(t, wd, DefaultRoot())
}

func TestLoadCreatesDefault(t *testing.T) {
	tmp := t.TempDir()
	cfg, err := Load(tmp)
	require.NoError(t, err)

	assert.Equal(t, "archey", cfg.Name)
	assert.Equal(t, "archey.py", cfg.Source)
	assert.Empty(t, cfg.BinDir)
	assert.False(t, cfg.SkipDependencies)
	assert.Equal(t, Default(), cfg)
}

func TestLoadReadsExisting(t *testing.T) {
	tmp := t.TempDir()
	toml := "name = \"archey4\"\nskip_dependencies = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmp, FileName), []byte(toml), 0644))

	cfg, err := Load(tmp)
	require.NoError(t, err)
	assert.Equal(t, "archey4", cfg.Name)
	assert.True(t, cfg.SkipDependencies)
	assert.Equal(t, "archey.py", cfg.Source, "unset keys keep their defaults")
}

func TestLoadEmptyStringsKeepDefaults(t *testing.T) {
	tmp := t.TempDir()
	toml := "name = \"\"\nsource = \"\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmp, FileName), []byte(toml), 0644))

	cfg, err := Load(tmp)
	require.NoError(t, err)
	assert.Equal(t, "archey", cfg.Name)
	assert.Equal(t, "archey.py", cfg.Source)
}

func TestLoadMalformed(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, FileName), []byte("name = \n"), 0644))

	_, err := Load(tmp)
	assert.Error(t, err)
}

func TestSourcePath(t *testing.T) {
	cfg := &Config{Source: "archey.py"}
	assert.Equal(t, "/src/archey.py", cfg.SourcePath("/src"))

	cfg.Source = "/opt/archey/archey"
	assert.Equal(t, "/opt/archey/archey", cfg.SourcePath("/src"))
}

func TestSaveRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	cfg := &Config{Source: "archey.py", Name: "archey", BinDir: "/usr/local/bin"}
	require.NoError(t, cfg.Save(tmp))

	got, err := Load(tmp)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
