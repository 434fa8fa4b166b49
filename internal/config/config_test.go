package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte(`
editor = "code --goto {file}:{line}:{column}"
persistent = true
smart_case = true
exclude = ["^node_modules/", "\\.min\\.js$"]
log_level = "debug"
`), 0644)
	assert.NoError(err)

	cfg, err := Load(path)
	if !assert.NoError(err) {
		return
	}
	assert.Equal(&Config{
		Editor:     "code --goto {file}:{line}:{column}",
		Persistent: true,
		SmartCase:  true,
		Exclude:    []string{"^node_modules/", `\.min\.js$`},
		LogLevel:   "debug",
	}, cfg)
}

func TestLoadMissingAndInvalid(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "absent.toml"))
	assert.NoError(err)
	assert.Equal(&Config{}, cfg)

	bad := filepath.Join(dir, "bad.toml")
	assert.NoError(os.WriteFile(bad, []byte("editor = "), 0644))
	_, err = Load(bad)
	assert.Error(err)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "nirw", "config.toml"), DefaultPath())
}
