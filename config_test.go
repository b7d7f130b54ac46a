package dashsync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/opt/dash")

	assert.Equal(t, filepath.Join("/opt/dash", "进度汇总.xlsx"), cfg.Spreadsheet)
	assert.Equal(t, filepath.Join("/opt/dash", "dashboard.html"), cfg.HTML)
	assert.Equal(t, "发版日期", cfg.DateColumn)
	assert.Equal(t, "rawData", cfg.Variable)
}

func TestBaseDir(t *testing.T) {
	dir, err := BaseDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dashsync.toml")
	contents := `
spreadsheet = "data/progress.xlsx"
html = "/srv/www/dashboard.html"
date_column = "Release"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg := DefaultConfig("/opt/dash")
	require.NoError(t, LoadConfig(path, &cfg))

	assert.Equal(t, filepath.Join(dir, "data", "progress.xlsx"), cfg.Spreadsheet)
	assert.Equal(t, "/srv/www/dashboard.html", cfg.HTML)
	assert.Equal(t, "Release", cfg.DateColumn)
	assert.Equal(t, "rawData", cfg.Variable, "unset keys keep their defaults")
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg := DefaultConfig("/opt/dash")
	err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), &cfg)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("spreadsheet = "), 0644))

	cfg := DefaultConfig("/opt/dash")
	assert.Error(t, LoadConfig(path, &cfg))
}

func TestConfigMerge(t *testing.T) {
	cfg := Config{Spreadsheet: "a.xlsx", HTML: "a.html", DateColumn: "d", Variable: "v"}
	cfg.Merge(Config{HTML: "b.html"})

	assert.Equal(t, Config{Spreadsheet: "a.xlsx", HTML: "b.html", DateColumn: "d", Variable: "v"}, cfg)
}
