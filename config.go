package dashsync

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/aerissecure/dashsync/dashboard"
	"github.com/aerissecure/dashsync/table"
)

// File names looked up next to the executable when no path is configured.
const (
	DefaultSpreadsheet = "进度汇总.xlsx" // progress spreadsheet
	DefaultHTML        = "dashboard.html"
)

// Config names the input workbook, the dashboard to patch and the labels that
// tie them together.
type Config struct {
	// Spreadsheet is the path of the .xlsx workbook; only its first sheet is read.
	Spreadsheet string `toml:"spreadsheet"`

	// HTML is the path of the dashboard, patched in place.
	HTML string `toml:"html"`

	// DateColumn is the header of the release date column.
	DateColumn string `toml:"date_column"`

	// Variable is the JavaScript constant that holds the CSV.
	Variable string `toml:"variable"`
}

// DefaultConfig returns the configuration for files kept in dir.
func DefaultConfig(dir string) Config {
	return Config{
		Spreadsheet: filepath.Join(dir, DefaultSpreadsheet),
		HTML:        filepath.Join(dir, DefaultHTML),
		DateColumn:  table.DefaultDateColumn,
		Variable:    dashboard.DefaultVariable,
	}
}

// BaseDir returns the directory holding the running executable, with symlinks
// resolved.
func BaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// LoadConfig overlays the values set in the TOML file at path onto cfg.
// Relative paths in the file are resolved against the file's directory.
func LoadConfig(path string, cfg *Config) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file Config
	if err := toml.Unmarshal(bytes, &file); err != nil {
		return fmt.Errorf("invalid config file %s (%w)", path, err)
	}

	dir := filepath.Dir(path)
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}

	cfg.Merge(Config{
		Spreadsheet: resolve(file.Spreadsheet),
		HTML:        resolve(file.HTML),
		DateColumn:  file.DateColumn,
		Variable:    file.Variable,
	})

	return nil
}

// Merge copies the non-empty fields of other into cfg.
func (cfg *Config) Merge(other Config) {
	if other.Spreadsheet != "" {
		cfg.Spreadsheet = other.Spreadsheet
	}
	if other.HTML != "" {
		cfg.HTML = other.HTML
	}
	if other.DateColumn != "" {
		cfg.DateColumn = other.DateColumn
	}
	if other.Variable != "" {
		cfg.Variable = other.Variable
	}
}
