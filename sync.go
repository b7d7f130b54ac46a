package dashsync

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/aerissecure/dashsync/dashboard"
	"github.com/aerissecure/dashsync/table"
	"github.com/aerissecure/dashsync/xlsx"
)

// writeFile replaces the dashboard on disk.
var writeFile = dashboard.WriteFile

// Options tune a single Sync run.
type Options struct {
	// DryRun builds the patched dashboard but does not write it.
	DryRun bool

	// Logger receives debug and timing records. Nil means slog.Default().
	Logger *slog.Logger
}

// Result describes a completed run.
type Result struct {
	Rows    int    // data rows copied, excluding the header
	CSV     string // payload now embedded in the dashboard
	Changed bool   // the patched HTML differs from the file on disk
	Written bool   // the HTML file was replaced
}

// Sync loads cfg.Spreadsheet, converts it to CSV and embeds it in cfg.HTML.
// The HTML file is only touched by the final write, so any earlier failure
// leaves it as it was.
func Sync(cfg Config, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	// ... check files
	for _, path := range []string{cfg.Spreadsheet, cfg.HTML} {
		if err := exists(path); err != nil {
			return nil, err
		}
	}

	// ... load
	start := time.Now()
	raw, err := xlsx.ReadFile(cfg.Spreadsheet)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, cfg.Spreadsheet)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, cfg.Spreadsheet, err)
	}
	log.Debug("spreadsheet loaded", "path", cfg.Spreadsheet, "table", raw, "elapsed", time.Since(start))

	// ... normalize and serialize
	text, payload, err := render(raw, cfg.DateColumn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessing, err)
	}
	log.Debug("csv rendered", "table", text, "bytes", len(payload))

	// ... patch
	original, err := os.ReadFile(cfg.HTML)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadHTML, cfg.HTML, err)
	}

	placeholder := dashboard.NewPlaceholder(cfg.Variable)
	if n := placeholder.Count(string(original)); n > 1 {
		log.Warn("multiple data blocks, only the first is updated", "path", cfg.HTML, "count", n)
	}

	patched, err := placeholder.Patch(string(original), payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.HTML, err)
	}

	result := &Result{
		Rows:    text.Len(),
		CSV:     payload,
		Changed: patched != string(original),
	}

	if opts.DryRun || !result.Changed {
		log.Debug("dashboard not written", "dry-run", opts.DryRun, "changed", result.Changed)
		return result, nil
	}

	// ... write
	if err := writeFile(cfg.HTML, []byte(patched)); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWrite, cfg.HTML, err)
	}

	result.Written = true
	log.Debug("dashboard written", "path", cfg.HTML, "bytes", len(patched))

	return result, nil
}

// Current returns the CSV currently embedded in cfg.HTML.
func Current(cfg Config) (string, error) {
	if err := exists(cfg.HTML); err != nil {
		return "", err
	}

	html, err := os.ReadFile(cfg.HTML)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadHTML, cfg.HTML, err)
	}

	payload, err := dashboard.NewPlaceholder(cfg.Variable).Extract(string(html))
	if err != nil {
		return "", fmt.Errorf("%s: %w", cfg.HTML, err)
	}

	return payload, nil
}

func render(raw *table.Table, dateColumn string) (*table.TextTable, string, error) {
	text, err := table.Normalize(raw, table.Options{DateColumn: dateColumn})
	if err != nil {
		return nil, "", err
	}

	csv, err := table.CSV(text)
	if err != nil {
		return nil, "", err
	}

	return text, csv, nil
}

// exists only reports missing files; other stat failures surface when the
// file is read.
func exists(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return nil
}
