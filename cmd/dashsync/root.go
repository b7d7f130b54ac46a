package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aerissecure/dashsync"
)

type options struct {
	config      string
	spreadsheet string
	html        string
	dateColumn  string
	variable    string
	dryRun      bool
	verbose     bool
}

var flags options

var rootCmd = &cobra.Command{
	Use:   "dashsync",
	Short: "Copy the progress spreadsheet into the HTML dashboard",
	Long: `Reads the first sheet of the progress spreadsheet, converts it to CSV and
replaces the data embedded in the dashboard's const rawData = ` + "`...`" + `; block.

By default both files are expected next to the dashsync executable.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSync,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "TOML config file")
	pf.StringVar(&flags.spreadsheet, "spreadsheet", "", "spreadsheet path (default <exe dir>/"+dashsync.DefaultSpreadsheet+")")
	pf.StringVar(&flags.html, "html", "", "dashboard path (default <exe dir>/"+dashsync.DefaultHTML+")")
	pf.StringVar(&flags.variable, "variable", "", "JavaScript constant holding the CSV (default rawData)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "print debug logs to stderr")

	rootCmd.Flags().StringVar(&flags.dateColumn, "date-column", "", "release date column header (default 发版日期)")
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print the CSV without updating the dashboard")
}

// resolveConfig layers flags over the config file over executable-relative defaults.
func resolveConfig() (dashsync.Config, error) {
	dir, err := dashsync.BaseDir()
	if err != nil {
		return dashsync.Config{}, fmt.Errorf("unable to locate executable (%w)", err)
	}

	cfg := dashsync.DefaultConfig(dir)

	if flags.config != "" {
		if err := dashsync.LoadConfig(flags.config, &cfg); err != nil {
			return dashsync.Config{}, err
		}
	}

	cfg.Merge(dashsync.Config{
		Spreadsheet: flags.spreadsheet,
		HTML:        flags.html,
		DateColumn:  flags.dateColumn,
		Variable:    flags.variable,
	})

	return cfg, nil
}

func runSync(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	log := setupLogger(cmd.ErrOrStderr(), flags.verbose)
	st := newStyles()
	status := cmd.ErrOrStderr()

	fmt.Fprintln(status, st.rule())
	fmt.Fprintf(status, "Working directory: %s\n", filepath.Dir(cfg.Spreadsheet))
	fmt.Fprintf(status, "Reading %s ...\n", filepath.Base(cfg.Spreadsheet))

	result, err := dashsync.Sync(cfg, dashsync.Options{
		DryRun: flags.dryRun,
		Logger: log,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(status, st.success.Render(fmt.Sprintf("Read %d rows", result.Rows)))

	switch {
	case flags.dryRun:
		fmt.Fprintln(status, st.warning.Render(fmt.Sprintf("Dry run, %s not modified", filepath.Base(cfg.HTML))))
		fmt.Fprint(cmd.OutOrStdout(), result.CSV)
	case !result.Written:
		fmt.Fprintln(status, st.muted.Render(fmt.Sprintf("%s is already up to date", filepath.Base(cfg.HTML))))
	default:
		fmt.Fprintln(status, st.success.Render(fmt.Sprintf("Updated %s with %d rows", filepath.Base(cfg.HTML), result.Rows)))
	}

	return nil
}
