package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aerissecure/dashsync"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the CSV currently embedded in the dashboard",
	Args:  cobra.NoArgs,
	RunE:  runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	csv, err := dashsync.Current(cfg)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), csv)

	return nil
}
