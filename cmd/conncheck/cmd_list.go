package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/conncheck/pkg/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the declared checks without running them",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	checks, err := loadChecks(cfg)
	if err != nil {
		return err
	}

	output.PrintChecks(cmd.OutOrStdout(), checks)
	return nil
}
