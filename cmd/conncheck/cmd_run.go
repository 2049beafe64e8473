package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vertti/conncheck/pkg/logging"
	"github.com/vertti/conncheck/pkg/output"
	"github.com/vertti/conncheck/pkg/runner"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the connectivity checks (default command)",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runRun executes the suite and prints the report. The returned error
// names every failed check and causes Cobra to exit with code 1.
func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	checks, err := loadChecks(cfg)
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Options{Verbose: verbose, Console: cmd.ErrOrStderr(), Dir: logDir})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Debug("configuration",
		zap.String("api_url", cfg.APIURL),
		zap.String("frontend_url", cfg.FrontendURL),
		zap.Duration("timeout", cfg.Timeout),
		zap.Int("checks", len(checks)),
	)

	r := &runner.Runner{Timeout: cfg.Timeout, Logger: log}
	report := r.Run(cmd.Context(), checks)

	output.PrintReport(cmd.OutOrStdout(), report)
	return report.Err()
}
