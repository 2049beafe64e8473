package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "conncheck",
	Short: "Connectivity checks for a frontend and backend service",
	Long: "Conncheck issues one GET per declared endpoint check against the frontend and backend\n" +
		"services and reports each as PASS, FAIL or SKIP. It exits non-zero if any check fails.",
	Version:      Version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRun,
}
