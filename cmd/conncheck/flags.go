package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/vertti/conncheck/pkg/config"
	"github.com/vertti/conncheck/pkg/endpoint"
	"github.com/vertti/conncheck/pkg/suite"
)

var (
	apiURL      string
	frontendURL string
	timeout     time.Duration
	suiteFile   string
	only        []string
	verbose     bool
	logDir      string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&apiURL, "api-url", "", "backend base URL (default: $API_URL or "+config.DefaultAPIURL+")")
	flags.StringVar(&frontendURL, "frontend-url", "", "frontend base URL (default: $FRONTEND_URL or "+config.DefaultFrontendURL+")")
	flags.DurationVar(&timeout, "timeout", 0, "per-check request timeout (default: $CHECK_TIMEOUT or 10s)")
	flags.StringVar(&suiteFile, "file", "", "suite file (default: search up for "+suite.FileName+", else built-in checks)")
	flags.StringSliceVar(&only, "only", nil, "run only the named check, can be repeated")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log each check to stderr")
	flags.StringVar(&logDir, "log-dir", "", "write rotated JSON logs to <dir>/conncheck.log")
}

// loadConfig merges environment and flags. Flags win.
func loadConfig() (config.Config, error) {
	cfg, err := config.FromEnv(&config.RealEnvGetter{})
	if err != nil {
		return config.Config{}, err
	}
	cfg = cfg.Override(config.Config{APIURL: apiURL, FrontendURL: frontendURL, Timeout: timeout})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadChecks resolves the declared checks: an explicit or discovered suite
// file, otherwise the built-in set, narrowed by --only.
func loadChecks(cfg config.Config) ([]endpoint.EndpointCheck, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	var checks []endpoint.EndpointCheck
	path, err := suite.FindFile(wd, suiteFile)
	switch {
	case errors.Is(err, suite.ErrNotFound):
		checks, err = suite.Default(cfg)
	case err != nil:
		return nil, err
	default:
		checks, err = suite.Load(path, cfg)
	}
	if err != nil {
		return nil, err
	}

	return suite.Filter(checks, only)
}
