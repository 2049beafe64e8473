// Package runner executes endpoint checks in declaration order and collects
// their results into a Report.
package runner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vertti/conncheck/pkg/check"
	"github.com/vertti/conncheck/pkg/endpoint"
)

// DefaultTimeout bounds each check when Runner.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// Runner executes checks one at a time.
type Runner struct {
	Client  endpoint.HTTPClient // default: endpoint.RealHTTPClient
	Timeout time.Duration       // per-check timeout (default: 10s)
	Logger  *zap.Logger         // default: no-op
}

// Run executes every check exactly once, in order, and returns a Report
// with one result per check. A failing check never stops the run.
func (r *Runner) Run(ctx context.Context, checks []endpoint.EndpointCheck) Report {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	client := r.Client
	if client == nil {
		client = endpoint.NewRealHTTPClient(timeout)
	}
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	report := Report{Results: make([]check.Result, 0, len(checks))}
	for i := range checks {
		c := &checks[i]
		log.Debug("check started", zap.String("check", c.Name), zap.String("url", c.URL))

		start := time.Now()
		result := runOne(ctx, c, client, timeout)

		fields := []zap.Field{
			zap.String("check", c.Name),
			zap.String("status", string(result.Status)),
			zap.String("detail", result.Detail()),
			zap.Duration("duration", time.Since(start)),
		}
		if result.Failed() {
			log.Warn("check failed", fields...)
		} else {
			log.Debug("check finished", fields...)
		}

		report.Results = append(report.Results, result)
	}

	log.Info("run complete",
		zap.Int("passed", report.Count(check.StatusPass)),
		zap.Int("failed", report.Count(check.StatusFail)),
		zap.Int("skipped", report.Count(check.StatusSkip)),
	)
	return report
}

// runOne bounds a single check with its own timeout so that expiry cancels
// only that request.
func runOne(ctx context.Context, c *endpoint.EndpointCheck, client endpoint.HTTPClient, timeout time.Duration) check.Result {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.Run(ctx, client)
}
