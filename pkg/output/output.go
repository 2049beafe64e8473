// Package output renders check results for humans.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/conncheck/pkg/check"
	"github.com/vertti/conncheck/pkg/endpoint"
	"github.com/vertti/conncheck/pkg/runner"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, yellow, bold, dim, reset = "", "", "", "", "", ""
	}
}

func statusColor(r check.Result) string {
	switch {
	case r.Passed():
		return green
	case r.Failed():
		return red
	case r.Skipped():
		return yellow
	default:
		return ""
	}
}

// PrintResult writes one line: coloured status, check name and detail.
func PrintResult(w io.Writer, r check.Result) {
	line := fmt.Sprintf("%s[%s]%s %s", statusColor(r), r.Status, reset, r.Name)
	if d := r.Detail(); d != "" {
		line += fmt.Sprintf(" %s-%s %s", dim, reset, d)
	}
	_, _ = fmt.Fprintln(w, line)
}

// PrintReport writes every result under its group heading, followed by a
// summary line.
func PrintReport(w io.Writer, report runner.Report) {
	group := ""
	for i, r := range report.Results {
		if r.Group != group || i == 0 {
			if r.Group != "" {
				if i > 0 {
					_, _ = fmt.Fprintln(w)
				}
				_, _ = fmt.Fprintf(w, "%s%s%s\n", bold, r.Group, reset)
			}
			group = r.Group
		}
		if group != "" {
			_, _ = fmt.Fprint(w, "  ")
		}
		PrintResult(w, r)
	}
	_, _ = fmt.Fprintln(w)
	PrintSummary(w, report)
}

// PrintSummary writes the pass/fail/skip counts and the overall verdict.
func PrintSummary(w io.Writer, report runner.Report) {
	verdict := green + "PASSED" + reset
	if report.Failed() {
		verdict = red + "FAILED" + reset
	}
	_, _ = fmt.Fprintf(w, "%s: %d passed, %d failed, %d skipped\n", verdict,
		report.Count(check.StatusPass), report.Count(check.StatusFail), report.Count(check.StatusSkip))
}

// PrintChecks lists check declarations without running them.
func PrintChecks(w io.Writer, checks []endpoint.EndpointCheck) {
	for _, c := range checks {
		_, _ = fmt.Fprintf(w, "%s%s%s\n", bold, c.Name, reset)
		if c.Group != "" {
			_, _ = fmt.Fprintf(w, "     %sgroup:%s %s\n", dim, reset, c.Group)
		}
		_, _ = fmt.Fprintf(w, "     %sGET:%s %s\n", dim, reset, c.URL)
		_, _ = fmt.Fprintf(w, "     %sstatus:%s %d\n", dim, reset, c.Status())
		if len(c.Tolerate) > 0 {
			codes := make([]string, len(c.Tolerate))
			for i, s := range c.Tolerate {
				codes[i] = fmt.Sprint(s)
			}
			_, _ = fmt.Fprintf(w, "     %stolerate:%s %s\n", dim, reset, strings.Join(codes, ", "))
		}
		for _, a := range c.Assertions {
			_, _ = fmt.Fprintf(w, "     %sassert:%s %s == %q\n", dim, reset, a.Path, a.Expected)
		}
	}
}
