package runner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vertti/conncheck/pkg/check"
)

// ErrChecksFailed is wrapped by Report.Err when any check failed.
var ErrChecksFailed = errors.New("checks failed")

// Report holds one result per declared check, in declaration order.
type Report struct {
	Results []check.Result
}

// Count returns the number of results with the given status.
func (r Report) Count(status check.Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Failed reports whether any result is a failure. Skips never count.
func (r Report) Failed() bool {
	return r.Count(check.StatusFail) > 0
}

// Failures returns the failed results in order.
func (r Report) Failures() []check.Result {
	var out []check.Result
	for _, res := range r.Results {
		if res.Failed() {
			out = append(out, res)
		}
	}
	return out
}

// Err returns nil if no check failed, otherwise an error wrapping
// ErrChecksFailed that names each failed check and its detail.
func (r Report) Err() error {
	failures := r.Failures()
	if len(failures) == 0 {
		return nil
	}

	parts := make([]string, len(failures))
	for i, f := range failures {
		parts[i] = fmt.Sprintf("%s (%s)", f.Name, f.Detail())
	}
	return fmt.Errorf("%d of %d %w: %s", len(failures), len(r.Results), ErrChecksFailed, strings.Join(parts, "; "))
}
