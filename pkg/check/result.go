package check

// Status represents the outcome of a check.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusSkip Status = "SKIP"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "backend-health"
	Group   string   // display group, e.g., "Backend Service"
	Status  Status   // PASS, FAIL or SKIP
	Details []string // human-readable details, the first one is the headline
	Err     error    // underlying error for failures
}

// Passed returns true if the check passed.
func (r Result) Passed() bool {
	return r.Status == StatusPass
}

// Failed returns true if the check failed.
func (r Result) Failed() bool {
	return r.Status == StatusFail
}

// Skipped returns true if the check was skipped.
func (r Result) Skipped() bool {
	return r.Status == StatusSkip
}

// Detail returns the headline detail, or "" if there is none.
func (r Result) Detail() string {
	if len(r.Details) == 0 {
		return ""
	}
	return r.Details[0]
}
