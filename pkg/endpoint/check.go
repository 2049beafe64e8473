// Package endpoint declares single HTTP endpoint checks and evaluates them
// against a live response.
package endpoint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"

	"github.com/tidwall/gjson"

	"github.com/vertti/conncheck/pkg/check"
)

// maxBodySize caps how much of a response body is read for assertions.
const maxBodySize = 1 << 20

// Assertion requires the JSON body field at Path to equal Expected.
// Path uses gjson syntax, e.g. "status" or "checks.db.state".
type Assertion struct {
	Path     string
	Expected string
}

// EndpointCheck is a declarative HTTP GET assertion.
type EndpointCheck struct {
	Name           string      // label, e.g. "backend-health"
	Group          string      // display group, e.g. "Backend Service"
	URL            string      // absolute target URL (required)
	ExpectedStatus int         // expected HTTP status (default: 200)
	Assertions     []Assertion // evaluated in order
	Tolerate       []int       // statuses reported as skip instead of fail
}

// Status returns the expected status, defaulting to 200.
func (c *EndpointCheck) Status() int {
	if c.ExpectedStatus == 0 {
		return http.StatusOK
	}
	return c.ExpectedStatus
}

// Tolerates reports whether status turns a failure into a skip.
func (c *EndpointCheck) Tolerates(status int) bool {
	return slices.Contains(c.Tolerate, status)
}

// Validate returns an error if the declaration cannot be run.
func (c *EndpointCheck) Validate() error {
	if c.Name == "" {
		return errors.New("check name is required")
	}
	if c.URL == "" {
		return fmt.Errorf("check %s: URL is required", c.Name)
	}
	parsedURL, err := url.Parse(c.URL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return fmt.Errorf("check %s: invalid URL: %s", c.Name, c.URL)
	}
	if s := c.Status(); s < 100 || s > 599 {
		return fmt.Errorf("check %s: invalid expected status %d", c.Name, s)
	}
	for _, s := range c.Tolerate {
		if s < 100 || s > 599 {
			return fmt.Errorf("check %s: invalid tolerated status %d", c.Name, s)
		}
	}
	for i, a := range c.Assertions {
		if a.Path == "" {
			return fmt.Errorf("check %s: assertion %d has an empty field path", c.Name, i+1)
		}
	}
	return nil
}

// Run issues a single GET and classifies the response. It never returns
// an error; every failure is captured in the result.
func (c *EndpointCheck) Run(ctx context.Context, client HTTPClient) check.Result {
	result := check.Result{
		Name:  c.Name,
		Group: c.Group,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, http.NoBody)
	if err != nil {
		return result.FailErr(&TransportError{URL: c.URL, Err: err})
	}

	resp, err := client.Do(req)
	if err != nil {
		return result.FailErr(&TransportError{URL: c.URL, Err: err})
	}
	defer func() { _ = resp.Body.Close() }()

	statusCode := resp.StatusCode

	// Tolerance takes precedence over status and body assertions
	if c.Tolerates(statusCode) {
		return result.Skipf("tolerated status %d", statusCode)
	}

	if statusCode != c.Status() {
		return result.FailErr(&StatusMismatchError{Expected: c.Status(), Got: statusCode})
	}

	if len(c.Assertions) > 0 {
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
		if err != nil {
			return result.FailErr(&TransportError{URL: c.URL, Err: fmt.Errorf("failed to read response body: %w", err)})
		}
		if len(body) > maxBodySize {
			return result.FailErr(&BodyTooLargeError{Limit: maxBodySize})
		}
		if err := evaluate(c.Assertions, string(body)); err != nil {
			return result.FailErr(err)
		}
	}

	result.Pass("ok")
	result.AddDetailf("status %d", statusCode)
	return result
}

// evaluate checks assertions in order and returns the first mismatch.
func evaluate(assertions []Assertion, body string) error {
	valid := gjson.Valid(body)
	for _, a := range assertions {
		if !valid {
			return &AssertionError{Field: a.Path, Expected: a.Expected, Missing: true, Reason: "response body is not valid JSON"}
		}
		value := gjson.Get(body, a.Path)
		if !value.Exists() {
			return &AssertionError{Field: a.Path, Expected: a.Expected, Missing: true}
		}

		// Use String() for most values, but handle null specially
		got := value.String()
		if value.Type == gjson.Null {
			got = "null"
		}
		if got != a.Expected {
			return &AssertionError{Field: a.Path, Expected: a.Expected, Got: got}
		}
	}
	return nil
}
