// Package testutil holds test doubles shared across packages.
package testutil

import (
	"io"
	"net/http"
	"strings"
)

// MockHTTPClient is a test double for HTTP clients.
type MockHTTPClient struct {
	DoFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.DoFunc(req)
}

// MockResponse creates an http.Response with given status and body.
func MockResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// RoutedClient answers requests by URL, for driving several checks at once.
// Unknown URLs produce a connection-refused style error.
type RoutedClient struct {
	Routes map[string]*http.Response
	Errors map[string]error
	Calls  []string
}

func (c *RoutedClient) Do(req *http.Request) (*http.Response, error) {
	u := req.URL.String()
	c.Calls = append(c.Calls, u)
	if err, ok := c.Errors[u]; ok {
		return nil, err
	}
	if resp, ok := c.Routes[u]; ok {
		return resp, nil
	}
	return nil, &refusedError{url: u}
}

type refusedError struct{ url string }

func (e *refusedError) Error() string {
	return "Get \"" + e.url + "\": dial tcp: connect: connection refused"
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
