package endpoint

import (
	"net/http"
	"time"
)

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RealHTTPClient uses the real net/http package. Redirects are followed
// (up to net/http's limit of 10) and the final response is evaluated.
type RealHTTPClient struct {
	Timeout time.Duration

	client *http.Client
}

// NewRealHTTPClient returns a client that reuses one transport across checks.
func NewRealHTTPClient(timeout time.Duration) *RealHTTPClient {
	return &RealHTTPClient{Timeout: timeout}
}

// Do executes an HTTP request.
func (c *RealHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if c.client == nil {
		c.client = &http.Client{Timeout: c.Timeout}
	}
	return c.client.Do(req)
}
