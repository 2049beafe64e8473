package endpoint

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseBaseURL parses an absolute http(s) base URL.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing host", raw)
	}
	return u, nil
}

// Join composes an absolute URL from a base URL and a path.
// A base path prefix is kept: Join("http://h/app", "/health") is "http://h/app/health".
func Join(base, path string) (string, error) {
	u, err := ParseBaseURL(base)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	rel, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + rel.Path
	u.RawPath = ""
	u.RawQuery = rel.RawQuery
	u.Fragment = ""
	return u.String(), nil
}
