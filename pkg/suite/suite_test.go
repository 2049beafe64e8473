package suite

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vertti/conncheck/pkg/config"
	"github.com/vertti/conncheck/pkg/endpoint"
)

var testConfig = config.Config{
	APIURL:      "http://api.test:8080",
	FrontendURL: "http://web.test:3000",
	Timeout:     time.Second,
}

func names(checks []endpoint.EndpointCheck) []string {
	out := make([]string, len(checks))
	for i, c := range checks {
		out[i] = c.Name
	}
	return out
}

func TestDefault(t *testing.T) {
	checks, err := Default(testConfig)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	want := []struct {
		name     string
		url      string
		tolerate []int
		asserts  []endpoint.Assertion
	}{
		{"frontend-root", "http://web.test:3000/", nil, nil},
		{"frontend-health", "http://web.test:3000/health", []int{404}, nil},
		{"backend-health", "http://api.test:8080/health", nil, []endpoint.Assertion{{Path: "status", Expected: "ok"}}},
		{"backend-db-check", "http://api.test:8080/api/db-check", nil, []endpoint.Assertion{{Path: "database", Expected: "connected"}}},
		{"e2e-proxy-health", "http://web.test:3000/api/health", []int{404}, nil},
	}

	if len(checks) != len(want) {
		t.Fatalf("len(checks) = %d, want %d", len(checks), len(want))
	}
	for i, w := range want {
		c := checks[i]
		if c.Name != w.name {
			t.Errorf("checks[%d].Name = %q, want %q", i, c.Name, w.name)
		}
		if c.URL != w.url {
			t.Errorf("%s: URL = %q, want %q", w.name, c.URL, w.url)
		}
		if c.Status() != 200 {
			t.Errorf("%s: Status() = %d, want 200", w.name, c.Status())
		}
		if len(c.Tolerate) != len(w.tolerate) || (len(w.tolerate) > 0 && !reflect.DeepEqual(c.Tolerate, w.tolerate)) {
			t.Errorf("%s: Tolerate = %v, want %v", w.name, c.Tolerate, w.tolerate)
		}
		if !reflect.DeepEqual(c.Assertions, w.asserts) {
			t.Errorf("%s: Assertions = %v, want %v", w.name, c.Assertions, w.asserts)
		}
	}
}

func TestDefaultBadBaseURL(t *testing.T) {
	cfg := testConfig
	cfg.APIURL = "not a url"

	if _, err := Default(cfg); err == nil {
		t.Error("expected error for malformed base URL")
	}
}

func TestParse(t *testing.T) {
	data := `
checks:
  - name: web
    group: Frontend Service
    base: frontend
    path: /
  - name: api-ready
    base: backend
    path: /ready
    status: 204
    tolerate: [404, 503]
  - name: api-version
    base: backend
    path: /version
    assert:
      - field: version.major
        equals: 2
      - field: healthy
        equals: true
  - name: external
    url: https://status.example.com/api/v2/status.json
`
	checks, err := Parse([]byte(data), testConfig)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := names(checks); !reflect.DeepEqual(got, []string{"web", "api-ready", "api-version", "external"}) {
		t.Fatalf("names = %v", got)
	}
	if checks[0].Group != "Frontend Service" || checks[0].URL != "http://web.test:3000/" {
		t.Errorf("web = %+v", checks[0])
	}
	if checks[1].Status() != 204 || !reflect.DeepEqual(checks[1].Tolerate, []int{404, 503}) {
		t.Errorf("api-ready = %+v", checks[1])
	}
	wantAsserts := []endpoint.Assertion{
		{Path: "version.major", Expected: "2"},
		{Path: "healthy", Expected: "true"},
	}
	if !reflect.DeepEqual(checks[2].Assertions, wantAsserts) {
		t.Errorf("api-version assertions = %v, want %v", checks[2].Assertions, wantAsserts)
	}
	if checks[3].URL != "https://status.example.com/api/v2/status.json" {
		t.Errorf("external URL = %q", checks[3].URL)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantSub string
	}{
		{"invalid yaml", "checks: [", "invalid suite YAML"},
		{"unknown field", "checks:\n  - name: a\n    base: backend\n    method: POST\n", "invalid suite YAML"},
		{"empty", "checks: []\n", "no checks"},
		{"missing base and url", "checks:\n  - name: a\n    path: /\n", "one of base or url"},
		{"unknown base", "checks:\n  - name: a\n    base: db\n", "unknown base"},
		{"url and base", "checks:\n  - name: a\n    base: backend\n    url: http://x/\n", "cannot be combined"},
		{"duplicate", "checks:\n  - name: a\n    base: backend\n  - name: a\n    base: frontend\n", "duplicate"},
		{"missing name", "checks:\n  - base: backend\n", "name is required"},
		{"bad status", "checks:\n  - name: a\n    base: backend\n    status: 999\n", "invalid expected status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), testConfig)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %q, want substring %q", err, tt.wantSub)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	data := "checks:\n  - name: api\n    base: backend\n    path: /health\n    tolerate: [404]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("failed to write suite: %v", err)
	}

	checks, err := Load(path, testConfig)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(checks) != 1 || checks[0].URL != "http://api.test:8080/health" || !checks[0].Tolerates(404) {
		t.Errorf("checks = %+v", checks)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), testConfig); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFilter(t *testing.T) {
	checks, err := Default(testConfig)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	tests := []struct {
		name    string
		only    []string
		want    []string
		wantErr bool
	}{
		{"none keeps all", nil, names(checks), false},
		{"keeps declaration order", []string{"backend-health", "frontend-root"}, []string{"frontend-root", "backend-health"}, false},
		{"duplicate names", []string{"backend-health", "backend-health"}, []string{"backend-health"}, false},
		{"unknown name", []string{"frontend-root", "nope"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(checks, tt.only)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Filter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(names(got), tt.want) {
				t.Errorf("Filter() = %v, want %v", names(got), tt.want)
			}
		})
	}
}
