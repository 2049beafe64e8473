// Package suite declares which endpoint checks a run executes: the built-in
// frontend/backend set or a YAML suite file.
package suite

import (
	"fmt"

	"github.com/vertti/conncheck/pkg/config"
	"github.com/vertti/conncheck/pkg/endpoint"
)

const (
	GroupFrontend = "Frontend Service"
	GroupBackend  = "Backend Service"
	GroupE2E      = "End-to-End Flow"
)

// Default returns the built-in checks in declaration order.
func Default(cfg config.Config) ([]endpoint.EndpointCheck, error) {
	specs := []Spec{
		{Name: "frontend-root", Group: GroupFrontend, Base: BaseFrontend, Path: "/", Status: 200},
		{Name: "frontend-health", Group: GroupFrontend, Base: BaseFrontend, Path: "/health", Status: 200, Tolerate: []int{404}},
		{Name: "backend-health", Group: GroupBackend, Base: BaseBackend, Path: "/health", Status: 200,
			Assert: []AssertSpec{{Field: "status", Equals: "ok"}}},
		{Name: "backend-db-check", Group: GroupBackend, Base: BaseBackend, Path: "/api/db-check", Status: 200,
			Assert: []AssertSpec{{Field: "database", Equals: "connected"}}},
		{Name: "e2e-proxy-health", Group: GroupE2E, Base: BaseFrontend, Path: "/api/health", Status: 200, Tolerate: []int{404}},
	}

	checks, err := build(specs, cfg)
	if err != nil {
		return nil, fmt.Errorf("built-in suite: %w", err)
	}
	return checks, nil
}
