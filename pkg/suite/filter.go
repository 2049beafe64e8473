package suite

import (
	"fmt"
	"strings"

	"github.com/vertti/conncheck/pkg/endpoint"
)

// Filter keeps the named checks in declaration order. No names keeps all.
func Filter(checks []endpoint.EndpointCheck, names []string) ([]endpoint.EndpointCheck, error) {
	if len(names) == 0 {
		return checks, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var kept []endpoint.EndpointCheck
	for _, c := range checks {
		if want[c.Name] {
			kept = append(kept, c)
			delete(want, c.Name)
		}
	}

	if len(want) > 0 {
		var unknown []string
		for _, n := range names {
			if want[n] {
				unknown = append(unknown, n)
				delete(want, n)
			}
		}
		return nil, fmt.Errorf("unknown check: %s", strings.Join(unknown, ", "))
	}
	return kept, nil
}
