package suite

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vertti/conncheck/pkg/config"
	"github.com/vertti/conncheck/pkg/endpoint"
)

// Base selects which configured base URL a check path is joined to.
type Base string

const (
	BaseFrontend Base = "frontend"
	BaseBackend  Base = "backend"
)

// File is the YAML suite file layout.
type File struct {
	Checks []Spec `yaml:"checks"`
}

// Spec declares one check in a suite file.
type Spec struct {
	Name     string       `yaml:"name"`
	Group    string       `yaml:"group,omitempty"`
	Base     Base         `yaml:"base,omitempty"`
	Path     string       `yaml:"path,omitempty"`
	URL      string       `yaml:"url,omitempty"`
	Status   int          `yaml:"status,omitempty"`
	Tolerate []int        `yaml:"tolerate,omitempty"`
	Assert   []AssertSpec `yaml:"assert,omitempty"`
}

// AssertSpec requires a JSON body field to equal a value.
type AssertSpec struct {
	Field  string `yaml:"field"`
	Equals string `yaml:"equals"`
}

// Load reads a suite file and resolves its checks against cfg.
func Load(path string, cfg config.Config) ([]endpoint.EndpointCheck, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading suite file
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}
	checks, err := Parse(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return checks, nil
}

// Parse decodes suite YAML and resolves its checks against cfg.
func Parse(data []byte, cfg config.Config) ([]endpoint.EndpointCheck, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("invalid suite YAML: %w", err)
	}
	if len(f.Checks) == 0 {
		return nil, errors.New("suite declares no checks")
	}
	return build(f.Checks, cfg)
}

func build(specs []Spec, cfg config.Config) ([]endpoint.EndpointCheck, error) {
	checks := make([]endpoint.EndpointCheck, 0, len(specs))
	seen := make(map[string]bool, len(specs))

	for _, s := range specs {
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate check name %q", s.Name)
		}
		seen[s.Name] = true

		target, err := s.resolveURL(cfg)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", s.Name, err)
		}

		c := endpoint.EndpointCheck{
			Name:           s.Name,
			Group:          s.Group,
			URL:            target,
			ExpectedStatus: s.Status,
			Tolerate:       append([]int(nil), s.Tolerate...),
		}
		for _, a := range s.Assert {
			c.Assertions = append(c.Assertions, endpoint.Assertion{Path: a.Field, Expected: a.Equals})
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}

	return checks, nil
}

func (s Spec) resolveURL(cfg config.Config) (string, error) {
	if s.URL != "" {
		if s.Base != "" || s.Path != "" {
			return "", errors.New("url cannot be combined with base or path")
		}
		return s.URL, nil
	}

	switch s.Base {
	case BaseFrontend:
		return endpoint.Join(cfg.FrontendURL, s.Path)
	case BaseBackend:
		return endpoint.Join(cfg.APIURL, s.Path)
	case "":
		return "", errors.New("one of base or url is required")
	default:
		return "", fmt.Errorf("unknown base %q (want frontend or backend)", s.Base)
	}
}
