package config

import (
	"fmt"
	"strings"
)

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: %s", strings.Join(e.Problems, "; "))
}

// Validate checks config values for correctness.
// Returns a *ValidationError if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Roots.Left) == "" {
		errs = append(errs, "roots.left must not be empty")
	}
	if strings.TrimSpace(c.Roots.Right) == "" {
		errs = append(errs, "roots.right must not be empty")
	}

	if strings.TrimSpace(c.Viewer.Path) == "" {
		errs = append(errs, "viewer.path must not be empty")
	}
	if c.Viewer.MaxOutputSize < 1 {
		errs = append(errs, "viewer.max_output_size must be >= 1")
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}

	return nil
}
