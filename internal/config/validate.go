package config

import (
	"errors"
	"fmt"

	"github.com/aryankumar/cbench/internal/output"
	"github.com/aryankumar/cbench/internal/util"
)

// Validate checks the whole configuration and returns every problem found,
// joined with errors.Join. Each problem is a *util.ValidationError.
func (c *BenchConfig) Validate() error {
	var errs []error

	if _, ok := output.ParseFormat(c.Defaults.OutputFormat); !ok {
		errs = append(errs, util.NewValidationError("defaults.outputFormat", c.Defaults.OutputFormat,
			"must be one of text, table, json, yaml"))
	}
	errs = append(errs, validateCounts("defaults", c.Defaults.Iterations, c.Defaults.Threads)...)

	seen := make(map[string]bool, len(c.Benchmarks))
	for i, b := range c.Benchmarks {
		if err := b.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("benchmarks[%d]: %w", i, err))
		}
		if b.Name != "" {
			if seen[b.Name] {
				errs = append(errs, util.NewValidationError(fmt.Sprintf("benchmarks[%d].name", i), b.Name, "duplicate benchmark name"))
			}
			seen[b.Name] = true
		}
	}

	return errors.Join(errs...)
}

// Validate checks a single benchmark definition
func (b BenchmarkConfig) Validate() error {
	var errs []error

	if b.Name == "" {
		errs = append(errs, util.NewValidationError("name", nil, "name is required"))
	}
	if len(b.Command) == 0 || b.Command[0] == "" {
		errs = append(errs, util.NewValidationError("command", nil, "command is required"))
	}
	errs = append(errs, validateCounts(b.Name, b.Iterations, b.Threads)...)

	return errors.Join(errs...)
}

// validateCounts rejects negative counts and a count given without the other.
// Zero for both is valid and means sequential.
func validateCounts(scope string, iterations, threads int) []error {
	var errs []error

	if iterations < 0 {
		errs = append(errs, util.NewValidationError(scope+".iterations", iterations, "must not be negative"))
	}
	if threads < 0 {
		errs = append(errs, util.NewValidationError(scope+".threads", threads, "must not be negative"))
	}
	if (iterations == 0) != (threads == 0) {
		errs = append(errs, util.NewValidationError(scope, fmt.Sprintf("iterations=%d threads=%d", iterations, threads),
			"iterations and threads must be set together"))
	}

	return errs
}
