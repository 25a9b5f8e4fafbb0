package generator

import (
	"context"
	"fmt"

	"github.com/patterncraft/patterncraft/output"
)

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	Force bool // Skip conflict checks, for operations rewriting freshly copied files
}

// Execute runs operations with validation.
//
// All operations are validated before any of them executes, so a doomed
// batch fails before touching the destination tree. Per-operation progress
// is reported through the output package in verbose mode.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	for _, op := range ops {
		if err := op.Validate(ctx, opts.Force); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	for _, op := range ops {
		if err := op.Execute(ctx); err != nil {
			return fmt.Errorf("execution failed: %w", err)
		}
		output.Verbose(op.Description())
	}

	return nil
}
