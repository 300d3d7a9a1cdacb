package generator

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ExecuteOptions configures execution behavior.
type ExecuteOptions struct {
	DryRun   bool
	Force    bool
	Resolver *Resolver // Optional conflict resolution; nil fails fast on conflicts
	Writer   io.Writer // Where to write output (defaults to os.Stdout)
}

// collidable is implemented by operations that may clash with an existing
// file and can hand the resolver both sides of the conflict.
type collidable interface {
	TargetPath() string
	NewContent() []byte
}

// Execute runs operations with validation.
// All operations are validated before any of them executes, so a run that
// would fail halfway is rejected up front. When a Resolver is configured,
// conflicts with existing files are settled per file before validation;
// otherwise a conflict fails validation unless Force is set.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	type planned struct {
		op    Operation
		force bool
	}

	plan := make([]planned, 0, len(ops))
	for _, op := range ops {
		p := planned{op: op, force: opts.Force}
		if opts.Resolver != nil {
			keep, overwrite, err := settleConflict(opts.Resolver, op)
			if err != nil {
				return err
			}
			if !keep {
				fmt.Fprintf(opts.Writer, "- Skipped %s\n", op.Description())
				continue
			}
			if overwrite {
				p.force = true
			}
		}
		plan = append(plan, p)
	}

	// Phase 1: Validate all operations
	for _, p := range plan {
		if err := p.op.Validate(ctx, p.force); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	// Phase 2: Execute or report
	for _, p := range plan {
		if opts.DryRun {
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", p.op.Description())
		} else {
			if err := p.op.Execute(ctx); err != nil {
				return fmt.Errorf("execution failed: %w", err)
			}
			fmt.Fprintf(opts.Writer, "✓ %s\n", p.op.Description())
		}
	}

	return nil
}

// settleConflict asks the resolver what to do with an operation whose target
// file already exists. Operations without a collision surface, and targets
// that do not exist yet, pass through untouched.
func settleConflict(r *Resolver, op Operation) (keep, overwrite bool, err error) {
	c, ok := op.(collidable)
	if !ok {
		return true, false, nil
	}
	existing, readErr := os.ReadFile(c.TargetPath())
	if readErr != nil {
		return true, false, nil
	}

	resolution, err := r.ResolveConflict(c.TargetPath(), existing, c.NewContent())
	if err != nil {
		return false, false, err
	}
	switch resolution {
	case Overwrite:
		return true, true, nil
	case Skip:
		return false, false, nil
	default:
		return false, false, fmt.Errorf("generation cancelled at %s", c.TargetPath())
	}
}
