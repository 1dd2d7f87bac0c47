package supervisor

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/recordflow/pkg/bypass"
	"github.com/arthur-debert/recordflow/pkg/types"
)

// Context is what a phase callback sees during a run. The bypass registry
// is the one shared with every other supervisor in the same execution
// context, so a callback can suppress other handlers mid-execution.
type Context struct {
	// Entity is the entity type the batch belongs to.
	Entity string

	// Phase is the lifecycle phase being dispatched.
	Phase types.Phase

	// Batch carries the old-state and new-state record views.
	Batch *types.Batch

	// Bypasses is the execution context's shared bypass registry.
	Bypasses *bypass.Registry

	// Log is a component logger scoped to this run.
	Log zerolog.Logger
}

// Affected returns the record view for the current phase: old-state
// records for delete phases, new-state records otherwise.
func (c *Context) Affected() []*types.Record {
	return c.Batch.Affected(c.Phase)
}
