package supervisor

import "github.com/arthur-debert/recordflow/pkg/types"

// Callback is one phase handler. A non-nil error aborts the run and marks
// every record in the affected batch view as rejected.
type Callback func(ctx *Context) error

// Callbacks maps each lifecycle phase to its handler function. A nil field
// means the handler does not react to that phase; the supervisor treats it
// as a no-op. Exactly one field is consulted per run.
type Callbacks struct {
	BeforeInsert  Callback
	BeforeUpdate  Callback
	BeforeDelete  Callback
	AfterInsert   Callback
	AfterUpdate   Callback
	AfterDelete   Callback
	AfterUndelete Callback
}

// ForPhase selects the callback for the given phase, or nil when the phase
// has no override.
func (c Callbacks) ForPhase(p types.Phase) Callback {
	switch p {
	case types.BeforeInsert:
		return c.BeforeInsert
	case types.BeforeUpdate:
		return c.BeforeUpdate
	case types.BeforeDelete:
		return c.BeforeDelete
	case types.AfterInsert:
		return c.AfterInsert
	case types.AfterUpdate:
		return c.AfterUpdate
	case types.AfterDelete:
		return c.AfterDelete
	case types.AfterUndelete:
		return c.AfterUndelete
	default:
		return nil
	}
}
