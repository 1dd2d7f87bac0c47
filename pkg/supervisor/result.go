package supervisor

// State tracks where a supervisor is in its dispatch lifecycle.
type State uint8

const (
	// StateCreated is the initial state after construction.
	StateCreated State = iota
	// StateEligible means the eligibility check passed.
	StateEligible
	// StateRunning means a callback is being invoked.
	StateRunning
	// StateCompleted means the run finished, callback included.
	StateCompleted
	// StateSuppressed means the run exited early because the handler was
	// deactivated or bypassed. Not an error.
	StateSuppressed
	// StateAborted means the run failed: loop limit exceeded or callback
	// failure.
	StateAborted
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateEligible:
		return "eligible"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateSuppressed:
		return "suppressed"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Status is the outcome of one Run call.
type Status uint8

const (
	// StatusCompleted means the phase callback (or its no-op default) ran.
	StatusCompleted Status = iota
	// StatusSuppressed means the handler was skipped: deactivated or
	// bypassed. The normal, non-error short circuit.
	StatusSuppressed
	// StatusAborted means the run failed before or during the callback.
	StatusAborted
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusSuppressed:
		return "suppressed"
	case StatusAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result reports the outcome of one Run call. Err is nil unless Status is
// StatusAborted; CorrelationID is set only for callback failures, and
// matches the id in the sink report and in every record rejection message
// produced by that failure.
type Result struct {
	Status        Status
	CorrelationID string
	Err           error
}
