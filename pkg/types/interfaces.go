package types

// FailureReport is the structured report handed to an ErrorSink when a
// phase callback fails. The same correlation ID appears in every record
// rejection message produced for that failure.
type FailureReport struct {
	CorrelationID string
	Entity        string
	Phase         Phase
	Err           error
}

// ErrorSink receives failure reports from the supervisor. Implementations
// decide the transport (log line, external service, in-memory capture for
// tests); the dispatch layer does not depend on any particular one.
type ErrorSink interface {
	Report(report FailureReport)
}

// DeactivationLookup answers whether handling for an entity type has been
// switched off declaratively. Implementations must be fail-open: a missing
// record or a failed lookup means "not deactivated", and IsDeactivated
// never blocks or aborts a run.
type DeactivationLookup interface {
	IsDeactivated(entity string) bool
}
