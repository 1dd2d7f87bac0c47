// Package bypass provides the runtime suppression registry: a set of
// handler identities that the dispatch supervisor should skip for the
// remainder of the current execution context. One Registry is constructed
// per top-level execution and threaded into every supervisor created
// within it, so suppression set by one handler is visible to all later
// eligibility checks in the same execution.
package bypass
