// Package supervisor implements the dispatch layer that routes a
// record-change event to the one phase callback a handler defines for it.
// A Supervisor is constructed per batch per phase, checks the deactivation
// lookup and the bypass registry before doing anything, counts the
// invocation against its loop guard, and isolates callback failures so
// they surface as per-record rejections with a correlation id instead of
// escaping the dispatch boundary.
package supervisor
