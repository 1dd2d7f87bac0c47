// Package deactivation answers whether handling for an entity type has
// been switched off declaratively, without a code change. The Store reads
// flags from a TOML file and RECORDFLOW_-prefixed environment variables;
// Static is a plain map lookup for tests and embedding callers. Lookups
// are fail-open: no configuration, or configuration that fails to load,
// means every entity is active.
package deactivation
