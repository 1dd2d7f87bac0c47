// Package types defines the core types and interfaces used throughout
// recordflow. This includes the lifecycle Phase enumeration, the Record and
// Batch views a change event carries, and the ErrorSink and
// DeactivationLookup collaborator interfaces.
package types
