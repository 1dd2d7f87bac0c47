package deactivation

import "strings"

// Static is a fixed entity-to-disabled lookup. It implements
// types.DeactivationLookup and is the easiest way to drive deactivation
// from tests or from callers that manage their own configuration.
type Static map[string]bool

// IsDeactivated reports whether the entity has an explicit disabled entry.
// Entity names are matched case-insensitively.
func (s Static) IsDeactivated(entity string) bool {
	if s == nil {
		return false
	}
	if disabled, ok := s[entity]; ok {
		return disabled
	}
	for name, disabled := range s {
		if strings.EqualFold(name, entity) {
			return disabled
		}
	}
	return false
}
