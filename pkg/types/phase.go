package types

import "fmt"

// Phase identifies which record-change event is firing. Exactly one phase
// is active per supervisor invocation, fixed at construction time.
type Phase uint8

const (
	PhaseInvalid Phase = iota
	BeforeInsert
	BeforeUpdate
	BeforeDelete
	AfterInsert
	AfterUpdate
	AfterDelete
	AfterUndelete
)

// Phases returns all valid phases in firing order.
func Phases() []Phase {
	return []Phase{
		BeforeInsert,
		BeforeUpdate,
		BeforeDelete,
		AfterInsert,
		AfterUpdate,
		AfterDelete,
		AfterUndelete,
	}
}

// String returns the canonical name of the phase.
func (p Phase) String() string {
	switch p {
	case BeforeInsert:
		return "before-insert"
	case BeforeUpdate:
		return "before-update"
	case BeforeDelete:
		return "before-delete"
	case AfterInsert:
		return "after-insert"
	case AfterUpdate:
		return "after-update"
	case AfterDelete:
		return "after-delete"
	case AfterUndelete:
		return "after-undelete"
	default:
		return "invalid"
	}
}

// ParsePhase converts a canonical phase name back into a Phase.
func ParsePhase(s string) (Phase, error) {
	for _, p := range Phases() {
		if p.String() == s {
			return p, nil
		}
	}
	return PhaseInvalid, fmt.Errorf("unknown lifecycle phase: %q", s)
}

// IsValid reports whether p is one of the seven lifecycle phases.
func (p Phase) IsValid() bool {
	return p >= BeforeInsert && p <= AfterUndelete
}

// IsBefore reports whether the phase fires before the record change is
// applied.
func (p Phase) IsBefore() bool {
	return p == BeforeInsert || p == BeforeUpdate || p == BeforeDelete
}

// UsesOldRecords reports whether rejection messages for this phase attach
// to the old-state batch. Delete events only carry an old-state view; every
// other phase carries a new-state view.
func (p Phase) UsesOldRecords() bool {
	return p == BeforeDelete || p == AfterDelete
}
