package types

// Record is one domain record within a triggering batch. Fields are opaque
// to the dispatch layer; the error list is how a failed run surfaces as a
// per-record rejection.
type Record struct {
	// ID is the stable identifier of the record within its entity type.
	ID string

	// Fields holds the record's field values. The supervisor never reads
	// or writes them; they exist for callbacks.
	Fields map[string]interface{}

	errs []string
}

// NewRecord creates a record with the given ID and an empty field map.
func NewRecord(id string) *Record {
	return &Record{ID: id, Fields: make(map[string]interface{})}
}

// AddError attaches a rejection message to the record.
func (r *Record) AddError(msg string) {
	r.errs = append(r.errs, msg)
}

// Errors returns the rejection messages attached so far, in order.
func (r *Record) Errors() []string {
	return r.errs
}

// Rejected reports whether any rejection message is attached.
func (r *Record) Rejected() bool {
	return len(r.errs) > 0
}

// Batch is the ordered set of records a change event fired for. Depending
// on the phase, the caller supplies an old-state view, a new-state view, or
// both (updates).
type Batch struct {
	// Old holds the pre-change state of the records. Empty for inserts.
	Old []*Record

	// New holds the post-change state of the records. Empty for deletes.
	New []*Record
}

// Affected returns the record view rejection messages attach to for the
// given phase: the old-state view for delete phases, the new-state view
// otherwise.
func (b *Batch) Affected(p Phase) []*Record {
	if b == nil {
		return nil
	}
	if p.UsesOldRecords() {
		return b.Old
	}
	return b.New
}

// Size returns the number of records the batch affects for the given phase.
func (b *Batch) Size(p Phase) int {
	return len(b.Affected(p))
}
