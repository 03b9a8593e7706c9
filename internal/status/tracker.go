// internal/status/tracker.go
package status

// Tracker folds poll outcomes and clock ticks into a Snapshot.
// Not safe for concurrent use; one owner per group.
type Tracker struct {
	snap Snapshot
}

// NewTracker starts in the unknown state.
func NewTracker() *Tracker {
	return &Tracker{snap: Snapshot{Health: HealthUnknown}}
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Snapshot { return t.snap }

// Observe records one cycle outcome and reports whether the snapshot changed.
func (t *Tracker) Observe(err error) (Snapshot, bool) {
	next := t.snap

	if err == nil {
		// Recovery resets the error fields.
		next = Snapshot{Health: HealthOK}
	} else {
		next.Health = HealthError
		next.LastErrorCode = ErrorCode(err)
		// seconds_in_error only moves on Tick
	}

	changed := next != t.snap
	t.snap = next
	return next, changed
}

// Tick advances the error duration by one second while not healthy.
func (t *Tracker) Tick() (Snapshot, bool) {
	if t.snap.Health == HealthOK || t.snap.SecondsInError >= MaxSecondsInError {
		return t.snap, false
	}
	t.snap.SecondsInError++
	return t.snap, true
}
