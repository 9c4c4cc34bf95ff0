package flow

// Trigger guards a user-initiated remote operation so that at most one
// instance is in flight at a time. Fire reports whether the caller won
// the right to issue the call; re-firing while in flight is a no-op.
type Trigger struct {
	inFlight bool
}

func (t *Trigger) Fire() bool {
	if t.inFlight {
		return false
	}
	t.inFlight = true
	return true
}

// Done returns the trigger to idle, whether the operation succeeded or
// failed.
func (t *Trigger) Done() {
	t.inFlight = false
}

func (t *Trigger) InFlight() bool {
	return t.inFlight
}
