package flow

import "testing"

func TestTrigger_AtMostOneInFlight(t *testing.T) {
	var tr Trigger

	if !tr.Fire() {
		t.Fatal("first fire should win")
	}
	// Double-click while in flight: only one underlying call.
	if tr.Fire() {
		t.Fatal("re-fire while in flight must be a no-op")
	}
	if !tr.InFlight() {
		t.Fatal("trigger should report in flight")
	}

	tr.Done()
	if tr.InFlight() {
		t.Fatal("trigger should be idle after Done")
	}
	if !tr.Fire() {
		t.Fatal("fire after Done should win again")
	}
}
