package tui

import (
	"errors"
	"testing"
)

func TestListCore_LoadLifecycle(t *testing.T) {
	var l listCore[string]

	l.startLoad()
	if st := l.status("empty"); st == "" {
		t.Fatal("expected a loading status before the first fetch resolves")
	}

	l.finish([]string{"a", "b"}, nil)
	if st := l.status("empty"); st != "" {
		t.Fatalf("loaded list with rows should render rows, got status %q", st)
	}
	if len(l.items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(l.items))
	}
}

func TestListCore_EmptyIsDistinctFromLoading(t *testing.T) {
	var l listCore[string]
	l.startLoad()
	l.finish(nil, nil)

	if st := l.status("nothing here"); st == "" {
		t.Fatal("empty loaded list should render the empty state")
	}
}

func TestListCore_FailedFetchKeepsPriorRows(t *testing.T) {
	var l listCore[string]
	l.startLoad()
	l.finish([]string{"a", "b", "c"}, nil)

	l.startLoad()
	l.finish(nil, errors.New("boom"))

	if len(l.items) != 3 {
		t.Fatalf("failed refresh must keep the 3 prior rows, got %d", len(l.items))
	}
	if st := l.status("empty"); st != "" {
		t.Fatal("prior rows should still render after a failed refresh")
	}
}

func TestListCore_SelectionClampsToShrunkList(t *testing.T) {
	var l listCore[string]
	l.finish([]string{"a", "b", "c"}, nil)
	l.down()
	l.down()
	if l.sel != 2 {
		t.Fatalf("expected selection 2, got %d", l.sel)
	}

	l.finish([]string{"a"}, nil)
	if l.sel != 0 {
		t.Fatalf("selection should clamp to 0 after shrink, got %d", l.sel)
	}

	cur, ok := l.current()
	if !ok || cur != "a" {
		t.Fatalf("expected current \"a\", got %q ok=%v", cur, ok)
	}
}

func TestListCore_SelectionStopsAtEdges(t *testing.T) {
	var l listCore[string]
	l.finish([]string{"a", "b"}, nil)

	l.up()
	if l.sel != 0 {
		t.Fatal("up at the top should stay put")
	}
	l.down()
	l.down()
	l.down()
	if l.sel != 1 {
		t.Fatalf("down at the bottom should stay put, got %d", l.sel)
	}
}
