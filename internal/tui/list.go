package tui

// listCore is the shared lifecycle of the four collection screens:
// Loading on entry, then Loaded, Empty or Error. A failed fetch keeps
// whatever rows were already shown; the error itself surfaces as a
// notice.
type listCore[T any] struct {
	items   []T
	loading bool
	loaded  bool
	sel     int
}

func (l *listCore[T]) startLoad() {
	l.loading = true
}

func (l *listCore[T]) finish(items []T, err error) {
	l.loading = false
	if err != nil {
		return
	}
	l.loaded = true
	l.items = items
	if l.sel >= len(l.items) {
		l.sel = len(l.items) - 1
	}
	if l.sel < 0 {
		l.sel = 0
	}
}

func (l *listCore[T]) up() {
	if l.sel > 0 {
		l.sel--
	}
}

func (l *listCore[T]) down() {
	if l.sel < len(l.items)-1 {
		l.sel++
	}
}

func (l *listCore[T]) current() (T, bool) {
	var zero T
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[l.sel], true
}

// status renders the non-row states; rows render in the caller when it
// returns "".
func (l *listCore[T]) status(empty string) string {
	if l.loading && !l.loaded {
		return dimStyle.Render("Loading...")
	}
	if l.loaded && len(l.items) == 0 {
		return dimStyle.Render(empty)
	}
	return ""
}
