package flow

// Collection identifies a fetchable list whose contents a mutation can
// invalidate.
type Collection string

const (
	Documents Collection = "documents"
	Summaries Collection = "summaries"
	Decks     Collection = "decks"
	Quizzes   Collection = "quizzes"
)

// Registry routes invalidation declarations from mutating operations to
// the views that display the affected collections. Views subscribe a
// refetch callback; mutations declare what they touched and the
// registry triggers exactly those refetches.
type Registry struct {
	nextID int
	subs   map[Collection]map[int]func()
}

func NewRegistry() *Registry {
	return &Registry{subs: make(map[Collection]map[int]func())}
}

// Subscribe registers fn to run whenever c is invalidated and returns
// an unsubscribe function tied to the subscriber's lifetime.
func (r *Registry) Subscribe(c Collection, fn func()) func() {
	if r.subs[c] == nil {
		r.subs[c] = make(map[int]func())
	}
	id := r.nextID
	r.nextID++
	r.subs[c][id] = fn
	return func() { delete(r.subs[c], id) }
}

// Invalidate fires the refetch callbacks for each named collection.
func (r *Registry) Invalidate(cols ...Collection) {
	for _, c := range cols {
		for _, fn := range r.subs[c] {
			fn()
		}
	}
}
