package carousel

// resizeSignal fans resize notifications out to subscribers. It runs on
// the bubbletea event loop and needs no locking.
type resizeSignal struct {
	subs map[int]func()
	next int
}

func newResizeSignal() *resizeSignal {
	return &resizeSignal{subs: make(map[int]func())}
}

// Subscribe registers fn and returns its cancel function.
func (r *resizeSignal) Subscribe(fn func()) func() {
	id := r.next
	r.next++
	r.subs[id] = fn
	return func() { delete(r.subs, id) }
}

// Notify calls every subscriber.
func (r *resizeSignal) Notify() {
	for _, fn := range r.subs {
		fn()
	}
}

// Len returns the number of active subscriptions.
func (r *resizeSignal) Len() int {
	return len(r.subs)
}
