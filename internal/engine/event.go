package engine

// Event is a multicast callback list. Listeners run synchronously, in the
// order they were added, on the goroutine that calls Invoke.
type Event[T any] struct {
	listeners []listener[T]
	nextID    int
}

type listener[T any] struct {
	id int
	fn func(T)
}

// AddListener registers fn and returns a handle for RemoveListener. A nil fn is
// ignored and yields 0.
func (e *Event[T]) AddListener(fn func(T)) int {
	if fn == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: fn})
	return e.nextID
}

// RemoveListener drops the listener with the given handle.
func (e *Event[T]) RemoveListener(id int) bool {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Event[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *Event[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *Event[T]) Len() int {
	return len(e.listeners)
}
