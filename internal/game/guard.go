package game

import "sync"

// Guarded is a value of type V that may only be touched while its guard is
// held. With runs fn under the guard and releases it on every exit path,
// including a panic in fn. fn must not retain v after returning.
type Guarded[V any] interface {
	With(fn func(v *V))
}

// Mutex guards a value with a sync.Mutex.
type Mutex[V any] struct {
	mu sync.Mutex
	v  V
}

// NewMutex returns a Mutex holding v.
func NewMutex[V any](v V) *Mutex[V] {
	return &Mutex[V]{v: v}
}

// With implements Guarded.
func (m *Mutex[V]) With(fn func(v *V)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.v)
}

// Read runs fn under g's guard and returns its result.
func Read[V, R any](g Guarded[V], fn func(v *V) R) R {
	var out R
	g.With(func(v *V) { out = fn(v) })
	return out
}
