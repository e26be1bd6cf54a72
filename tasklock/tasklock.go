// Package tasklock serializes pipeline runs that target the same task, so
// concurrent rounds cannot race on one repository.
package tasklock

import "sync"

// Registry hands out one mutex per task key. Entries are never evicted; the
// key space is bounded by the number of distinct tasks seen by one process.
type Registry struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New returns an empty Registry
func New() *Registry {
	return &Registry{locks: make(map[string]*sync.Mutex)}
}

// Acquire locks the mutex for key and returns its unlock function
func (r *Registry) Acquire(key string) func() {
	r.mu.Lock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}
