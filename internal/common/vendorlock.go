package common

import "sync"

// KeyedMutex provides mutual exclusion scoped to a string key. The engine
// and the learner share one instance keyed by vendor so that concurrent
// read-modify-write cycles on a vendor's memories cannot lose confidence or
// hit-count updates.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyedMutex creates an empty keyed mutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key, creating it on first use.
func (k *KeyedMutex) Lock(key string) {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
}

// Unlock releases the mutex for key. Panics if the key was never locked.
func (k *KeyedMutex) Unlock(key string) {
	k.mu.Lock()
	m := k.locks[key]
	k.mu.Unlock()

	m.Unlock()
}
