package state

import (
	"sync"
	"time"
)

type memoryStore[T any] struct {
	mu      sync.RWMutex
	entries map[int64]*Entry[T]
	now     func() time.Time
}

// NewMemoryStore constructs the in-memory Store.
func NewMemoryStore[T any]() Store[T] {
	return &memoryStore[T]{
		entries: make(map[int64]*Entry[T]),
		now:     time.Now,
	}
}

// entry returns the record for id, creating it. Caller holds the write lock.
func (m *memoryStore[T]) entry(id int64) *Entry[T] {
	e, ok := m.entries[id]
	if !ok {
		e = &Entry[T]{State: StateIdle}
		m.entries[id] = e
	}
	return e
}

func (m *memoryStore[T]) Put(id int64, value T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entry(id)
	e.Value = value
	e.HasValue = true
	e.UpdatedAt = m.now()
}

func (m *memoryStore[T]) Get(id int64) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if e, ok := m.entries[id]; ok && e.HasValue {
		return e.Value, true
	}
	var zero T
	return zero, false
}

func (m *memoryStore[T]) SetState(id int64, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entry(id)
	e.State = st
	e.UpdatedAt = m.now()
}

// GetState returns the current FSM state, or StateIdle if none exists.
func (m *memoryStore[T]) GetState(id int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e.State
	}
	return StateIdle
}

// InProgress reports whether the conversation is in any state other than idle.
func (m *memoryStore[T]) InProgress(id int64) bool {
	return m.GetState(id) != StateIdle
}

// ClearState resets the FSM state to idle without dropping the payload.
func (m *memoryStore[T]) ClearState(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[id]; ok {
		e.State = StateIdle
	}
}

func (m *memoryStore[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
