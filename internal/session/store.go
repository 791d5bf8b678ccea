package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type entry struct {
	mu      sync.Mutex
	state   State
	touched time.Time
	gone    bool // removed from the map; late callers must not use it
}

// Store keeps live sessions in memory. Transitions on one session are
// serialized; different sessions proceed independently. Nothing survives a
// restart.
type Store struct {
	machine  *Machine
	sessions sync.Map // id -> *entry
	now      func() time.Time
}

func NewStore(m *Machine) *Store {
	return &Store{machine: m, now: time.Now}
}

func (st *Store) Machine() *Machine {
	return st.machine
}

// Create mounts a new session in its initial state.
func (st *Store) Create() (string, State) {
	id := uuid.New().String()
	s := st.machine.Initial()
	st.sessions.Store(id, &entry{state: s, touched: st.now()})
	return id, s.Clone()
}

func (st *Store) Get(id string) (State, error) {
	e, ok := st.load(id)
	if !ok {
		return State{}, ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return State{}, ErrNotFound
	}
	e.touched = st.now()
	return e.state.Clone(), nil
}

// Update runs fn under the session's lock and stores its result. When fn
// fails the session keeps its previous state.
func (st *Store) Update(id string, fn func(State) (State, error)) (State, error) {
	e, ok := st.load(id)
	if !ok {
		return State{}, ErrNotFound
	}
	return st.update(e, fn)
}

func (st *Store) update(e *entry, fn func(State) (State, error)) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return State{}, ErrNotFound
	}

	next, err := fn(e.state.Clone())
	e.touched = st.now()
	if err != nil {
		return e.state.Clone(), err
	}
	e.state = next.Clone()
	return next, nil
}

// Delete discards a session, as when the client unmounts. It reports
// whether the session existed.
func (st *Store) Delete(id string) bool {
	v, ok := st.sessions.LoadAndDelete(id)
	if !ok {
		return false
	}
	e := v.(*entry)
	e.mu.Lock()
	e.gone = true
	e.mu.Unlock()
	return true
}

func (st *Store) Len() int {
	n := 0
	st.sessions.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Evict drops every session idle for longer than ttl and returns how many
// went.
func (st *Store) Evict(ttl time.Duration) int {
	cutoff := st.now().Add(-ttl)
	evicted := 0
	st.sessions.Range(func(k, v any) bool {
		e := v.(*entry)
		e.mu.Lock()
		defer e.mu.Unlock()
		if !e.gone && e.touched.Before(cutoff) {
			e.gone = true
			st.sessions.Delete(k)
			evicted++
		}
		return true
	})
	return evicted
}

func (st *Store) load(id string) (*entry, bool) {
	v, ok := st.sessions.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*entry), true
}
