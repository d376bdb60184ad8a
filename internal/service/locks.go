package service

import (
	"sync"

	"github.com/google/uuid"
)

// scopeLocks hands out one mutex per scope so read-modify-write sequences on
// a device's drafts are serialized while different devices proceed in parallel.
// Entries are reference counted and dropped when no goroutine holds or waits
// on them.
type scopeLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*scopeLock
}

type scopeLock struct {
	mu   sync.Mutex
	refs int
}

// lock blocks until scope is held and returns the matching unlock.
func (l *scopeLocks) lock(scope uuid.UUID) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[uuid.UUID]*scopeLock)
	}
	sl, ok := l.locks[scope]
	if !ok {
		sl = &scopeLock{}
		l.locks[scope] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.mu.Lock()
	return func() {
		sl.mu.Unlock()
		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, scope)
		}
		l.mu.Unlock()
	}
}

// size returns the number of live entries.
func (l *scopeLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
