package ledger

import "sync"

// ownerLocks hands out one mutex per owner id. Entries are dropped once no
// caller holds or waits on them. The zero value is ready to use.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[string]*ownerLock
}

type ownerLock struct {
	mu   sync.Mutex
	refs int
}

// lock blocks until the owner's mutex is held and returns its release.
func (o *ownerLocks) lock(ownerID string) (unlock func()) {
	o.mu.Lock()
	if o.locks == nil {
		o.locks = make(map[string]*ownerLock)
	}
	l, ok := o.locks[ownerID]
	if !ok {
		l = &ownerLock{}
		o.locks[ownerID] = l
	}
	l.refs++
	o.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		o.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(o.locks, ownerID)
		}
		o.mu.Unlock()
	}
}
