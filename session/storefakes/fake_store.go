package storefakes

import (
	"sync"

	"github.com/vetdesk/client-go/session"
)

var _ session.Store = (*FakeStore)(nil)

// FakeStore is an in-memory Store for tests. FailWrites and FailReads
// simulate broken underlying storage: per the Store contract both degrade
// silently (dropped writes, absent reads).
type FakeStore struct {
	lock       sync.RWMutex
	values     map[string]string
	FailWrites bool
	FailReads  bool
}

func NewFakeStore() *FakeStore {
	return &FakeStore{values: make(map[string]string)}
}

func (fs *FakeStore) Save(key, value string) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if fs.FailWrites {
		return
	}
	fs.values[key] = value
}

func (fs *FakeStore) Load(key string) (string, bool) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()

	if fs.FailReads {
		return "", false
	}
	value, ok := fs.values[key]
	return value, ok
}

func (fs *FakeStore) Remove(key string) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	delete(fs.values, key)
}

func (fs *FakeStore) Clear() {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	fs.values = make(map[string]string)
}

// Len reports how many keys are currently stored.
func (fs *FakeStore) Len() int {
	fs.lock.RLock()
	defer fs.lock.RUnlock()

	return len(fs.values)
}
