package registry

import (
	"maps"
	"sync"

	"github.com/ruteri/fee-recipient-registry/interfaces"
)

// MemoryRegistry is a volatile interfaces.Registry. Readers share a read
// lock and writers take the write lock for the single map operation; the
// lock is never held across validation or serialization.
type MemoryRegistry struct {
	mu      sync.RWMutex
	entries map[interfaces.ValidatorKey]interfaces.PayoutAddress
}

// NewMemoryRegistry returns an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		entries: make(map[interfaces.ValidatorKey]interfaces.PayoutAddress),
	}
}

func (r *MemoryRegistry) Get(key interfaces.ValidatorKey) (interfaces.PayoutAddress, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	address, found := r.entries[key]
	return address, found
}

// Set overwrites any existing entry. Concurrent writers to the same key
// leave whichever value was written last.
func (r *MemoryRegistry) Set(key interfaces.ValidatorKey, address interfaces.PayoutAddress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = address
}

func (r *MemoryRegistry) Snapshot() map[interfaces.ValidatorKey]interfaces.PayoutAddress {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return maps.Clone(r.entries)
}

func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
