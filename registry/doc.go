// Package registry provides the in-memory implementation of
// interfaces.Registry, the shared mapping from validator keys to payout
// addresses.
//
// MemoryRegistry guards a plain map with a sync.RWMutex:
//
//   - Get, Snapshot and Len take the read lock, so concurrent readers never
//     block each other.
//   - Set takes the write lock for exactly one map insert.
//
// No operation spans more than one lock acquisition. Keys and addresses are
// validated by the caller before Set is invoked, so the lock is never held
// while parsing could fail, and Snapshot returns a copy so that JSON
// encoding happens outside the lock.
//
// Concurrent writes to the same key are last-writer-wins. There is no
// versioning, no delete and no persistence: the registry is created empty
// at startup and discarded when the process exits.
//
// MockRegistry is a testify mock of the same interface for handler tests.
package registry
