package interfaces

// Registry maps validator keys to payout addresses.
//
// Implementations must be safe for concurrent use. Callers validate keys and
// addresses before calling Set; the registry itself never fails.
type Registry interface {
	// Get returns the address registered for key, if any.
	Get(key ValidatorKey) (PayoutAddress, bool)

	// Set inserts or overwrites the address for key.
	Set(key ValidatorKey, address PayoutAddress)

	// Snapshot returns an independent copy of all entries. Later writes do
	// not affect the returned map.
	Snapshot() map[ValidatorKey]PayoutAddress

	// Len returns the number of registered keys.
	Len() int
}
