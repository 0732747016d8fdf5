// Package interfaces defines the core types and interfaces of the fee
// recipient registry, separating the contract from its implementations.
//
// # Identity Types
//
// ValidatorKey: a validator's BLS public key, "0x" followed by 96 hex
// characters (98 characters in total), stored lowercased.
//
// PayoutAddress: the destination for a validator's fee and MEV rewards, a
// "0x"-prefixed value of exactly 40 characters, stored lowercased.
//
// Both are built only through NewValidatorKey and NewPayoutAddress, which
// check the length first and the literal "0x" prefix second. Failures are
// reported as *LengthError or *PrefixError, both matching ErrValidation:
//
//	key, err := interfaces.NewValidatorKey(raw)
//	var lengthErr *interfaces.LengthError
//	if errors.As(err, &lengthErr) {
//		// lengthErr.Expected == interfaces.ValidatorKeyLength
//	}
//
// Mixed-case input is accepted and normalized rather than rejected.
//
// # Registry
//
// Registry is the shared mapping from ValidatorKey to PayoutAddress. It has
// no delete operation and no persistence; see package registry for the
// in-memory implementation.
package interfaces
