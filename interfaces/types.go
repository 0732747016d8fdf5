package interfaces

import (
	"errors"
	"fmt"
)

const (
	// ValidatorKeyLength is the length of a 0x-prefixed hex encoded BLS public key.
	ValidatorKeyLength = 98

	// PayoutAddressLength is the accepted length of a payout address, prefix included.
	PayoutAddressLength = 40

	hexPrefix = "0x"
)

// ErrValidation is matched by every error returned from NewValidatorKey and
// NewPayoutAddress.
var ErrValidation = errors.New("validation failed")

// LengthError reports a value whose length differs from the required one.
type LengthError struct {
	Field    string
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("The length of %s should be %d", e.Field, e.Expected)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrValidation
}

// PrefixError reports a value of the right length that does not start with
// the literal "0x".
type PrefixError struct {
	Field string
}

func (e *PrefixError) Error() string {
	return fmt.Sprintf("The %s should start from '%s'", e.Field, hexPrefix)
}

func (e *PrefixError) Is(target error) bool {
	return target == ErrValidation
}

// validateIdentity checks length before prefix so that a value failing both
// reports the length error.
func validateIdentity(field, raw string, length int) (string, error) {
	if len(raw) != length {
		return "", &LengthError{Field: field, Expected: length, Actual: len(raw)}
	}
	if raw[:len(hexPrefix)] != hexPrefix {
		return "", &PrefixError{Field: field}
	}
	return lowerASCII(raw), nil
}

// lowerASCII folds only A-Z so the normalized value keeps the byte length
// that was validated. strings.ToLower would rewrite non-ASCII runes and
// invalid UTF-8 into sequences of a different length.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// ValidatorKey identifies a validator by its normalized BLS public key.
// The zero value is not a valid key.
type ValidatorKey struct {
	value string
}

// NewValidatorKey validates raw and returns its lowercased form.
func NewValidatorKey(raw string) (ValidatorKey, error) {
	value, err := validateIdentity("pubkey", raw, ValidatorKeyLength)
	if err != nil {
		return ValidatorKey{}, err
	}
	return ValidatorKey{value: value}, nil
}

// String returns the normalized key.
func (k ValidatorKey) String() string {
	return k.value
}

// MarshalText allows ValidatorKey to be used as a JSON object key.
func (k ValidatorKey) MarshalText() ([]byte, error) {
	return []byte(k.value), nil
}

func (k *ValidatorKey) UnmarshalText(text []byte) error {
	parsed, err := NewValidatorKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// PayoutAddress is the normalized destination for a validator's rewards.
type PayoutAddress struct {
	value string
}

// NewPayoutAddress validates raw and returns its lowercased form.
func NewPayoutAddress(raw string) (PayoutAddress, error) {
	value, err := validateIdentity("address", raw, PayoutAddressLength)
	if err != nil {
		return PayoutAddress{}, err
	}
	return PayoutAddress{value: value}, nil
}

// String returns the normalized address.
func (a PayoutAddress) String() string {
	return a.value
}

func (a PayoutAddress) MarshalText() ([]byte, error) {
	return []byte(a.value), nil
}

func (a *PayoutAddress) UnmarshalText(text []byte) error {
	parsed, err := NewPayoutAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
