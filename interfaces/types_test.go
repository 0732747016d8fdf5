package interfaces

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPubkey  = "0xaff3071a4bff828acb8e0c6e0c73aa481162da7b8735fd798c3237bc643ae1aa325d6281abe61ffedaf2eb51b29eaf27"
	testAddress = "0x50155530fce8a85ec7055a5f8b2be214b3daef"
)

func TestNewValidatorKey(t *testing.T) {
	require.Len(t, testPubkey, ValidatorKeyLength)

	tests := []struct {
		name      string
		raw       string
		wantErr   error
		errString string
	}{
		{"short", "123", &LengthError{}, "The length of pubkey should be 98"},
		{"empty", "", &LengthError{}, "The length of pubkey should be 98"},
		{"one char short", testPubkey[:97], &LengthError{}, "The length of pubkey should be 98"},
		{"one char long", testPubkey + "0", &LengthError{}, "The length of pubkey should be 98"},
		{"bad first char", "1x" + testPubkey[2:], &PrefixError{}, "The pubkey should start from '0x'"},
		{"bad second char", "0b" + testPubkey[2:], &PrefixError{}, "The pubkey should start from '0x'"},
		{"upper case prefix", "0X" + testPubkey[2:], &PrefixError{}, "The pubkey should start from '0x'"},
		{"length checked before prefix", "1x" + testPubkey[2:97], &LengthError{}, "The length of pubkey should be 98"},
		{"valid", testPubkey, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewValidatorKey(tt.raw)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.raw, key.String())
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.Equal(t, tt.errString, err.Error())
			assert.IsType(t, tt.wantErr, err)
			assert.Equal(t, ValidatorKey{}, key)
		})
	}
}

func TestNewPayoutAddress(t *testing.T) {
	require.Len(t, testAddress, PayoutAddressLength)

	_, err := NewPayoutAddress(testAddress[:39])
	var lengthErr *LengthError
	require.True(t, errors.As(err, &lengthErr))
	assert.Equal(t, PayoutAddressLength, lengthErr.Expected)
	assert.Equal(t, 39, lengthErr.Actual)
	assert.Equal(t, "The length of address should be 40", err.Error())

	_, err = NewPayoutAddress("00" + testAddress[2:])
	var prefixErr *PrefixError
	require.True(t, errors.As(err, &prefixErr))
	assert.Equal(t, "The address should start from '0x'", err.Error())

	addr, err := NewPayoutAddress(testAddress)
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr.String())
}

func TestLengthRuleForAllLengths(t *testing.T) {
	for n := 0; n <= 2*ValidatorKeyLength; n++ {
		raw := "0x" + strings.Repeat("a", max(n-2, 0))
		raw = raw[:min(len(raw), n)]

		_, keyErr := NewValidatorKey(raw)
		_, addrErr := NewPayoutAddress(raw)

		if n != ValidatorKeyLength {
			assert.IsType(t, &LengthError{}, keyErr, "length %d", n)
		} else {
			assert.NoError(t, keyErr)
		}
		if n != PayoutAddressLength {
			assert.IsType(t, &LengthError{}, addrErr, "length %d", n)
		} else {
			assert.NoError(t, addrErr)
		}
	}
}

func TestNormalization(t *testing.T) {
	upper := "0x" + strings.ToUpper(testPubkey[2:])

	fromUpper, err := NewValidatorKey(upper)
	require.NoError(t, err)
	fromLower, err := NewValidatorKey(testPubkey)
	require.NoError(t, err)

	assert.Equal(t, fromLower, fromUpper)
	assert.Equal(t, testPubkey, fromUpper.String())

	again, err := NewValidatorKey(fromUpper.String())
	require.NoError(t, err)
	assert.Equal(t, fromUpper, again)

	addr, err := NewPayoutAddress("0x" + strings.ToUpper(testAddress[2:]))
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr.String())
}

func TestNonASCIIInputDoesNotPanic(t *testing.T) {
	// 49 two-byte runes make a 98-byte string.
	raw := strings.Repeat("é", 49)
	assert.NotPanics(t, func() {
		_, err := NewValidatorKey(raw)
		assert.IsType(t, &PrefixError{}, err)
	})
}

func TestNormalizationKeepsLength(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		// U+212A KELVIN SIGN is 3 bytes and lowercases to the 1-byte "k"
		{"kelvin sign", "0x" + strings.Repeat("a", 93) + "\u212a"},
		{"invalid utf-8", "0x" + strings.Repeat("\xff", 96)},
		{"mixed ascii and non-ascii", "0xAB" + strings.Repeat("é", 47)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, tt.raw, ValidatorKeyLength)

			key, err := NewValidatorKey(tt.raw)
			require.NoError(t, err)
			assert.Len(t, key.String(), ValidatorKeyLength)

			reparsed, err := NewValidatorKey(key.String())
			require.NoError(t, err)
			assert.Equal(t, key, reparsed)

			// encoding/json replaces invalid UTF-8, so only valid text survives a listing
			if !utf8.ValidString(tt.raw) {
				return
			}
			encoded, err := json.Marshal(map[ValidatorKey]string{key: "x"})
			require.NoError(t, err)
			var decoded map[ValidatorKey]string
			require.NoError(t, json.Unmarshal(encoded, &decoded))
			assert.Equal(t, map[ValidatorKey]string{key: "x"}, decoded)
		})
	}

	addr, err := NewPayoutAddress("0x" + strings.Repeat("a", 35) + "\u212a")
	require.NoError(t, err)
	assert.Len(t, addr.String(), PayoutAddressLength)
}

func TestJSONMapRoundTrip(t *testing.T) {
	key, err := NewValidatorKey(testPubkey)
	require.NoError(t, err)
	addr, err := NewPayoutAddress(testAddress)
	require.NoError(t, err)

	encoded, err := json.Marshal(map[ValidatorKey]PayoutAddress{key: addr})
	require.NoError(t, err)
	assert.JSONEq(t, `{"`+testPubkey+`":"`+testAddress+`"}`, string(encoded))

	var decoded map[ValidatorKey]PayoutAddress
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, addr, decoded[key])

	err = json.Unmarshal([]byte(`{"0x12":"`+testAddress+`"}`), &decoded)
	assert.Error(t, err)
}
