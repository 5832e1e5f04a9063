package plan

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/bsv-blockchain/go-sdk/script"
)

// AddressSize is the length of an identity in bytes (a P2PKH public key hash).
const AddressSize = 20

// hexPrefix marks the raw hex form of an address.
const hexPrefix = "0x"

// Address identifies an owner, a beneficiary or the admin.
type Address [AddressSize]byte

// ZeroAddress is never a valid owner or beneficiary.
//
//nolint:gochecknoglobals // Immutable sentinel value.
var ZeroAddress Address

// ParseAddress accepts a base58check P2PKH address or a 0x-prefixed 40 digit hex string.
func ParseAddress(s string) (Address, error) {
	var addr Address

	s = strings.TrimSpace(s)
	if s == "" {
		return addr, fmt.Errorf("%w: empty", ErrInvalidAddress)
	}

	if strings.HasPrefix(s, hexPrefix) {
		raw, err := hex.DecodeString(s[len(hexPrefix):])
		if err != nil {
			return addr, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
		}

		if len(raw) != AddressSize {
			return addr, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAddress, AddressSize, len(raw))
		}

		copy(addr[:], raw)

		return addr, nil
	}

	decoded, err := script.NewAddressFromString(s)
	if err != nil {
		return addr, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	pkh := []byte(decoded.PublicKeyHash)
	if len(pkh) != AddressSize {
		return addr, fmt.Errorf("%w: public key hash is %d bytes", ErrInvalidAddress, len(pkh))
	}

	copy(addr[:], pkh)

	return addr, nil
}

// MustParseAddress is ParseAddress that panics on error. Intended for tests and constants.
func MustParseAddress(s string) Address {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}

	return addr
}

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// Hex returns the 0x-prefixed hex form.
func (a Address) Hex() string {
	return hexPrefix + hex.EncodeToString(a[:])
}

// String returns the mainnet P2PKH address, falling back to hex.
func (a Address) String() string {
	encoded, err := script.NewAddressFromPublicKeyHash(a[:], true)
	if err != nil {
		return a.Hex()
	}

	return encoded.AddressString
}
