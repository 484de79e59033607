// Package model contains the Bluefin indexer domain types.
package model

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the size of a Sui address or object id in bytes.
const AddressLength = 32

// Address is a Sui account address.
type Address [AddressLength]byte

// ObjectID identifies an on-chain object. It shares the address representation.
type ObjectID = Address

// ParseAddress parses a hex address with or without the 0x prefix. Short values are left-padded.
func ParseAddress(s string) (Address, error) {
	var a Address

	h := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if h == "" || len(h) > AddressLength*2 {
		return a, fmt.Errorf("parse address %q: invalid length", s)
	}
	if len(h)%2 == 1 {
		h = "0" + h
	}

	b, err := hex.DecodeString(h)
	if err != nil {
		return a, fmt.Errorf("parse address %q: %w", s, err)
	}
	copy(a[AddressLength-len(b):], b)
	return a, nil
}

// MustParseAddress is like ParseAddress but panics on malformed input.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String renders the address as 0x followed by 64 lowercase hex digits.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// IsZero reports whether every byte of the address is zero.
func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
