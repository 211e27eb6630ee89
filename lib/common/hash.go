// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	// HashLength is the expected length of the common.Hash type
	HashLength = 32
)

var ErrHashLength = errors.New("hash length is not valid")

// Hash is the digest of a canonical node encoding.
type Hash [HashLength]byte

// NewHash casts a byte slice to a Hash.
// If the input is longer than 32 bytes, it takes the first 32 bytes.
func NewHash(in []byte) (res Hash) {
	copy(res[:], in)
	return res
}

// HashFromBytes returns a Hash from a byte slice and
// an error if the slice is not exactly 32 bytes long.
func HashFromBytes(b []byte) (h Hash, err error) {
	if len(b) != HashLength {
		return h, fmt.Errorf("%w: expected %d bytes but got %d",
			ErrHashLength, HashLength, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// ToBytes returns a copy of the hash as a byte slice.
func (h Hash) ToBytes() []byte {
	b := [HashLength]byte(h)
	return b[:]
}

// IsEmpty returns true if the hash is all zeroes.
func (h Hash) IsEmpty() bool {
	return h == Hash{}
}

// String returns the 0x prefixed hex string for the hash.
func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// Short returns the first 4 bytes and the last 4 bytes of the hex string for the hash
func (h Hash) Short() string {
	const nBytes = 4
	return fmt.Sprintf("0x%x...%x", h[:nBytes], h[len(h)-nBytes:])
}

// MarshalJSON converts the hash to a 0x prefixed hex JSON string.
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON decodes a 0x prefixed hex JSON string into the hash.
func (h *Hash) UnmarshalJSON(data []byte) error {
	trimmedData := strings.Trim(string(data), "\"")
	if len(trimmedData) < 2 {
		return errors.New("invalid hash format")
	}

	hash, err := HexToHash(trimmedData)
	if err != nil {
		return err
	}
	*h = hash
	return nil
}

// HexToHash turns a 0x prefixed hex string of 32 bytes into a Hash.
func HexToHash(in string) (h Hash, err error) {
	b, err := HexToBytes(in)
	if err != nil {
		return h, err
	}
	return HashFromBytes(b)
}

// MustHexToHash turns a 0x prefixed hex string into type Hash
// it panics if it cannot turn the string into a Hash
func MustHexToHash(in string) Hash {
	h, err := HexToHash(in)
	if err != nil {
		panic(err)
	}
	return h
}
