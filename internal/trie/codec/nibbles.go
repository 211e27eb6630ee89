// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codec

import (
	"errors"
	"fmt"
)

var (
	ErrOddNibbles     = errors.New("odd number of nibbles")
	ErrNibbleTooLarge = errors.New("nibble value is larger than 15")
	ErrPaddingNibble  = errors.New("padding nibble is not zero")
	ErrPackedLength   = errors.New("packed nibbles length mismatch")
)

// KeyToNibbles converts a byte slice key into a slice of nibbles,
// two nibbles per byte with the high nibble first.
// An empty key gives an empty (nil) nibbles slice.
func KeyToNibbles(key []byte) (nibbles []byte) {
	if len(key) == 0 {
		return nil
	}

	nibbles = make([]byte, 2*len(key))
	for i, b := range key {
		nibbles[2*i] = b >> 4
		nibbles[2*i+1] = b & 0xf
	}
	return nibbles
}

// NibblesToKey converts a slice of nibbles back into the byte slice key.
// It fails for an odd number of nibbles since keys are whole bytes.
func NibblesToKey(nibbles []byte) (key []byte, err error) {
	if len(nibbles)%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddNibbles, len(nibbles))
	}

	key = make([]byte, len(nibbles)/2)
	for i := range key {
		high, low := nibbles[2*i], nibbles[2*i+1]
		if high > 0xf || low > 0xf {
			return nil, fmt.Errorf("%w: at index %d", ErrNibbleTooLarge, 2*i)
		}
		key[i] = high<<4 | low
	}
	return key, nil
}

// PackedLength returns the number of bytes needed to pack
// the given number of nibbles.
func PackedLength(nibblesCount int) int {
	return (nibblesCount + 1) / 2
}

// PackNibbles packs nibbles two per byte, high nibble first.
// For an odd count, the low nibble of the last byte is zero.
func PackNibbles(nibbles []byte) (packed []byte) {
	packed = make([]byte, PackedLength(len(nibbles)))
	for i, nibble := range nibbles {
		if i%2 == 0 {
			packed[i/2] = nibble << 4
		} else {
			packed[i/2] |= nibble & 0xf
		}
	}
	return packed
}

// UnpackNibbles is the inverse of PackNibbles for the given count
// of nibbles. It rejects a non zero padding nibble so that every
// nibbles slice has a single packed representation.
func UnpackNibbles(packed []byte, nibblesCount int) (nibbles []byte, err error) {
	if len(packed) != PackedLength(nibblesCount) {
		return nil, fmt.Errorf("%w: %d bytes for %d nibbles",
			ErrPackedLength, len(packed), nibblesCount)
	}

	if nibblesCount == 0 {
		return nil, nil
	}

	nibbles = make([]byte, nibblesCount)
	for i := range nibbles {
		if i%2 == 0 {
			nibbles[i] = packed[i/2] >> 4
		} else {
			nibbles[i] = packed[i/2] & 0xf
		}
	}

	if nibblesCount%2 == 1 && packed[len(packed)-1]&0xf != 0 {
		return nil, fmt.Errorf("%w: 0x%x", ErrPaddingNibble, packed[len(packed)-1])
	}

	return nibbles, nil
}

// LenCommonPrefix returns the length of the
// common prefix between two byte slices.
func LenCommonPrefix(a, b []byte) (length int) {
	min := len(a)
	if len(b) < min {
		min = len(b)
	}

	for length = 0; length < min; length++ {
		if a[length] != b[length] {
			break
		}
	}

	return length
}
