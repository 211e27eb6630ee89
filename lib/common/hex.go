// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrNoPrefix = errors.New("could not byteify non 0x prefixed string")

// HexToBytes turns a 0x prefixed hex string into a byte slice.
// An odd number of hex digits is left padded with a zero.
func HexToBytes(in string) ([]byte, error) {
	if !strings.HasPrefix(in, "0x") {
		return nil, fmt.Errorf("%w: %s", ErrNoPrefix, in)
	}

	in = in[2:]
	if len(in)%2 != 0 {
		in = "0" + in
	}

	out, err := hex.DecodeString(in)
	if err != nil {
		return nil, fmt.Errorf("decoding hex string: %w", err)
	}
	return out, nil
}

// BytesToHex turns a byte slice into a 0x prefixed hex string.
func BytesToHex(in []byte) string {
	return "0x" + hex.EncodeToString(in)
}

// BytesToString formats bytes for logs and error messages,
// eliding the middle of long slices.
func BytesToString(b []byte) (s string) {
	switch {
	case b == nil:
		return "nil"
	case len(b) <= 20:
		return fmt.Sprintf("0x%x", b)
	default:
		return fmt.Sprintf("0x%x...%x", b[:8], b[len(b)-8:])
	}
}
