// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"github.com/ChainSafe/pmtrie/internal/database"
)

// Database is the node store, mapping node digests to
// node encodings. The Get method must return an error
// wrapping database.ErrKeyNotFound for a missing key.
type Database interface {
	Getter
	Setter
}

// Getter gets a value corresponding to the given key.
type Getter interface {
	Get(key []byte) (value []byte, err error)
}

// Setter sets a value at the given key.
type Setter interface {
	Set(key, value []byte) error
}

// WriteBatcher is implemented by node stores able to
// write multiple nodes atomically.
type WriteBatcher interface {
	NewWriteBatch() database.WriteBatch
}
