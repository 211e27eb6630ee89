// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package database defines the key value store interfaces
// used to persist trie nodes and metadata.
package database

import "errors"

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrClosed      = errors.New("database is closed")
)

// Reader reads values from a key value store.
type Reader interface {
	// Get returns the value at the given key, or an error
	// wrapping ErrKeyNotFound if the key does not exist.
	Get(key []byte) (value []byte, err error)
}

// Writer writes to a key value store.
type Writer interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// ReaderWriter reads from and writes to a key value store.
type ReaderWriter interface {
	Reader
	Writer
}

// WriteBatch buffers writes until it is flushed.
// It is not safe for concurrent use.
type WriteBatch interface {
	Writer
	Flush() error
	Cancel()
}

// Table is a view of a database with all keys prefixed
// with a common prefix.
type Table interface {
	ReaderWriter
	NewWriteBatch() (writeBatch WriteBatch)
}

// Database is a key value store.
// All its methods are safe for concurrent use.
type Database interface {
	ReaderWriter
	NewWriteBatch() (writeBatch WriteBatch)
	NewTable(prefix string) (table Table)
	Close() error
}

// MakePrefixedKey returns a new slice with the prefix followed by the key.
func MakePrefixedKey(prefix, key []byte) (prefixedKey []byte) {
	// Do not use append(prefix, key...) since the prefix might
	// have a capacity larger than its length and prefixed keys
	// would then share the prefix underlying array.
	prefixedKey = make([]byte, 0, len(prefix)+len(key))
	prefixedKey = append(prefixedKey, prefix...)
	prefixedKey = append(prefixedKey, key...)
	return prefixedKey
}
