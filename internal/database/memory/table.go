// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package memory

import "github.com/ChainSafe/pmtrie/internal/database"

type table struct {
	prefix   []byte
	database *Database
}

func newTable(prefix string, database *Database) *table {
	return &table{
		prefix:   []byte(prefix),
		database: database,
	}
}

// Get retrieves a value from the database using the given key
// prefixed with the table prefix.
func (t *table) Get(key []byte) (value []byte, err error) {
	return t.database.Get(database.MakePrefixedKey(t.prefix, key))
}

// Set sets a value at the given key prefixed with the table prefix.
func (t *table) Set(key, value []byte) (err error) {
	return t.database.Set(database.MakePrefixedKey(t.prefix, key), value)
}

// Delete deletes the given key prefixed with the table prefix.
func (t *table) Delete(key []byte) (err error) {
	return t.database.Delete(database.MakePrefixedKey(t.prefix, key))
}

// NewWriteBatch returns a new write batch for the database,
// using the table prefix to prefix all keys.
func (t *table) NewWriteBatch() (writeBatch database.WriteBatch) {
	return newWriteBatch(string(t.prefix), t.database)
}
