// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package database

type table struct {
	prefix   []byte
	database Database
}

// NewTable returns a table prefixing all its keys with the prefix
// given, for databases without a native table implementation.
func NewTable(database Database, prefix string) Table {
	return &table{
		prefix:   []byte(prefix),
		database: database,
	}
}

// Get retrieves a value from the database using the given key
// prefixed with the table prefix.
func (t *table) Get(key []byte) (value []byte, err error) {
	return t.database.Get(MakePrefixedKey(t.prefix, key))
}

// Set sets a value at the given key prefixed with the table prefix.
func (t *table) Set(key, value []byte) (err error) {
	return t.database.Set(MakePrefixedKey(t.prefix, key), value)
}

// Delete deletes the given key prefixed with the table prefix.
func (t *table) Delete(key []byte) (err error) {
	return t.database.Delete(MakePrefixedKey(t.prefix, key))
}

// NewWriteBatch returns a write batch prefixing all keys
// with the table prefix.
func (t *table) NewWriteBatch() (writeBatch WriteBatch) {
	return &tableWriteBatch{
		prefix:     t.prefix,
		writeBatch: t.database.NewWriteBatch(),
	}
}

type tableWriteBatch struct {
	prefix     []byte
	writeBatch WriteBatch
}

func (wb *tableWriteBatch) Set(key, value []byte) (err error) {
	return wb.writeBatch.Set(MakePrefixedKey(wb.prefix, key), value)
}

func (wb *tableWriteBatch) Delete(key []byte) (err error) {
	return wb.writeBatch.Delete(MakePrefixedKey(wb.prefix, key))
}

func (wb *tableWriteBatch) Flush() (err error) {
	return wb.writeBatch.Flush()
}

func (wb *tableWriteBatch) Cancel() {
	wb.writeBatch.Cancel()
}
