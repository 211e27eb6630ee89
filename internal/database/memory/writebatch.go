// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package memory

import (
	"github.com/ChainSafe/pmtrie/internal/database"
)

type operation struct {
	key    []byte
	value  []byte
	delete bool
}

type writeBatch struct {
	prefix     []byte
	database   *Database
	operations []operation
}

func newWriteBatch(prefix string, database *Database) *writeBatch {
	return &writeBatch{
		prefix:   []byte(prefix),
		database: database,
	}
}

// Set records a set operation at the given key prefixed
// with the write batch prefix.
func (wb *writeBatch) Set(key, value []byte) (err error) {
	wb.operations = append(wb.operations, operation{
		key:   database.MakePrefixedKey(wb.prefix, key),
		value: copyBytes(value),
	})
	return nil
}

// Delete records a delete operation at the given key prefixed
// with the write batch prefix.
func (wb *writeBatch) Delete(key []byte) (err error) {
	wb.operations = append(wb.operations, operation{
		key:    database.MakePrefixedKey(wb.prefix, key),
		delete: true,
	})
	return nil
}

// Flush applies all the recorded operations to the database
// atomically, and resets the write batch.
func (wb *writeBatch) Flush() (err error) {
	db := wb.database
	db.mutex.Lock()
	defer db.mutex.Unlock()
	if db.closed {
		return database.ErrClosed
	}

	for _, operation := range wb.operations {
		if operation.delete {
			delete(db.keyValues, string(operation.key))
			continue
		}
		db.keyValues[string(operation.key)] = operation.value
	}
	wb.operations = nil
	return nil
}

// Cancel discards all the recorded operations.
func (wb *writeBatch) Cancel() {
	wb.operations = nil
}
