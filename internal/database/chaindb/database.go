// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package chaindb adapts a ChainSafe chaindb database
// to the database interfaces.
package chaindb

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/pmtrie/internal/database"
)

// Database wraps a chaindb database.
type Database struct {
	chainDB chaindb.Database
}

// New opens a chaindb badger database in the data directory given.
func New(dataDir string, inMemory bool) (db *Database, err error) {
	chainDB, err := chaindb.NewBadgerDB(&chaindb.Config{
		DataDir:  dataDir,
		InMemory: inMemory,
	})
	if err != nil {
		return nil, fmt.Errorf("opening chaindb database: %w", err)
	}
	return Wrap(chainDB), nil
}

// Wrap returns a database using the chaindb database given.
func Wrap(chainDB chaindb.Database) *Database {
	return &Database{chainDB: chainDB}
}

// Get retrieves a value from the database using the given key.
// It returns the wrapped error `database.ErrKeyNotFound` if the
// key is not found.
func (db *Database) Get(key []byte) (value []byte, err error) {
	value, err = db.chainDB.Get(key)
	if err != nil {
		if errors.Is(err, chaindb.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: 0x%x", database.ErrKeyNotFound, key)
		}
		return nil, fmt.Errorf("getting 0x%x from database: %w", key, err)
	}
	return value, nil
}

// Set sets a value at the given key in the database.
func (db *Database) Set(key, value []byte) (err error) {
	return db.chainDB.Put(key, value)
}

// Delete deletes the given key from the database.
func (db *Database) Delete(key []byte) (err error) {
	return db.chainDB.Del(key)
}

// NewWriteBatch returns a new write batch for the database.
func (db *Database) NewWriteBatch() (writeBatch database.WriteBatch) {
	return &writeBatchAdapter{batch: db.chainDB.NewBatch()}
}

// NewTable returns a new table using the database.
// All keys on the table will be prefixed with the given prefix.
func (db *Database) NewTable(prefix string) (table database.Table) {
	return database.NewTable(db, prefix)
}

// Close closes the database.
func (db *Database) Close() (err error) {
	return db.chainDB.Close()
}

type writeBatchAdapter struct {
	batch chaindb.Batch
}

func (wb *writeBatchAdapter) Set(key, value []byte) (err error) {
	return wb.batch.Put(key, value)
}

func (wb *writeBatchAdapter) Delete(key []byte) (err error) {
	return wb.batch.Del(key)
}

func (wb *writeBatchAdapter) Flush() (err error) {
	return wb.batch.Flush()
}

func (wb *writeBatchAdapter) Cancel() {
	wb.batch.Reset()
}
