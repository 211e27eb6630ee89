// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package pebble provides a database implementation using pebble.
package pebble

import (
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/pmtrie/internal/database"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

// Database is database implementation using a pebble database.
type Database struct {
	path     string
	pebbleDB *pebble.DB
}

// New returns a new database based on a pebble database.
func New(settings Settings) (db *Database, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	options := &pebble.Options{}
	if *settings.InMemory {
		options.FS = vfs.NewMem()
	} else {
		err = os.MkdirAll(*settings.Path, os.ModePerm)
		if err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	pebbleDB, err := pebble.Open(*settings.Path, options)
	if err != nil {
		return nil, fmt.Errorf("opening pebble database: %w", err)
	}

	return &Database{
		path:     *settings.Path,
		pebbleDB: pebbleDB,
	}, nil
}

// Path returns the database directory path.
func (db *Database) Path() string {
	return db.path
}

// Get retrieves a value from the database using the given key.
// It returns the wrapped error `database.ErrKeyNotFound` if the
// key is not found.
func (db *Database) Get(key []byte) (value []byte, err error) {
	pebbleValue, closer, err := db.pebbleDB.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, fmt.Errorf("%w: 0x%x", database.ErrKeyNotFound, key)
		}
		return nil, fmt.Errorf("getting 0x%x from database: %w", key, transformError(err))
	}

	// The pebble value is only valid until the closer is closed.
	value = make([]byte, len(pebbleValue))
	copy(value, pebbleValue)

	err = closer.Close()
	if err != nil {
		return nil, fmt.Errorf("closing after get: %w", err)
	}

	return value, nil
}

// Set sets a value at the given key in the database.
func (db *Database) Set(key, value []byte) (err error) {
	err = db.pebbleDB.Set(key, value, pebble.Sync)
	if err != nil {
		return fmt.Errorf("writing 0x%x to database: %w", key, transformError(err))
	}
	return nil
}

// Delete deletes the given key from the database.
// If the key is not found, no error is returned.
func (db *Database) Delete(key []byte) (err error) {
	err = db.pebbleDB.Delete(key, pebble.Sync)
	if err != nil {
		return fmt.Errorf("deleting 0x%x from database: %w", key, transformError(err))
	}
	return nil
}

// NewWriteBatch returns a new write batch for the database.
func (db *Database) NewWriteBatch() (writeBatch database.WriteBatch) {
	return newWriteBatch(nil, db.pebbleDB.NewBatch())
}

// NewTable returns a new table using the database.
// All keys on the table will be prefixed with the given prefix.
func (db *Database) NewTable(prefix string) (table database.Table) {
	return database.NewTable(db, prefix)
}

// Close closes the database.
func (db *Database) Close() (err error) {
	err = db.pebbleDB.Close()
	return transformError(err)
}

func transformError(pebbleErr error) (err error) {
	if errors.Is(pebbleErr, pebble.ErrClosed) {
		return fmt.Errorf("%w: %w", database.ErrClosed, pebbleErr)
	}
	return pebbleErr
}
