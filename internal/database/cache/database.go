// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package cache provides a read-through database decorator
// caching values in a ristretto cache.
package cache

import (
	"fmt"

	"github.com/ChainSafe/pmtrie/internal/database"
	"github.com/dgraph-io/ristretto"
)

// Database caches the values read from and written to
// the database it wraps. It is meant for content addressed data:
// the value at a key must not change once set, since ristretto
// applies cache writes and deletions asynchronously.
// Tables are not cached.
type Database struct {
	database database.Database
	cache    *ristretto.Cache
}

// New returns a caching database wrapping the database given.
func New(db database.Database, settings Settings) (cachingDB *Database, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: *settings.NumCounters,
		MaxCost:     *settings.MaxCost,
		BufferItems: 64,
		Cost: func(value interface{}) int64 {
			return int64(len(value.([]byte)))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating cache: %w", err)
	}

	return &Database{
		database: db,
		cache:    cache,
	}, nil
}

// Get returns the cached value for the key if any, and
// otherwise reads it from the wrapped database and caches it.
func (db *Database) Get(key []byte) (value []byte, err error) {
	cached, ok := db.cache.Get(string(key))
	if ok {
		return copyBytes(cached.([]byte)), nil
	}

	value, err = db.database.Get(key)
	if err != nil {
		return nil, err
	}

	const cost = 0 // computed by the Cost function
	db.cache.Set(string(key), copyBytes(value), cost)
	return value, nil
}

// Set sets the value in the wrapped database and caches it.
func (db *Database) Set(key, value []byte) (err error) {
	err = db.database.Set(key, value)
	if err != nil {
		return err
	}

	const cost = 0 // computed by the Cost function
	db.cache.Set(string(key), copyBytes(value), cost)
	return nil
}

// Delete deletes the key from the wrapped database and evicts it
// from the cache. The eviction may be applied with a short delay.
func (db *Database) Delete(key []byte) (err error) {
	db.cache.Del(string(key))
	return db.database.Delete(key)
}

// NewWriteBatch returns a write batch caching its values
// once it is flushed successfully.
func (db *Database) NewWriteBatch() (writeBatch database.WriteBatch) {
	return &cachingWriteBatch{
		database:   db,
		writeBatch: db.database.NewWriteBatch(),
	}
}

// NewTable returns an uncached table of the wrapped database.
func (db *Database) NewTable(prefix string) (table database.Table) {
	return db.database.NewTable(prefix)
}

// Close closes the cache and the wrapped database.
func (db *Database) Close() (err error) {
	db.cache.Close()
	return db.database.Close()
}

type keyValue struct {
	key   []byte
	value []byte
}

type cachingWriteBatch struct {
	database   *Database
	writeBatch database.WriteBatch
	sets       []keyValue
	deletes    [][]byte
}

func (wb *cachingWriteBatch) Set(key, value []byte) (err error) {
	err = wb.writeBatch.Set(key, value)
	if err != nil {
		return err
	}
	wb.sets = append(wb.sets, keyValue{key: copyBytes(key), value: copyBytes(value)})
	return nil
}

func (wb *cachingWriteBatch) Delete(key []byte) (err error) {
	err = wb.writeBatch.Delete(key)
	if err != nil {
		return err
	}
	wb.deletes = append(wb.deletes, copyBytes(key))
	return nil
}

func (wb *cachingWriteBatch) Flush() (err error) {
	for _, key := range wb.deletes {
		wb.database.cache.Del(string(key))
	}

	err = wb.writeBatch.Flush()
	if err != nil {
		wb.reset()
		return err
	}

	const cost = 0 // computed by the Cost function
	for _, set := range wb.sets {
		wb.database.cache.Set(string(set.key), set.value, cost)
	}
	wb.reset()
	return nil
}

func (wb *cachingWriteBatch) Cancel() {
	wb.writeBatch.Cancel()
	wb.reset()
}

func (wb *cachingWriteBatch) reset() {
	wb.sets = nil
	wb.deletes = nil
}

func copyBytes(b []byte) (bCopy []byte) {
	bCopy = make([]byte, len(b))
	copy(bCopy, b)
	return bCopy
}
