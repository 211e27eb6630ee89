// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pebble

import (
	"fmt"

	"github.com/ChainSafe/pmtrie/internal/database"
	"github.com/cockroachdb/pebble"
)

type writeBatch struct {
	prefix []byte
	batch  *pebble.Batch
}

func newWriteBatch(prefix []byte, batch *pebble.Batch) *writeBatch {
	return &writeBatch{
		prefix: prefix,
		batch:  batch,
	}
}

func (wb *writeBatch) Set(key, value []byte) (err error) {
	err = wb.batch.Set(database.MakePrefixedKey(wb.prefix, key), value, nil)
	if err != nil {
		return fmt.Errorf("setting to batch writer: %w", err)
	}
	return nil
}

func (wb *writeBatch) Delete(key []byte) (err error) {
	err = wb.batch.Delete(database.MakePrefixedKey(wb.prefix, key), nil)
	if err != nil {
		return fmt.Errorf("setting to batch delete: %w", err)
	}
	return nil
}

// Flush commits the batch atomically to the database.
func (wb *writeBatch) Flush() (err error) {
	err = wb.batch.Commit(pebble.Sync)
	if err != nil {
		return fmt.Errorf("committing batch: %w", transformError(err))
	}
	return wb.batch.Close()
}

// Cancel releases the batch without committing it.
func (wb *writeBatch) Cancel() {
	_ = wb.batch.Close()
}
