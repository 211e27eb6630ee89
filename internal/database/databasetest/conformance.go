// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package databasetest provides behaviour tests shared
// by all the database implementations.
package databasetest

import (
	"testing"

	"github.com/ChainSafe/pmtrie/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run runs the shared behaviour tests against the database
// returned by newDatabase. Each subtest uses a fresh database.
func Run(t *testing.T, newDatabase func(t *testing.T) database.Database) {
	t.Helper()

	t.Run("get set delete", func(t *testing.T) {
		db := newDatabase(t)

		_, err := db.Get([]byte{1})
		assert.ErrorIs(t, err, database.ErrKeyNotFound)

		err = db.Set([]byte{1}, []byte{2})
		require.NoError(t, err)

		value, err := db.Get([]byte{1})
		require.NoError(t, err)
		assert.Equal(t, []byte{2}, value)

		err = db.Set([]byte{1}, []byte{3})
		require.NoError(t, err)

		value, err = db.Get([]byte{1})
		require.NoError(t, err)
		assert.Equal(t, []byte{3}, value)

		err = db.Delete([]byte{9})
		require.NoError(t, err)

		err = db.Delete([]byte{1})
		require.NoError(t, err)

		_, err = db.Get([]byte{1})
		assert.ErrorIs(t, err, database.ErrKeyNotFound)
	})

	t.Run("value is copied", func(t *testing.T) {
		db := newDatabase(t)

		value := []byte{1, 2}
		err := db.Set([]byte{1}, value)
		require.NoError(t, err)
		value[0] = 9

		stored, err := db.Get([]byte{1})
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2}, stored)
	})

	t.Run("write batch", func(t *testing.T) {
		db := newDatabase(t)

		err := db.Set([]byte{3}, []byte{3})
		require.NoError(t, err)

		batch := db.NewWriteBatch()
		err = batch.Set([]byte{1}, []byte{1})
		require.NoError(t, err)
		err = batch.Set([]byte{2}, []byte{2})
		require.NoError(t, err)
		err = batch.Delete([]byte{3})
		require.NoError(t, err)

		err = batch.Flush()
		require.NoError(t, err)

		for _, key := range [][]byte{{1}, {2}} {
			value, err := db.Get(key)
			require.NoError(t, err)
			assert.Equal(t, key, value)
		}
		_, err = db.Get([]byte{3})
		assert.ErrorIs(t, err, database.ErrKeyNotFound)
	})

	t.Run("cancelled write batch", func(t *testing.T) {
		db := newDatabase(t)

		batch := db.NewWriteBatch()
		err := batch.Set([]byte{1}, []byte{1})
		require.NoError(t, err)
		batch.Cancel()

		_, err = db.Get([]byte{1})
		assert.ErrorIs(t, err, database.ErrKeyNotFound)
	})

	t.Run("table", func(t *testing.T) {
		db := newDatabase(t)

		table := db.NewTable("meta:")
		err := table.Set([]byte("root"), []byte{1})
		require.NoError(t, err)

		value, err := db.Get([]byte("meta:root"))
		require.NoError(t, err)
		assert.Equal(t, []byte{1}, value)

		value, err = table.Get([]byte("root"))
		require.NoError(t, err)
		assert.Equal(t, []byte{1}, value)

		_, err = db.Get([]byte("root"))
		assert.ErrorIs(t, err, database.ErrKeyNotFound)

		batch := table.NewWriteBatch()
		err = batch.Set([]byte("other"), []byte{2})
		require.NoError(t, err)
		err = batch.Flush()
		require.NoError(t, err)

		value, err = db.Get([]byte("meta:other"))
		require.NoError(t, err)
		assert.Equal(t, []byte{2}, value)

		err = table.Delete([]byte("root"))
		require.NoError(t, err)
		_, err = table.Get([]byte("root"))
		assert.ErrorIs(t, err, database.ErrKeyNotFound)
	})
}
