// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pebble

import (
	"testing"

	"github.com/ChainSafe/pmtrie/internal/database"
	"github.com/ChainSafe/pmtrie/internal/database/databasetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTo[T any](value T) *T { return &value }

func Test_Database_behaviour(t *testing.T) {
	t.Parallel()

	databasetest.Run(t, func(t *testing.T) database.Database {
		db, err := New(Settings{InMemory: ptrTo(true)})
		require.NoError(t, err)
		t.Cleanup(func() {
			err := db.Close()
			assert.NoError(t, err)
		})
		return db
	})
}

func Test_Database_persistence(t *testing.T) {
	t.Parallel()

	settings := Settings{Path: ptrTo(t.TempDir())}

	db, err := New(settings)
	require.NoError(t, err)

	err = db.Set([]byte{1}, []byte{2})
	require.NoError(t, err)

	err = db.Close()
	require.NoError(t, err)

	db, err = New(settings)
	require.NoError(t, err)
	defer func() {
		err := db.Close()
		assert.NoError(t, err)
	}()

	value, err := db.Get([]byte{1})
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, value)
}

func Test_Settings(t *testing.T) {
	t.Parallel()

	settings := Settings{}
	settings.SetDefaults()

	assert.Equal(t, Settings{Path: ptrTo(""), InMemory: ptrTo(false)}, settings)
	assert.NoError(t, settings.Validate())
}
