// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chaindb

import (
	"testing"

	"github.com/ChainSafe/pmtrie/internal/database"
	"github.com/ChainSafe/pmtrie/internal/database/databasetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Database_behaviour(t *testing.T) {
	t.Parallel()

	databasetest.Run(t, func(t *testing.T) database.Database {
		db, err := New(t.TempDir(), true)
		require.NoError(t, err)
		t.Cleanup(func() {
			err := db.Close()
			assert.NoError(t, err)
		})
		return db
	})
}
