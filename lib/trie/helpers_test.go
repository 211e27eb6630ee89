// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ChainSafe/pmtrie/internal/database"
	"github.com/ChainSafe/pmtrie/internal/database/memory"
	"github.com/ChainSafe/pmtrie/lib/common"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

// batchDatabase is a mock database supporting write batches.
type batchDatabase struct {
	*MockDatabase
	writeBatch database.WriteBatch
}

func (b *batchDatabase) NewWriteBatch() database.WriteBatch {
	return b.writeBatch
}

func newTestTrie(t *testing.T, options ...Option) (trie *Trie, db *memory.Database) {
	t.Helper()
	db = memory.New()
	trie, err := New(db, options...)
	require.NoError(t, err)
	return trie, db
}

func putAll(t *testing.T, trie *Trie, keyValues map[string][]byte) {
	t.Helper()
	for key, value := range keyValues {
		_, err := trie.Put([]byte(key), value)
		require.NoError(t, err)
	}
}

// generateKeyValues generates random key values with keys
// of length 0 to maxKeySize bytes and non empty values.
func generateKeyValues(t *testing.T, generator *rand.Rand,
	size, maxKeySize int) (keyValues map[string][]byte) {
	t.Helper()
	keyValues = make(map[string][]byte, size)
	for len(keyValues) < size {
		key := make([]byte, generator.Intn(maxKeySize+1))
		_, err := generator.Read(key)
		require.NoError(t, err)

		value := make([]byte, 1+generator.Intn(40))
		_, err = generator.Read(value)
		require.NoError(t, err)

		keyValues[string(key)] = value
	}
	return keyValues
}

var (
	helloRoot = common.MustHexToHash(
		"0xc1d1ee5bebd4abb3564521f36cc07b5b5eb591bd757a0765efadab60ff7d631b")
	helloWithoutHelpRoot = common.MustHexToHash(
		"0xd4330e0219d0769699505e8bea701ee13995b6bab3f116fc9a5d2634025150a1")
	singleLeafRoot = common.MustHexToHash(
		"0x9fa789133d614ed9673b3e34d2268b98095770d96744ec72df3c9b04669291c1")
	emptyRoot = common.MustHexToHash(
		"0xc6e4e28ea3eb2d09b1914a3f626bea215e8e58c9cdd4bc6125bb94cfb75fb226")
)

func helloKeyValues() map[string][]byte {
	return map[string][]byte{
		"hello": []byte("world"),
		"help":  []byte("me"),
		"hero":  []byte("zero"),
	}
}
