// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package proof

import (
	"testing"

	"github.com/ChainSafe/pmtrie/internal/database/memory"
	"github.com/ChainSafe/pmtrie/lib/common"
	"github.com/ChainSafe/pmtrie/lib/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Generate(t *testing.T) {
	t.Parallel()

	tr, db := newTestTrie(t, nil, helloKeyValues())

	testCases := map[string]struct {
		key       []byte
		value     []byte
		nodeCount int
	}{
		"leaf": {
			key:       []byte("hello"),
			value:     []byte("world"),
			nodeCount: 5,
		},
		"branch value": {
			key:       []byte("a"),
			value:     []byte("b"),
			nodeCount: 3,
		},
		"empty key": {
			key:       []byte{},
			value:     []byte("root"),
			nodeCount: 1,
		},
		"absent missing child": {
			key:       []byte("x"),
			nodeCount: 1,
		},
		"absent prefix mismatch": {
			key:       []byte("hi"),
			nodeCount: 3,
		},
		"absent leaf mismatch": {
			key:       []byte("helm"),
			nodeCount: 5,
		},
		"absent branch without value": {
			key:       []byte("he"),
			nodeCount: 3,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			proof, err := Generate(tr.RootHash(), testCase.key, db, nil)
			require.NoError(t, err)

			assert.Equal(t, testCase.key, proof.Key)
			assert.Equal(t, testCase.value, proof.Value)
			assert.Len(t, proof.Nodes, testCase.nodeCount)

			rootEncoding, err := db.Get(tr.RootHash().ToBytes())
			require.NoError(t, err)
			assert.Equal(t, rootEncoding, proof.Nodes[0])
		})
	}
}

func Test_Generate_emptyTrie(t *testing.T) {
	t.Parallel()

	tr, db := newTestTrie(t, nil, nil)

	proof, err := Generate(tr.RootHash(), []byte("a"), db, nil)
	require.NoError(t, err)

	expected := Proof{
		Key:   []byte("a"),
		Nodes: [][]byte{{0x00}},
	}
	assert.Equal(t, expected, proof)
	assert.Equal(t, 0, db.Len())
}

func Test_Generate_staleRoot(t *testing.T) {
	t.Parallel()

	tr, db := newTestTrie(t, nil, helloKeyValues())
	staleRoot := tr.RootHash()

	_, err := tr.Put([]byte("hello"), []byte("there"))
	require.NoError(t, err)

	proof, err := Generate(staleRoot, []byte("hello"), db, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), proof.Value)

	valid, err := Verify(staleRoot, proof, nil)
	require.NoError(t, err)
	assert.True(t, valid)
}

func Test_Generate_errors(t *testing.T) {
	t.Parallel()

	t.Run("root not found", func(t *testing.T) {
		t.Parallel()

		_, err := Generate(common.Hash{1}, []byte("a"), memory.New(), nil)
		assert.ErrorIs(t, err, trie.ErrStorage)
	})

	t.Run("node missing on the path", func(t *testing.T) {
		t.Parallel()

		tr, db := newTestTrie(t, nil, helloKeyValues())
		rootEncoding, err := db.Get(tr.RootHash().ToBytes())
		require.NoError(t, err)

		partialDB := memory.New()
		err = partialDB.Set(tr.RootHash().ToBytes(), rootEncoding)
		require.NoError(t, err)

		_, err = Generate(tr.RootHash(), []byte("hello"), partialDB, nil)
		assert.ErrorIs(t, err, trie.ErrStorage)
	})
}
