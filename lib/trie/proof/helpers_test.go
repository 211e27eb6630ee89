// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package proof

import (
	"testing"

	"github.com/ChainSafe/pmtrie/internal/database/memory"
	"github.com/ChainSafe/pmtrie/lib/trie"
	"github.com/ChainSafe/pmtrie/lib/trie/hasher"
	"github.com/stretchr/testify/require"
)

func newTestTrie(t *testing.T, h *hasher.Hasher,
	keyValues map[string][]byte) (tr *trie.Trie, db *memory.Database) {
	t.Helper()

	db = memory.New()
	options := []trie.Option{}
	if h != nil {
		options = append(options, trie.WithHasher(h))
	}
	tr, err := trie.New(db, options...)
	require.NoError(t, err)

	for key, value := range keyValues {
		_, err := tr.Put([]byte(key), value)
		require.NoError(t, err)
	}
	return tr, db
}

func helloKeyValues() map[string][]byte {
	return map[string][]byte{
		"hello": []byte("world"),
		"help":  []byte("me"),
		"hero":  []byte("zero"),
		"a":     []byte("b"),
		"ab":    []byte("c"),
		"":      []byte("root"),
	}
}

func copyProof(proof Proof) (copied Proof) {
	copied.Key = append([]byte(nil), proof.Key...)
	if proof.Value != nil {
		copied.Value = append([]byte{}, proof.Value...)
	}
	copied.Nodes = make([][]byte, len(proof.Nodes))
	for i, node := range proof.Nodes {
		copied.Nodes[i] = append([]byte(nil), node...)
	}
	return copied
}
