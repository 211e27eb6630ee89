// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package proof

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/pmtrie/lib/common"
	"github.com/ChainSafe/pmtrie/lib/trie"
	"github.com/ChainSafe/pmtrie/lib/trie/hasher"
)

// Database defines a key value Get method used
// for proof generation.
type Database interface {
	Get(key []byte) (value []byte, err error)
}

// Generate returns the proof for the key given, using the trie
// with the root hash given loaded from the database given. The root
// hash can be any root the database holds, not only the latest one.
// A nil hasher defaults to the Blake2b-256 hasher.
func Generate(rootHash common.Hash, key []byte, db Database,
	h *hasher.Hasher) (proof Proof, err error) {
	if h == nil {
		h = hasher.NewDefault()
	}

	t, err := trie.New(readOnlyDatabase{db}, trie.WithRoot(rootHash), trie.WithHasher(h))
	if err != nil {
		return proof, fmt.Errorf("loading trie: %w", err)
	}

	recorder := trie.NewRecorder()
	value, err := t.Lookup(key, recorder)
	if err != nil {
		return proof, fmt.Errorf("walking to key 0x%x: %w", key, err)
	}

	return Proof{
		Key:   key,
		Value: value,
		Nodes: recorder.Encodings(),
	}, nil
}

var ErrReadOnly = errors.New("database is read only")

// readOnlyDatabase adapts a Get only database
// to the trie database interface.
type readOnlyDatabase struct {
	Database
}

func (readOnlyDatabase) Set(key, _ []byte) error {
	return fmt.Errorf("%w: setting key 0x%x", ErrReadOnly, key)
}
