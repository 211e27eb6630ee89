// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package trie implements a Merkle Patricia trie of radix 16 whose
// nodes are immutable and stored by the digest of their encoding.
package trie

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ChainSafe/pmtrie/internal/log"
	"github.com/ChainSafe/pmtrie/internal/trie/metrics/noop"
	"github.com/ChainSafe/pmtrie/internal/trie/node"
	"github.com/ChainSafe/pmtrie/internal/trie/tracking"
	"github.com/ChainSafe/pmtrie/lib/common"
	"github.com/ChainSafe/pmtrie/lib/trie/hasher"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "trie"))

var ErrMaxKeyLengthNegative = errors.New("maximum key length is negative")

// Trie is a Merkle Patricia trie backed by a node store.
// Its only mutable state is its root hash. Writes must be
// serialized by the caller. Reads are safe concurrently with
// each other and with a write, each read using the root hash
// current when it starts.
type Trie struct {
	rootMutex    sync.RWMutex
	root         common.Hash
	db           Database
	hasher       *hasher.Hasher
	maxKeyLength int
	metrics      Metrics
	logger       Logger
}

// New returns a trie using the node store given.
// By default the trie is empty, and WithRoot can be used to
// load an existing trie from the node store.
func New(db Database, options ...Option) (trie *Trie, err error) {
	var s settings
	for _, option := range options {
		option(&s)
	}

	if s.hasher == nil {
		s.hasher = hasher.NewDefault()
	}
	if s.metrics == nil {
		s.metrics = noop.New()
	}
	if s.logger == nil {
		s.logger = logger
	}
	if s.maxKeyLength < 0 {
		return nil, fmt.Errorf("%w: %d", ErrMaxKeyLengthNegative, s.maxKeyLength)
	}

	trie = &Trie{
		root:         s.hasher.HashEmpty(),
		db:           db,
		hasher:       s.hasher,
		maxKeyLength: s.maxKeyLength,
		metrics:      s.metrics,
		logger:       s.logger,
	}

	if s.root != nil && *s.root != trie.root {
		_, err = trie.loadEncoding(*s.root, nil)
		if err != nil {
			return nil, fmt.Errorf("loading root node: %w", err)
		}
		trie.root = *s.root
	}

	return trie, nil
}

// RootHash returns the root hash of the trie. It is the hash
// of the empty node for a trie holding no key.
func (t *Trie) RootHash() common.Hash {
	t.rootMutex.RLock()
	defer t.rootMutex.RUnlock()
	return t.root
}

// Hasher returns the hasher of the trie.
func (t *Trie) Hasher() *hasher.Hasher {
	return t.hasher
}

// loadEncoding returns the encoding of the node with the given hash,
// looking first into the pending nodes if pending is not nil.
func (t *Trie) loadEncoding(nodeHash common.Hash, pending *tracking.Pending) (
	encoding []byte, err error) {
	if pending != nil {
		encoding, ok := pending.Get(nodeHash)
		if ok {
			return encoding, nil
		}
	}

	encoding, err = t.db.Get(nodeHash[:])
	if err != nil {
		return nil, fmt.Errorf("%w: getting node %s: %w", ErrStorage, nodeHash, err)
	}
	return encoding, nil
}

// loadNode loads and decodes the node with the given hash.
func (t *Trie) loadNode(nodeHash common.Hash, pending *tracking.Pending) (
	n *node.Node, err error) {
	encoding, err := t.loadEncoding(nodeHash, pending)
	if err != nil {
		return nil, err
	}

	n, err = node.Decode(encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding node %s: %w", ErrStorage, nodeHash, err)
	}
	return n, nil
}

// stageNode encodes and hashes the node, and records it as pending
// until the end of the operation.
func (t *Trie) stageNode(n *node.Node, pending *tracking.Pending) (
	nodeHash common.Hash, err error) {
	nodeHash, encoding, err := t.hasher.HashNode(n)
	if err != nil {
		return nodeHash, fmt.Errorf("%w: %w", ErrHash, err)
	}

	pending.RecordInserted(nodeHash, encoding)
	return nodeHash, nil
}

// commit writes the pending nodes to the node store and then
// sets the new root hash. The root is left unchanged on error.
func (t *Trie) commit(newRoot common.Hash, pending *tracking.Pending) (err error) {
	if pending.Len() > 0 {
		err = t.writePending(pending)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrStorage, err)
		}
		t.metrics.NodesAdd(uint32(pending.Len()))
	}

	t.rootMutex.Lock()
	t.root = newRoot
	t.rootMutex.Unlock()
	return nil
}

func (t *Trie) writePending(pending *tracking.Pending) (err error) {
	batcher, ok := t.db.(WriteBatcher)
	if !ok {
		return pending.ForEach(func(nodeHash common.Hash, encoding []byte) error {
			err := t.db.Set(nodeHash[:], encoding)
			if err != nil {
				return fmt.Errorf("setting node %s: %w", nodeHash, err)
			}
			return nil
		})
	}

	writeBatch := batcher.NewWriteBatch()
	err = pending.ForEach(func(nodeHash common.Hash, encoding []byte) error {
		err := writeBatch.Set(nodeHash[:], encoding)
		if err != nil {
			return fmt.Errorf("setting node %s in write batch: %w", nodeHash, err)
		}
		return nil
	})
	if err != nil {
		writeBatch.Cancel()
		return err
	}

	err = writeBatch.Flush()
	if err != nil {
		return fmt.Errorf("flushing write batch: %w", err)
	}
	return nil
}

func (t *Trie) checkKey(key []byte) (err error) {
	if t.maxKeyLength > 0 && len(key) > t.maxKeyLength {
		return fmt.Errorf("%w: length %d exceeds maximum %d",
			ErrInvalidKey, len(key), t.maxKeyLength)
	}
	return nil
}
