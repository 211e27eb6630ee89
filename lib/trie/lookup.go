// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/pmtrie/internal/trie/codec"
	"github.com/ChainSafe/pmtrie/internal/trie/node"
	"github.com/ChainSafe/pmtrie/lib/common"
)

// NodeRecord is a node visited during a lookup.
type NodeRecord struct {
	Hash     common.Hash
	Encoding []byte
}

// Recorder records the nodes visited during a lookup, in
// root to terminal node order.
type Recorder struct {
	nodes []NodeRecord
}

// NewRecorder returns a new empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record records a visited node.
func (r *Recorder) Record(nodeHash common.Hash, encoding []byte) {
	r.nodes = append(r.nodes, NodeRecord{
		Hash:     nodeHash,
		Encoding: encoding,
	})
}

// Records returns the nodes recorded.
func (r *Recorder) Records() (records []NodeRecord) {
	return r.nodes
}

// Encodings returns the encodings of the nodes recorded.
func (r *Recorder) Encodings() (encodings [][]byte) {
	encodings = make([][]byte, len(r.nodes))
	for i, record := range r.nodes {
		encodings[i] = record.Encoding
	}
	return encodings
}

// Get returns the value stored at the key given, or nil if the
// key is not in the trie.
func (t *Trie) Get(key []byte) (value []byte, err error) {
	t.metrics.OperationInc("get")
	return t.Lookup(key, nil)
}

// Lookup returns the value stored at the key given, or nil if the
// key is not in the trie. Every node visited is recorded in the
// recorder if it is not nil. For an empty trie, the empty node
// encoding is recorded.
func (t *Trie) Lookup(key []byte, recorder *Recorder) (value []byte, err error) {
	err = t.checkKey(key)
	if err != nil {
		return nil, err
	}

	root := t.RootHash()
	if root == t.hasher.HashEmpty() {
		if recorder != nil {
			encoding, err := node.NewEmpty().Encoding()
			if err != nil {
				return nil, err
			}
			recorder.Record(root, encoding)
		}
		return nil, nil
	}

	nibbles := codec.KeyToNibbles(key)
	nodeHash := root
	for {
		encoding, err := t.loadEncoding(nodeHash, nil)
		if err != nil {
			return nil, err
		}

		n, err := node.Decode(encoding)
		if err != nil {
			return nil, fmt.Errorf("%w: decoding node %s: %w", ErrStorage, nodeHash, err)
		}

		if recorder != nil {
			recorder.Record(nodeHash, encoding)
		}

		if n.Kind == node.Leaf {
			if bytes.Equal(n.PartialKey, nibbles) {
				return n.StorageValue, nil
			}
			return nil, nil
		}

		if !bytes.HasPrefix(nibbles, n.PartialKey) {
			return nil, nil
		}
		nibbles = nibbles[len(n.PartialKey):]

		if len(nibbles) == 0 {
			return n.StorageValue, nil
		}

		child := n.Children[nibbles[0]]
		if child == nil {
			return nil, nil
		}
		nodeHash = *child
		nibbles = nibbles[1:]
	}
}
