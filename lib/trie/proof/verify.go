// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package proof

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/pmtrie/internal/trie/codec"
	"github.com/ChainSafe/pmtrie/internal/trie/node"
	"github.com/ChainSafe/pmtrie/lib/common"
	"github.com/ChainSafe/pmtrie/lib/trie"
	"github.com/ChainSafe/pmtrie/lib/trie/hasher"
)

// ErrMalformedProof is returned for proofs which cannot be evaluated.
// It is the trie.ErrProof error kind.
var ErrMalformedProof = trie.ErrProof

// Verify verifies the proof given against the root hash given,
// without any database access. It returns true if every node links
// to the next one from the root hash down to a terminal node, and the
// value found at the terminal node is the value claimed by the proof.
// A proof not verifying returns false and a nil error, and a malformed
// proof returns false and an error wrapping ErrMalformedProof.
// A nil hasher defaults to the Blake2b-256 hasher.
func Verify(rootHash common.Hash, proof Proof, h *hasher.Hasher) (
	valid bool, err error) {
	if h == nil {
		h = hasher.NewDefault()
	}

	if len(proof.Nodes) == 0 {
		return false, fmt.Errorf("%w: no proof node for root hash %s",
			ErrMalformedProof, rootHash)
	}

	nodes := make([]*node.Node, len(proof.Nodes))
	hashes := make([]common.Hash, len(proof.Nodes))
	for i, encoding := range proof.Nodes {
		nodes[i], err = node.Decode(encoding)
		if err != nil {
			return false, fmt.Errorf("%w: decoding node at index %d: %w",
				ErrMalformedProof, i, err)
		}
		hashes[i] = h.HashEncoding(nodes[i].Kind, encoding)
	}

	if hashes[0] != rootHash {
		return false, nil
	}

	terminalIndex, value, ok := walk(nodes, hashes, codec.KeyToNibbles(proof.Key))
	if !ok || terminalIndex != len(nodes)-1 {
		return false, nil
	}

	if (value == nil) != (proof.Value == nil) {
		return false, nil
	}
	return bytes.Equal(value, proof.Value), nil
}

// walk follows the key nibbles through the proof nodes and returns
// the index of the terminal node and the value found at the key, which
// is nil if the key is absent. It returns false if a node links to a
// child which is not the next proof node.
func walk(nodes []*node.Node, hashes []common.Hash, nibbles []byte) (
	terminalIndex int, value []byte, ok bool) {
	for i, n := range nodes {
		switch n.Kind {
		case node.Empty:
			return i, nil, true
		case node.Leaf:
			if bytes.Equal(n.PartialKey, nibbles) {
				return i, n.StorageValue, true
			}
			return i, nil, true
		}

		if !bytes.HasPrefix(nibbles, n.PartialKey) {
			return i, nil, true
		}
		nibbles = nibbles[len(n.PartialKey):]

		if len(nibbles) == 0 {
			return i, n.StorageValue, true
		}

		child := n.Children[nibbles[0]]
		if child == nil {
			return i, nil, true
		}

		isLast := i == len(nodes)-1
		if isLast || hashes[i+1] != *child {
			return 0, nil, false
		}
		nibbles = nibbles[1:]
	}
	// unreachable since the last node always terminates the walk
	return 0, nil, false
}
