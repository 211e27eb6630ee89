// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"fmt"

	"github.com/ChainSafe/pmtrie/internal/trie/codec"
	"github.com/ChainSafe/pmtrie/internal/trie/node"
	"github.com/ChainSafe/pmtrie/lib/common"
)

// Entries returns all the key value pairs stored in the trie,
// with the keys as strings of their bytes.
func (t *Trie) Entries() (keyValues map[string][]byte, err error) {
	keyValues = make(map[string][]byte)
	root := t.RootHash()
	if root == t.hasher.HashEmpty() {
		return keyValues, nil
	}

	err = t.entries(root, nil, keyValues)
	if err != nil {
		return nil, err
	}
	return keyValues, nil
}

func (t *Trie) entries(nodeHash common.Hash, prefix []byte,
	keyValues map[string][]byte) (err error) {
	n, err := t.loadNode(nodeHash, nil)
	if err != nil {
		return err
	}

	nibbles := make([]byte, 0, len(prefix)+len(n.PartialKey)+1)
	nibbles = append(nibbles, prefix...)
	nibbles = append(nibbles, n.PartialKey...)

	if n.StorageValue != nil {
		key, err := codec.NibblesToKey(nibbles)
		if err != nil {
			return fmt.Errorf("converting nibbles of node %s to key: %w", nodeHash, err)
		}
		keyValues[string(key)] = n.StorageValue
	}

	if n.Kind != node.Branch {
		return nil
	}

	for i, child := range n.Children {
		if child == nil {
			continue
		}

		childPrefix := append(nibbles, byte(i)) //nolint:gocritic
		err = t.entries(*child, childPrefix, keyValues)
		if err != nil {
			return err
		}
	}
	return nil
}
