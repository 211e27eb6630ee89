// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"fmt"

	"github.com/ChainSafe/pmtrie/lib/common"
	"github.com/disiqueira/gotree"
)

// String returns the trie stringified through pre-order traversal.
// Nodes which cannot be loaded are shown with their loading error.
func (t *Trie) String() string {
	root := t.RootHash()
	if root == t.hasher.HashEmpty() {
		return "empty"
	}

	tree := gotree.New(fmt.Sprintf("Trie root=%s", root.Short()))
	t.string(tree, root, -1)
	return fmt.Sprintf("\n%s", tree.Print())
}

func (t *Trie) string(tree gotree.Tree, nodeHash common.Hash, idx int) {
	n, err := t.loadNode(nodeHash, nil)
	if err != nil {
		tree.Add(fmt.Sprintf("idx=%d error: %s", idx, err))
		return
	}

	text := fmt.Sprintf("idx=%d %s key=%x value=%s hash=%s",
		idx, n.Kind, n.PartialKey, common.BytesToString(n.StorageValue), nodeHash.Short())
	sub := tree.Add(text)
	for i, child := range n.Children {
		if child != nil {
			t.string(sub, *child, i)
		}
	}
}
