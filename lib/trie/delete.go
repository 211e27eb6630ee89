// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/pmtrie/internal/trie/codec"
	"github.com/ChainSafe/pmtrie/internal/trie/node"
	"github.com/ChainSafe/pmtrie/internal/trie/tracking"
)

// Delete removes the key given from the trie and returns the value
// previously stored at the key, or nil if the key was not in the trie.
func (t *Trie) Delete(key []byte) (previous []byte, err error) {
	t.metrics.OperationInc("delete")

	err = t.checkKey(key)
	if err != nil {
		return nil, err
	}

	rootHash := t.RootHash()
	if rootHash == t.hasher.HashEmpty() {
		return nil, nil
	}

	pending := tracking.New()

	root, err := t.loadNode(rootHash, pending)
	if err != nil {
		return nil, err
	}

	nibbles := codec.KeyToNibbles(key)
	newRoot, previous, err := t.remove(root, nibbles, pending)
	if err != nil {
		return nil, err
	} else if previous == nil {
		return nil, nil
	}

	newRootHash := t.hasher.HashEmpty()
	if newRoot != nil {
		newRootHash, err = t.stageNode(newRoot, pending)
		if err != nil {
			return nil, err
		}
	}

	err = t.commit(newRootHash, pending)
	if err != nil {
		return nil, err
	}

	t.logger.Debugf("deleted key 0x%x: root hash changed to %s", key, newRootHash)
	return previous, nil
}

// remove removes the key nibbles from the subtrie rooted at the parent
// node given. It returns the new subtrie root node, which is nil if the
// subtrie became empty, and the removed value, which is nil if the key
// was not found. The new root node is not staged.
func (t *Trie) remove(parent *node.Node, key []byte,
	pending *tracking.Pending) (newParent *node.Node, previous []byte, err error) {
	switch parent.Kind {
	case node.Leaf:
		if !bytes.Equal(parent.PartialKey, key) {
			return parent, nil, nil
		}
		return nil, parent.StorageValue, nil
	case node.Branch:
		return t.removeFromBranch(parent, key, pending)
	default:
		panic(fmt.Sprintf("node kind not supported for deletion: %s", parent.Kind))
	}
}

func (t *Trie) removeFromBranch(branch *node.Node, key []byte,
	pending *tracking.Pending) (newParent *node.Node, previous []byte, err error) {
	if !bytes.HasPrefix(key, branch.PartialKey) {
		return branch, nil, nil
	}
	key = key[len(branch.PartialKey):]

	if len(key) == 0 {
		if branch.StorageValue == nil {
			return branch, nil, nil
		}
		newBranch := copyNode(branch)
		newBranch.StorageValue = nil
		newParent, err = t.collapse(newBranch, pending)
		if err != nil {
			return nil, nil, err
		}
		return newParent, branch.StorageValue, nil
	}

	childIndex := key[0]
	childHash := branch.Children[childIndex]
	if childHash == nil {
		return branch, nil, nil
	}

	child, err := t.loadNode(*childHash, pending)
	if err != nil {
		return nil, nil, err
	}

	newChild, previous, err := t.remove(child, key[1:], pending)
	if err != nil {
		return nil, nil, err
	} else if previous == nil {
		return branch, nil, nil
	}

	newBranch := copyNode(branch)
	if newChild == nil {
		newBranch.Children[childIndex] = nil
	} else {
		newChildHash, err := t.stageNode(newChild, pending)
		if err != nil {
			return nil, nil, err
		}
		newBranch.Children[childIndex] = &newChildHash
	}

	newParent, err = t.collapse(newBranch, pending)
	if err != nil {
		return nil, nil, err
	}
	return newParent, previous, nil
}

// collapse restores the branch invariants after a removal:
// a branch without children becomes a leaf or nothing, and a
// branch without value and with a single child is merged with it.
func (t *Trie) collapse(branch *node.Node, pending *tracking.Pending) (
	collapsed *node.Node, err error) {
	switch branch.NumChildren() {
	case 0:
		if branch.StorageValue == nil {
			return nil, nil
		}
		return node.NewLeaf(branch.PartialKey, branch.StorageValue), nil
	case 1:
		if branch.StorageValue != nil {
			return branch, nil
		}
	default:
		return branch, nil
	}

	childIndex := branch.OnlyChildIndex()
	childHash := *branch.Children[childIndex]
	child, err := t.loadNode(childHash, pending)
	if err != nil {
		return nil, err
	}
	pending.RecordDiscarded(childHash)

	mergedKey := make([]byte, 0, len(branch.PartialKey)+1+len(child.PartialKey))
	mergedKey = append(mergedKey, branch.PartialKey...)
	mergedKey = append(mergedKey, byte(childIndex))
	mergedKey = append(mergedKey, child.PartialKey...)

	collapsed = copyNode(child)
	collapsed.PartialKey = mergedKey
	return collapsed, nil
}
