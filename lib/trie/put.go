// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/pmtrie/internal/trie/codec"
	"github.com/ChainSafe/pmtrie/internal/trie/node"
	"github.com/ChainSafe/pmtrie/internal/trie/tracking"
	"github.com/ChainSafe/pmtrie/lib/common"
)

// Put inserts the value at the key given and returns the value
// previously stored at the key, or nil if there was none.
// Putting the value already stored does not write anything.
func (t *Trie) Put(key, value []byte) (previous []byte, err error) {
	t.metrics.OperationInc("put")

	err = t.checkKey(key)
	if err != nil {
		return nil, err
	}
	if len(value) == 0 {
		return nil, fmt.Errorf("%w: value is empty for key 0x%x", ErrInvalidValue, key)
	}

	pending := tracking.New()

	var root *node.Node
	if rootHash := t.RootHash(); rootHash != t.hasher.HashEmpty() {
		root, err = t.loadNode(rootHash, pending)
		if err != nil {
			return nil, err
		}
	}

	nibbles := codec.KeyToNibbles(key)
	newRoot, previous, mutated, err := t.insert(root, nibbles, value, pending)
	if err != nil {
		return nil, err
	}
	if !mutated {
		return previous, nil
	}

	newRootHash, err := t.stageNode(newRoot, pending)
	if err != nil {
		return nil, err
	}

	err = t.commit(newRootHash, pending)
	if err != nil {
		return nil, err
	}

	t.logger.Debugf("put key 0x%x: root hash changed to %s", key, newRootHash)
	return previous, nil
}

// insert inserts the value at the key nibbles in the subtrie
// rooted at the parent node given, which is nil for an empty subtrie.
// It returns the new subtrie root node, without staging it.
func (t *Trie) insert(parent *node.Node, key, value []byte,
	pending *tracking.Pending) (newParent *node.Node, previous []byte,
	mutated bool, err error) {
	if parent == nil {
		return node.NewLeaf(key, value), nil, true, nil
	}

	switch parent.Kind {
	case node.Leaf:
		return t.insertInLeaf(parent, key, value, pending)
	case node.Branch:
		return t.insertInBranch(parent, key, value, pending)
	default:
		panic(fmt.Sprintf("node kind not supported for insertion: %s", parent.Kind))
	}
}

func (t *Trie) insertInLeaf(parentLeaf *node.Node, key, value []byte,
	pending *tracking.Pending) (newParent *node.Node, previous []byte,
	mutated bool, err error) {
	if bytes.Equal(parentLeaf.PartialKey, key) {
		if bytes.Equal(parentLeaf.StorageValue, value) {
			return parentLeaf, parentLeaf.StorageValue, false, nil
		}
		return node.NewLeaf(parentLeaf.PartialKey, value),
			parentLeaf.StorageValue, true, nil
	}

	commonPrefixLength := codec.LenCommonPrefix(key, parentLeaf.PartialKey)
	branch := node.NewBranch(key[:commonPrefixLength], [node.ChildrenCapacity]*common.Hash{}, nil)

	err = t.placeValue(branch, parentLeaf.PartialKey[commonPrefixLength:],
		parentLeaf.StorageValue, pending)
	if err != nil {
		return nil, nil, false, err
	}

	err = t.placeValue(branch, key[commonPrefixLength:], value, pending)
	if err != nil {
		return nil, nil, false, err
	}

	return branch, nil, true, nil
}

func (t *Trie) insertInBranch(parentBranch *node.Node, key, value []byte,
	pending *tracking.Pending) (newParent *node.Node, previous []byte,
	mutated bool, err error) {
	commonPrefixLength := codec.LenCommonPrefix(key, parentBranch.PartialKey)

	if commonPrefixLength < len(parentBranch.PartialKey) {
		// The key diverges inside the branch partial key, so the branch
		// is split with a new branch holding the common prefix.
		newBranch := node.NewBranch(key[:commonPrefixLength],
			[node.ChildrenCapacity]*common.Hash{}, nil)

		oldBranch := copyNode(parentBranch)
		oldBranchIndex := parentBranch.PartialKey[commonPrefixLength]
		oldBranch.PartialKey = parentBranch.PartialKey[commonPrefixLength+1:]
		oldBranchHash, err := t.stageNode(oldBranch, pending)
		if err != nil {
			return nil, nil, false, err
		}
		newBranch.Children[oldBranchIndex] = &oldBranchHash

		err = t.placeValue(newBranch, key[commonPrefixLength:], value, pending)
		if err != nil {
			return nil, nil, false, err
		}
		return newBranch, nil, true, nil
	}

	key = key[commonPrefixLength:]

	if len(key) == 0 {
		if bytes.Equal(parentBranch.StorageValue, value) {
			return parentBranch, parentBranch.StorageValue, false, nil
		}
		newBranch := copyNode(parentBranch)
		newBranch.StorageValue = value
		return newBranch, parentBranch.StorageValue, true, nil
	}

	childIndex := key[0]
	var child *node.Node
	childHash := parentBranch.Children[childIndex]
	if childHash != nil {
		child, err = t.loadNode(*childHash, pending)
		if err != nil {
			return nil, nil, false, err
		}
	}

	newChild, previous, mutated, err := t.insert(child, key[1:], value, pending)
	if err != nil {
		return nil, nil, false, err
	} else if !mutated {
		return parentBranch, previous, false, nil
	}

	newChildHash, err := t.stageNode(newChild, pending)
	if err != nil {
		return nil, nil, false, err
	}

	newBranch := copyNode(parentBranch)
	newBranch.Children[childIndex] = &newChildHash
	return newBranch, previous, true, nil
}

// placeValue places the value at the key nibbles remaining after
// the branch partial key. An empty remainder sets the branch value,
// otherwise a new leaf is staged and set in the child slot selected
// by the first nibble of the remainder.
func (t *Trie) placeValue(branch *node.Node, remainder, value []byte,
	pending *tracking.Pending) (err error) {
	if len(remainder) == 0 {
		branch.StorageValue = value
		return nil
	}

	leaf := node.NewLeaf(remainder[1:], value)
	leafHash, err := t.stageNode(leaf, pending)
	if err != nil {
		return err
	}
	branch.Children[remainder[0]] = &leafHash
	return nil
}

// copyNode returns a shallow copy of the node given.
// Nodes are immutable, so their slices and child hashes
// can be shared between copies.
func copyNode(n *node.Node) (copied *node.Node) {
	copied = new(node.Node)
	*copied = *n
	return copied
}
