// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package node implements the immutable trie node model
// and its canonical byte encoding.
package node

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/pmtrie/lib/common"
)

// ChildrenCapacity is the maximum number of children of a branch.
const ChildrenCapacity = 16

// Node is a node in the trie. It is one of an empty node,
// a leaf or a branch, as given by its Kind field.
// Children are referenced by the digest of their encoding only,
// and a node is never mutated once it is hashed and stored.
type Node struct {
	Kind Kind
	// PartialKey is the partial key in nibbles (0 to f in hexadecimal)
	// not consumed by the ancestors of the node.
	PartialKey []byte
	// StorageValue is the value of a leaf, or the
	// optional value of a branch. It is nil for no value.
	StorageValue []byte
	// Children holds the digests of the children of a branch,
	// indexed by the nibble following the branch partial key.
	Children [ChildrenCapacity]*common.Hash
}

// NewEmpty returns an empty node.
func NewEmpty() *Node {
	return &Node{Kind: Empty}
}

// NewLeaf returns a leaf node with the partial key and value given.
func NewLeaf(partialKey, value []byte) *Node {
	return &Node{
		Kind:         Leaf,
		PartialKey:   partialKey,
		StorageValue: value,
	}
}

// NewBranch returns a branch node with the partial key,
// children digests and optional value given.
func NewBranch(partialKey []byte, children [ChildrenCapacity]*common.Hash,
	value []byte) *Node {
	return &Node{
		Kind:         Branch,
		PartialKey:   partialKey,
		StorageValue: value,
		Children:     children,
	}
}

// NumChildren returns the number of children of the node.
func (n *Node) NumChildren() (count int) {
	for _, child := range n.Children {
		if child != nil {
			count++
		}
	}
	return count
}

// ChildrenBitmap returns the 16 bit bitmap of the children of the node,
// where bit i is set if the child at index i is present.
func (n *Node) ChildrenBitmap() (bitmap uint16) {
	for i, child := range n.Children {
		if child == nil {
			continue
		}
		bitmap |= 1 << uint(i)
	}
	return bitmap
}

// OnlyChildIndex returns the index of the single child of the node.
// It returns -1 if the node does not have exactly one child.
func (n *Node) OnlyChildIndex() (index int) {
	index = -1
	for i, child := range n.Children {
		if child == nil {
			continue
		}
		if index != -1 {
			return -1
		}
		index = i
	}
	return index
}

var (
	ErrNibbleTooLarge   = errors.New("partial key nibble is larger than 15")
	ErrEmptyHasKey      = errors.New("empty node has a partial key")
	ErrEmptyHasValue    = errors.New("empty node has a value")
	ErrEmptyHasChildren = errors.New("empty node has children")
	ErrLeafEmptyValue   = errors.New("leaf has an empty value")
	ErrLeafHasChildren  = errors.New("leaf has children")
	ErrBranchEmptyValue = errors.New("branch has an empty non nil value")
	ErrBranchNotEnough  = errors.New("branch does not have enough children")
	ErrUnknownKind      = errors.New("unknown node kind")
)

// Validate verifies the node respects the structural invariants of the
// trie: leaves have a non empty value, branches have at least two
// children or one child and a value, and empty nodes carry nothing.
func (n *Node) Validate() (err error) {
	for i, nibble := range n.PartialKey {
		if nibble > 0xf {
			return fmt.Errorf("%w: %d at index %d", ErrNibbleTooLarge, nibble, i)
		}
	}

	switch n.Kind {
	case Empty:
		switch {
		case len(n.PartialKey) > 0:
			return ErrEmptyHasKey
		case n.StorageValue != nil:
			return ErrEmptyHasValue
		case n.NumChildren() > 0:
			return ErrEmptyHasChildren
		}
	case Leaf:
		switch {
		case len(n.StorageValue) == 0:
			return ErrLeafEmptyValue
		case n.NumChildren() > 0:
			return fmt.Errorf("%w: %d children", ErrLeafHasChildren, n.NumChildren())
		}
	case Branch:
		if n.StorageValue != nil && len(n.StorageValue) == 0 {
			return ErrBranchEmptyValue
		}

		minChildren := 2
		if n.StorageValue != nil {
			minChildren = 1
		}
		if n.NumChildren() < minChildren {
			return fmt.Errorf("%w: %d children and value %s",
				ErrBranchNotEnough, n.NumChildren(), common.BytesToString(n.StorageValue))
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, n.Kind)
	}
	return nil
}
