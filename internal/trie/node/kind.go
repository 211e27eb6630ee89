// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import "fmt"

// Kind is the kind of a node in the trie.
type Kind byte

const (
	// Empty is the kind of the "nothing here" node.
	Empty Kind = iota
	// Leaf is the kind of a terminal node holding a value.
	Leaf
	// Branch is the kind of a node with children and an optional value.
	Branch
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Leaf:
		return "Leaf"
	case Branch:
		return "Branch"
	default:
		panic(fmt.Sprintf("invalid node kind: %d", k))
	}
}
