// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package tracking tracks the nodes created by a trie operation
// until they are written to the node store.
package tracking

import (
	"github.com/ChainSafe/pmtrie/lib/common"
)

type pendingNode struct {
	encoding   []byte
	references uint
}

// Pending tracks the encodings of the nodes inserted during a
// trie operation, in insertion order.
type Pending struct {
	nodes map[common.Hash]*pendingNode
	order []common.Hash
}

// New returns a new Pending struct.
func New() *Pending {
	return &Pending{
		nodes: make(map[common.Hash]*pendingNode),
	}
}

// RecordInserted records a node encoding as inserted under its hash.
// Inserting the same node twice counts two references to it.
func (p *Pending) RecordInserted(nodeHash common.Hash, encoding []byte) {
	pending, ok := p.nodes[nodeHash]
	if ok {
		pending.references++
		return
	}

	p.nodes[nodeHash] = &pendingNode{
		encoding:   encoding,
		references: 1,
	}
	p.order = append(p.order, nodeHash)
}

// RecordDiscarded removes one reference to a node inserted in the same
// operation, for example a child merged into its parent. Nodes which
// were not recorded as inserted are ignored, since they already live
// in the node store.
func (p *Pending) RecordDiscarded(nodeHash common.Hash) {
	pending, ok := p.nodes[nodeHash]
	if !ok {
		return
	}

	pending.references--
	if pending.references == 0 {
		delete(p.nodes, nodeHash)
	}
}

// Get returns the encoding of the pending node with the given hash.
func (p *Pending) Get(nodeHash common.Hash) (encoding []byte, ok bool) {
	pending, ok := p.nodes[nodeHash]
	if !ok {
		return nil, false
	}
	return pending.encoding, true
}

// Len returns the number of distinct pending nodes.
func (p *Pending) Len() int {
	return len(p.nodes)
}

// ForEach calls the function given for each pending node,
// in insertion order, and stops at the first error returned.
func (p *Pending) ForEach(f func(nodeHash common.Hash, encoding []byte) error) (err error) {
	visited := make(map[common.Hash]struct{}, len(p.nodes))
	for _, nodeHash := range p.order {
		pending, ok := p.nodes[nodeHash]
		if !ok {
			continue
		}

		// a node discarded and inserted again appears twice in order
		_, ok = visited[nodeHash]
		if ok {
			continue
		}
		visited[nodeHash] = struct{}{}

		err = f(nodeHash, pending.encoding)
		if err != nil {
			return err
		}
	}
	return nil
}
