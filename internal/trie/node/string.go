// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"github.com/ChainSafe/pmtrie/lib/common"
	"github.com/qdm12/gotree"
)

func (n *Node) String() string {
	return n.StringNode().String()
}

// StringNode returns a gotree compatible node for String methods.
func (n *Node) StringNode() (stringNode *gotree.Node) {
	stringNode = gotree.New(n.Kind.String())
	if n.Kind == Empty {
		return stringNode
	}

	stringNode.Appendf("Partial key: " + common.BytesToString(n.PartialKey))
	stringNode.Appendf("Storage value: " + common.BytesToString(n.StorageValue))
	for i, child := range n.Children {
		if child == nil {
			continue
		}
		stringNode.Appendf("Child %x: %s", i, child.Short())
	}
	return stringNode
}
