// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"testing"

	"github.com/ChainSafe/pmtrie/lib/common"
	"github.com/stretchr/testify/assert"
)

func Test_Kind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Empty", Empty.String())
	assert.Equal(t, "Leaf", Leaf.String())
	assert.Equal(t, "Branch", Branch.String())
	assert.PanicsWithValue(t, "invalid node kind: 9", func() {
		_ = Kind(9).String()
	})
}

func Test_Node_children(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		children       [ChildrenCapacity]*common.Hash
		numChildren    int
		bitmap         uint16
		onlyChildIndex int
	}{
		"no children": {
			onlyChildIndex: -1,
		},
		"single child": {
			children:       [ChildrenCapacity]*common.Hash{9: hashPtr(1)},
			numChildren:    1,
			bitmap:         1 << 9,
			onlyChildIndex: 9,
		},
		"first and last children": {
			children: [ChildrenCapacity]*common.Hash{
				0: hashPtr(1), 15: hashPtr(2),
			},
			numChildren:    2,
			bitmap:         0x8001,
			onlyChildIndex: -1,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			node := &Node{Kind: Branch, Children: testCase.children}

			assert.Equal(t, testCase.numChildren, node.NumChildren())
			assert.Equal(t, testCase.bitmap, node.ChildrenBitmap())
			assert.Equal(t, testCase.onlyChildIndex, node.OnlyChildIndex())
		})
	}
}

func Test_Node_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		node       *Node
		errWrapped error
		errMessage string
	}{
		"empty": {
			node: NewEmpty(),
		},
		"empty with key": {
			node:       &Node{Kind: Empty, PartialKey: []byte{1}},
			errWrapped: ErrEmptyHasKey,
			errMessage: "empty node has a partial key",
		},
		"empty with value": {
			node:       &Node{Kind: Empty, StorageValue: []byte{}},
			errWrapped: ErrEmptyHasValue,
			errMessage: "empty node has a value",
		},
		"empty with children": {
			node: &Node{Kind: Empty, Children: [ChildrenCapacity]*common.Hash{
				1: hashPtr(1),
			}},
			errWrapped: ErrEmptyHasChildren,
			errMessage: "empty node has children",
		},
		"nibble too large": {
			node:       NewLeaf([]byte{1, 16}, []byte{1}),
			errWrapped: ErrNibbleTooLarge,
			errMessage: "partial key nibble is larger than 15: 16 at index 1",
		},
		"leaf": {
			node: NewLeaf([]byte{1}, []byte{1}),
		},
		"leaf with nil value": {
			node:       NewLeaf([]byte{1}, nil),
			errWrapped: ErrLeafEmptyValue,
			errMessage: "leaf has an empty value",
		},
		"leaf with children": {
			node: &Node{Kind: Leaf, StorageValue: []byte{1},
				Children: [ChildrenCapacity]*common.Hash{1: hashPtr(1)}},
			errWrapped: ErrLeafHasChildren,
			errMessage: "leaf has children: 1 children",
		},
		"branch with two children": {
			node: NewBranch(nil, [ChildrenCapacity]*common.Hash{
				1: hashPtr(1), 2: hashPtr(2),
			}, nil),
		},
		"branch with one child and value": {
			node: NewBranch(nil, [ChildrenCapacity]*common.Hash{
				1: hashPtr(1),
			}, []byte{1}),
		},
		"branch with value only": {
			node:       NewBranch([]byte{1}, [ChildrenCapacity]*common.Hash{}, []byte{1}),
			errWrapped: ErrBranchNotEnough,
			errMessage: "branch does not have enough children: 0 children and value 0x01",
		},
		"unknown kind": {
			node:       &Node{Kind: 7},
			errWrapped: ErrUnknownKind,
			errMessage: "unknown node kind: 7",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := testCase.node.Validate()

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Node_String(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		node *Node
		s    string
	}{
		"empty": {
			node: NewEmpty(),
			s:    "Empty",
		},
		"leaf": {
			node: NewLeaf([]byte{1, 2}, []byte{3}),
			s: `Leaf
├── Partial key: 0x0102
└── Storage value: 0x03`,
		},
		"branch": {
			node: NewBranch(nil, [ChildrenCapacity]*common.Hash{
				1: hashPtr(1), 10: hashPtr(2),
			}, nil),
			s: `Branch
├── Partial key: nil
├── Storage value: nil
├── Child 1: 0x01010101...01010101
└── Child a: 0x02020202...02020202`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := testCase.node.String()

			assert.Equal(t, testCase.s, s)
		})
	}
}
