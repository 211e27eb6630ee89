// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package hasher computes the domain separated digests of trie nodes.
package hasher

import (
	"bytes"
	"fmt"
	"hash"
	"sync"

	"github.com/ChainSafe/pmtrie/internal/trie/node"
	"github.com/ChainSafe/pmtrie/lib/common"
)

// Domain tags prefixed to the data digested, so that a leaf, a branch,
// the empty node and a raw value never share a digest preimage.
const (
	LeafTag   byte = 0x00
	BranchTag byte = 0x01
	EmptyTag  byte = 0x02
	ValueTag  byte = 0x03
)

// Hasher computes digests with a fixed digest primitive.
// It is safe for concurrent use.
type Hasher struct {
	name      string
	pool      *sync.Pool
	emptyHash common.Hash
}

// New returns a hasher using the registered digest primitive
// with the name given.
func New(name string) (hasher *Hasher, err error) {
	primitive, err := lookupPrimitive(name)
	if err != nil {
		return nil, err
	}

	size := primitive().Size()
	if size != common.HashLength {
		return nil, fmt.Errorf("%w: primitive %s produces %d bytes instead of %d",
			ErrDigestSize, name, size, common.HashLength)
	}

	hasher = &Hasher{
		name: name,
		pool: &sync.Pool{
			New: func() interface{} {
				return primitive()
			},
		},
	}
	hasher.emptyHash = hasher.digest(EmptyTag, emptyEncoding)
	return hasher, nil
}

// NewDefault returns a Blake2b-256 hasher.
func NewDefault() *Hasher {
	hasher, err := New(Default)
	if err != nil {
		panic(err)
	}
	return hasher
}

var emptyEncoding = []byte{0x00}

// Name returns the name of the digest primitive.
func (h *Hasher) Name() string {
	return h.name
}

func (h *Hasher) digest(tag byte, data []byte) (digest common.Hash) {
	state := h.pool.Get().(hash.Hash)
	state.Reset()
	defer h.pool.Put(state)

	// hash.Hash writes never return an error.
	_, _ = state.Write([]byte{tag})
	_, _ = state.Write(data)
	copy(digest[:], state.Sum(nil))
	return digest
}

// HashLeaf returns the digest of a leaf encoding.
func (h *Hasher) HashLeaf(encoding []byte) common.Hash {
	return h.digest(LeafTag, encoding)
}

// HashBranch returns the digest of a branch encoding.
func (h *Hasher) HashBranch(encoding []byte) common.Hash {
	return h.digest(BranchTag, encoding)
}

// HashEmpty returns the digest of the empty node, which is
// the root hash of an empty trie.
func (h *Hasher) HashEmpty() common.Hash {
	return h.emptyHash
}

// HashValue returns the digest of raw value bytes.
func (h *Hasher) HashValue(data []byte) common.Hash {
	return h.digest(ValueTag, data)
}

// HashEncoding returns the digest of the encoding of a node of the kind given.
func (h *Hasher) HashEncoding(kind node.Kind, encoding []byte) common.Hash {
	switch kind {
	case node.Empty:
		return h.digest(EmptyTag, encoding)
	case node.Leaf:
		return h.HashLeaf(encoding)
	case node.Branch:
		return h.HashBranch(encoding)
	default:
		panic(fmt.Sprintf("unknown node kind: %d", kind))
	}
}

// HashNode encodes the node and returns its digest and encoding.
func (h *Hasher) HashNode(n *node.Node) (digest common.Hash, encoding []byte, err error) {
	buffer := bytes.NewBuffer(nil)
	err = n.Encode(buffer)
	if err != nil {
		return digest, nil, fmt.Errorf("encoding node: %w", err)
	}
	encoding = buffer.Bytes()
	return h.HashEncoding(n.Kind, encoding), encoding, nil
}
