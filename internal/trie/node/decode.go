// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ChainSafe/pmtrie/internal/trie/codec"
	"github.com/ChainSafe/pmtrie/lib/common"
)

var (
	ErrDecodeKey          = errors.New("cannot decode partial key")
	ErrDecodeValue        = errors.New("cannot decode value")
	ErrReadChildrenBitmap = errors.New("cannot read children bitmap")
	ErrDecodeChildHash    = errors.New("cannot decode child hash")
	ErrTrailingBytes      = errors.New("trailing bytes after node encoding")
	ErrInvalidNode        = errors.New("decoded node is invalid")
	ErrNonCanonical       = errors.New("node encoding is not canonical")
)

// Decode decodes a node from its encoding.
// Decoding is strict: truncated or trailing data, a non zero padding
// nibble, a structurally invalid node or any encoding differing from
// the canonical encoding of the decoded node are all errors.
func Decode(encoding []byte) (n *Node, err error) {
	reader := bytes.NewReader(encoding)

	variant, keyLength, err := decodeHeader(reader, len(encoding))
	if err != nil {
		return nil, err
	}

	switch variant {
	case emptyVariant:
		n = NewEmpty()
	case leafVariant:
		n, err = decodeLeaf(reader, keyLength)
		if err != nil {
			return nil, fmt.Errorf("cannot decode leaf: %w", err)
		}
	case branchVariant, branchWithValueVariant:
		n, err = decodeBranch(reader, keyLength, variant == branchWithValueVariant)
		if err != nil {
			return nil, fmt.Errorf("cannot decode branch: %w", err)
		}
	default:
		panic(fmt.Sprintf("unreachable node variant %d", variant))
	}

	if reader.Len() > 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, reader.Len())
	}

	err = n.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNode, err)
	}

	reencoded, err := n.Encoding()
	if err != nil {
		return nil, fmt.Errorf("re-encoding node: %w", err)
	}
	if !bytes.Equal(reencoded, encoding) {
		return nil, fmt.Errorf("%w: %s", ErrNonCanonical, common.BytesToString(encoding))
	}

	return n, nil
}

func decodeLeaf(reader *bytes.Reader, keyLength int) (node *Node, err error) {
	partialKey, err := decodeKey(reader, keyLength)
	if err != nil {
		return nil, err
	}

	value, err := decodeValue(reader)
	if err != nil {
		return nil, err
	}

	return NewLeaf(partialKey, value), nil
}

func decodeBranch(reader *bytes.Reader, keyLength int, hasValue bool) (
	node *Node, err error) {
	partialKey, err := decodeKey(reader, keyLength)
	if err != nil {
		return nil, err
	}

	bitmapBytes := make([]byte, 2)
	_, err = io.ReadFull(reader, bitmapBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadChildrenBitmap, err)
	}
	childrenBitmap := binary.LittleEndian.Uint16(bitmapBytes)

	var value []byte
	if hasValue {
		value, err = decodeValue(reader)
		if err != nil {
			return nil, err
		}
	}

	var children [ChildrenCapacity]*common.Hash
	for i := 0; i < ChildrenCapacity; i++ {
		if childrenBitmap&(1<<uint(i)) == 0 {
			continue
		}

		var hash common.Hash
		_, err = io.ReadFull(reader, hash[:])
		if err != nil {
			return nil, fmt.Errorf("%w: at index %d: %w", ErrDecodeChildHash, i, err)
		}
		children[i] = &hash
	}

	return NewBranch(partialKey, children, value), nil
}

func decodeKey(reader *bytes.Reader, keyLength int) (nibbles []byte, err error) {
	packedLength := codec.PackedLength(keyLength)
	if packedLength > reader.Len() {
		return nil, fmt.Errorf("%w: need %d bytes but only %d remain",
			ErrDecodeKey, packedLength, reader.Len())
	}

	packed := make([]byte, packedLength)
	_, err = io.ReadFull(reader, packed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeKey, err)
	}

	nibbles, err = codec.UnpackNibbles(packed, keyLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeKey, err)
	}
	return nibbles, nil
}

func decodeValue(reader *bytes.Reader) (value []byte, err error) {
	length, err := binary.ReadUvarint(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading length: %w", ErrDecodeValue, err)
	}

	if length > uint64(reader.Len()) {
		return nil, fmt.Errorf("%w: length %d exceeds the %d remaining bytes",
			ErrDecodeValue, length, reader.Len())
	}

	value = make([]byte, length)
	_, err = io.ReadFull(reader, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeValue, err)
	}
	return value, nil
}
