// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ChainSafe/pmtrie/internal/trie/codec"
)

// Encode writes the canonical encoding of the node to the writer.
// The node is validated first, so an invalid node is never encoded.
//
// The encoding is:
//   - Empty: the single byte 0x00
//   - Leaf: header, packed partial key, uvarint value length, value
//   - Branch: header, packed partial key, 2 bytes little endian
//     children bitmap, optional uvarint value length and value,
//     then the 32 bytes digest of each child in nibble order.
func (n *Node) Encode(writer io.Writer) (err error) {
	err = n.Validate()
	if err != nil {
		return fmt.Errorf("validating node: %w", err)
	}

	err = encodeHeader(n, writer)
	if err != nil {
		return fmt.Errorf("cannot encode header: %w", err)
	}

	if n.Kind == Empty {
		return nil
	}

	_, err = writer.Write(codec.PackNibbles(n.PartialKey))
	if err != nil {
		return fmt.Errorf("cannot write packed key: %w", err)
	}

	if n.Kind == Branch {
		childrenBitmap := make([]byte, 2)
		binary.LittleEndian.PutUint16(childrenBitmap, n.ChildrenBitmap())
		_, err = writer.Write(childrenBitmap)
		if err != nil {
			return fmt.Errorf("cannot write children bitmap: %w", err)
		}
	}

	// Leaves always carry a value, branches only optionally.
	if n.StorageValue != nil {
		err = encodeValue(n.StorageValue, writer)
		if err != nil {
			return fmt.Errorf("cannot encode value: %w", err)
		}
	}

	if n.Kind == Branch {
		for i, child := range n.Children {
			if child == nil {
				continue
			}
			_, err = writer.Write(child[:])
			if err != nil {
				return fmt.Errorf("cannot write child hash at index %d: %w", i, err)
			}
		}
	}

	return nil
}

// Encoding returns the canonical encoding of the node.
func (n *Node) Encoding() (encoding []byte, err error) {
	buffer := bytes.NewBuffer(nil)
	err = n.Encode(buffer)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func encodeValue(value []byte, writer io.Writer) (err error) {
	length := binary.AppendUvarint(nil, uint64(len(value)))
	_, err = writer.Write(length)
	if err != nil {
		return fmt.Errorf("writing value length: %w", err)
	}

	_, err = writer.Write(value)
	if err != nil {
		return fmt.Errorf("writing value: %w", err)
	}
	return nil
}
