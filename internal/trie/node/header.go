// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	emptyVariant           byte = 0 // 00
	leafVariant            byte = 1 // 01
	branchVariant          byte = 2 // 10
	branchWithValueVariant byte = 3 // 11
)

const (
	keyLenOffset    = 0x3f
	nodeHeaderShift = 6
)

func variantOf(node *Node) (variant byte) {
	switch {
	case node.Kind == Empty:
		return emptyVariant
	case node.Kind == Leaf:
		return leafVariant
	case node.StorageValue == nil:
		return branchVariant
	default:
		return branchWithValueVariant
	}
}

// encodeHeader writes the encoded header for the node.
func encodeHeader(node *Node, writer io.Writer) (err error) {
	header := variantOf(node) << nodeHeaderShift

	keyLength := len(node.PartialKey)
	if keyLength < keyLenOffset {
		header |= byte(keyLength)
		_, err = writer.Write([]byte{header})
		return err
	}

	header |= keyLenOffset
	buffer := make([]byte, 1, 1+binary.MaxVarintLen64)
	buffer[0] = header
	buffer = binary.AppendUvarint(buffer, uint64(keyLength-keyLenOffset))
	_, err = writer.Write(buffer)
	return err
}

var (
	ErrReadHeaderByte   = errors.New("cannot read header byte")
	ErrUnknownNodeType  = errors.New("unknown node type")
	ErrReadKeyLength    = errors.New("cannot read partial key length")
	ErrKeyLengthTooLong = errors.New("partial key length exceeds encoding length")
)

// decodeHeader reads the header from the reader and returns the
// variant and the partial key length in nibbles.
func decodeHeader(reader io.ByteReader, remaining int) (variant byte,
	keyLength int, err error) {
	header, err := reader.ReadByte()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrReadHeaderByte, err)
	}

	variant = header >> nodeHeaderShift
	keyLength = int(header & keyLenOffset)
	if variant == emptyVariant {
		if keyLength != 0 {
			return 0, 0, fmt.Errorf("%w: header 0x%02x", ErrUnknownNodeType, header)
		}
		return variant, 0, nil
	}

	if keyLength < keyLenOffset {
		return variant, keyLength, nil
	}

	extra, err := binary.ReadUvarint(reader)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrReadKeyLength, err)
	}

	// Two nibbles fit in each remaining byte, so a larger length
	// can only be a truncated or corrupted encoding.
	if extra > uint64(2*remaining) {
		return 0, 0, fmt.Errorf("%w: %d nibbles for %d bytes",
			ErrKeyLengthTooLong, extra+keyLenOffset, remaining)
	}

	return variant, keyLenOffset + int(extra), nil
}
