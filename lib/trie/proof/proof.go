// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package proof generates and verifies Merkle proofs of
// membership and non-membership of keys in a trie.
package proof

import (
	"encoding/json"
	"fmt"

	"github.com/ChainSafe/pmtrie/lib/common"
)

// Type is the type of a proof.
type Type uint8

const (
	// ProofOfAbsence proves a key is not in the trie.
	ProofOfAbsence Type = iota
	// ProofOfInclusion proves a key holds a value in the trie.
	ProofOfInclusion
)

func (t Type) String() string {
	switch t {
	case ProofOfAbsence:
		return "absence"
	case ProofOfInclusion:
		return "inclusion"
	default:
		panic(fmt.Sprintf("unknown proof type: %d", t))
	}
}

// Proof is a Merkle proof for a key.
type Proof struct {
	// Key is the key the proof is for.
	Key []byte
	// Value is the value claimed at the key,
	// and is nil for a proof of absence.
	Value []byte
	// Nodes are the canonical encodings of the nodes
	// on the path to the key, root first.
	Nodes [][]byte
}

// Type returns the type of the proof.
func (p Proof) Type() Type {
	if p.Value == nil {
		return ProofOfAbsence
	}
	return ProofOfInclusion
}

type jsonProof struct {
	Key   string   `json:"key"`
	Value *string  `json:"value,omitempty"`
	Nodes []string `json:"nodes"`
}

// MarshalJSON encodes the proof as JSON with 0x prefixed hex strings.
func (p Proof) MarshalJSON() ([]byte, error) {
	encoded := jsonProof{
		Key:   common.BytesToHex(p.Key),
		Nodes: make([]string, len(p.Nodes)),
	}

	if p.Value != nil {
		value := common.BytesToHex(p.Value)
		encoded.Value = &value
	}

	for i, node := range p.Nodes {
		encoded.Nodes[i] = common.BytesToHex(node)
	}

	return json.Marshal(encoded)
}

// UnmarshalJSON decodes the proof from JSON with 0x prefixed hex strings.
func (p *Proof) UnmarshalJSON(data []byte) (err error) {
	var decoded jsonProof
	err = json.Unmarshal(data, &decoded)
	if err != nil {
		return err
	}

	key, err := common.HexToBytes(decoded.Key)
	if err != nil {
		return fmt.Errorf("decoding key: %w", err)
	}

	var value []byte
	if decoded.Value != nil {
		value, err = common.HexToBytes(*decoded.Value)
		if err != nil {
			return fmt.Errorf("decoding value: %w", err)
		}
	}

	nodes := make([][]byte, len(decoded.Nodes))
	for i, node := range decoded.Nodes {
		nodes[i], err = common.HexToBytes(node)
		if err != nil {
			return fmt.Errorf("decoding node at index %d: %w", i, err)
		}
	}

	*p = Proof{
		Key:   key,
		Value: value,
		Nodes: nodes,
	}
	return nil
}
