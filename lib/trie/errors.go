// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import "errors"

// Error kinds returned by the trie, wrapped with context and
// to be checked with errors.Is.
var (
	// ErrInvalidKey is returned for keys not respecting the
	// caller preconditions, such as the maximum key length.
	ErrInvalidKey = errors.New("invalid key")
	// ErrInvalidValue is returned for empty values.
	ErrInvalidValue = errors.New("invalid value")
	// ErrHash is returned when a node cannot be hashed.
	ErrHash = errors.New("hash failure")
	// ErrProof is returned for malformed proofs.
	ErrProof = errors.New("malformed proof")
	// ErrStorage is returned when the node store fails, including
	// when a node referenced by its digest is missing.
	ErrStorage = errors.New("storage failure")
)
