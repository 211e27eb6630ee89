// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"github.com/ChainSafe/pmtrie/lib/common"
	"github.com/ChainSafe/pmtrie/lib/trie/hasher"
)

// Option is an option to configure a trie.
type Option func(s *settings)

type settings struct {
	root         *common.Hash
	hasher       *hasher.Hasher
	maxKeyLength int
	metrics      Metrics
	logger       Logger
}

// WithRoot sets the root hash of the trie to load from the
// node store. It defaults to the root hash of an empty trie.
func WithRoot(root common.Hash) Option {
	return func(s *settings) {
		s.root = &root
	}
}

// WithHasher sets the hasher of the trie.
// It defaults to a Blake2b-256 hasher.
func WithHasher(h *hasher.Hasher) Option {
	return func(s *settings) {
		s.hasher = h
	}
}

// WithMaxKeyLength sets the maximum key length in bytes.
// It defaults to 0, meaning keys are not limited in length.
func WithMaxKeyLength(maxKeyLength int) Option {
	return func(s *settings) {
		s.maxKeyLength = maxKeyLength
	}
}

// WithMetrics sets the metrics of the trie.
// It defaults to no-op metrics.
func WithMetrics(metrics Metrics) Option {
	return func(s *settings) {
		s.metrics = metrics
	}
}

// WithLogger sets the logger of the trie.
// It defaults to a child of the global logger.
func WithLogger(logger Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}
