// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package noop provides trie metrics doing nothing.
package noop

// Metrics is a no-op implementation of the trie metrics.
type Metrics struct{}

// New returns a no-op metrics implementation.
func New() *Metrics {
	return &Metrics{}
}

// NodesAdd does nothing.
func (*Metrics) NodesAdd(uint32) {}

// OperationInc does nothing.
func (*Metrics) OperationInc(string) {}
