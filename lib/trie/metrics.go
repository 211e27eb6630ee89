// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

// Metrics is the metrics interface to use for the trie.
type Metrics interface {
	NodesAdd(n uint32)
	OperationInc(operation string)
}

// Logger is the logger interface to use for the trie.
type Logger interface {
	Debugf(format string, args ...interface{})
}
