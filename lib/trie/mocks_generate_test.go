// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . Database,Metrics
//go:generate mockgen -destination=mock_writebatch_test.go -package=$GOPACKAGE github.com/ChainSafe/pmtrie/internal/database WriteBatch
