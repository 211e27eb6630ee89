// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package cache

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE github.com/ChainSafe/pmtrie/internal/database Database,WriteBatch
