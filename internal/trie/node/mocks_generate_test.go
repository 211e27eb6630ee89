// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

//go:generate mockgen -destination=writer_mock_test.go -package $GOPACKAGE io Writer
