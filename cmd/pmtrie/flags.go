// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Global flags
var (
	// ConfigFlag is the TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// BackendFlag is the node store backend
	BackendFlag = cli.StringFlag{
		Name:  "backend",
		Usage: "Node store backend: memory, badger, pebble or chaindb",
	}
	// DataDirFlag is the node store data directory
	DataDirFlag = cli.StringFlag{
		Name:  "datadir",
		Usage: "Data directory of the node store",
	}
	// HasherFlag is the digest primitive of the trie
	HasherFlag = cli.StringFlag{
		Name:  "hasher",
		Usage: "Digest primitive: blake2b-256, sha256, keccak256 or sha3-256",
	}
	// LogFlag is the log level
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	// LogColourFlag sets when log levels are coloured
	LogColourFlag = cli.StringFlag{
		Name:  "log-colour",
		Usage: "Colour log levels: auto (if the standard error is a terminal), always or never",
	}
	// LogCallerFlag sets the code location added to log lines
	LogCallerFlag = cli.StringFlag{
		Name:  "log-caller",
		Usage: "Code location in log lines: none, short (file and line) or long (with function)",
	}
	// MetricsFileFlag is the Prometheus text file to write metrics to
	MetricsFileFlag = cli.StringFlag{
		Name:  "metrics-file",
		Usage: "Prometheus text file to write the trie metrics to on exit",
	}
)

// Command flags
var (
	// HexFlag makes keys and values 0x prefixed hex strings
	HexFlag = cli.BoolFlag{
		Name:  "hex",
		Usage: "Read and write keys and values as 0x prefixed hex strings",
	}
	// RootFlag selects a root hash other than the latest one
	RootFlag = cli.StringFlag{
		Name:  "root",
		Usage: "0x prefixed root hash to use instead of the latest root hash",
	}
	// OutFlag is the file to write the proof to
	OutFlag = cli.StringFlag{
		Name:  "out",
		Usage: "File to write the JSON proof to, defaults to the standard output",
	}
)

var globalFlags = []cli.Flag{
	ConfigFlag,
	BackendFlag,
	DataDirFlag,
	HasherFlag,
	LogFlag,
	LogColourFlag,
	LogCallerFlag,
	MetricsFileFlag,
}
