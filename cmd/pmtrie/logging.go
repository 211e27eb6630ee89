// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"

	"github.com/ChainSafe/pmtrie/internal/log"
	terminal "golang.org/x/term"
)

// fileDescriptor is implemented by *os.File.
type fileDescriptor interface {
	Fd() uintptr
}

// makeLogOptions returns the logger options for the configuration
// given. The log output is used to detect a terminal for the
// auto colour mode.
func makeLogOptions(config LogConfig, output fileDescriptor) (
	options []log.Option, err error) {
	level, err := log.ParseLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	caller, err := log.ParseCaller(config.Caller)
	if err != nil {
		return nil, fmt.Errorf("parsing log caller: %w", err)
	}

	var coloured bool
	switch config.Colour {
	case "always":
		coloured = true
	case "never":
	default:
		coloured = terminal.IsTerminal(int(output.Fd()))
	}

	return []log.Option{
		log.SetLevel(level),
		log.SetCaller(caller),
		log.SetColoured(coloured),
	}, nil
}
