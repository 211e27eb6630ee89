// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
)

// Option is the type to specify settings modifier
// for the logger operation.
type Option func(s *settings)

// SetLevel sets the level for the logger.
// The level defaults to info.
func SetLevel(level Level) Option {
	return func(s *settings) {
		s.level = &level
	}
}

// SetColoured enables or disables the colouring of the level.
// The default is disabled.
func SetColoured(enabled bool) Option {
	return func(s *settings) {
		s.coloured = &enabled
	}
}

// SetCaller sets how much of the caller location is logged.
// The default is CallerNone.
func SetCaller(caller Caller) Option {
	return func(s *settings) {
		s.caller = &caller
	}
}

// SetWriter set the writer for the logger.
// The writer defaults to os.Stdout.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// AddContext adds the context for the logger as a key values pair.
// It adds them in order. If a key already exists, the value is added to the
// existing values.
func AddContext(key, value string) Option {
	return func(s *settings) {
		s.context = mergeContext(s.context, contextKeyValues{
			key:    key,
			values: []string{value},
		})
	}
}
