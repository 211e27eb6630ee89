// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer   io.Writer
	level    *Level
	coloured *bool
	caller   *Caller
	context  []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	return s
}

// mergeWith sets values for each field not set on the settings
// calling the method, using the values of the other settings.
// The other context key values come first in the merged context.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}

	if s.level == nil && other.level != nil {
		value := *other.level
		s.level = &value
	}

	if s.coloured == nil && other.coloured != nil {
		value := *other.coloured
		s.coloured = &value
	}

	if s.caller == nil && other.caller != nil {
		value := *other.caller
		s.caller = &value
	}

	newContext := make([]contextKeyValues, 0, len(other.context)+len(s.context))
	for _, kv := range other.context {
		newContext = mergeContext(newContext, kv)
	}
	for _, kv := range s.context {
		newContext = mergeContext(newContext, kv)
	}
	s.context = newContext
}

func mergeContext(context []contextKeyValues, kv contextKeyValues) []contextKeyValues {
	for i := range context {
		if context[i].key == kv.key {
			context[i].values = append(context[i].values, kv.values...)
			return context
		}
	}
	return append(context, contextKeyValues{
		key:    kv.key,
		values: append([]string(nil), kv.values...),
	})
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		level := Info
		s.level = &level
	}

	if s.coloured == nil {
		s.coloured = new(bool)
	}

	if s.caller == nil {
		caller := CallerNone
		s.caller = &caller
	}
}
