// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package cache

import (
	"errors"
	"fmt"
)

// Settings is the cache settings.
type Settings struct {
	// MaxCost is the maximum total size in bytes of the cached values.
	// It defaults to 64MiB if left unset.
	MaxCost *int64
	// NumCounters is the number of keys to track frequency of.
	// It defaults to ten times the expected number of cached
	// values of 128 bytes if left unset.
	NumCounters *int64
}

// SetDefaults sets the default values on the settings.
func (s *Settings) SetDefaults() {
	if s.MaxCost == nil {
		const defaultMaxCost = 64 * 1024 * 1024
		s.MaxCost = new(int64)
		*s.MaxCost = defaultMaxCost
	}

	if s.NumCounters == nil {
		const averageValueSize = 128
		s.NumCounters = new(int64)
		*s.NumCounters = 10 * (*s.MaxCost / averageValueSize)
	}
}

var (
	ErrMaxCostNotPositive     = errors.New("maximum cost is not positive")
	ErrNumCountersNotPositive = errors.New("number of counters is not positive")
)

// Validate validates the settings.
func (s Settings) Validate() (err error) {
	if *s.MaxCost <= 0 {
		return fmt.Errorf("%w: %d", ErrMaxCostNotPositive, *s.MaxCost)
	}

	if *s.NumCounters <= 0 {
		return fmt.Errorf("%w: %d", ErrNumCountersNotPositive, *s.NumCounters)
	}

	return nil
}
