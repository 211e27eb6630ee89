// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package badger

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/pmtrie/internal/database"
	badger "github.com/dgraph-io/badger/v2"
)

// transformError transforms a badger error into a database error
// eventually, for errors defined in the parent database package.
func transformError(badgerErr error) (err error) {
	if errors.Is(badgerErr, badger.ErrBlockedWrites) {
		return fmt.Errorf("%w: %w", database.ErrClosed, badgerErr)
	}
	return badgerErr
}
