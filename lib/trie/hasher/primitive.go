// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hasher

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"sort"
	"sync"

	"github.com/ChainSafe/pmtrie/lib/common"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Names of the digest primitives registered by default.
const (
	Blake2b256 = "blake2b-256"
	SHA256     = "sha256"
	Keccak256  = "keccak256"
	SHA3256    = "sha3-256"
)

// Default is the name of the default digest primitive.
const Default = Blake2b256

// Primitive creates a new digest state.
type Primitive func() hash.Hash

var (
	ErrUnknownPrimitive  = errors.New("unknown digest primitive")
	ErrDigestSize        = errors.New("digest size is not valid")
	ErrAlreadyRegistered = errors.New("digest primitive already registered")
)

var (
	registryMutex sync.RWMutex
	registry      = map[string]Primitive{
		Blake2b256: newBlake2b256,
		SHA256:     sha256.New,
		Keccak256:  sha3.NewLegacyKeccak256,
		SHA3256:    sha3.New256,
	}
)

func newBlake2b256() hash.Hash {
	hasher, err := blake2b.New256(nil)
	if err != nil {
		// only fails for a key longer than 64 bytes
		panic("cannot create Blake2b-256 hasher: " + err.Error())
	}
	return hasher
}

// Register registers a digest primitive under the name given.
// The primitive must produce 32 bytes digests.
func Register(name string, primitive Primitive) (err error) {
	size := primitive().Size()
	if size != common.HashLength {
		return fmt.Errorf("%w: primitive %s produces %d bytes instead of %d",
			ErrDigestSize, name, size, common.HashLength)
	}

	registryMutex.Lock()
	defer registryMutex.Unlock()

	_, exists := registry[name]
	if exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	registry[name] = primitive
	return nil
}

// Primitives returns the sorted names of all registered primitives.
func Primitives() (names []string) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	names = make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupPrimitive(name string) (primitive Primitive, err error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	primitive, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPrimitive, name)
	}
	return primitive, nil
}
