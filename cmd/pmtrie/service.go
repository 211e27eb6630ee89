// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/pmtrie/internal/database"
	"github.com/ChainSafe/pmtrie/internal/database/badger"
	"github.com/ChainSafe/pmtrie/internal/database/cache"
	"github.com/ChainSafe/pmtrie/internal/database/chaindb"
	"github.com/ChainSafe/pmtrie/internal/database/memory"
	"github.com/ChainSafe/pmtrie/internal/database/pebble"
	"github.com/ChainSafe/pmtrie/internal/log"
	trieprometheus "github.com/ChainSafe/pmtrie/internal/trie/metrics/prometheus"
	"github.com/ChainSafe/pmtrie/lib/common"
	"github.com/ChainSafe/pmtrie/lib/trie"
	"github.com/ChainSafe/pmtrie/lib/trie/hasher"
	"github.com/prometheus/client_golang/prometheus"
)

const metaPrefix = "meta:"

var (
	metaRootKey   = []byte("root")
	metaHasherKey = []byte("hasher")
)

var ErrHasherMismatch = errors.New("hasher does not match the hasher of the stored trie")

// service holds the node store and the trie opened from the configuration.
type service struct {
	db       database.Database
	meta     database.Table
	hasher   *hasher.Hasher
	trie     *trie.Trie
	registry *prometheus.Registry
	config   Config
}

func newService(config Config) (s *service, err error) {
	logOptions, err := makeLogOptions(config.Log, os.Stderr)
	if err != nil {
		return nil, err
	}
	log.Patch(logOptions...)

	h, err := hasher.New(config.Trie.Hasher)
	if err != nil {
		return nil, fmt.Errorf("creating hasher: %w", err)
	}

	db, err := openDatabase(config.Database)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s = &service{
		db:       db,
		meta:     db.NewTable(metaPrefix),
		hasher:   h,
		registry: prometheus.NewRegistry(),
		config:   config,
	}

	err = s.checkHasher()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	root, err := s.latestRoot()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	s.trie, err = s.loadTrie(root)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Debugf("opened %s database with root hash %s", config.Database.Backend, root)
	return s, nil
}

func openDatabase(config DatabaseConfig) (db database.Database, err error) {
	switch config.Backend {
	case "memory":
		db = memory.New()
	case "badger":
		db, err = badger.New(badger.Settings{
			Path:     &config.DataDir,
			InMemory: &config.InMemory,
		})
	case "pebble":
		db, err = pebble.New(pebble.Settings{
			Path:     &config.DataDir,
			InMemory: &config.InMemory,
		})
	case "chaindb":
		db, err = chaindb.New(config.DataDir, config.InMemory)
	default:
		return nil, fmt.Errorf("backend not supported: %s", config.Backend)
	}
	if err != nil {
		return nil, err
	}

	if config.CacheSize == 0 {
		return db, nil
	}

	cachingDB, err := cache.New(db, cache.Settings{MaxCost: &config.CacheSize})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating node cache: %w", err)
	}
	return cachingDB, nil
}

// checkHasher records the hasher name for a new store, and verifies
// it matches the configured hasher for an existing store.
func (s *service) checkHasher() (err error) {
	stored, err := s.meta.Get(metaHasherKey)
	if errors.Is(err, database.ErrKeyNotFound) {
		err = s.meta.Set(metaHasherKey, []byte(s.hasher.Name()))
		if err != nil {
			return fmt.Errorf("storing hasher name: %w", err)
		}
		return nil
	} else if err != nil {
		return fmt.Errorf("getting hasher name: %w", err)
	}

	if string(stored) != s.hasher.Name() {
		return fmt.Errorf("%w: configured %s but stored %s",
			ErrHasherMismatch, s.hasher.Name(), stored)
	}
	return nil
}

// latestRoot returns the root hash saved by the last mutation,
// or the empty trie root hash if there is none.
func (s *service) latestRoot() (root common.Hash, err error) {
	encoded, err := s.meta.Get(metaRootKey)
	if errors.Is(err, database.ErrKeyNotFound) {
		return s.hasher.HashEmpty(), nil
	} else if err != nil {
		return root, fmt.Errorf("getting root hash: %w", err)
	}

	root, err = common.HashFromBytes(encoded)
	if err != nil {
		return root, fmt.Errorf("decoding root hash: %w", err)
	}
	return root, nil
}

func (s *service) loadTrie(root common.Hash) (t *trie.Trie, err error) {
	metrics, err := trieprometheus.New(s.registry)
	if err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	t, err = trie.New(s.db,
		trie.WithRoot(root),
		trie.WithHasher(s.hasher),
		trie.WithMaxKeyLength(s.config.Trie.MaxKeyLength),
		trie.WithMetrics(metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("loading trie: %w", err)
	}
	return t, nil
}

// saveRoot saves the root hash of the trie as the latest root hash.
// The trie nodes are always written before the root hash.
func (s *service) saveRoot() (err error) {
	root := s.trie.RootHash()
	err = s.meta.Set(metaRootKey, root.ToBytes())
	if err != nil {
		return fmt.Errorf("saving root hash: %w", err)
	}
	return nil
}

func (s *service) close() (err error) {
	if s.config.Metrics.Textfile != "" {
		err = prometheus.WriteToTextfile(s.config.Metrics.Textfile, s.registry)
		if err != nil {
			_ = s.db.Close()
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	err = s.db.Close()
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}
