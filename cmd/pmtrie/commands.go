// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ChainSafe/pmtrie/lib/common"
	"github.com/ChainSafe/pmtrie/lib/trie"
	"github.com/ChainSafe/pmtrie/lib/trie/hasher"
	"github.com/ChainSafe/pmtrie/lib/trie/proof"
	"github.com/urfave/cli"
)

var (
	ErrArgumentsCount = errors.New("wrong number of arguments")
	ErrKeyAbsent      = errors.New("key is not in the trie")
	ErrProofInvalid   = errors.New("proof is not valid")
)

var (
	putCommand = cli.Command{
		Action:    withService(putAction, true),
		Name:      "put",
		Usage:     "Insert or update the value at a key",
		ArgsUsage: "<key> <value>",
		Flags:     []cli.Flag{HexFlag},
	}
	getCommand = cli.Command{
		Action:    withService(getAction, false),
		Name:      "get",
		Usage:     "Print the value at a key",
		ArgsUsage: "<key>",
		Flags:     []cli.Flag{HexFlag, RootFlag},
	}
	deleteCommand = cli.Command{
		Action:    withService(deleteAction, true),
		Name:      "delete",
		Usage:     "Delete a key",
		ArgsUsage: "<key>",
		Flags:     []cli.Flag{HexFlag},
	}
	rootCommand = cli.Command{
		Action: withService(rootAction, false),
		Name:   "root",
		Usage:  "Print the latest root hash",
	}
	entriesCommand = cli.Command{
		Action: withService(entriesAction, false),
		Name:   "entries",
		Usage:  "Print all the key value pairs sorted by key",
		Flags:  []cli.Flag{HexFlag, RootFlag},
	}
	printCommand = cli.Command{
		Action: withService(printAction, false),
		Name:   "print",
		Usage:  "Print the trie as a tree",
		Flags:  []cli.Flag{RootFlag},
	}
	proveCommand = cli.Command{
		Action:    withService(proveAction, false),
		Name:      "prove",
		Usage:     "Generate the JSON Merkle proof for a key",
		ArgsUsage: "<key>",
		Flags:     []cli.Flag{HexFlag, RootFlag, OutFlag},
	}
	verifyCommand = cli.Command{
		Action:    verifyAction,
		Name:      "verify",
		Usage:     "Verify a JSON Merkle proof file without accessing the node store",
		ArgsUsage: "<proof file>",
		Flags:     []cli.Flag{RootFlag},
	}
	configCommand = cli.Command{
		Action: configAction,
		Name:   "config",
		Usage:  "Print the effective TOML configuration",
	}
)

// proofFile is the JSON file format of a proof.
type proofFile struct {
	Root   common.Hash `json:"root"`
	Hasher string      `json:"hasher"`
	Proof  proof.Proof `json:"proof"`
}

type serviceAction func(ctx *cli.Context, s *service) error

// withService opens the service for the action given and closes it
// once the action is done. If mutates is true, the trie root hash is
// saved as the latest root hash after the action succeeds.
func withService(action serviceAction, mutates bool) func(ctx *cli.Context) error {
	return func(ctx *cli.Context) (err error) {
		config, err := makeConfig(ctx)
		if err != nil {
			return err
		}

		s, err := newService(config)
		if err != nil {
			return err
		}

		err = action(ctx, s)
		if err == nil && mutates {
			err = s.saveRoot()
		}

		closeErr := s.close()
		if err != nil {
			return err
		}
		return closeErr
	}
}

func putAction(ctx *cli.Context, s *service) (err error) {
	if ctx.NArg() != 2 {
		return fmt.Errorf("%w: expected 2 but got %d", ErrArgumentsCount, ctx.NArg())
	}

	key, err := parseBytes(ctx, ctx.Args().Get(0))
	if err != nil {
		return fmt.Errorf("parsing key: %w", err)
	}

	value, err := parseBytes(ctx, ctx.Args().Get(1))
	if err != nil {
		return fmt.Errorf("parsing value: %w", err)
	}

	previous, err := s.trie.Put(key, value)
	if err != nil {
		return fmt.Errorf("putting key: %w", err)
	}

	if previous != nil {
		logger.Infof("updated key %s from previous value %s",
			formatBytes(ctx, key), formatBytes(ctx, previous))
	} else {
		logger.Infof("inserted key %s", formatBytes(ctx, key))
	}

	_, err = fmt.Fprintln(ctx.App.Writer, s.trie.RootHash())
	return err
}

func getAction(ctx *cli.Context, s *service) (err error) {
	if ctx.NArg() != 1 {
		return fmt.Errorf("%w: expected 1 but got %d", ErrArgumentsCount, ctx.NArg())
	}

	key, err := parseBytes(ctx, ctx.Args().First())
	if err != nil {
		return fmt.Errorf("parsing key: %w", err)
	}

	t, err := trieAtRoot(ctx, s)
	if err != nil {
		return err
	}

	value, err := t.Get(key)
	if err != nil {
		return fmt.Errorf("getting key: %w", err)
	} else if value == nil {
		return fmt.Errorf("%w: %s", ErrKeyAbsent, formatBytes(ctx, key))
	}

	_, err = fmt.Fprintln(ctx.App.Writer, formatBytes(ctx, value))
	return err
}

func deleteAction(ctx *cli.Context, s *service) (err error) {
	if ctx.NArg() != 1 {
		return fmt.Errorf("%w: expected 1 but got %d", ErrArgumentsCount, ctx.NArg())
	}

	key, err := parseBytes(ctx, ctx.Args().First())
	if err != nil {
		return fmt.Errorf("parsing key: %w", err)
	}

	previous, err := s.trie.Delete(key)
	if err != nil {
		return fmt.Errorf("deleting key: %w", err)
	}

	if previous == nil {
		logger.Infof("key %s is not in the trie", formatBytes(ctx, key))
	} else {
		logger.Infof("deleted key %s with value %s",
			formatBytes(ctx, key), formatBytes(ctx, previous))
	}

	_, err = fmt.Fprintln(ctx.App.Writer, s.trie.RootHash())
	return err
}

func rootAction(ctx *cli.Context, s *service) (err error) {
	_, err = fmt.Fprintln(ctx.App.Writer, s.trie.RootHash())
	return err
}

func entriesAction(ctx *cli.Context, s *service) (err error) {
	t, err := trieAtRoot(ctx, s)
	if err != nil {
		return err
	}

	entries, err := t.Entries()
	if err != nil {
		return fmt.Errorf("listing entries: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		_, err = fmt.Fprintf(ctx.App.Writer, "%s=%s\n",
			formatBytes(ctx, []byte(key)), formatBytes(ctx, entries[key]))
		if err != nil {
			return err
		}
	}
	return nil
}

func printAction(ctx *cli.Context, s *service) (err error) {
	t, err := trieAtRoot(ctx, s)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, t.String())
	return err
}

func proveAction(ctx *cli.Context, s *service) (err error) {
	if ctx.NArg() != 1 {
		return fmt.Errorf("%w: expected 1 but got %d", ErrArgumentsCount, ctx.NArg())
	}

	key, err := parseBytes(ctx, ctx.Args().First())
	if err != nil {
		return fmt.Errorf("parsing key: %w", err)
	}

	root := s.trie.RootHash()
	if rootString := ctx.String(RootFlag.Name); rootString != "" {
		root, err = common.HexToHash(rootString)
		if err != nil {
			return fmt.Errorf("parsing root hash: %w", err)
		}
	}

	generated, err := proof.Generate(root, key, s.db, s.hasher)
	if err != nil {
		return fmt.Errorf("generating proof: %w", err)
	}

	encoded, err := json.MarshalIndent(proofFile{
		Root:   root,
		Hasher: s.hasher.Name(),
		Proof:  generated,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding proof: %w", err)
	}
	encoded = append(encoded, '\n')

	out := ctx.String(OutFlag.Name)
	if out == "" {
		_, err = ctx.App.Writer.Write(encoded)
		return err
	}

	const perms = 0o600
	err = os.WriteFile(filepath.Clean(out), encoded, perms)
	if err != nil {
		return fmt.Errorf("writing proof file: %w", err)
	}
	logger.Infof("proof of %s for key %s written to %s",
		generated.Type(), formatBytes(ctx, key), out)
	return nil
}

func verifyAction(ctx *cli.Context) (err error) {
	if ctx.NArg() != 1 {
		return fmt.Errorf("%w: expected 1 but got %d", ErrArgumentsCount, ctx.NArg())
	}

	file, err := readProofFile(ctx.Args().First())
	if err != nil {
		return err
	}

	root := file.Root
	if rootString := ctx.String(RootFlag.Name); rootString != "" {
		root, err = common.HexToHash(rootString)
		if err != nil {
			return fmt.Errorf("parsing root hash: %w", err)
		}
	}

	h, err := hasher.New(file.Hasher)
	if err != nil {
		return fmt.Errorf("creating hasher: %w", err)
	}

	valid, err := proof.Verify(root, file.Proof, h)
	if err != nil {
		return fmt.Errorf("verifying proof: %w", err)
	} else if !valid {
		return fmt.Errorf("%w: for root hash %s", ErrProofInvalid, root)
	}

	_, err = fmt.Fprintf(ctx.App.Writer, "valid proof of %s for root hash %s\n",
		file.Proof.Type(), root)
	return err
}

func readProofFile(path string) (file proofFile, err error) {
	encoded, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return file, fmt.Errorf("reading proof file: %w", err)
	}

	err = json.Unmarshal(encoded, &file)
	if err != nil {
		return file, fmt.Errorf("decoding proof file: %w", err)
	}
	return file, nil
}

func configAction(ctx *cli.Context) (err error) {
	config, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	return exportConfig(ctx.App.Writer, config)
}

// trieAtRoot returns the trie at the root hash given by the root
// flag, or the latest trie if the flag is not set.
func trieAtRoot(ctx *cli.Context, s *service) (t *trie.Trie, err error) {
	rootString := ctx.String(RootFlag.Name)
	if rootString == "" {
		return s.trie, nil
	}

	root, err := common.HexToHash(rootString)
	if err != nil {
		return nil, fmt.Errorf("parsing root hash: %w", err)
	}

	return s.loadTrie(root)
}

func parseBytes(ctx *cli.Context, s string) (b []byte, err error) {
	if ctx.Bool(HexFlag.Name) {
		return common.HexToBytes(s)
	}
	return []byte(s), nil
}

func formatBytes(ctx *cli.Context, b []byte) string {
	if ctx.Bool(HexFlag.Name) {
		return common.BytesToHex(b)
	}
	return string(b)
}
