// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ChainSafe/pmtrie/internal/log"
	"github.com/ChainSafe/pmtrie/lib/trie/hasher"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
	"github.com/urfave/cli"
)

// Config is the configuration of the command line interface.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Database DatabaseConfig `toml:"database"`
	Trie     TrieConfig     `toml:"trie"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// LogConfig is the logging configuration.
type LogConfig struct {
	Level string `toml:"level" validate:"loglevel"`
	// Colour is auto, always or never. Auto colours the
	// levels only if the standard error is a terminal.
	Colour string `toml:"colour" validate:"oneof=auto always never"`
	// Caller is none, short for the file and line,
	// or long for the file, line and function.
	Caller string `toml:"caller" validate:"logcaller"`
}

// DatabaseConfig is the node store configuration.
type DatabaseConfig struct {
	Backend string `toml:"backend" validate:"oneof=memory badger pebble chaindb"`
	DataDir string `toml:"data-dir" validate:"required_unless=Backend memory"`
	// InMemory keeps the badger, pebble or chaindb data in memory only.
	InMemory bool `toml:"in-memory"`
	// CacheSize is the size in bytes of the node cache,
	// where 0 disables the cache.
	CacheSize int64 `toml:"cache-size" validate:"gte=0"`
}

// TrieConfig is the trie configuration.
type TrieConfig struct {
	Hasher string `toml:"hasher" validate:"hasher"`
	// MaxKeyLength is the maximum key length in bytes,
	// where 0 means keys are not limited in length.
	MaxKeyLength int `toml:"max-key-length" validate:"gte=0"`
}

// MetricsConfig is the metrics configuration.
type MetricsConfig struct {
	// Textfile is the Prometheus text file written on exit,
	// where an empty path disables metrics.
	Textfile string `toml:"textfile"`
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Colour: "auto",
			Caller: log.CallerNone.String(),
		},
		Database: DatabaseConfig{
			Backend:   "badger",
			DataDir:   defaultDataDir(),
			CacheSize: 16 * 1024 * 1024,
		},
		Trie: TrieConfig{
			Hasher: hasher.Default,
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pmtrie"
	}
	return filepath.Join(home, ".pmtrie")
}

// loadConfig decodes the TOML file given on top of the configuration given.
func loadConfig(path string, config *Config) (err error) {
	path, err = filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("finding absolute path of configuration file: %w", err)
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("opening configuration file: %w", err)
	}

	err = toml.NewDecoder(file).Decode(config)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("decoding configuration file %s: %w", path, err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("closing configuration file: %w", err)
	}
	return nil
}

// exportConfig writes the configuration as TOML.
func exportConfig(writer io.Writer, config Config) (err error) {
	raw, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	_, err = writer.Write(raw)
	if err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}
	return nil
}

func newValidator() (validate *validator.Validate, err error) {
	validate = validator.New()

	err = validate.RegisterValidation("hasher", func(fl validator.FieldLevel) bool {
		_, err := hasher.New(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return nil, fmt.Errorf("registering hasher validation: %w", err)
	}

	err = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := log.ParseLevel(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return nil, fmt.Errorf("registering log level validation: %w", err)
	}

	err = validate.RegisterValidation("logcaller", func(fl validator.FieldLevel) bool {
		_, err := log.ParseCaller(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return nil, fmt.Errorf("registering log caller validation: %w", err)
	}

	return validate, nil
}

func validateConfig(config Config) (err error) {
	validate, err := newValidator()
	if err != nil {
		return err
	}

	err = validate.Struct(config)
	if err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}
	return nil
}

// makeConfig builds the configuration from the defaults, the TOML
// configuration file if any and the global flags set, in this order.
func makeConfig(ctx *cli.Context) (config Config, err error) {
	config = defaultConfig()

	if path := ctx.GlobalString(ConfigFlag.Name); path != "" {
		err = loadConfig(path, &config)
		if err != nil {
			return config, err
		}
	}

	setStringFromFlag(ctx, BackendFlag.Name, &config.Database.Backend)
	setStringFromFlag(ctx, DataDirFlag.Name, &config.Database.DataDir)
	setStringFromFlag(ctx, HasherFlag.Name, &config.Trie.Hasher)
	setStringFromFlag(ctx, LogFlag.Name, &config.Log.Level)
	setStringFromFlag(ctx, LogColourFlag.Name, &config.Log.Colour)
	setStringFromFlag(ctx, LogCallerFlag.Name, &config.Log.Caller)
	setStringFromFlag(ctx, MetricsFileFlag.Name, &config.Metrics.Textfile)

	err = validateConfig(config)
	if err != nil {
		return config, err
	}

	return config, nil
}

func setStringFromFlag(ctx *cli.Context, name string, field *string) {
	if ctx.GlobalIsSet(name) {
		*field = ctx.GlobalString(name)
	}
}
