// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"io"
	"os"

	"github.com/ChainSafe/pmtrie/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

func main() {
	// Command results are written to the standard output,
	// so logs go to the standard error.
	log.Patch(log.SetWriter(os.Stderr))

	app := newApp(os.Stdout)
	err := app.Run(os.Args)
	if err != nil {
		logger.Critical(err.Error())
		os.Exit(1)
	}
}

func newApp(writer io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "pmtrie"
	app.Usage = "Merkle Patricia trie command line interface"
	app.Writer = writer
	app.Flags = globalFlags
	app.Commands = []cli.Command{
		putCommand,
		getCommand,
		deleteCommand,
		rootCommand,
		entriesCommand,
		printCommand,
		proveCommand,
		verifyCommand,
		configCommand,
	}
	return app
}
