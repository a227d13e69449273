// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// "erc777-cli" operates an erc777vm instance and talks to a running
// server.
package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

const (
	requestTimeout = 30 * time.Second
	fsModeWrite    = 0o600
	databaseFolder = ".erc777vm"
)

var (
	workDir string

	dataDir     string
	genesisFile string
	endpoint    string

	rootCmd = &cobra.Command{
		Use:        "erc777-cli",
		Short:      "ERC777VM CLI",
		SuggestFor: []string{"erc777-cli", "erc777cli"},
	}
)

func init() {
	p, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	workDir = p

	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().StringVar(
		&dataDir,
		"data-dir",
		filepath.Join(workDir, databaseFolder),
		"ledger database directory",
	)
	rootCmd.PersistentFlags().StringVar(
		&genesisFile,
		"genesis-file",
		filepath.Join(workDir, "genesis.json"),
		"genesis file path",
	)
	rootCmd.PersistentFlags().StringVar(
		&endpoint,
		"endpoint",
		"http://127.0.0.1:10777/rpc",
		"JSON-RPC endpoint of a running server",
	)

	rootCmd.AddCommand(
		genesisCmd,
		installCmd,
		serveCmd,

		mintCmd,
		burnCmd,

		transferCmd,
		operatorCmd,

		metadataCmd,
		balanceCmd,
		supplyCmd,
	)

	// genesis
	genesisCmd.AddCommand(
		genGenesisCmd,
	)

	// operator
	operatorCmd.AddCommand(
		authorizeOperatorCmd,
		revokeOperatorCmd,
		isOperatorCmd,
		defaultOperatorsCmd,
		operatorSendCmd,
		operatorBurnCmd,
	)
}

func Execute() error {
	return rootCmd.Execute()
}
