// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// "erc777-cli" operates an erc777vm instance and talks to a running
// server.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/erc777vm/erc777vm/cmd/erc777-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("erc777-cli failed: %v", err)
		os.Exit(1)
	}
	os.Exit(0)
}
