// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/erc777vm/erc777vm/controller"
)

var installCmd = &cobra.Command{
	Use:   "install [admin address]",
	Short: "Installs the token into a fresh database",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		admin, err := parseAddress(args[0])
		if err != nil {
			return err
		}

		db, _, err := openDatabase()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		g, err := loadGenesis()
		if err != nil {
			return err
		}
		c, err := controller.New(logging.NoLog{}, trace.Noop, db, g, admin)
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()
		if err := c.Install(ctx, admin); err != nil {
			return err
		}
		if err := storeAdmin(db, admin); err != nil {
			return err
		}
		color.Green("installed %s (%s) with admin %s", g.Name, g.Symbol, admin)
		return nil
	},
}
