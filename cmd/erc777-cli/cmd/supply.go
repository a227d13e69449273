// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/erc777vm/erc777vm/codec"
	"github.com/erc777vm/erc777vm/controller"
)

// Mint and burn act on the local database with the stored admin. They
// are not served over RPC.
var mintCmd = &cobra.Command{
	Use:   "mint [owner address] [amount]",
	Short: "Mints new tokens to an owner (admin only, local database)",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 2 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return supplyOp(args, func(c *controller.Controller, admin, owner codec.Address, amount string) error {
			a, err := parseAmount(amount)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext()
			defer cancel()
			if err := c.Mint(ctx, admin, owner, a); err != nil {
				return err
			}
			color.Green("minted %s to %s", a, owner)
			return nil
		})
	},
}

var burnCmd = &cobra.Command{
	Use:   "burn [owner address] [amount]",
	Short: "Burns tokens from an owner (admin only, local database)",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 2 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return supplyOp(args, func(c *controller.Controller, admin, owner codec.Address, amount string) error {
			a, err := parseAmount(amount)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext()
			defer cancel()
			if err := c.Burn(ctx, admin, owner, a); err != nil {
				return err
			}
			color.Green("burned %s from %s", a, owner)
			return nil
		})
	},
}

func supplyOp(
	args []string,
	op func(c *controller.Controller, admin, owner codec.Address, amount string) error,
) error {
	owner, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	db, _, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	admin, err := getAdmin(db)
	if err != nil {
		return err
	}
	g, err := loadGenesis()
	if err != nil {
		return err
	}
	c, err := controller.New(logging.NoLog{}, trace.Noop, db, g, admin)
	if err != nil {
		return err
	}
	if err := op(c, admin, owner, args[1]); err != nil {
		return err
	}
	return nil
}
