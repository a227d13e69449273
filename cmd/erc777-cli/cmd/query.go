// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Prints the token metadata",
	RunE: func(*cobra.Command, []string) error {
		ctx, cancel := requestContext()
		defer cancel()
		name, symbol, decimals, granularity, err := newClient().Metadata(ctx)
		if err != nil {
			return err
		}
		color.Yellow("name: %s", name)
		color.Yellow("symbol: %s", symbol)
		color.Yellow("decimals: %d", decimals)
		color.Yellow("granularity: %d", granularity)
		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Balance of a given address",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()
		balance, err := newClient().Balance(ctx, addr)
		if err != nil {
			return err
		}
		color.Yellow("balance: %s", balance.Dec())
		return nil
	},
}

var supplyCmd = &cobra.Command{
	Use:   "supply",
	Short: "Prints the total supply",
	RunE: func(*cobra.Command, []string) error {
		ctx, cancel := requestContext()
		defer cancel()
		supply, err := newClient().TotalSupply(ctx)
		if err != nil {
			return err
		}
		color.Yellow("total supply: %s", supply.Dec())
		return nil
	},
}

var isOperatorCmd = &cobra.Command{
	Use:   "check [operator] [holder]",
	Short: "Reports whether the operator may act for the holder",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 2 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		operator, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		holder, err := parseAddress(args[1])
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()
		ok, err := newClient().IsOperatorFor(ctx, operator, holder)
		if err != nil {
			return err
		}
		if ok {
			color.Green("%s is an operator for %s", operator, holder)
		} else {
			color.Red("%s is not an operator for %s", operator, holder)
		}
		return nil
	},
}

var defaultOperatorsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Prints the default operator set",
	RunE: func(*cobra.Command, []string) error {
		ctx, cancel := requestContext()
		defer cancel()
		operators, err := newClient().DefaultOperators(ctx)
		if err != nil {
			return err
		}
		for _, operator := range operators {
			color.Yellow("%s", operator)
		}
		return nil
	},
}
