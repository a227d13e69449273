// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var transferCmd = &cobra.Command{
	Use:   "transfer [sender] [recipient] [amount]",
	Short: "Sends tokens from the sender to the recipient",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 3 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		sender, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		recipient, err := parseAddress(args[1])
		if err != nil {
			return err
		}
		amount, err := parseAmount(args[2])
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()
		if err := newClient().Send(ctx, sender, recipient, amount); err != nil {
			return err
		}
		color.Green("sent %s from %s to %s", amount, sender, recipient)
		return nil
	},
}

var operatorCmd = &cobra.Command{
	Use: "operator",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var authorizeOperatorCmd = &cobra.Command{
	Use:   "authorize [holder] [operator]",
	Short: "Authorizes an operator for the holder",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 2 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		holder, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		operator, err := parseAddress(args[1])
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()
		if err := newClient().AuthorizeOperator(ctx, holder, operator); err != nil {
			return err
		}
		color.Green("authorized %s for %s", operator, holder)
		return nil
	},
}

var revokeOperatorCmd = &cobra.Command{
	Use:   "revoke [holder] [operator]",
	Short: "Revokes an operator for the holder",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 2 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		holder, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		operator, err := parseAddress(args[1])
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()
		if err := newClient().RevokeOperator(ctx, holder, operator); err != nil {
			return err
		}
		color.Green("revoked %s for %s", operator, holder)
		return nil
	},
}

var operatorSendCmd = &cobra.Command{
	Use:   "send [operator] [holder] [recipient] [amount]",
	Short: "Sends tokens on behalf of the holder",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 4 {
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
		recipient, err := parseAddress(args[2])
		if err != nil {
			return err
		}
		amount, err := parseAmount(args[3])
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()
		if err := newClient().OperatorSend(ctx, operator, holder, recipient, amount, nil, nil); err != nil {
			return err
		}
		color.Green("sent %s from %s to %s as %s", amount, holder, recipient, operator)
		return nil
	},
}

var operatorBurnCmd = &cobra.Command{
	Use:   "burn [operator] [holder] [amount]",
	Short: "Burns tokens on behalf of the holder",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 3 {
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
		amount, err := parseAmount(args[2])
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()
		if err := newClient().OperatorBurn(ctx, operator, holder, amount, nil, nil); err != nil {
			return err
		}
		color.Green("burned %s from %s as %s", amount, holder, operator)
		return nil
	},
}
