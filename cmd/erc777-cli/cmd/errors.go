// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrInvalidArgs       = errors.New("invalid args")
	ErrMissingSubcommand = errors.New("must specify a subcommand")
	ErrNoAdmin           = errors.New("no admin configured, run install first")
)
