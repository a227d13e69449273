// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package controller sequences invocations against the ledger. Each
// operation runs over its own buffered state view under an exclusive
// lock; the view is committed only when the operation succeeds, so a
// failure can never leave partial writes in the database.
package controller

import (
	"context"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/erc777vm/erc777vm/codec"
	"github.com/erc777vm/erc777vm/genesis"
	"github.com/erc777vm/erc777vm/ledger"
	"github.com/erc777vm/erc777vm/state"
	"github.com/erc777vm/erc777vm/storage"
)

type Controller struct {
	log    logging.Logger
	tracer trace.Tracer

	db database.Database
	g  *genesis.Genesis

	// admin holds the supply capability threaded into every Ledger.
	admin codec.Address

	registry *prometheus.Registry
	metrics  *metrics

	stateLock sync.RWMutex
}

func New(
	log logging.Logger,
	tracer trace.Tracer,
	db database.Database,
	g *genesis.Genesis,
	admin codec.Address,
) (*Controller, error) {
	registry := prometheus.NewRegistry()
	metrics, err := newMetrics(registry)
	if err != nil {
		return nil, err
	}
	return &Controller{
		log:      log,
		tracer:   tracer,
		db:       db,
		g:        g,
		admin:    admin,
		registry: registry,
		metrics:  metrics,
	}, nil
}

func (c *Controller) Genesis() *genesis.Genesis {
	return c.g
}

func (c *Controller) Tracer() trace.Tracer {
	return c.tracer
}

func (c *Controller) MetricsRegistry() *prometheus.Registry {
	return c.registry
}

// Install seeds a fresh ledger with [installer] as the credited caller.
// Idempotent at the process level: a second call fails with
// genesis.ErrAlreadyInstalled and commits nothing.
func (c *Controller) Install(ctx context.Context, installer codec.Address) error {
	c.stateLock.Lock()
	defer c.stateLock.Unlock()

	mu := state.NewSimpleMutable(c.db)
	if err := c.g.Load(ctx, c.tracer, mu, installer); err != nil {
		return err
	}
	if err := mu.Commit(ctx); err != nil {
		return err
	}
	c.log.Info("installed token",
		zap.String("name", c.g.Name),
		zap.String("symbol", c.g.Symbol),
		zap.Stringer("installer", installer),
		zap.String("initialSupply", c.g.InitialSupply.String()),
	)
	return nil
}

// mutate runs one ledger operation over a fresh view and commits it
// only on success.
func (c *Controller) mutate(ctx context.Context, op func(*ledger.Ledger) error) error {
	c.stateLock.Lock()
	defer c.stateLock.Unlock()

	mu := state.NewSimpleMutable(c.db)
	if err := op(ledger.New(mu, c.admin)); err != nil {
		return err
	}
	return mu.Commit(ctx)
}

// view runs a read-only query over the committed state.
func (c *Controller) view(f func(*ledger.Ledger) error) error {
	c.stateLock.RLock()
	defer c.stateLock.RUnlock()
	return f(ledger.New(state.NewSimpleMutable(c.db), c.admin))
}

func (c *Controller) Send(
	ctx context.Context,
	actor codec.Address,
	recipient codec.Address,
	amount *uint256.Int,
) error {
	if err := c.mutate(ctx, func(l *ledger.Ledger) error {
		return l.Send(ctx, actor, recipient, amount)
	}); err != nil {
		return err
	}
	c.metrics.send.Inc()
	c.log.Debug("send",
		zap.Stringer("actor", actor),
		zap.Stringer("recipient", recipient),
		zap.String("amount", amount.String()),
	)
	return nil
}

// Mint is deliberately kept off the public RPC surface; it is reachable
// only by a caller that already holds the controller (and with it the
// admin capability).
func (c *Controller) Mint(
	ctx context.Context,
	actor codec.Address,
	owner codec.Address,
	amount *uint256.Int,
) error {
	if err := c.mutate(ctx, func(l *ledger.Ledger) error {
		return l.Mint(ctx, actor, owner, amount)
	}); err != nil {
		return err
	}
	c.metrics.mint.Inc()
	c.log.Debug("mint",
		zap.Stringer("owner", owner),
		zap.String("amount", amount.String()),
	)
	return nil
}

// Burn has the same trust boundary as Mint.
func (c *Controller) Burn(
	ctx context.Context,
	actor codec.Address,
	owner codec.Address,
	amount *uint256.Int,
) error {
	if err := c.mutate(ctx, func(l *ledger.Ledger) error {
		return l.Burn(ctx, actor, owner, amount)
	}); err != nil {
		return err
	}
	c.metrics.burn.Inc()
	c.log.Debug("burn",
		zap.Stringer("owner", owner),
		zap.String("amount", amount.String()),
	)
	return nil
}

func (c *Controller) AuthorizeOperator(
	ctx context.Context,
	actor codec.Address,
	operator codec.Address,
) error {
	if err := c.mutate(ctx, func(l *ledger.Ledger) error {
		return l.AuthorizeOperator(ctx, actor, operator)
	}); err != nil {
		return err
	}
	c.metrics.authorizeOperator.Inc()
	return nil
}

func (c *Controller) RevokeOperator(
	ctx context.Context,
	actor codec.Address,
	operator codec.Address,
) error {
	if err := c.mutate(ctx, func(l *ledger.Ledger) error {
		return l.RevokeOperator(ctx, actor, operator)
	}); err != nil {
		return err
	}
	c.metrics.revokeOperator.Inc()
	return nil
}

func (c *Controller) OperatorSend(
	ctx context.Context,
	operator codec.Address,
	holder codec.Address,
	recipient codec.Address,
	amount *uint256.Int,
	data []byte,
	operatorData []byte,
) error {
	if err := c.mutate(ctx, func(l *ledger.Ledger) error {
		return l.OperatorSend(ctx, operator, holder, recipient, amount, data, operatorData)
	}); err != nil {
		return err
	}
	c.metrics.operatorSend.Inc()
	c.log.Debug("operator send",
		zap.Stringer("operator", operator),
		zap.Stringer("holder", holder),
		zap.Stringer("recipient", recipient),
		zap.String("amount", amount.String()),
	)
	return nil
}

func (c *Controller) OperatorBurn(
	ctx context.Context,
	operator codec.Address,
	holder codec.Address,
	amount *uint256.Int,
	data []byte,
	operatorData []byte,
) error {
	if err := c.mutate(ctx, func(l *ledger.Ledger) error {
		return l.OperatorBurn(ctx, operator, holder, amount, data, operatorData)
	}); err != nil {
		return err
	}
	c.metrics.operatorBurn.Inc()
	c.log.Debug("operator burn",
		zap.Stringer("operator", operator),
		zap.Stringer("holder", holder),
		zap.String("amount", amount.String()),
	)
	return nil
}

func (c *Controller) Metadata(ctx context.Context) (string, string, uint8, uint8, error) {
	var (
		name, symbol          string
		decimals, granularity uint8
	)
	err := c.view(func(l *ledger.Ledger) error {
		var err error
		name, err = l.Name(ctx)
		if err != nil {
			return err
		}
		symbol, err = l.Symbol(ctx)
		if err != nil {
			return err
		}
		decimals, err = l.Decimals(ctx)
		if err != nil {
			return err
		}
		granularity, err = l.Granularity(ctx)
		return err
	})
	return name, symbol, decimals, granularity, err
}

func (c *Controller) TotalSupply(ctx context.Context) (*uint256.Int, error) {
	var supply *uint256.Int
	err := c.view(func(l *ledger.Ledger) error {
		var err error
		supply, err = l.TotalSupply(ctx)
		return err
	})
	return supply, err
}

func (c *Controller) Balance(ctx context.Context, addr codec.Address) (*uint256.Int, error) {
	var balance *uint256.Int
	err := c.view(func(l *ledger.Ledger) error {
		var err error
		balance, err = l.BalanceOf(ctx, addr)
		return err
	})
	return balance, err
}

func (c *Controller) IsOperatorFor(
	ctx context.Context,
	operator codec.Address,
	holder codec.Address,
) (bool, error) {
	var ok bool
	err := c.view(func(l *ledger.Ledger) error {
		var err error
		ok, err = l.IsOperatorFor(ctx, operator, holder)
		return err
	})
	return ok, err
}

func (c *Controller) DefaultOperators(ctx context.Context) ([]codec.Address, error) {
	var operators []codec.Address
	err := c.view(func(l *ledger.Ledger) error {
		var err error
		operators, err = l.DefaultOperators(ctx)
		return err
	})
	return operators, err
}

// Installed reports whether a ledger lives in the database yet.
func (c *Controller) Installed(ctx context.Context) (bool, error) {
	c.stateLock.RLock()
	defer c.stateLock.RUnlock()
	exists, _, _, _, _, err := storage.GetTokenMetadata(ctx, state.NewSimpleMutable(c.db))
	return exists, err
}
