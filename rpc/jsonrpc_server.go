// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rpc exposes the ledger over JSON-RPC 2.0. The server trusts
// the actor declared in each request, so it must only be reachable by
// callers already trusted with those accounts.
package rpc

import (
	"net/http"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
	"github.com/holiman/uint256"

	"github.com/erc777vm/erc777vm/codec"
	"github.com/erc777vm/erc777vm/consts"
	"github.com/erc777vm/erc777vm/genesis"
)

type JSONRPCServer struct {
	c Controller
}

func NewJSONRPCServer(c Controller) *JSONRPCServer {
	return &JSONRPCServer{c: c}
}

// NewHandler wraps [j] in a gorilla JSON-RPC 2.0 handler. Methods are
// addressed as "<consts.Name>.<Method>".
func NewHandler(j *JSONRPCServer) (http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json2.NewCodec(), "application/json")
	server.RegisterCodec(json2.NewCodec(), "application/json; charset=utf-8")
	return server, server.RegisterService(j, consts.Name)
}

type GenesisReply struct {
	Genesis *genesis.Genesis `json:"genesis"`
}

func (j *JSONRPCServer) Genesis(req *http.Request, _ *struct{}, reply *GenesisReply) error {
	_, span := j.c.Tracer().Start(req.Context(), "JSONRPCServer.Genesis")
	defer span.End()

	reply.Genesis = j.c.Genesis()
	return nil
}

type MetadataReply struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    uint8  `json:"decimals"`
	Granularity uint8  `json:"granularity"`
}

func (j *JSONRPCServer) Metadata(req *http.Request, _ *struct{}, reply *MetadataReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "JSONRPCServer.Metadata")
	defer span.End()

	name, symbol, decimals, granularity, err := j.c.Metadata(ctx)
	if err != nil {
		return err
	}
	reply.Name = name
	reply.Symbol = symbol
	reply.Decimals = decimals
	reply.Granularity = granularity
	return nil
}

type NameReply struct {
	Name string `json:"name"`
}

func (j *JSONRPCServer) Name(req *http.Request, _ *struct{}, reply *NameReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "JSONRPCServer.Name")
	defer span.End()

	name, _, _, _, err := j.c.Metadata(ctx)
	if err != nil {
		return err
	}
	reply.Name = name
	return nil
}

type SymbolReply struct {
	Symbol string `json:"symbol"`
}

func (j *JSONRPCServer) Symbol(req *http.Request, _ *struct{}, reply *SymbolReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "JSONRPCServer.Symbol")
	defer span.End()

	_, symbol, _, _, err := j.c.Metadata(ctx)
	if err != nil {
		return err
	}
	reply.Symbol = symbol
	return nil
}

type DecimalsReply struct {
	Decimals uint8 `json:"decimals"`
}

func (j *JSONRPCServer) Decimals(req *http.Request, _ *struct{}, reply *DecimalsReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "JSONRPCServer.Decimals")
	defer span.End()

	_, _, decimals, _, err := j.c.Metadata(ctx)
	if err != nil {
		return err
	}
	reply.Decimals = decimals
	return nil
}

type GranularityReply struct {
	Granularity uint8 `json:"granularity"`
}

func (j *JSONRPCServer) Granularity(req *http.Request, _ *struct{}, reply *GranularityReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "JSONRPCServer.Granularity")
	defer span.End()

	_, _, _, granularity, err := j.c.Metadata(ctx)
	if err != nil {
		return err
	}
	reply.Granularity = granularity
	return nil
}

type TotalSupplyReply struct {
	Supply *uint256.Int `json:"supply"`
}

func (j *JSONRPCServer) TotalSupply(req *http.Request, _ *struct{}, reply *TotalSupplyReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "JSONRPCServer.TotalSupply")
	defer span.End()

	supply, err := j.c.TotalSupply(ctx)
	if err != nil {
		return err
	}
	reply.Supply = supply
	return nil
}

type BalanceArgs struct {
	Address codec.Address `json:"address"`
}

type BalanceReply struct {
	Balance *uint256.Int `json:"balance"`
}

func (j *JSONRPCServer) Balance(req *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "JSONRPCServer.Balance")
	defer span.End()

	balance, err := j.c.Balance(ctx, args.Address)
	if err != nil {
		return err
	}
	reply.Balance = balance
	return nil
}

type IsOperatorForArgs struct {
	Operator codec.Address `json:"operator"`
	Holder   codec.Address `json:"holder"`
}

type IsOperatorForReply struct {
	IsOperator bool `json:"isOperator"`
}

func (j *JSONRPCServer) IsOperatorFor(req *http.Request, args *IsOperatorForArgs, reply *IsOperatorForReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "JSONRPCServer.IsOperatorFor")
	defer span.End()

	ok, err := j.c.IsOperatorFor(ctx, args.Operator, args.Holder)
	if err != nil {
		return err
	}
	reply.IsOperator = ok
	return nil
}

type DefaultOperatorsReply struct {
	Operators []codec.Address `json:"operators"`
}

func (j *JSONRPCServer) DefaultOperators(req *http.Request, _ *struct{}, reply *DefaultOperatorsReply) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "JSONRPCServer.DefaultOperators")
	defer span.End()

	operators, err := j.c.DefaultOperators(ctx)
	if err != nil {
		return err
	}
	reply.Operators = operators
	return nil
}

type SendArgs struct {
	Actor     codec.Address `json:"actor"`
	Recipient codec.Address `json:"recipient"`
	Amount    *uint256.Int  `json:"amount"`
}

func (j *JSONRPCServer) Send(req *http.Request, args *SendArgs, _ *struct{}) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "JSONRPCServer.Send")
	defer span.End()

	if args.Amount == nil {
		return ErrMissingAmount
	}
	return j.c.Send(ctx, args.Actor, args.Recipient, args.Amount)
}

type AuthorizeOperatorArgs struct {
	Actor    codec.Address `json:"actor"`
	Operator codec.Address `json:"operator"`
}

func (j *JSONRPCServer) AuthorizeOperator(req *http.Request, args *AuthorizeOperatorArgs, _ *struct{}) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "JSONRPCServer.AuthorizeOperator")
	defer span.End()

	return j.c.AuthorizeOperator(ctx, args.Actor, args.Operator)
}

type RevokeOperatorArgs struct {
	Actor    codec.Address `json:"actor"`
	Operator codec.Address `json:"operator"`
}

func (j *JSONRPCServer) RevokeOperator(req *http.Request, args *RevokeOperatorArgs, _ *struct{}) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "JSONRPCServer.RevokeOperator")
	defer span.End()

	return j.c.RevokeOperator(ctx, args.Actor, args.Operator)
}

type OperatorSendArgs struct {
	Operator     codec.Address `json:"operator"`
	Holder       codec.Address `json:"holder"`
	Recipient    codec.Address `json:"recipient"`
	Amount       *uint256.Int  `json:"amount"`
	Data         []byte        `json:"data,omitempty"`
	OperatorData []byte        `json:"operatorData,omitempty"`
}

func (j *JSONRPCServer) OperatorSend(req *http.Request, args *OperatorSendArgs, _ *struct{}) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "JSONRPCServer.OperatorSend")
	defer span.End()

	if args.Amount == nil {
		return ErrMissingAmount
	}
	return j.c.OperatorSend(ctx, args.Operator, args.Holder, args.Recipient, args.Amount, args.Data, args.OperatorData)
}

type OperatorBurnArgs struct {
	Operator     codec.Address `json:"operator"`
	Holder       codec.Address `json:"holder"`
	Amount       *uint256.Int  `json:"amount"`
	Data         []byte        `json:"data,omitempty"`
	OperatorData []byte        `json:"operatorData,omitempty"`
}

func (j *JSONRPCServer) OperatorBurn(req *http.Request, args *OperatorBurnArgs, _ *struct{}) error {
	ctx, span := j.c.Tracer().Start(req.Context(), "JSONRPCServer.OperatorBurn")
	defer span.End()

	if args.Amount == nil {
		return ErrMissingAmount
	}
	return j.c.OperatorBurn(ctx, args.Operator, args.Holder, args.Amount, args.Data, args.OperatorData)
}
