// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/rpc/v2/json2"
	"github.com/holiman/uint256"

	"github.com/erc777vm/erc777vm/codec"
	"github.com/erc777vm/erc777vm/consts"
	"github.com/erc777vm/erc777vm/genesis"
)

type JSONRPCClient struct {
	uri string
	cli *http.Client

	// cached after the first fetch
	g *genesis.Genesis
}

func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	return &JSONRPCClient{uri: uri, cli: http.DefaultClient}
}

func (cli *JSONRPCClient) call(ctx context.Context, method string, args any, reply any) error {
	body, err := json2.EncodeClientRequest(consts.Name+"."+method, args)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cli.uri, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := cli.cli.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return json2.DecodeClientResponse(resp.Body, reply)
}

func (cli *JSONRPCClient) Genesis(ctx context.Context) (*genesis.Genesis, error) {
	if cli.g != nil {
		return cli.g, nil
	}
	resp := new(GenesisReply)
	if err := cli.call(ctx, "Genesis", nil, resp); err != nil {
		return nil, err
	}
	cli.g = resp.Genesis
	return resp.Genesis, nil
}

func (cli *JSONRPCClient) Metadata(ctx context.Context) (string, string, uint8, uint8, error) {
	resp := new(MetadataReply)
	if err := cli.call(ctx, "Metadata", nil, resp); err != nil {
		return "", "", 0, 0, err
	}
	return resp.Name, resp.Symbol, resp.Decimals, resp.Granularity, nil
}

func (cli *JSONRPCClient) Name(ctx context.Context) (string, error) {
	resp := new(NameReply)
	if err := cli.call(ctx, "Name", nil, resp); err != nil {
		return "", err
	}
	return resp.Name, nil
}

func (cli *JSONRPCClient) Symbol(ctx context.Context) (string, error) {
	resp := new(SymbolReply)
	if err := cli.call(ctx, "Symbol", nil, resp); err != nil {
		return "", err
	}
	return resp.Symbol, nil
}

func (cli *JSONRPCClient) Decimals(ctx context.Context) (uint8, error) {
	resp := new(DecimalsReply)
	if err := cli.call(ctx, "Decimals", nil, resp); err != nil {
		return 0, err
	}
	return resp.Decimals, nil
}

func (cli *JSONRPCClient) Granularity(ctx context.Context) (uint8, error) {
	resp := new(GranularityReply)
	if err := cli.call(ctx, "Granularity", nil, resp); err != nil {
		return 0, err
	}
	return resp.Granularity, nil
}

func (cli *JSONRPCClient) TotalSupply(ctx context.Context) (*uint256.Int, error) {
	resp := new(TotalSupplyReply)
	if err := cli.call(ctx, "TotalSupply", nil, resp); err != nil {
		return nil, err
	}
	return resp.Supply, nil
}

func (cli *JSONRPCClient) Balance(ctx context.Context, addr codec.Address) (*uint256.Int, error) {
	resp := new(BalanceReply)
	if err := cli.call(ctx, "Balance", &BalanceArgs{Address: addr}, resp); err != nil {
		return nil, err
	}
	return resp.Balance, nil
}

func (cli *JSONRPCClient) IsOperatorFor(
	ctx context.Context,
	operator codec.Address,
	holder codec.Address,
) (bool, error) {
	resp := new(IsOperatorForReply)
	args := &IsOperatorForArgs{Operator: operator, Holder: holder}
	if err := cli.call(ctx, "IsOperatorFor", args, resp); err != nil {
		return false, err
	}
	return resp.IsOperator, nil
}

func (cli *JSONRPCClient) DefaultOperators(ctx context.Context) ([]codec.Address, error) {
	resp := new(DefaultOperatorsReply)
	if err := cli.call(ctx, "DefaultOperators", nil, resp); err != nil {
		return nil, err
	}
	return resp.Operators, nil
}

func (cli *JSONRPCClient) Send(
	ctx context.Context,
	actor codec.Address,
	recipient codec.Address,
	amount *uint256.Int,
) error {
	args := &SendArgs{Actor: actor, Recipient: recipient, Amount: amount}
	return cli.call(ctx, "Send", args, &struct{}{})
}

func (cli *JSONRPCClient) AuthorizeOperator(
	ctx context.Context,
	actor codec.Address,
	operator codec.Address,
) error {
	args := &AuthorizeOperatorArgs{Actor: actor, Operator: operator}
	return cli.call(ctx, "AuthorizeOperator", args, &struct{}{})
}

func (cli *JSONRPCClient) RevokeOperator(
	ctx context.Context,
	actor codec.Address,
	operator codec.Address,
) error {
	args := &RevokeOperatorArgs{Actor: actor, Operator: operator}
	return cli.call(ctx, "RevokeOperator", args, &struct{}{})
}

func (cli *JSONRPCClient) OperatorSend(
	ctx context.Context,
	operator codec.Address,
	holder codec.Address,
	recipient codec.Address,
	amount *uint256.Int,
	data []byte,
	operatorData []byte,
) error {
	args := &OperatorSendArgs{
		Operator:     operator,
		Holder:       holder,
		Recipient:    recipient,
		Amount:       amount,
		Data:         data,
		OperatorData: operatorData,
	}
	return cli.call(ctx, "OperatorSend", args, &struct{}{})
}

func (cli *JSONRPCClient) OperatorBurn(
	ctx context.Context,
	operator codec.Address,
	holder codec.Address,
	amount *uint256.Int,
	data []byte,
	operatorData []byte,
) error {
	args := &OperatorBurnArgs{
		Operator:     operator,
		Holder:       holder,
		Amount:       amount,
		Data:         data,
		OperatorData: operatorData,
	}
	return cli.call(ctx, "OperatorBurn", args, &struct{}{})
}
