package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	"stakevault/x/token/types"
)

func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if gs.Admin == "" {
		return nil
	}
	if err := k.Admin.Set(ctx, gs.Admin); err != nil {
		return err
	}
	if gs.PendingAdmin != "" {
		if err := k.PendingAdmin.Set(ctx, gs.PendingAdmin); err != nil {
			return err
		}
	}
	if gs.Minter != "" {
		if err := k.Minter.Set(ctx, gs.Minter); err != nil {
			return err
		}
	}
	if err := k.Metadata.Set(ctx, *gs.Metadata); err != nil {
		return err
	}
	for _, b := range gs.Balances {
		if err := k.Balances.Set(ctx, b.Address, b.Amount); err != nil {
			return err
		}
	}
	for _, a := range gs.Allowances {
		if err := k.Allowances.Set(ctx, collections.Join(a.From, a.Spender), a.AllowanceValue); err != nil {
			return err
		}
	}
	return nil
}

func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()
	var err error
	if gs.Admin, err = k.GetAdmin(ctx); err != nil {
		return nil, err
	}
	if gs.Admin == "" {
		return gs, nil
	}
	if gs.PendingAdmin, err = k.GetPendingAdmin(ctx); err != nil {
		return nil, err
	}
	if gs.Minter, err = k.GetMinter(ctx); err != nil {
		return nil, err
	}
	md, err := k.Metadata.Get(ctx)
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return nil, err
	}
	if err == nil {
		gs.Metadata = &md
	}

	if err := k.Balances.Walk(ctx, nil, func(addr string, amount math.Int) (bool, error) {
		gs.Balances = append(gs.Balances, types.BalanceEntry{Address: addr, Amount: amount})
		return false, nil
	}); err != nil {
		return nil, err
	}
	if err := k.Allowances.Walk(ctx, nil, func(key collections.Pair[string, string], a types.AllowanceValue) (bool, error) {
		gs.Allowances = append(gs.Allowances, types.AllowanceEntry{From: key.K1(), Spender: key.K2(), AllowanceValue: a})
		return false, nil
	}); err != nil {
		return nil, err
	}
	return gs, nil
}
