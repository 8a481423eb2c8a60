package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"stakevault/x/vault/types"
)

func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return errorsmod.Wrap(types.ErrInvalidGenesis, err.Error())
	}
	if gs.Config != nil {
		if err := k.Config.Set(ctx, *gs.Config); err != nil {
			return err
		}
	}
	if err := k.Totals.Set(ctx, gs.Totals); err != nil {
		return err
	}
	for _, s := range gs.Slots {
		if err := k.setSlot(ctx, s.User, s.Slot, s.UnstakeSlot); err != nil {
			return err
		}
	}
	return nil
}

func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()

	has, err := k.Config.Has(ctx)
	if err != nil {
		return nil, err
	}
	if has {
		cfg, err := k.Config.Get(ctx)
		if err != nil {
			return nil, err
		}
		gs.Config = &cfg
	}
	if gs.Totals, err = k.loadTotals(ctx); err != nil {
		return nil, err
	}

	iter, err := k.UnstakeSlots.Iterate(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		kv, err := iter.KeyValue()
		if err != nil {
			return nil, err
		}
		slot := kv.Value
		if slot.Amount.IsNil() {
			slot.Amount = math.ZeroInt()
		}
		gs.Slots = append(gs.Slots, types.SlotEntry{
			User:        kv.Key.K1(),
			Slot:        kv.Key.K2(),
			UnstakeSlot: slot,
		})
	}
	return gs, nil
}
