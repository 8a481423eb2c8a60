package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"stakevault/x/token/types"
)

// Initialize sets up the ledger. It can only run once.
func (k Keeper) Initialize(ctx context.Context, admin, minter, name, symbol string) error {
	md := types.NewMetadata(name, symbol)
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		has, err := k.Admin.Has(ctx)
		if err != nil {
			return err
		}
		if has {
			return types.ErrAlreadyInitialized
		}
		if err := k.validateAddress(admin); err != nil {
			return err
		}
		if err := k.validateAddress(minter); err != nil {
			return err
		}
		if err := md.Validate(); err != nil {
			return errorsmod.Wrap(types.ErrInvalidMetadata, err.Error())
		}
		if err := k.Admin.Set(ctx, admin); err != nil {
			return err
		}
		if err := k.Minter.Set(ctx, minter); err != nil {
			return err
		}
		return k.Metadata.Set(ctx, md)
	})
	if err != nil {
		return err
	}

	k.Logger(ctx).Info("token initialized", "admin", admin, "minter", minter, "symbol", symbol)
	emit(ctx, types.EventInitialized,
		sdk.NewAttribute(types.AttrAdmin, admin),
		sdk.NewAttribute(types.AttrMinter, minter),
		sdk.NewAttribute(types.AttrName, name),
		sdk.NewAttribute(types.AttrSymbol, symbol),
	)
	return nil
}

func (k Keeper) TransferAdmin(ctx context.Context, caller, newAdmin string) error {
	if err := k.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if err := k.validateAddress(newAdmin); err != nil {
		return err
	}
	if err := k.PendingAdmin.Set(ctx, newAdmin); err != nil {
		return err
	}
	emit(ctx, types.EventAdminTransfer,
		sdk.NewAttribute(types.AttrAdmin, caller),
		sdk.NewAttribute(types.AttrNewAdmin, newAdmin),
	)
	return nil
}

func (k Keeper) AcceptAdmin(ctx context.Context, caller string) error {
	pending, err := k.getString(ctx, k.PendingAdmin)
	if err != nil {
		return err
	}
	if pending == "" {
		return types.ErrNoPendingAdminTransfer
	}
	if caller != pending {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the pending admin", caller)
	}
	err = k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.Admin.Set(ctx, pending); err != nil {
			return err
		}
		return k.PendingAdmin.Remove(ctx)
	})
	if err != nil {
		return err
	}

	k.Logger(ctx).Info("token admin changed", "admin", pending)
	emit(ctx, types.EventAdminAccepted, sdk.NewAttribute(types.AttrAdmin, pending))
	return nil
}

// RenounceAdmin clears any pending admin. It is a no-op when none is pending.
func (k Keeper) RenounceAdmin(ctx context.Context, caller string) error {
	if err := k.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if err := k.PendingAdmin.Remove(ctx); err != nil && !errors.Is(err, collections.ErrNotFound) {
		return err
	}
	emit(ctx, types.EventAdminRenounce, sdk.NewAttribute(types.AttrAdmin, caller))
	return nil
}

func (k Keeper) SetMinter(ctx context.Context, caller, minter string) error {
	if err := k.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if err := k.validateAddress(minter); err != nil {
		return err
	}
	if err := k.Minter.Set(ctx, minter); err != nil {
		return err
	}
	emit(ctx, types.EventSetMinter,
		sdk.NewAttribute(types.AttrAdmin, caller),
		sdk.NewAttribute(types.AttrMinter, minter),
	)
	return nil
}

func (k Keeper) GetAdmin(ctx context.Context) (string, error) { return k.getString(ctx, k.Admin) }

// GetPendingAdmin returns the nominated admin or "" when none.
func (k Keeper) GetPendingAdmin(ctx context.Context) (string, error) {
	return k.getString(ctx, k.PendingAdmin)
}

func (k Keeper) GetMinter(ctx context.Context) (string, error) { return k.getString(ctx, k.Minter) }
