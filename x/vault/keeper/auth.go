package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"stakevault/x/vault/types"
)

func requireAdmin(cfg types.VaultConfig, caller string) error {
	if caller == "" || caller != cfg.Admin {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the vault admin", caller)
	}
	return nil
}

func requireOperator(cfg types.VaultConfig, caller string) error {
	if !cfg.HasOperator() {
		return types.ErrNoOperatorSet
	}
	if caller != cfg.Operator {
		return errorsmod.Wrapf(types.ErrCallerIsNotOperator, "%s", caller)
	}
	return nil
}

func requireNotPaused(cfg types.VaultConfig) error {
	if cfg.Paused {
		return types.ErrContractIsPaused
	}
	return nil
}

func requireUnstakeAllowed(cfg types.VaultConfig) error {
	if cfg.OnlyAllowStake {
		return types.ErrOnlyAllowStakeAtFirst
	}
	return nil
}

// updateConfig loads the config, checks the caller is admin and persists the result of mutate.
func (k Keeper) updateConfig(ctx context.Context, caller string, mutate func(cfg *types.VaultConfig) error) error {
	return k.atomically(ctx, func(ctx sdk.Context) error {
		cfg, err := k.loadConfig(ctx)
		if err != nil {
			return err
		}
		if err := requireAdmin(cfg, caller); err != nil {
			return err
		}
		if err := mutate(&cfg); err != nil {
			return err
		}
		return k.Config.Set(ctx, cfg)
	})
}

// TransferAdmin nominates newAdmin. A later nomination replaces an earlier one.
func (k Keeper) TransferAdmin(ctx context.Context, caller, newAdmin string) error {
	if err := k.validateAddress(newAdmin); err != nil {
		return err
	}
	if err := k.updateConfig(ctx, caller, func(cfg *types.VaultConfig) error {
		cfg.PendingAdmin = newAdmin
		return nil
	}); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventAdminTransfer,
			sdk.NewAttribute(types.AttrAdmin, caller),
			sdk.NewAttribute(types.AttrNewAdmin, newAdmin),
		),
	)
	return nil
}

// AcceptAdmin completes a two-step admin transfer. Only the pending admin may call it.
func (k Keeper) AcceptAdmin(ctx context.Context, caller string) error {
	var previous string
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		cfg, err := k.loadConfig(ctx)
		if err != nil {
			return err
		}
		if !cfg.HasPendingAdmin() {
			return types.ErrNoPendingAdminTransfer
		}
		if caller != cfg.PendingAdmin {
			return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the pending admin", caller)
		}
		previous = cfg.Admin
		cfg.Admin = cfg.PendingAdmin
		cfg.PendingAdmin = ""
		return k.Config.Set(ctx, cfg)
	})
	if err != nil {
		return err
	}

	k.Logger(ctx).Info("vault admin changed", "previous", previous, "admin", caller)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(types.EventAdminAccepted, sdk.NewAttribute(types.AttrAdmin, caller)),
	)
	return nil
}

// RenounceAdmin drops any pending admin nomination. It succeeds when none is pending.
func (k Keeper) RenounceAdmin(ctx context.Context, caller string) error {
	if err := k.updateConfig(ctx, caller, func(cfg *types.VaultConfig) error {
		cfg.PendingAdmin = ""
		return nil
	}); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(types.EventAdminRenounced, sdk.NewAttribute(types.AttrAdmin, caller)),
	)
	return nil
}

func (k Keeper) Pause(ctx context.Context, caller string) error {
	if err := k.updateConfig(ctx, caller, func(cfg *types.VaultConfig) error {
		if cfg.Paused {
			return types.ErrContractIsPaused
		}
		cfg.Paused = true
		return nil
	}); err != nil {
		return err
	}

	k.Logger(ctx).Info("vault paused", "admin", caller)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(types.EventPaused, sdk.NewAttribute(types.AttrAdmin, caller)),
	)
	return nil
}

func (k Keeper) Unpause(ctx context.Context, caller string) error {
	if err := k.updateConfig(ctx, caller, func(cfg *types.VaultConfig) error {
		if !cfg.Paused {
			return types.ErrContractIsNotPaused
		}
		cfg.Paused = false
		return nil
	}); err != nil {
		return err
	}

	k.Logger(ctx).Info("vault unpaused", "admin", caller)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(types.EventUnpaused, sdk.NewAttribute(types.AttrAdmin, caller)),
	)
	return nil
}
