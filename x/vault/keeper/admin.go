package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"stakevault/x/vault/types"
)

// SetStakeAssetCap sets the staking ceiling. It cannot go below the amount already staked.
func (k Keeper) SetStakeAssetCap(ctx context.Context, caller string, newCap math.Int) error {
	if newCap.IsNil() {
		return errorsmod.Wrap(types.ErrStakingCapTooSmall, "cap is required")
	}
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		cfg, err := k.loadConfig(ctx)
		if err != nil {
			return err
		}
		if err := requireAdmin(cfg, caller); err != nil {
			return err
		}
		totals, err := k.loadTotals(ctx)
		if err != nil {
			return err
		}
		if newCap.LT(totals.TotalStakingAmount) {
			return errorsmod.Wrapf(types.ErrStakingCapTooSmall, "cap %s < staked %s", newCap, totals.TotalStakingAmount)
		}
		totals.TotalStakingCap = newCap
		return k.Totals.Set(ctx, totals)
	})
	if err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(types.EventStakingCapSet, sdk.NewAttribute(types.AttrCap, newCap.String())),
	)
	return nil
}

func (k Keeper) SetNormalUnstakeFee(ctx context.Context, caller string, bps int64) error {
	if err := k.updateConfig(ctx, caller, func(cfg *types.VaultConfig) error {
		if err := types.ValidateFee(bps); err != nil {
			return err
		}
		cfg.NormalUnstakeFee = bps
		return nil
	}); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(types.EventNormalFeeSet, sdk.NewAttribute(types.AttrBasisPoints, strconv.FormatInt(bps, 10))),
	)
	return nil
}

func (k Keeper) SetInstantUnstakeFee(ctx context.Context, caller string, bps int64) error {
	if err := k.updateConfig(ctx, caller, func(cfg *types.VaultConfig) error {
		if err := types.ValidateFee(bps); err != nil {
			return err
		}
		cfg.InstantUnstakeFee = bps
		return nil
	}); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(types.EventInstantFeeSet, sdk.NewAttribute(types.AttrBasisPoints, strconv.FormatInt(bps, 10))),
	)
	return nil
}

// SetOperator replaces the operator. An empty operator clears the role.
func (k Keeper) SetOperator(ctx context.Context, caller, operator string) error {
	if operator != "" {
		if err := k.validateAddress(operator); err != nil {
			return err
		}
	}
	if err := k.updateConfig(ctx, caller, func(cfg *types.VaultConfig) error {
		cfg.Operator = operator
		return nil
	}); err != nil {
		return err
	}

	k.Logger(ctx).Info("vault operator set", "operator", operator)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(types.EventOperatorSet, sdk.NewAttribute(types.AttrOperator, operator)),
	)
	return nil
}

// SetOnlyAllowStake toggles the launch mode in which every unstake path is disabled.
func (k Keeper) SetOnlyAllowStake(ctx context.Context, caller string, flag bool) error {
	if err := k.updateConfig(ctx, caller, func(cfg *types.VaultConfig) error {
		cfg.OnlyAllowStake = flag
		return nil
	}); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(types.EventOnlyAllowStakeSet, sdk.NewAttribute(types.AttrFlag, strconv.FormatBool(flag))),
	)
	return nil
}

// CollectFee sweeps the accrued fee to the admin and returns the swept amount in vault units.
func (k Keeper) CollectFee(ctx context.Context, caller string) (math.Int, error) {
	var fee math.Int
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		cfg, err := k.loadConfig(ctx)
		if err != nil {
			return err
		}
		if err := requireAdmin(cfg, caller); err != nil {
			return err
		}
		totals, err := k.loadTotals(ctx)
		if err != nil {
			return err
		}
		if !totals.CollectedFee.IsPositive() {
			return types.ErrNoFeeToCollect
		}
		fee = totals.CollectedFee
		adjusted, err := types.ScaleToAssetDecimals(fee, cfg.AssetDecimals)
		if err != nil {
			return err
		}
		totals.CollectedFee = math.ZeroInt()

		if err := k.assetKeeper.Transfer(ctx, k.moduleAddress, cfg.Admin, adjusted); err != nil {
			return errorsmod.Wrap(err, "failed to pay collected fee")
		}
		return k.Totals.Set(ctx, totals)
	})
	if err != nil {
		return math.Int{}, err
	}

	k.Logger(ctx).Info("vault fee collected", "admin", caller, "amount", fee.String())
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventFeeCollected,
			sdk.NewAttribute(types.AttrAdmin, caller),
			sdk.NewAttribute(types.AttrAmount, fee.String()),
		),
	)
	return fee, nil
}
