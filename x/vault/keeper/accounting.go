package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"stakevault/x/vault/types"
)

// Initialize configures the vault for the given receipt token and asset. The receipt token
// must use 8 decimals and the asset at least 8.
func (k Keeper) Initialize(ctx context.Context, admin, tokenAddress, assetAddress string) error {
	var cfg types.VaultConfig
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		has, err := k.Config.Has(ctx)
		if err != nil {
			return err
		}
		if has {
			return types.ErrAlreadyInitialized
		}
		for _, addr := range []string{admin, tokenAddress, assetAddress} {
			if err := k.validateAddress(addr); err != nil {
				return err
			}
		}

		tokenDecimals, err := k.tokenKeeper.Decimals(ctx)
		if err != nil {
			return errorsmod.Wrap(err, "failed to read token decimals")
		}
		if tokenDecimals != types.TokenDecimals {
			return errorsmod.Wrapf(types.ErrInvalidTokenDecimal, "token has %d decimals", tokenDecimals)
		}
		assetDecimals, err := k.assetKeeper.Decimals(ctx)
		if err != nil {
			return errorsmod.Wrap(err, "failed to read asset decimals")
		}
		if assetDecimals < types.TokenDecimals {
			return errorsmod.Wrapf(types.ErrAssetDecimalTooSmall, "asset has %d decimals", assetDecimals)
		}

		cfg = types.NewVaultConfig(admin, tokenAddress, assetAddress, assetDecimals)
		if err := k.Config.Set(ctx, cfg); err != nil {
			return err
		}
		return k.Totals.Set(ctx, types.NewVaultTotals())
	})
	if err != nil {
		return err
	}

	k.Logger(ctx).Info("vault initialized", "admin", admin, "token", tokenAddress, "asset", assetAddress, "asset_decimals", cfg.AssetDecimals)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventInitialized,
			sdk.NewAttribute(types.AttrAdmin, admin),
			sdk.NewAttribute(types.AttrToken, tokenAddress),
			sdk.NewAttribute(types.AttrAsset, assetAddress),
			sdk.NewAttribute(types.AttrAssetDecimals, strconv.FormatUint(uint64(cfg.AssetDecimals), 10)),
		),
	)
	return nil
}

// Stake pulls the asset from user into the vault and mints the same amount of receipt token.
func (k Keeper) Stake(ctx context.Context, user string, amount math.Int) error {
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		cfg, err := k.loadConfig(ctx)
		if err != nil {
			return err
		}
		if err := requireNotPaused(cfg); err != nil {
			return err
		}
		if err := types.ValidatePositive(amount); err != nil {
			return err
		}
		totals, err := k.loadTotals(ctx)
		if err != nil {
			return err
		}

		staked, err := types.SafeAdd(totals.TotalStakingAmount, amount)
		if err != nil {
			return err
		}
		if staked.GT(totals.TotalStakingCap) {
			return errorsmod.Wrapf(types.ErrExceedStakingCap, "staked %s would exceed cap %s", staked, totals.TotalStakingCap)
		}
		pending, err := types.SafeAdd(totals.PendingStakeAmount, amount)
		if err != nil {
			return err
		}
		adjusted, err := types.ScaleToAssetDecimals(amount, cfg.AssetDecimals)
		if err != nil {
			return err
		}
		totals.TotalStakingAmount = staked
		totals.PendingStakeAmount = pending

		if err := k.assetKeeper.Transfer(ctx, user, k.moduleAddress, adjusted); err != nil {
			return errorsmod.Wrap(err, "failed to pull staked asset")
		}
		if err := k.tokenKeeper.Mint(ctx, k.moduleAddress, user, amount); err != nil {
			return errorsmod.Wrap(err, "failed to mint receipt token")
		}
		return k.Totals.Set(ctx, totals)
	})
	if err != nil {
		return err
	}

	k.Logger(ctx).Debug("stake", "user", user, "amount", amount.String())
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventStake,
			sdk.NewAttribute(types.AttrUser, user),
			sdk.NewAttribute(types.AttrAmount, amount.String()),
		),
	)
	return nil
}

// Deposit adds operator liquidity to the claimable pool.
func (k Keeper) Deposit(ctx context.Context, operator string, amount math.Int) error {
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		cfg, err := k.loadConfig(ctx)
		if err != nil {
			return err
		}
		if err := requireOperator(cfg, operator); err != nil {
			return err
		}
		if err := types.ValidatePositive(amount); err != nil {
			return err
		}
		totals, err := k.loadTotals(ctx)
		if err != nil {
			return err
		}
		claimable, err := types.SafeAdd(totals.TotalClaimableAmount, amount)
		if err != nil {
			return err
		}
		adjusted, err := types.ScaleToAssetDecimals(amount, cfg.AssetDecimals)
		if err != nil {
			return err
		}
		totals.TotalClaimableAmount = claimable

		if err := k.assetKeeper.Transfer(ctx, operator, k.moduleAddress, adjusted); err != nil {
			return errorsmod.Wrap(err, "failed to pull deposit")
		}
		return k.Totals.Set(ctx, totals)
	})
	if err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventDeposit,
			sdk.NewAttribute(types.AttrOperator, operator),
			sdk.NewAttribute(types.AttrAmount, amount.String()),
		),
	)
	return nil
}

// Withdraw pays the whole pending stake amount out to the operator.
func (k Keeper) Withdraw(ctx context.Context, operator string) (math.Int, error) {
	var amount math.Int
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		cfg, err := k.loadConfig(ctx)
		if err != nil {
			return err
		}
		if err := requireOperator(cfg, operator); err != nil {
			return err
		}
		totals, err := k.loadTotals(ctx)
		if err != nil {
			return err
		}
		if !totals.PendingStakeAmount.IsPositive() {
			return types.ErrNoPendingStakeAmount
		}
		amount = totals.PendingStakeAmount
		adjusted, err := types.ScaleToAssetDecimals(amount, cfg.AssetDecimals)
		if err != nil {
			return err
		}
		totals.PendingStakeAmount = math.ZeroInt()

		if err := k.assetKeeper.Transfer(ctx, k.moduleAddress, operator, adjusted); err != nil {
			return errorsmod.Wrap(err, "failed to pay pending stake")
		}
		return k.Totals.Set(ctx, totals)
	})
	if err != nil {
		return math.Int{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventWithdraw,
			sdk.NewAttribute(types.AttrOperator, operator),
			sdk.NewAttribute(types.AttrAmount, amount.String()),
		),
	)
	return amount, nil
}

// WithdrawAndDeposit settles the pending stake against a new deposit in a single transfer of the
// difference. Pending stake is reset and the whole deposit joins the claimable pool.
func (k Keeper) WithdrawAndDeposit(ctx context.Context, operator string, depositAmount math.Int) (math.Int, error) {
	var withdrawn math.Int
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		cfg, err := k.loadConfig(ctx)
		if err != nil {
			return err
		}
		if err := requireOperator(cfg, operator); err != nil {
			return err
		}
		if depositAmount.IsNil() || depositAmount.IsNegative() {
			return errorsmod.Wrapf(types.ErrNegativeAmountNotAllowed, "deposit %s", depositAmount)
		}
		totals, err := k.loadTotals(ctx)
		if err != nil {
			return err
		}
		withdrawn = totals.PendingStakeAmount
		claimable, err := types.SafeAdd(totals.TotalClaimableAmount, depositAmount)
		if err != nil {
			return err
		}
		net, err := types.SafeSub(withdrawn, depositAmount)
		if err != nil {
			return err
		}
		totals.PendingStakeAmount = math.ZeroInt()
		totals.TotalClaimableAmount = claimable

		switch {
		case net.IsPositive():
			adjusted, err := types.ScaleToAssetDecimals(net, cfg.AssetDecimals)
			if err != nil {
				return err
			}
			if err := k.assetKeeper.Transfer(ctx, k.moduleAddress, operator, adjusted); err != nil {
				return errorsmod.Wrap(err, "failed to pay net withdrawal")
			}
		case net.IsNegative():
			adjusted, err := types.ScaleToAssetDecimals(net.Neg(), cfg.AssetDecimals)
			if err != nil {
				return err
			}
			if err := k.assetKeeper.Transfer(ctx, operator, k.moduleAddress, adjusted); err != nil {
				return errorsmod.Wrap(err, "failed to pull net deposit")
			}
		}
		return k.Totals.Set(ctx, totals)
	})
	if err != nil {
		return math.Int{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventWithdrawAndDeposit,
			sdk.NewAttribute(types.AttrOperator, operator),
			sdk.NewAttribute(types.AttrWithdrawAmount, withdrawn.String()),
			sdk.NewAttribute(types.AttrDepositAmount, depositAmount.String()),
		),
	)
	return withdrawn, nil
}
