package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"stakevault/x/vault/types"
)

// UnstakeRequest burns amount of the user's receipt token and queues it in the slot of the
// current day. A slot still holding an unclaimed amount cannot take a new request.
func (k Keeper) UnstakeRequest(ctx context.Context, user string, amount math.Int) (uint32, types.UnstakeSlot, error) {
	var (
		slot  uint32
		entry types.UnstakeSlot
	)
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		cfg, err := k.loadConfig(ctx)
		if err != nil {
			return err
		}
		if err := requireNotPaused(cfg); err != nil {
			return err
		}
		if err := requireUnstakeAllowed(cfg); err != nil {
			return err
		}
		if err := types.ValidatePositive(amount); err != nil {
			return err
		}

		ts := now(ctx)
		slot = types.SlotOf(ts)
		entry, err = k.getSlot(ctx, user, slot)
		if err != nil {
			return err
		}
		if entry.IsPending() {
			return errorsmod.Wrapf(types.ErrClaimPreviousUnstakeFirst, "slot %d holds %s", slot, entry.Amount)
		}

		totals, err := k.loadTotals(ctx)
		if err != nil {
			return err
		}
		if entry.Amount, err = types.SafeAdd(entry.Amount, amount); err != nil {
			return err
		}
		entry.RequestTime = ts
		if totals.TotalStakingAmount, err = types.SubNonNegative(totals.TotalStakingAmount, amount); err != nil {
			return err
		}
		if totals.TotalRequestedAmount, err = types.SafeAdd(totals.TotalRequestedAmount, amount); err != nil {
			return err
		}

		if err := k.tokenKeeper.Burn(ctx, k.moduleAddress, user, amount); err != nil {
			return errorsmod.Wrap(err, "failed to burn receipt token")
		}
		if err := k.setSlot(ctx, user, slot, entry); err != nil {
			return err
		}
		return k.Totals.Set(ctx, totals)
	})
	if err != nil {
		return 0, types.UnstakeSlot{}, err
	}

	k.Logger(ctx).Debug("unstake request", "user", user, "slot", slot, "amount", amount.String())
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventUnstakeRequest,
			sdk.NewAttribute(types.AttrUser, user),
			sdk.NewAttribute(types.AttrSlot, strconv.FormatUint(uint64(slot), 10)),
			sdk.NewAttribute(types.AttrAmount, amount.String()),
			sdk.NewAttribute(types.AttrRequestTime, strconv.FormatUint(entry.RequestTime, 10)),
		),
	)
	return slot, entry, nil
}

// ClaimSlot pays out a single matured slot minus the normal unstake fee.
func (k Keeper) ClaimSlot(ctx context.Context, user string, slot uint32) (types.ClaimResult, error) {
	var res types.ClaimResult
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		cfg, err := k.loadConfig(ctx)
		if err != nil {
			return err
		}
		if err := requireNotPaused(cfg); err != nil {
			return err
		}
		if err := requireUnstakeAllowed(cfg); err != nil {
			return err
		}
		if slot >= types.MaxSlots {
			return errorsmod.Wrapf(types.ErrInvalidSlot, "slot %d >= %d", slot, types.MaxSlots)
		}

		entry, err := k.getSlot(ctx, user, slot)
		if err != nil {
			return err
		}
		if !entry.IsPending() {
			return types.ErrNoPendingUnstake
		}
		if !entry.IsClaimable(now(ctx)) {
			return errorsmod.Wrapf(types.ErrNotReachedClaimableTime, "claimable at %d", entry.ClaimableAt())
		}

		amount := entry.Amount
		entry.Amount = math.ZeroInt()
		if err := k.setSlot(ctx, user, slot, entry); err != nil {
			return err
		}
		res, err = k.settleClaim(ctx, cfg, user, amount)
		return err
	})
	if err != nil {
		return types.ClaimResult{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventClaimSlot,
			sdk.NewAttribute(types.AttrUser, user),
			sdk.NewAttribute(types.AttrSlot, strconv.FormatUint(uint64(slot), 10)),
			sdk.NewAttribute(types.AttrAmount, res.Amount.String()),
			sdk.NewAttribute(types.AttrFee, res.Fee.String()),
			sdk.NewAttribute(types.AttrPayout, res.Payout.String()),
		),
	)
	return res, nil
}

// ClaimAll pays out every matured slot of user at once. Slots still inside their delay are left
// untouched.
func (k Keeper) ClaimAll(ctx context.Context, user string) (types.ClaimResult, error) {
	var res types.ClaimResult
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		cfg, err := k.loadConfig(ctx)
		if err != nil {
			return err
		}
		if err := requireNotPaused(cfg); err != nil {
			return err
		}
		if err := requireUnstakeAllowed(cfg); err != nil {
			return err
		}

		ts := now(ctx)
		pending := false
		total := math.ZeroInt()
		for slot := uint32(0); slot < types.MaxSlots; slot++ {
			entry, err := k.getSlot(ctx, user, slot)
			if err != nil {
				return err
			}
			if !entry.IsPending() {
				continue
			}
			pending = true
			if !entry.IsClaimable(ts) {
				continue
			}
			if total, err = types.SafeAdd(total, entry.Amount); err != nil {
				return err
			}
			entry.Amount = math.ZeroInt()
			if err := k.setSlot(ctx, user, slot, entry); err != nil {
				return err
			}
		}
		if !pending {
			return types.ErrNoPendingUnstake
		}
		if total.IsZero() {
			return types.ErrNotReachedClaimableTime
		}

		res, err = k.settleClaim(ctx, cfg, user, total)
		return err
	})
	if err != nil {
		return types.ClaimResult{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventClaimAll,
			sdk.NewAttribute(types.AttrUser, user),
			sdk.NewAttribute(types.AttrAmount, res.Amount.String()),
			sdk.NewAttribute(types.AttrFee, res.Fee.String()),
			sdk.NewAttribute(types.AttrPayout, res.Payout.String()),
		),
	)
	return res, nil
}

// settleClaim takes amount out of the claimable pool and the requested total, keeps the normal
// fee and pays the rest to user.
func (k Keeper) settleClaim(ctx sdk.Context, cfg types.VaultConfig, user string, amount math.Int) (types.ClaimResult, error) {
	totals, err := k.loadTotals(ctx)
	if err != nil {
		return types.ClaimResult{}, err
	}
	if totals.TotalClaimableAmount, err = types.SubNonNegative(totals.TotalClaimableAmount, amount); err != nil {
		return types.ClaimResult{}, err
	}
	if totals.TotalRequestedAmount, err = types.SubNonNegative(totals.TotalRequestedAmount, amount); err != nil {
		return types.ClaimResult{}, err
	}
	res, err := k.payout(ctx, cfg, &totals, user, amount, cfg.NormalUnstakeFee)
	if err != nil {
		return types.ClaimResult{}, err
	}
	return res, k.Totals.Set(ctx, totals)
}

// payout accrues the fee on amount into totals and transfers the remainder to user.
func (k Keeper) payout(ctx sdk.Context, cfg types.VaultConfig, totals *types.VaultTotals, user string, amount math.Int, feeBps int64) (types.ClaimResult, error) {
	fee, err := types.FeeOf(amount, feeBps)
	if err != nil {
		return types.ClaimResult{}, err
	}
	if totals.CollectedFee, err = types.SafeAdd(totals.CollectedFee, fee); err != nil {
		return types.ClaimResult{}, err
	}
	net, err := types.SafeSub(amount, fee)
	if err != nil {
		return types.ClaimResult{}, err
	}
	adjusted, err := types.ScaleToAssetDecimals(net, cfg.AssetDecimals)
	if err != nil {
		return types.ClaimResult{}, err
	}
	if adjusted.IsPositive() {
		if err := k.assetKeeper.Transfer(ctx, k.moduleAddress, user, adjusted); err != nil {
			return types.ClaimResult{}, errorsmod.Wrap(err, "failed to pay unstake")
		}
	}
	return types.ClaimResult{Amount: amount, Fee: fee, Payout: net}, nil
}

// UnstakeInstant burns amount of receipt token and pays it out immediately from the pending stake
// the operator has not withdrawn yet, minus the instant unstake fee.
func (k Keeper) UnstakeInstant(ctx context.Context, user string, amount math.Int) (types.ClaimResult, error) {
	var res types.ClaimResult
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		cfg, err := k.loadConfig(ctx)
		if err != nil {
			return err
		}
		if err := requireNotPaused(cfg); err != nil {
			return err
		}
		if err := requireUnstakeAllowed(cfg); err != nil {
			return err
		}
		if err := types.ValidatePositive(amount); err != nil {
			return err
		}
		totals, err := k.loadTotals(ctx)
		if err != nil {
			return err
		}
		if amount.GT(totals.PendingStakeAmount) {
			return errorsmod.Wrapf(types.ErrInsufficientPendingStakeAmount, "%s > %s", amount, totals.PendingStakeAmount)
		}
		if totals.TotalStakingAmount, err = types.SubNonNegative(totals.TotalStakingAmount, amount); err != nil {
			return err
		}
		if totals.PendingStakeAmount, err = types.SubNonNegative(totals.PendingStakeAmount, amount); err != nil {
			return err
		}

		if err := k.tokenKeeper.Burn(ctx, k.moduleAddress, user, amount); err != nil {
			return errorsmod.Wrap(err, "failed to burn receipt token")
		}
		if res, err = k.payout(ctx, cfg, &totals, user, amount, cfg.InstantUnstakeFee); err != nil {
			return err
		}
		return k.Totals.Set(ctx, totals)
	})
	if err != nil {
		return types.ClaimResult{}, err
	}

	k.Logger(ctx).Debug("instant unstake", "user", user, "amount", res.Amount.String(), "fee", res.Fee.String())
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventUnstakeInstant,
			sdk.NewAttribute(types.AttrUser, user),
			sdk.NewAttribute(types.AttrAmount, res.Amount.String()),
			sdk.NewAttribute(types.AttrFee, res.Fee.String()),
			sdk.NewAttribute(types.AttrPayout, res.Payout.String()),
		),
	)
	return res, nil
}
