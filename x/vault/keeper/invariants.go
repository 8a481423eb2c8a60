package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"stakevault/x/vault/types"
)

// RegisterInvariants registers all vault invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "nonnegative-totals", NonNegativeTotalsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "requested-amount", RequestedAmountInvariant(k))
	ir.RegisterRoute(types.ModuleName, "asset-backing", AssetBackingInvariant(k))
}

// AllInvariants runs every vault invariant and reports the first broken one.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, inv := range []sdk.Invariant{
			NonNegativeTotalsInvariant(k),
			RequestedAmountInvariant(k),
			AssetBackingInvariant(k),
		} {
			if msg, broken := inv(ctx); broken {
				return msg, broken
			}
		}
		return "", false
	}
}

func NonNegativeTotalsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		totals, err := k.loadTotals(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "nonnegative-totals", err.Error()), true
		}
		if err := totals.Validate(); err != nil {
			return sdk.FormatInvariant(types.ModuleName, "nonnegative-totals", err.Error()), true
		}
		if totals.TotalStakingAmount.GT(totals.TotalStakingCap) {
			msg := fmt.Sprintf("staked %s exceeds cap %s", totals.TotalStakingAmount, totals.TotalStakingCap)
			return sdk.FormatInvariant(types.ModuleName, "nonnegative-totals", msg), true
		}
		return "", false
	}
}

// RequestedAmountInvariant checks the requested total equals the sum of all unclaimed slots.
func RequestedAmountInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		totals, err := k.loadTotals(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "requested-amount", err.Error()), true
		}
		sum := math.ZeroInt()
		iter, err := k.UnstakeSlots.Iterate(ctx, nil)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "requested-amount", err.Error()), true
		}
		defer iter.Close()
		for ; iter.Valid(); iter.Next() {
			slot, err := iter.Value()
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "requested-amount", err.Error()), true
			}
			if !slot.Amount.IsNil() {
				sum = sum.Add(slot.Amount)
			}
		}
		if !sum.Equal(totals.TotalRequestedAmount) {
			msg := fmt.Sprintf("slots sum to %s, total requested is %s", sum, totals.TotalRequestedAmount)
			return sdk.FormatInvariant(types.ModuleName, "requested-amount", msg), true
		}
		return "", false
	}
}

// AssetBackingInvariant checks the vault holds enough asset to cover pending stake, the
// claimable pool and uncollected fees.
func AssetBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		cfg, err := k.loadConfig(ctx)
		if err != nil {
			// nothing to back before initialization
			return "", false
		}
		totals, err := k.loadTotals(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "asset-backing", err.Error()), true
		}
		owed := totals.PendingStakeAmount.Add(totals.TotalClaimableAmount).Add(totals.CollectedFee)
		owedAdjusted, err := types.ScaleToAssetDecimals(owed, cfg.AssetDecimals)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "asset-backing", err.Error()), true
		}
		balance, err := k.assetKeeper.Balance(ctx, k.moduleAddress)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "asset-backing", err.Error()), true
		}
		if balance.LT(owedAdjusted) {
			msg := fmt.Sprintf("vault holds %s, owes %s", balance, owedAdjusted)
			return sdk.FormatInvariant(types.ModuleName, "asset-backing", msg), true
		}
		return "", false
	}
}
