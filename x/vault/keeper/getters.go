package keeper

import (
	"context"

	"cosmossdk.io/math"

	"stakevault/x/vault/types"
)

func (k Keeper) GetConfig(ctx context.Context) (types.VaultConfig, error) { return k.loadConfig(ctx) }

func (k Keeper) GetTotals(ctx context.Context) (types.VaultTotals, error) { return k.loadTotals(ctx) }

func (k Keeper) IsInitialized(ctx context.Context) (bool, error) { return k.Config.Has(ctx) }

func (k Keeper) configField(ctx context.Context, get func(types.VaultConfig) string) (string, error) {
	cfg, err := k.loadConfig(ctx)
	if err != nil {
		return "", err
	}
	return get(cfg), nil
}

func (k Keeper) GetAdmin(ctx context.Context) (string, error) {
	return k.configField(ctx, func(c types.VaultConfig) string { return c.Admin })
}

// GetPendingAdmin returns the nominated admin, or "" when no transfer is pending.
func (k Keeper) GetPendingAdmin(ctx context.Context) (string, error) {
	return k.configField(ctx, func(c types.VaultConfig) string { return c.PendingAdmin })
}

// GetOperator returns the operator, or "" when none is set.
func (k Keeper) GetOperator(ctx context.Context) (string, error) {
	return k.configField(ctx, func(c types.VaultConfig) string { return c.Operator })
}

func (k Keeper) GetTokenAddress(ctx context.Context) (string, error) {
	return k.configField(ctx, func(c types.VaultConfig) string { return c.TokenAddress })
}

func (k Keeper) GetAssetAddress(ctx context.Context) (string, error) {
	return k.configField(ctx, func(c types.VaultConfig) string { return c.AssetAddress })
}

func (k Keeper) GetCodeHash(ctx context.Context) (string, error) {
	return k.configField(ctx, func(c types.VaultConfig) string { return c.CodeHash })
}

func (k Keeper) GetAssetDecimals(ctx context.Context) (uint32, error) {
	cfg, err := k.loadConfig(ctx)
	return cfg.AssetDecimals, err
}

func (k Keeper) GetNormalUnstakeFee(ctx context.Context) (int64, error) {
	cfg, err := k.loadConfig(ctx)
	return cfg.NormalUnstakeFee, err
}

func (k Keeper) GetInstantUnstakeFee(ctx context.Context) (int64, error) {
	cfg, err := k.loadConfig(ctx)
	return cfg.InstantUnstakeFee, err
}

func (k Keeper) GetOnlyAllowStake(ctx context.Context) (bool, error) {
	cfg, err := k.loadConfig(ctx)
	return cfg.OnlyAllowStake, err
}

func (k Keeper) IsPaused(ctx context.Context) (bool, error) {
	cfg, err := k.loadConfig(ctx)
	return cfg.Paused, err
}

func (k Keeper) totalsField(ctx context.Context, get func(types.VaultTotals) math.Int) (math.Int, error) {
	t, err := k.loadTotals(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return get(t), nil
}

func (k Keeper) GetTotalStakingAmount(ctx context.Context) (math.Int, error) {
	return k.totalsField(ctx, func(t types.VaultTotals) math.Int { return t.TotalStakingAmount })
}

func (k Keeper) GetTotalStakingCap(ctx context.Context) (math.Int, error) {
	return k.totalsField(ctx, func(t types.VaultTotals) math.Int { return t.TotalStakingCap })
}

func (k Keeper) GetTotalRequestedAmount(ctx context.Context) (math.Int, error) {
	return k.totalsField(ctx, func(t types.VaultTotals) math.Int { return t.TotalRequestedAmount })
}

func (k Keeper) GetTotalClaimableAmount(ctx context.Context) (math.Int, error) {
	return k.totalsField(ctx, func(t types.VaultTotals) math.Int { return t.TotalClaimableAmount })
}

func (k Keeper) GetPendingStakeAmount(ctx context.Context) (math.Int, error) {
	return k.totalsField(ctx, func(t types.VaultTotals) math.Int { return t.PendingStakeAmount })
}

func (k Keeper) GetCollectedFee(ctx context.Context) (math.Int, error) {
	return k.totalsField(ctx, func(t types.VaultTotals) math.Int { return t.CollectedFee })
}

// GetPendingUnstake returns the slot of user. Untouched slots read as empty.
func (k Keeper) GetPendingUnstake(ctx context.Context, user string, slot uint32) (types.UnstakeSlot, error) {
	if slot >= types.MaxSlots {
		return types.UnstakeSlot{}, types.ErrInvalidSlot
	}
	return k.getSlot(ctx, user, slot)
}

// GetPendingUnstakes returns every slot of user holding an unclaimed amount.
func (k Keeper) GetPendingUnstakes(ctx context.Context, user string) ([]types.SlotEntry, error) {
	var out []types.SlotEntry
	for slot := uint32(0); slot < types.MaxSlots; slot++ {
		entry, err := k.getSlot(ctx, user, slot)
		if err != nil {
			return nil, err
		}
		if entry.IsPending() {
			out = append(out, types.SlotEntry{User: user, Slot: slot, UnstakeSlot: entry})
		}
	}
	return out, nil
}
