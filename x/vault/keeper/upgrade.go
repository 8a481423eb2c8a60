package keeper

import (
	"context"
	"encoding/hex"

	errorsmod "cosmossdk.io/errors"
	upgradetypes "cosmossdk.io/x/upgrade/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"

	"stakevault/x/vault/types"
)

// UpgradePlanName is the name of the upgrade plan scheduled for a code hash.
func UpgradePlanName(codeHash []byte) string {
	return types.ModuleName + "-" + hex.EncodeToString(codeHash[:8])
}

// Upgrade records a new 32-byte code hash for the vault. When an upgrade keeper is wired, a plan
// for the next height is scheduled carrying the hash.
func (k Keeper) Upgrade(ctx context.Context, caller, codeHashHex string) error {
	codeHash, err := types.DecodeCodeHash(codeHashHex)
	if err != nil {
		return err
	}
	hashStr := hex.EncodeToString(codeHash)

	err = k.atomically(ctx, func(ctx sdk.Context) error {
		cfg, err := k.loadConfig(ctx)
		if err != nil {
			return err
		}
		if err := requireAdmin(cfg, caller); err != nil {
			return err
		}
		cfg.CodeHash = hashStr
		if err := k.Config.Set(ctx, cfg); err != nil {
			return err
		}
		if k.upgradeKeeper == nil {
			return nil
		}
		plan := upgradetypes.Plan{
			Name:   UpgradePlanName(codeHash),
			Height: ctx.BlockHeight() + 1,
			Info:   hashStr,
		}
		if err := k.upgradeKeeper.ScheduleUpgrade(ctx, plan); err != nil {
			return errorsmod.Wrap(err, "failed to schedule vault upgrade")
		}
		return nil
	})
	if err != nil {
		return err
	}

	k.Logger(ctx).Info("vault code hash updated", "admin", caller, "code_hash", hashStr)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventUpgraded,
			sdk.NewAttribute(types.AttrAdmin, caller),
			sdk.NewAttribute(types.AttrCodeHash, hashStr),
		),
	)
	return nil
}

// UpgradeHandler applies a scheduled vault plan. The plan must carry the code hash the admin
// recorded; migrate, when set, runs the module migrations afterwards.
func (k Keeper) UpgradeHandler(
	migrate func(context.Context, module.VersionMap) (module.VersionMap, error),
) upgradetypes.UpgradeHandler {
	return func(ctx context.Context, plan upgradetypes.Plan, vm module.VersionMap) (module.VersionMap, error) {
		recorded, err := k.GetCodeHash(ctx)
		if err != nil {
			return vm, err
		}
		if recorded == "" || recorded != plan.Info {
			return vm, errorsmod.Wrapf(types.ErrInvalidCodeHash, "plan %s carries %q, vault recorded %q", plan.Name, plan.Info, recorded)
		}

		k.Logger(ctx).Info("applying vault upgrade", "plan", plan.Name, "code_hash", recorded)
		if migrate == nil {
			return vm, nil
		}
		return migrate(ctx, vm)
	}
}
