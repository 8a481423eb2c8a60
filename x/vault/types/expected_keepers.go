package types

import (
	"context"

	"cosmossdk.io/math"

	upgradetypes "cosmossdk.io/x/upgrade/types"
)

// TokenKeeper is the receipt token ledger. The vault module address must be its minter.
type TokenKeeper interface {
	Decimals(ctx context.Context) (uint32, error)
	Mint(ctx context.Context, minter, to string, amount math.Int) error
	Burn(ctx context.Context, minter, from string, amount math.Int) error
}

// AssetKeeper is the ledger of the staked asset. Amounts are in the asset's native decimals.
type AssetKeeper interface {
	Decimals(ctx context.Context) (uint32, error)
	Balance(ctx context.Context, id string) (math.Int, error)
	Transfer(ctx context.Context, from, to string, amount math.Int) error
}

// UpgradeKeeper defines the expected interface for the Upgrade module.
type UpgradeKeeper interface {
	ScheduleUpgrade(ctx context.Context, plan upgradetypes.Plan) error
}
