package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"stakevault/x/vault/types"
)

func TestGenesisExportImport(t *testing.T) {
	f := initFixture(t)
	f.setupStaking(t)
	require.NoError(t, f.keeper.Stake(f.ctx, f.user, math.NewInt(stakingAmount)))
	slot, _, err := f.keeper.UnstakeRequest(f.ctx, f.user, math.NewInt(20_000_000))
	require.NoError(t, err)

	gs, err := f.keeper.ExportGenesis(f.ctx)
	require.NoError(t, err)
	require.NoError(t, gs.Validate())
	require.NotNil(t, gs.Config)
	require.Equal(t, f.operator, gs.Config.Operator)
	require.Len(t, gs.Slots, 1)
	require.Equal(t, f.user, gs.Slots[0].User)
	require.Equal(t, slot, gs.Slots[0].Slot)

	g := initFixture(t, withoutInit())
	require.NoError(t, g.keeper.InitGenesis(g.ctx, *gs))

	cfg, err := g.keeper.GetConfig(g.ctx)
	require.NoError(t, err)
	require.Equal(t, *gs.Config, cfg)
	entry, err := g.keeper.GetPendingUnstake(g.ctx, f.user, slot)
	require.NoError(t, err)
	require.Equal(t, int64(20_000_000), entry.Amount.Int64())
	requested, err := g.keeper.GetTotalRequestedAmount(g.ctx)
	require.NoError(t, err)
	require.Equal(t, int64(20_000_000), requested.Int64())
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	f := initFixture(t, withoutInit())

	gs := types.DefaultGenesis()
	gs.Totals.CollectedFee = math.NewInt(-1)
	require.ErrorIs(t, f.keeper.InitGenesis(f.ctx, *gs), types.ErrInvalidGenesis)

	require.NoError(t, f.keeper.InitGenesis(f.ctx, *types.DefaultGenesis()))
	ok, err := f.keeper.IsInitialized(f.ctx)
	require.NoError(t, err)
	require.False(t, ok)
}
