package simulation_test

import (
	"math/rand"
	"testing"
	"time"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	tokenkeeper "stakevault/x/token/keeper"
	"stakevault/x/vault/keeper"
	vaultsim "stakevault/x/vault/simulation"
	"stakevault/x/vault/types"
)

func TestRandomOperationsKeepInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	addressCodec := addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix())
	keys := storetypes.NewKVStoreKeys("token", "asset", types.StoreKey)
	ctx := testutil.DefaultContextWithKeys(keys, nil, nil).
		WithBlockTime(time.Unix(1_700_000_000, 0)).
		WithBlockHeight(1)

	token := tokenkeeper.NewKeeper(runtime.NewKVStoreService(keys["token"]), addressCodec, "token")
	asset := tokenkeeper.NewKeeper(runtime.NewKVStoreService(keys["asset"]), addressCodec, "asset")
	k := keeper.NewKeeper(runtime.NewKVStoreService(keys[types.StoreKey]), addressCodec, token, asset, nil)

	admin, err := addressCodec.BytesToString(authtypes.NewModuleAddress("sim/admin"))
	require.NoError(t, err)
	operator, err := addressCodec.BytesToString(authtypes.NewModuleAddress("sim/operator"))
	require.NoError(t, err)

	require.NoError(t, token.Initialize(ctx, admin, k.ModuleAddress(), "Staked BTC", "sBTC"))
	require.NoError(t, asset.Initialize(ctx, admin, admin, "Bitcoin", "BTC"))
	require.NoError(t, asset.Mint(ctx, admin, operator, math.NewInt(1_000_000_000_000)))

	accs := simtypes.RandomAccounts(r, 5)
	for _, acc := range accs {
		addr, err := addressCodec.BytesToString(acc.Address)
		require.NoError(t, err)
		require.NoError(t, asset.Mint(ctx, admin, addr, math.NewInt(10_000_000_000)))
	}

	require.NoError(t, k.Initialize(ctx, admin, token.Address(), asset.Address()))
	require.NoError(t, k.SetOperator(ctx, admin, operator))
	require.NoError(t, k.SetStakeAssetCap(ctx, admin, math.NewInt(1_000_000_000_000)))
	require.NoError(t, k.SetOnlyAllowStake(ctx, admin, false))
	require.NoError(t, k.SetNormalUnstakeFee(ctx, admin, 100))
	require.NoError(t, k.SetInstantUnstakeFee(ctx, admin, 500))

	ops := vaultsim.WeightedOperations(simtypes.AppParams{}, k, token, asset)
	totalWeight := 0
	for _, op := range ops {
		totalWeight += op.Weight()
	}

	executed := 0
	for i := 0; i < 500; i++ {
		pick := r.Intn(totalWeight)
		var op simtypes.WeightedOperation
		for _, candidate := range ops {
			if pick < candidate.Weight() {
				op = candidate
				break
			}
			pick -= candidate.Weight()
		}

		opMsg, _, err := op.Op()(r, nil, ctx, accs, "vault-sim")
		require.NoError(t, err)
		if opMsg.OK {
			executed++
		}

		msg, broken := keeper.AllInvariants(k)(ctx)
		require.False(t, broken, msg)

		ctx = ctx.WithBlockTime(ctx.BlockTime().Add(time.Duration(r.Intn(48)) * time.Hour)).
			WithBlockHeight(ctx.BlockHeight() + 1)
	}
	require.Positive(t, executed)
}
