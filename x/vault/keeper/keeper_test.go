package keeper_test

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/core/address"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	upgradetypes "cosmossdk.io/x/upgrade/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	tokenkeeper "stakevault/x/token/keeper"
	"stakevault/x/vault/keeper"
	"stakevault/x/vault/types"
)

const (
	startTime     int64 = 1_700_000_000
	stakingCap    int64 = 10_000_000_000
	depositAmount int64 = 1_000_000_000
	stakingAmount int64 = 100_000_000
	userFunds     int64 = 1_000_000_000
	operatorFunds int64 = 10_000_000_000
	normalFeeBps  int64 = 100
	instantFeeBps int64 = 500
)

const assetDecimals8 uint32 = 8

// wideAsset reports a decimal count other than the ledger's own to exercise amount scaling.
type wideAsset struct {
	tokenkeeper.Keeper
	decimals uint32
}

func (w wideAsset) Decimals(context.Context) (uint32, error) { return w.decimals, nil }

// MockUpgradeKeeper records scheduled plans.
type MockUpgradeKeeper struct {
	Plans []upgradetypes.Plan
	Err   error
}

func (m *MockUpgradeKeeper) ScheduleUpgrade(_ context.Context, plan upgradetypes.Plan) error {
	if m.Err != nil {
		return m.Err
	}
	m.Plans = append(m.Plans, plan)
	return nil
}

type fixture struct {
	ctx          sdk.Context
	keeper       keeper.Keeper
	addressCodec address.Codec
	token        tokenkeeper.Keeper
	asset        tokenkeeper.Keeper
	upgrade      *MockUpgradeKeeper

	admin    string
	operator string
	user     string
	other    string
}

type fixtureOption func(*fixtureConfig)

type fixtureConfig struct {
	assetDecimals uint32
	skipInit      bool
}

func withAssetDecimals(d uint32) fixtureOption {
	return func(c *fixtureConfig) { c.assetDecimals = d }
}

func withoutInit() fixtureOption {
	return func(c *fixtureConfig) { c.skipInit = true }
}

func initFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()

	cfg := fixtureConfig{assetDecimals: assetDecimals8}
	for _, o := range opts {
		o(&cfg)
	}

	addressCodec := addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix())
	keys := storetypes.NewKVStoreKeys("token", "asset", types.StoreKey)
	ctx := testutil.DefaultContextWithKeys(keys, nil, nil).
		WithBlockTime(time.Unix(startTime, 0)).
		WithBlockHeight(1)

	token := tokenkeeper.NewKeeper(runtime.NewKVStoreService(keys["token"]), addressCodec, "token")
	asset := tokenkeeper.NewKeeper(runtime.NewKVStoreService(keys["asset"]), addressCodec, "asset")
	upgrade := &MockUpgradeKeeper{}

	var assetKeeper types.AssetKeeper = asset
	if cfg.assetDecimals != assetDecimals8 {
		assetKeeper = wideAsset{Keeper: asset, decimals: cfg.assetDecimals}
	}
	k := keeper.NewKeeper(runtime.NewKVStoreService(keys[types.StoreKey]), addressCodec, token, assetKeeper, upgrade)

	f := &fixture{
		ctx:          ctx,
		keeper:       k,
		addressCodec: addressCodec,
		token:        token,
		asset:        asset,
		upgrade:      upgrade,
	}
	f.admin = f.addr(t, "admin")
	f.operator = f.addr(t, "operator")
	f.user = f.addr(t, "user")
	f.other = f.addr(t, "other")

	require.NoError(t, token.Initialize(ctx, f.admin, k.ModuleAddress(), "Staked BTC", "sBTC"))
	require.NoError(t, asset.Initialize(ctx, f.admin, f.admin, "Bitcoin", "BTC"))

	scale := math.OneInt()
	if cfg.assetDecimals > assetDecimals8 {
		scale = math.NewIntWithDecimal(1, int(cfg.assetDecimals-assetDecimals8))
	}
	require.NoError(t, asset.Mint(ctx, f.admin, f.user, math.NewInt(userFunds).Mul(scale)))
	require.NoError(t, asset.Mint(ctx, f.admin, f.operator, math.NewInt(operatorFunds).Mul(scale)))

	if !cfg.skipInit {
		require.NoError(t, k.Initialize(ctx, f.admin, token.Address(), asset.Address()))
	}
	return f
}

func (f *fixture) addr(t *testing.T, name string) string {
	t.Helper()
	s, err := f.addressCodec.BytesToString(authtypes.NewModuleAddress("test/" + name))
	require.NoError(t, err)
	return s
}

// setupStaking configures the vault the way a launched deployment would be: an operator, a cap,
// unstaking enabled, the test fee schedule and a funded claimable pool.
func (f *fixture) setupStaking(t *testing.T) {
	t.Helper()
	require.NoError(t, f.keeper.SetOperator(f.ctx, f.admin, f.operator))
	require.NoError(t, f.keeper.SetStakeAssetCap(f.ctx, f.admin, math.NewInt(stakingCap)))
	require.NoError(t, f.keeper.SetOnlyAllowStake(f.ctx, f.admin, false))
	require.NoError(t, f.keeper.SetNormalUnstakeFee(f.ctx, f.admin, normalFeeBps))
	require.NoError(t, f.keeper.SetInstantUnstakeFee(f.ctx, f.admin, instantFeeBps))
	require.NoError(t, f.keeper.Deposit(f.ctx, f.operator, math.NewInt(depositAmount)))
}

func (f *fixture) advance(d time.Duration) {
	f.ctx = f.ctx.WithBlockTime(f.ctx.BlockTime().Add(d)).WithBlockHeight(f.ctx.BlockHeight() + 1)
}

func (f *fixture) totals(t *testing.T) types.VaultTotals {
	t.Helper()
	totals, err := f.keeper.GetTotals(f.ctx)
	require.NoError(t, err)
	return totals
}

func (f *fixture) balance(t *testing.T, k tokenkeeper.Keeper, addr string) math.Int {
	t.Helper()
	bal, err := k.Balance(f.ctx, addr)
	require.NoError(t, err)
	return bal
}

func (f *fixture) requireInvariants(t *testing.T) {
	t.Helper()
	msg, broken := keeper.AllInvariants(f.keeper)(f.ctx)
	require.False(t, broken, msg)
}

const day = 24 * time.Hour

func claimDelay() time.Duration { return time.Duration(types.ClaimDelay) * time.Second }
