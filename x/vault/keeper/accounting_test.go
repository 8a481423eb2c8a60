package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	tokentypes "stakevault/x/token/types"
	"stakevault/x/vault/types"
)

func TestStakeScenario(t *testing.T) {
	f := initFixture(t)
	require.NoError(t, f.keeper.SetOperator(f.ctx, f.admin, f.operator))
	require.NoError(t, f.keeper.SetStakeAssetCap(f.ctx, f.admin, math.NewInt(1_000_000_000)))
	require.NoError(t, f.keeper.Deposit(f.ctx, f.operator, math.NewInt(1_000_000_000)))

	before := f.balance(t, f.token, f.user)
	require.NoError(t, f.keeper.Stake(f.ctx, f.user, math.NewInt(100_000_000)))

	staked, err := f.keeper.GetTotalStakingAmount(f.ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000_000), staked)
	require.Equal(t, before.AddRaw(100_000_000), f.balance(t, f.token, f.user))

	pending, err := f.keeper.GetPendingStakeAmount(f.ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000_000), pending)
	claimable, err := f.keeper.GetTotalClaimableAmount(f.ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000_000), claimable)

	require.Equal(t, math.NewInt(userFunds-100_000_000), f.balance(t, f.asset, f.user))
	require.Equal(t, math.NewInt(1_100_000_000), f.balance(t, f.asset, f.keeper.ModuleAddress()))
	f.requireInvariants(t)
}

func TestStakeValidation(t *testing.T) {
	f := initFixture(t)
	f.setupStaking(t)

	testCases := []struct {
		name   string
		amount math.Int
		expErr error
	}{
		{name: "zero amount", amount: math.ZeroInt(), expErr: types.ErrNegativeAmountNotAllowed},
		{name: "negative amount", amount: math.NewInt(-1), expErr: types.ErrNegativeAmountNotAllowed},
		{name: "above cap", amount: math.NewInt(stakingCap + 1), expErr: types.ErrExceedStakingCap},
		{name: "more than the user holds", amount: math.NewInt(userFunds + 1), expErr: tokentypes.ErrInsufficientBalance},
		{name: "valid", amount: math.NewInt(stakingAmount)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := f.totals(t)
			err := f.keeper.Stake(f.ctx, f.user, tc.amount)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				require.Equal(t, before, f.totals(t))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStakeIsAtomic(t *testing.T) {
	f := initFixture(t)
	f.setupStaking(t)
	before := f.totals(t)

	// other holds no asset, so the pull fails after the totals were staged
	err := f.keeper.Stake(f.ctx, f.other, math.NewInt(stakingAmount))
	require.ErrorIs(t, err, tokentypes.ErrInsufficientBalance)

	require.Equal(t, before, f.totals(t))
	require.True(t, f.balance(t, f.token, f.other).IsZero())
	f.requireInvariants(t)
}

func TestStakingCap(t *testing.T) {
	f := initFixture(t)
	f.setupStaking(t)

	require.NoError(t, f.keeper.Stake(f.ctx, f.user, math.NewInt(stakingAmount)))

	err := f.keeper.SetStakeAssetCap(f.ctx, f.admin, math.NewInt(stakingAmount-1))
	require.ErrorIs(t, err, types.ErrStakingCapTooSmall)
	err = f.keeper.SetStakeAssetCap(f.ctx, f.admin, math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrStakingCapTooSmall)
	require.ErrorIs(t, f.keeper.SetStakeAssetCap(f.ctx, f.user, math.NewInt(stakingCap)), types.ErrUnauthorized)

	require.NoError(t, f.keeper.SetStakeAssetCap(f.ctx, f.admin, math.NewInt(stakingAmount)))
	require.ErrorIs(t, f.keeper.Stake(f.ctx, f.user, math.OneInt()), types.ErrExceedStakingCap)

	capAmount, err := f.keeper.GetTotalStakingCap(f.ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(stakingAmount), capAmount)
}

func TestStakeScalesToAssetDecimals(t *testing.T) {
	f := initFixture(t, withAssetDecimals(18))
	f.setupStaking(t)

	scale := math.NewIntWithDecimal(1, 10)
	vaultBefore := f.balance(t, f.asset, f.keeper.ModuleAddress())
	require.Equal(t, math.NewInt(depositAmount).Mul(scale), vaultBefore)

	require.NoError(t, f.keeper.Stake(f.ctx, f.user, math.NewInt(stakingAmount)))

	require.Equal(t, math.NewInt(stakingAmount), f.balance(t, f.token, f.user))
	require.Equal(t, vaultBefore.Add(math.NewInt(stakingAmount).Mul(scale)), f.balance(t, f.asset, f.keeper.ModuleAddress()))

	adjusted, err := f.keeper.AdjustAmount(f.ctx, math.NewInt(stakingAmount))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(stakingAmount).Mul(scale), adjusted)

	res, err := f.keeper.UnstakeInstant(f.ctx, f.user, math.NewInt(stakingAmount))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(userFunds).Mul(scale).Sub(res.Fee.Mul(scale)), f.balance(t, f.asset, f.user))
	f.requireInvariants(t)
}

func TestWithdraw(t *testing.T) {
	f := initFixture(t)
	f.setupStaking(t)

	_, err := f.keeper.Withdraw(f.ctx, f.operator)
	require.ErrorIs(t, err, types.ErrNoPendingStakeAmount)

	require.NoError(t, f.keeper.Stake(f.ctx, f.user, math.NewInt(stakingAmount)))
	opBefore := f.balance(t, f.asset, f.operator)

	amount, err := f.keeper.Withdraw(f.ctx, f.operator)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(stakingAmount), amount)
	require.Equal(t, opBefore.Add(amount), f.balance(t, f.asset, f.operator))
	require.True(t, f.totals(t).PendingStakeAmount.IsZero())
	require.Equal(t, math.NewInt(stakingAmount), f.totals(t).TotalStakingAmount)
	f.requireInvariants(t)
}

func TestWithdrawAndDeposit(t *testing.T) {
	testCases := []struct {
		name    string
		deposit int64
		// operator asset balance change
		expOperatorDelta int64
	}{
		{name: "pending exceeds deposit", deposit: 40_000_000, expOperatorDelta: stakingAmount - 40_000_000},
		{name: "deposit exceeds pending", deposit: 250_000_000, expOperatorDelta: stakingAmount - 250_000_000},
		{name: "deposit equals pending", deposit: stakingAmount, expOperatorDelta: 0},
		{name: "zero deposit withdraws everything", deposit: 0, expOperatorDelta: stakingAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := initFixture(t)
			f.setupStaking(t)
			require.NoError(t, f.keeper.Stake(f.ctx, f.user, math.NewInt(stakingAmount)))

			opBefore := f.balance(t, f.asset, f.operator)
			claimableBefore := f.totals(t).TotalClaimableAmount

			withdrawn, err := f.keeper.WithdrawAndDeposit(f.ctx, f.operator, math.NewInt(tc.deposit))
			require.NoError(t, err)
			require.Equal(t, math.NewInt(stakingAmount), withdrawn)

			totals := f.totals(t)
			require.True(t, totals.PendingStakeAmount.IsZero())
			require.Equal(t, claimableBefore.AddRaw(tc.deposit), totals.TotalClaimableAmount)
			require.Equal(t, opBefore.AddRaw(tc.expOperatorDelta), f.balance(t, f.asset, f.operator))
			f.requireInvariants(t)
		})
	}

	f := initFixture(t)
	f.setupStaking(t)
	_, err := f.keeper.WithdrawAndDeposit(f.ctx, f.operator, math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrNegativeAmountNotAllowed)
}

func TestCollectFee(t *testing.T) {
	f := initFixture(t)
	f.setupStaking(t)

	_, err := f.keeper.CollectFee(f.ctx, f.admin)
	require.ErrorIs(t, err, types.ErrNoFeeToCollect)

	require.NoError(t, f.keeper.Stake(f.ctx, f.user, math.NewInt(stakingAmount)))
	res, err := f.keeper.UnstakeInstant(f.ctx, f.user, math.NewInt(stakingAmount))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(stakingAmount*instantFeeBps/10000), res.Fee)

	_, err = f.keeper.CollectFee(f.ctx, f.user)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	adminBefore := f.balance(t, f.asset, f.admin)
	fee, err := f.keeper.CollectFee(f.ctx, f.admin)
	require.NoError(t, err)
	require.Equal(t, res.Fee, fee)
	require.Equal(t, adminBefore.Add(fee), f.balance(t, f.asset, f.admin))

	collected, err := f.keeper.GetCollectedFee(f.ctx)
	require.NoError(t, err)
	require.True(t, collected.IsZero())
	f.requireInvariants(t)
}
