package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"stakevault/x/vault/keeper"
	"stakevault/x/vault/types"
)

func TestMsgServerUserFlow(t *testing.T) {
	f := initFixture(t)
	ms := keeper.NewMsgServerImpl(f.keeper)

	_, err := ms.SetOperator(f.ctx, &types.MsgSetOperator{Admin: f.admin, Operator: f.operator})
	require.NoError(t, err)
	_, err = ms.SetStakeAssetCap(f.ctx, &types.MsgSetStakeAssetCap{Admin: f.admin, Cap: math.NewInt(stakingCap)})
	require.NoError(t, err)
	_, err = ms.SetOnlyAllowStake(f.ctx, &types.MsgSetOnlyAllowStake{Admin: f.admin, Flag: false})
	require.NoError(t, err)
	_, err = ms.Deposit(f.ctx, &types.MsgDeposit{Operator: f.operator, Amount: math.NewInt(depositAmount)})
	require.NoError(t, err)

	testCases := []struct {
		name      string
		run       func() error
		expErr    bool
		expErrMsg string
	}{
		{
			name: "invalid signer",
			run: func() error {
				_, err := ms.Stake(f.ctx, &types.MsgStake{User: "invalid", Amount: math.NewInt(stakingAmount)})
				return err
			},
			expErr:    true,
			expErrMsg: "invalid signer",
		},
		{
			name: "stake",
			run: func() error {
				_, err := ms.Stake(f.ctx, &types.MsgStake{User: f.user, Amount: math.NewInt(stakingAmount)})
				return err
			},
		},
		{
			name: "unstake request",
			run: func() error {
				res, err := ms.UnstakeRequest(f.ctx, &types.MsgUnstakeRequest{User: f.user, Amount: math.NewInt(10_000_000)})
				if err == nil {
					require.Equal(t, types.SlotOf(uint64(startTime)), res.Slot)
					require.Equal(t, uint64(startTime)+types.ClaimDelay, res.ClaimableAt)
				}
				return err
			},
		},
		{
			name: "claim too early",
			run: func() error {
				_, err := ms.ClaimAll(f.ctx, &types.MsgClaimAll{User: f.user})
				return err
			},
			expErr:    true,
			expErrMsg: "not claimable yet",
		},
		{
			name: "instant unstake",
			run: func() error {
				res, err := ms.UnstakeInstant(f.ctx, &types.MsgUnstakeInstant{User: f.user, Amount: math.NewInt(10_000_000)})
				if err == nil {
					require.Equal(t, int64(300_000), res.Fee.Int64())
				}
				return err
			},
		},
		{
			name: "fee sweep by non admin",
			run: func() error {
				_, err := ms.CollectFee(f.ctx, &types.MsgCollectFee{Admin: f.user})
				return err
			},
			expErr:    true,
			expErrMsg: "unauthorized",
		},
		{
			name: "fee sweep",
			run: func() error {
				res, err := ms.CollectFee(f.ctx, &types.MsgCollectFee{Admin: f.admin})
				if err == nil {
					require.Equal(t, int64(300_000), res.Amount.Int64())
				}
				return err
			},
		},
		{
			name: "withdraw",
			run: func() error {
				res, err := ms.Withdraw(f.ctx, &types.MsgWithdraw{Operator: f.operator})
				if err == nil {
					require.Equal(t, int64(stakingAmount-10_000_000), res.Amount.Int64())
				}
				return err
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			if tc.expErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.expErrMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}

	f.advance(claimDelay())
	res, err := ms.ClaimSlot(f.ctx, &types.MsgClaimSlot{User: f.user, Slot: types.SlotOf(uint64(startTime))})
	require.NoError(t, err)
	require.Equal(t, int64(10_000_000), res.Amount.Int64())
	f.requireInvariants(t)
}

func TestMsgServerAdmin(t *testing.T) {
	f := initFixture(t, withoutInit())
	ms := keeper.NewMsgServerImpl(f.keeper)

	_, err := ms.Initialize(f.ctx, &types.MsgInitialize{Admin: f.admin, TokenAddress: f.token.Address(), AssetAddress: f.asset.Address()})
	require.NoError(t, err)

	_, err = ms.TransferAdmin(f.ctx, &types.MsgTransferAdmin{Admin: f.admin, NewAdmin: f.other})
	require.NoError(t, err)
	_, err = ms.AcceptAdmin(f.ctx, &types.MsgAcceptAdmin{PendingAdmin: f.other})
	require.NoError(t, err)
	_, err = ms.RenounceAdmin(f.ctx, &types.MsgRenounceAdmin{Admin: f.other})
	require.NoError(t, err)

	_, err = ms.Pause(f.ctx, &types.MsgPause{Admin: f.other})
	require.NoError(t, err)
	_, err = ms.Unpause(f.ctx, &types.MsgUnpause{Admin: f.other})
	require.NoError(t, err)

	_, err = ms.SetNormalUnstakeFee(f.ctx, &types.MsgSetNormalUnstakeFee{Admin: f.other, BasisPoints: 10000})
	require.ErrorIs(t, err, types.ErrFeeShouldBeBetween0And10000)
	_, err = ms.SetInstantUnstakeFee(f.ctx, &types.MsgSetInstantUnstakeFee{Admin: f.other, BasisPoints: 9999})
	require.NoError(t, err)

	_, err = ms.Upgrade(f.ctx, &types.MsgUpgrade{Admin: f.other, CodeHash: "00"})
	require.ErrorIs(t, err, types.ErrInvalidCodeHash)

	_, err = ms.SetOperator(f.ctx, &types.MsgSetOperator{Admin: f.other, Operator: f.operator})
	require.NoError(t, err)
	_, err = ms.WithdrawAndDeposit(f.ctx, &types.MsgWithdrawAndDeposit{Operator: f.operator, DepositAmount: math.NewInt(depositAmount)})
	require.NoError(t, err)
	claimable, err := f.keeper.GetTotalClaimableAmount(f.ctx)
	require.NoError(t, err)
	require.Equal(t, int64(depositAmount), claimable.Int64())
}
