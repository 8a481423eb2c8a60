package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"stakevault/x/token/keeper"
	"stakevault/x/token/types"
)

func TestMsgServer(t *testing.T) {
	f := initFixture(t)
	ms := keeper.NewMsgServerImpl(f.keeper)

	testCases := []struct {
		name    string
		run     func() error
		expCode codes.Code
		expErr  error
	}{
		{
			name: "nil request",
			run: func() error {
				_, err := ms.Mint(f.ctx, nil)
				return err
			},
			expCode: codes.InvalidArgument,
		},
		{
			name: "invalid minter address",
			run: func() error {
				_, err := ms.Mint(f.ctx, &types.MsgMint{Minter: "bad", To: f.alice, Amount: math.NewInt(1)})
				return err
			},
			expCode: codes.InvalidArgument,
		},
		{
			name: "mint",
			run: func() error {
				_, err := ms.Mint(f.ctx, &types.MsgMint{Minter: f.minter, To: f.alice, Amount: math.NewInt(100)})
				return err
			},
		},
		{
			name: "approve",
			run: func() error {
				_, err := ms.Approve(f.ctx, &types.MsgApprove{From: f.alice, Spender: f.bob, Amount: math.NewInt(60), ExpirationLedger: 1_000})
				return err
			},
		},
		{
			name: "transfer from",
			run: func() error {
				_, err := ms.TransferFrom(f.ctx, &types.MsgTransferFrom{Spender: f.bob, From: f.alice, To: f.bob, Amount: math.NewInt(50)})
				return err
			},
		},
		{
			name: "transfer over balance",
			run: func() error {
				_, err := ms.Transfer(f.ctx, &types.MsgTransfer{From: f.bob, To: f.alice, Amount: math.NewInt(51)})
				return err
			},
			expErr: types.ErrInsufficientBalance,
		},
		{
			name: "burn from",
			run: func() error {
				_, err := ms.BurnFrom(f.ctx, &types.MsgBurnFrom{Minter: f.minter, Spender: f.bob, From: f.alice, Amount: math.NewInt(10)})
				return err
			},
		},
		{
			name: "burn",
			run: func() error {
				_, err := ms.Burn(f.ctx, &types.MsgBurn{Minter: f.minter, From: f.bob, Amount: math.NewInt(50)})
				return err
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			switch {
			case tc.expCode != codes.OK:
				require.Equal(t, tc.expCode, status.Code(err))
			case tc.expErr != nil:
				require.ErrorIs(t, err, tc.expErr)
			default:
				require.NoError(t, err)
			}
		})
	}

	require.Equal(t, int64(40), f.balance(t, f.alice))
	require.Equal(t, int64(0), f.balance(t, f.bob))
}
