package keeper

import (
	"context"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/telemetry"

	"stakevault/x/vault/types"
)

type msgServer struct {
	Keeper
}

var _ types.MsgServer = msgServer{}

// NewMsgServerImpl returns an implementation of the vault MsgServer interface.
func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &msgServer{Keeper: k}
}

func (m msgServer) signer(addr string) error {
	if _, err := m.addressCodec.StringToBytes(addr); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "invalid signer %q: %s", addr, err)
	}
	return nil
}

func track(op string, start time.Time, err error) {
	telemetry.ModuleMeasureSince(types.ModuleName, start, op)
	if err != nil {
		telemetry.IncrCounter(1, types.ModuleName, op, "failed")
		return
	}
	telemetry.IncrCounter(1, types.ModuleName, op)
}

func (m msgServer) Initialize(ctx context.Context, msg *types.MsgInitialize) (_ *types.MsgEmptyResponse, err error) {
	defer func(start time.Time) { track("initialize", start, err) }(time.Now())
	if err := m.signer(msg.Admin); err != nil {
		return nil, err
	}
	if err := m.Keeper.Initialize(ctx, msg.Admin, msg.TokenAddress, msg.AssetAddress); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) Upgrade(ctx context.Context, msg *types.MsgUpgrade) (_ *types.MsgEmptyResponse, err error) {
	defer func(start time.Time) { track("upgrade", start, err) }(time.Now())
	if err := m.signer(msg.Admin); err != nil {
		return nil, err
	}
	if err := m.Keeper.Upgrade(ctx, msg.Admin, msg.CodeHash); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) TransferAdmin(ctx context.Context, msg *types.MsgTransferAdmin) (_ *types.MsgEmptyResponse, err error) {
	defer func(start time.Time) { track("transfer_admin", start, err) }(time.Now())
	if err := m.signer(msg.Admin); err != nil {
		return nil, err
	}
	if err := m.Keeper.TransferAdmin(ctx, msg.Admin, msg.NewAdmin); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) AcceptAdmin(ctx context.Context, msg *types.MsgAcceptAdmin) (_ *types.MsgEmptyResponse, err error) {
	defer func(start time.Time) { track("accept_admin", start, err) }(time.Now())
	if err := m.signer(msg.PendingAdmin); err != nil {
		return nil, err
	}
	if err := m.Keeper.AcceptAdmin(ctx, msg.PendingAdmin); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) RenounceAdmin(ctx context.Context, msg *types.MsgRenounceAdmin) (_ *types.MsgEmptyResponse, err error) {
	defer func(start time.Time) { track("renounce_admin", start, err) }(time.Now())
	if err := m.signer(msg.Admin); err != nil {
		return nil, err
	}
	if err := m.Keeper.RenounceAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) SetStakeAssetCap(ctx context.Context, msg *types.MsgSetStakeAssetCap) (_ *types.MsgEmptyResponse, err error) {
	defer func(start time.Time) { track("set_stake_asset_cap", start, err) }(time.Now())
	if err := m.signer(msg.Admin); err != nil {
		return nil, err
	}
	if err := m.Keeper.SetStakeAssetCap(ctx, msg.Admin, msg.Cap); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) SetNormalUnstakeFee(ctx context.Context, msg *types.MsgSetNormalUnstakeFee) (_ *types.MsgEmptyResponse, err error) {
	defer func(start time.Time) { track("set_normal_unstake_fee", start, err) }(time.Now())
	if err := m.signer(msg.Admin); err != nil {
		return nil, err
	}
	if err := m.Keeper.SetNormalUnstakeFee(ctx, msg.Admin, msg.BasisPoints); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) SetInstantUnstakeFee(ctx context.Context, msg *types.MsgSetInstantUnstakeFee) (_ *types.MsgEmptyResponse, err error) {
	defer func(start time.Time) { track("set_instant_unstake_fee", start, err) }(time.Now())
	if err := m.signer(msg.Admin); err != nil {
		return nil, err
	}
	if err := m.Keeper.SetInstantUnstakeFee(ctx, msg.Admin, msg.BasisPoints); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) SetOperator(ctx context.Context, msg *types.MsgSetOperator) (_ *types.MsgEmptyResponse, err error) {
	defer func(start time.Time) { track("set_operator", start, err) }(time.Now())
	if err := m.signer(msg.Admin); err != nil {
		return nil, err
	}
	if err := m.Keeper.SetOperator(ctx, msg.Admin, msg.Operator); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) SetOnlyAllowStake(ctx context.Context, msg *types.MsgSetOnlyAllowStake) (_ *types.MsgEmptyResponse, err error) {
	defer func(start time.Time) { track("set_only_allow_stake", start, err) }(time.Now())
	if err := m.signer(msg.Admin); err != nil {
		return nil, err
	}
	if err := m.Keeper.SetOnlyAllowStake(ctx, msg.Admin, msg.Flag); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) CollectFee(ctx context.Context, msg *types.MsgCollectFee) (_ *types.MsgWithdrawResponse, err error) {
	defer func(start time.Time) { track("collect_fee", start, err) }(time.Now())
	if err := m.signer(msg.Admin); err != nil {
		return nil, err
	}
	fee, err := m.Keeper.CollectFee(ctx, msg.Admin)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawResponse{Amount: fee}, nil
}

func (m msgServer) Pause(ctx context.Context, msg *types.MsgPause) (_ *types.MsgEmptyResponse, err error) {
	defer func(start time.Time) { track("pause", start, err) }(time.Now())
	if err := m.signer(msg.Admin); err != nil {
		return nil, err
	}
	if err := m.Keeper.Pause(ctx, msg.Admin); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) Unpause(ctx context.Context, msg *types.MsgUnpause) (_ *types.MsgEmptyResponse, err error) {
	defer func(start time.Time) { track("unpause", start, err) }(time.Now())
	if err := m.signer(msg.Admin); err != nil {
		return nil, err
	}
	if err := m.Keeper.Unpause(ctx, msg.Admin); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (_ *types.MsgEmptyResponse, err error) {
	defer func(start time.Time) { track("deposit", start, err) }(time.Now())
	if err := m.signer(msg.Operator); err != nil {
		return nil, err
	}
	if err := m.Keeper.Deposit(ctx, msg.Operator, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) Withdraw(ctx context.Context, msg *types.MsgWithdraw) (_ *types.MsgWithdrawResponse, err error) {
	defer func(start time.Time) { track("withdraw", start, err) }(time.Now())
	if err := m.signer(msg.Operator); err != nil {
		return nil, err
	}
	amount, err := m.Keeper.Withdraw(ctx, msg.Operator)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawResponse{Amount: amount}, nil
}

func (m msgServer) WithdrawAndDeposit(ctx context.Context, msg *types.MsgWithdrawAndDeposit) (_ *types.MsgWithdrawResponse, err error) {
	defer func(start time.Time) { track("withdraw_and_deposit", start, err) }(time.Now())
	if err := m.signer(msg.Operator); err != nil {
		return nil, err
	}
	amount, err := m.Keeper.WithdrawAndDeposit(ctx, msg.Operator, msg.DepositAmount)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawResponse{Amount: amount}, nil
}

func (m msgServer) Stake(ctx context.Context, msg *types.MsgStake) (_ *types.MsgEmptyResponse, err error) {
	defer func(start time.Time) { track("stake", start, err) }(time.Now())
	if err := m.signer(msg.User); err != nil {
		return nil, err
	}
	if err := m.Keeper.Stake(ctx, msg.User, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) UnstakeRequest(ctx context.Context, msg *types.MsgUnstakeRequest) (_ *types.MsgUnstakeRequestResponse, err error) {
	defer func(start time.Time) { track("unstake_request", start, err) }(time.Now())
	if err := m.signer(msg.User); err != nil {
		return nil, err
	}
	slot, entry, err := m.Keeper.UnstakeRequest(ctx, msg.User, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgUnstakeRequestResponse{Slot: slot, ClaimableAt: entry.ClaimableAt()}, nil
}

func (m msgServer) ClaimSlot(ctx context.Context, msg *types.MsgClaimSlot) (_ *types.MsgClaimResponse, err error) {
	defer func(start time.Time) { track("claim_slot", start, err) }(time.Now())
	if err := m.signer(msg.User); err != nil {
		return nil, err
	}
	res, err := m.Keeper.ClaimSlot(ctx, msg.User, msg.Slot)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimResponse{ClaimResult: res}, nil
}

func (m msgServer) ClaimAll(ctx context.Context, msg *types.MsgClaimAll) (_ *types.MsgClaimResponse, err error) {
	defer func(start time.Time) { track("claim_all", start, err) }(time.Now())
	if err := m.signer(msg.User); err != nil {
		return nil, err
	}
	res, err := m.Keeper.ClaimAll(ctx, msg.User)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimResponse{ClaimResult: res}, nil
}

func (m msgServer) UnstakeInstant(ctx context.Context, msg *types.MsgUnstakeInstant) (_ *types.MsgClaimResponse, err error) {
	defer func(start time.Time) { track("unstake_instant", start, err) }(time.Now())
	if err := m.signer(msg.User); err != nil {
		return nil, err
	}
	res, err := m.Keeper.UnstakeInstant(ctx, msg.User, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimResponse{ClaimResult: res}, nil
}
