package simulation

import (
	"context"
	"math/rand"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/cosmos/cosmos-sdk/x/simulation"

	tokentypes "stakevault/x/token/types"
	"stakevault/x/vault/keeper"
	"stakevault/x/vault/types"
)

const (
	OpWeightMsgStake              = "op_weight_msg_stake"
	OpWeightMsgUnstakeRequest     = "op_weight_msg_unstake_request"
	OpWeightMsgClaimAll           = "op_weight_msg_claim_all"
	OpWeightMsgUnstakeInstant     = "op_weight_msg_unstake_instant"
	OpWeightMsgWithdrawAndDeposit = "op_weight_msg_withdraw_and_deposit"

	DefaultWeightMsgStake              = 100
	DefaultWeightMsgUnstakeRequest     = 60
	DefaultWeightMsgClaimAll           = 40
	DefaultWeightMsgUnstakeInstant     = 20
	DefaultWeightMsgWithdrawAndDeposit = 20
)

// BalanceKeeper reads a ledger balance. Both the receipt token and the staked asset satisfy it.
type BalanceKeeper interface {
	Balance(ctx context.Context, id string) (math.Int, error)
}

// WeightedOperations returns the vault operations with their respective weights.
func WeightedOperations(appParams simtypes.AppParams, k keeper.Keeper, token, asset BalanceKeeper) simulation.WeightedOperations {
	weight := func(key string, def int) int {
		var w int
		appParams.GetOrGenerate(key, &w, nil, func(_ *rand.Rand) { w = def })
		return w
	}

	return simulation.WeightedOperations{
		simulation.NewWeightedOperation(weight(OpWeightMsgStake, DefaultWeightMsgStake), SimulateMsgStake(k, asset)),
		simulation.NewWeightedOperation(weight(OpWeightMsgUnstakeRequest, DefaultWeightMsgUnstakeRequest), SimulateMsgUnstakeRequest(k, token)),
		simulation.NewWeightedOperation(weight(OpWeightMsgClaimAll, DefaultWeightMsgClaimAll), SimulateMsgClaimAll(k)),
		simulation.NewWeightedOperation(weight(OpWeightMsgUnstakeInstant, DefaultWeightMsgUnstakeInstant), SimulateMsgUnstakeInstant(k, token)),
		simulation.NewWeightedOperation(weight(OpWeightMsgWithdrawAndDeposit, DefaultWeightMsgWithdrawAndDeposit), SimulateMsgWithdrawAndDeposit(k, asset)),
	}
}

// result maps a handler error to an operation message. Rejections raised by the vault or a ledger
// are no-ops; anything else aborts the simulation.
func result(msgType string, err error) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
	if err == nil {
		return simtypes.NewOperationMsgBasic(types.ModuleName, msgType, "", true, nil), nil, nil
	}
	codespace, _, _ := errorsmod.ABCIInfo(err, false)
	if codespace == types.ModuleName || codespace == tokentypes.ModuleName {
		return simtypes.NoOpMsg(types.ModuleName, msgType, err.Error()), nil, nil
	}
	return simtypes.NoOpMsg(types.ModuleName, msgType, "unexpected failure"), nil, err
}

func randomUser(r *rand.Rand, k keeper.Keeper, accs []simtypes.Account) (string, error) {
	acc, _ := simtypes.RandomAcc(r, accs)
	return k.AddressCodec().BytesToString(acc.Address)
}

// SimulateMsgStake stakes a random share of a random account's asset balance.
func SimulateMsgStake(k keeper.Keeper, asset BalanceKeeper) simtypes.Operation {
	return func(r *rand.Rand, _ *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, _ string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		user, err := randomUser(r, k, accs)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, "stake", "invalid account"), nil, err
		}
		balance, err := asset.Balance(ctx, user)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, "stake", "balance lookup failed"), nil, err
		}
		if !balance.IsPositive() {
			return simtypes.NoOpMsg(types.ModuleName, "stake", "no asset balance"), nil, nil
		}
		amount := simtypes.RandomAmount(r, balance)

		_, err = keeper.NewMsgServerImpl(k).Stake(ctx, &types.MsgStake{User: user, Amount: amount})
		return result("stake", err)
	}
}

// SimulateMsgUnstakeRequest queues a random share of a random account's receipt tokens.
func SimulateMsgUnstakeRequest(k keeper.Keeper, token BalanceKeeper) simtypes.Operation {
	return func(r *rand.Rand, _ *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, _ string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		user, err := randomUser(r, k, accs)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, "unstake_request", "invalid account"), nil, err
		}
		balance, err := token.Balance(ctx, user)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, "unstake_request", "balance lookup failed"), nil, err
		}
		if !balance.IsPositive() {
			return simtypes.NoOpMsg(types.ModuleName, "unstake_request", "no receipt tokens"), nil, nil
		}
		amount := simtypes.RandomAmount(r, balance)

		_, err = keeper.NewMsgServerImpl(k).UnstakeRequest(ctx, &types.MsgUnstakeRequest{User: user, Amount: amount})
		return result("unstake_request", err)
	}
}

// SimulateMsgClaimAll claims every matured slot of a random account.
func SimulateMsgClaimAll(k keeper.Keeper) simtypes.Operation {
	return func(r *rand.Rand, _ *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, _ string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		user, err := randomUser(r, k, accs)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, "claim_all", "invalid account"), nil, err
		}
		_, err = keeper.NewMsgServerImpl(k).ClaimAll(ctx, &types.MsgClaimAll{User: user})
		return result("claim_all", err)
	}
}

// SimulateMsgUnstakeInstant redeems a random share of a random account's receipt tokens at once.
func SimulateMsgUnstakeInstant(k keeper.Keeper, token BalanceKeeper) simtypes.Operation {
	return func(r *rand.Rand, _ *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, _ string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		user, err := randomUser(r, k, accs)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, "unstake_instant", "invalid account"), nil, err
		}
		balance, err := token.Balance(ctx, user)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, "unstake_instant", "balance lookup failed"), nil, err
		}
		if !balance.IsPositive() {
			return simtypes.NoOpMsg(types.ModuleName, "unstake_instant", "no receipt tokens"), nil, nil
		}
		amount := simtypes.RandomAmount(r, balance)

		_, err = keeper.NewMsgServerImpl(k).UnstakeInstant(ctx, &types.MsgUnstakeInstant{User: user, Amount: amount})
		return result("unstake_instant", err)
	}
}

// SimulateMsgWithdrawAndDeposit has the operator settle pending stake and refill the claimable
// pool with a random amount.
func SimulateMsgWithdrawAndDeposit(k keeper.Keeper, asset BalanceKeeper) simtypes.Operation {
	return func(r *rand.Rand, _ *baseapp.BaseApp, ctx sdk.Context, _ []simtypes.Account, _ string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		operator, err := k.GetOperator(ctx)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, "withdraw_and_deposit", "operator lookup failed"), nil, err
		}
		if operator == "" {
			return simtypes.NoOpMsg(types.ModuleName, "withdraw_and_deposit", "no operator"), nil, nil
		}
		balance, err := asset.Balance(ctx, operator)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, "withdraw_and_deposit", "balance lookup failed"), nil, err
		}
		deposit := math.ZeroInt()
		if balance.IsPositive() {
			deposit = simtypes.RandomAmount(r, balance)
		}

		_, err = keeper.NewMsgServerImpl(k).WithdrawAndDeposit(ctx, &types.MsgWithdrawAndDeposit{
			Operator:      operator,
			DepositAmount: deposit,
		})
		return result("withdraw_and_deposit", err)
	}
}
