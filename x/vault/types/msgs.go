package types

import (
	"context"
	"encoding/hex"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// Admin messages.

type MsgInitialize struct {
	Admin        string `json:"admin"`
	TokenAddress string `json:"token_address"`
	AssetAddress string `json:"asset_address"`
}

type MsgUpgrade struct {
	Admin    string `json:"admin"`
	CodeHash string `json:"code_hash"`
}

type MsgTransferAdmin struct {
	Admin    string `json:"admin"`
	NewAdmin string `json:"new_admin"`
}

type MsgAcceptAdmin struct {
	PendingAdmin string `json:"pending_admin"`
}

type MsgRenounceAdmin struct {
	Admin string `json:"admin"`
}

type MsgSetStakeAssetCap struct {
	Admin string   `json:"admin"`
	Cap   math.Int `json:"cap"`
}

type MsgSetNormalUnstakeFee struct {
	Admin       string `json:"admin"`
	BasisPoints int64  `json:"basis_points"`
}

type MsgSetInstantUnstakeFee struct {
	Admin       string `json:"admin"`
	BasisPoints int64  `json:"basis_points"`
}

type MsgSetOperator struct {
	Admin    string `json:"admin"`
	Operator string `json:"operator"`
}

type MsgSetOnlyAllowStake struct {
	Admin string `json:"admin"`
	Flag  bool   `json:"flag"`
}

type MsgCollectFee struct {
	Admin string `json:"admin"`
}

type MsgPause struct {
	Admin string `json:"admin"`
}

type MsgUnpause struct {
	Admin string `json:"admin"`
}

// Operator messages.

type MsgDeposit struct {
	Operator string   `json:"operator"`
	Amount   math.Int `json:"amount"`
}

type MsgWithdraw struct {
	Operator string `json:"operator"`
}

type MsgWithdrawAndDeposit struct {
	Operator      string   `json:"operator"`
	DepositAmount math.Int `json:"deposit_amount"`
}

// User messages.

type MsgStake struct {
	User   string   `json:"user"`
	Amount math.Int `json:"amount"`
}

type MsgUnstakeRequest struct {
	User   string   `json:"user"`
	Amount math.Int `json:"amount"`
}

type MsgClaimSlot struct {
	User string `json:"user"`
	Slot uint32 `json:"slot"`
}

type MsgClaimAll struct {
	User string `json:"user"`
}

type MsgUnstakeInstant struct {
	User   string   `json:"user"`
	Amount math.Int `json:"amount"`
}

// Responses. Empty responses carry no payload.

type MsgEmptyResponse struct{}

type MsgWithdrawResponse struct {
	Amount math.Int `json:"amount"`
}

type MsgUnstakeRequestResponse struct {
	Slot        uint32 `json:"slot"`
	ClaimableAt uint64 `json:"claimable_at"`
}

type MsgClaimResponse struct {
	ClaimResult
}

// ValidatePositive rejects nil, zero and negative amounts.
func ValidatePositive(amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return errorsmod.Wrapf(ErrNegativeAmountNotAllowed, "amount %s", amount)
	}
	return nil
}

// DecodeCodeHash parses a hex encoded 32-byte code hash.
func DecodeCodeHash(s string) ([]byte, error) {
	bz, err := hex.DecodeString(s)
	if err != nil {
		return nil, errorsmod.Wrap(ErrInvalidCodeHash, err.Error())
	}
	if len(bz) != 32 {
		return nil, errorsmod.Wrapf(ErrInvalidCodeHash, "expected 32 bytes, got %d", len(bz))
	}
	return bz, nil
}

// MsgServer is the vault transaction surface. The signer field of each message is the
// authenticated caller.
type MsgServer interface {
	Initialize(context.Context, *MsgInitialize) (*MsgEmptyResponse, error)
	Upgrade(context.Context, *MsgUpgrade) (*MsgEmptyResponse, error)
	TransferAdmin(context.Context, *MsgTransferAdmin) (*MsgEmptyResponse, error)
	AcceptAdmin(context.Context, *MsgAcceptAdmin) (*MsgEmptyResponse, error)
	RenounceAdmin(context.Context, *MsgRenounceAdmin) (*MsgEmptyResponse, error)
	SetStakeAssetCap(context.Context, *MsgSetStakeAssetCap) (*MsgEmptyResponse, error)
	SetNormalUnstakeFee(context.Context, *MsgSetNormalUnstakeFee) (*MsgEmptyResponse, error)
	SetInstantUnstakeFee(context.Context, *MsgSetInstantUnstakeFee) (*MsgEmptyResponse, error)
	SetOperator(context.Context, *MsgSetOperator) (*MsgEmptyResponse, error)
	SetOnlyAllowStake(context.Context, *MsgSetOnlyAllowStake) (*MsgEmptyResponse, error)
	CollectFee(context.Context, *MsgCollectFee) (*MsgWithdrawResponse, error)
	Pause(context.Context, *MsgPause) (*MsgEmptyResponse, error)
	Unpause(context.Context, *MsgUnpause) (*MsgEmptyResponse, error)
	Deposit(context.Context, *MsgDeposit) (*MsgEmptyResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	WithdrawAndDeposit(context.Context, *MsgWithdrawAndDeposit) (*MsgWithdrawResponse, error)
	Stake(context.Context, *MsgStake) (*MsgEmptyResponse, error)
	UnstakeRequest(context.Context, *MsgUnstakeRequest) (*MsgUnstakeRequestResponse, error)
	ClaimSlot(context.Context, *MsgClaimSlot) (*MsgClaimResponse, error)
	ClaimAll(context.Context, *MsgClaimAll) (*MsgClaimResponse, error)
	UnstakeInstant(context.Context, *MsgUnstakeInstant) (*MsgClaimResponse, error)
}
