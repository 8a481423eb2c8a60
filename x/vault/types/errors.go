package types

import (
	errorsmod "cosmossdk.io/errors"
)

// DONTCOVER

var (
	ErrNegativeAmountNotAllowed       = errorsmod.Register(ModuleName, 2, "amount must be positive")
	ErrCallerIsNotOperator            = errorsmod.Register(ModuleName, 3, "caller is not the operator")
	ErrNoOperatorSet                  = errorsmod.Register(ModuleName, 4, "no operator set")
	ErrOnlyAllowStakeAtFirst          = errorsmod.Register(ModuleName, 5, "only staking is allowed at this stage")
	ErrAlreadyInitialized             = errorsmod.Register(ModuleName, 6, "vault already initialized")
	ErrStakingCapTooSmall             = errorsmod.Register(ModuleName, 7, "staking cap is below the staked amount")
	ErrFeeShouldBeBetween0And10000    = errorsmod.Register(ModuleName, 8, "fee should be between 0 and 10000 basis points")
	ErrNoFeeToCollect                 = errorsmod.Register(ModuleName, 9, "no fee to collect")
	ErrNoPendingStakeAmount           = errorsmod.Register(ModuleName, 10, "no pending stake amount")
	ErrExceedStakingCap               = errorsmod.Register(ModuleName, 11, "stake exceeds staking cap")
	ErrClaimPreviousUnstakeFirst      = errorsmod.Register(ModuleName, 12, "claim the previous unstake in this slot first")
	ErrNotReachedClaimableTime        = errorsmod.Register(ModuleName, 13, "unstake request is not claimable yet")
	ErrInsufficientPendingStakeAmount = errorsmod.Register(ModuleName, 14, "insufficient pending stake amount")
	ErrMathOverflow                   = errorsmod.Register(ModuleName, 15, "math overflow")
	ErrAssetDecimalTooSmall           = errorsmod.Register(ModuleName, 16, "asset decimal count is too small")
	ErrNoPendingUnstake               = errorsmod.Register(ModuleName, 17, "no pending unstake")
	ErrInvalidTokenDecimal            = errorsmod.Register(ModuleName, 18, "invalid receipt token decimal count")
	ErrNoPendingAdminTransfer         = errorsmod.Register(ModuleName, 19, "no pending admin transfer")
	ErrContractIsPaused               = errorsmod.Register(ModuleName, 20, "vault is paused")
	ErrContractIsNotPaused            = errorsmod.Register(ModuleName, 21, "vault is not paused")
	ErrUnauthorized                   = errorsmod.Register(ModuleName, 22, "unauthorized")
	ErrNotInitialized                 = errorsmod.Register(ModuleName, 23, "vault not initialized")
	ErrInvalidSlot                    = errorsmod.Register(ModuleName, 24, "invalid unstake slot")
	ErrInvalidAddress                 = errorsmod.Register(ModuleName, 25, "invalid address")
	ErrInvalidCodeHash                = errorsmod.Register(ModuleName, 26, "invalid code hash")
	ErrInvalidGenesis                 = errorsmod.Register(ModuleName, 27, "invalid genesis state")
)
