package types

import (
	errorsmod "cosmossdk.io/errors"
)

// DONTCOVER

var (
	ErrAlreadyInitialized     = errorsmod.Register(ModuleName, 2, "token already initialized")
	ErrNotInitialized         = errorsmod.Register(ModuleName, 3, "token not initialized")
	ErrUnauthorized           = errorsmod.Register(ModuleName, 4, "unauthorized")
	ErrNoPendingAdminTransfer = errorsmod.Register(ModuleName, 5, "no pending admin transfer")
	ErrNegativeAmount         = errorsmod.Register(ModuleName, 6, "negative amount is not allowed")
	ErrInsufficientBalance    = errorsmod.Register(ModuleName, 7, "insufficient balance")
	ErrInsufficientAllowance  = errorsmod.Register(ModuleName, 8, "insufficient allowance")
	ErrInvalidExpiration      = errorsmod.Register(ModuleName, 9, "expiration ledger is in the past")
	ErrInvalidAddress         = errorsmod.Register(ModuleName, 10, "invalid address")
	ErrInvalidMetadata        = errorsmod.Register(ModuleName, 11, "invalid token metadata")
)
