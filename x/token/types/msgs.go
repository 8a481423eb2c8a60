package types

import (
	"context"

	"cosmossdk.io/math"
)

type MsgInitialize struct {
	Admin  string `json:"admin"`
	Minter string `json:"minter"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
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

type MsgSetMinter struct {
	Admin  string `json:"admin"`
	Minter string `json:"minter"`
}

type MsgMint struct {
	Minter string   `json:"minter"`
	To     string   `json:"to"`
	Amount math.Int `json:"amount"`
}

type MsgApprove struct {
	From             string   `json:"from"`
	Spender          string   `json:"spender"`
	Amount           math.Int `json:"amount"`
	ExpirationLedger uint32   `json:"expiration_ledger"`
}

type MsgTransfer struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Amount math.Int `json:"amount"`
}

type MsgTransferFrom struct {
	Spender string   `json:"spender"`
	From    string   `json:"from"`
	To      string   `json:"to"`
	Amount  math.Int `json:"amount"`
}

type MsgBurn struct {
	Minter string   `json:"minter"`
	From   string   `json:"from"`
	Amount math.Int `json:"amount"`
}

type MsgBurnFrom struct {
	Minter  string   `json:"minter"`
	Spender string   `json:"spender"`
	From    string   `json:"from"`
	Amount  math.Int `json:"amount"`
}

type MsgEmptyResponse struct{}

// MsgServer is the token transaction surface. The first address field of each message is the
// authenticated caller.
type MsgServer interface {
	Initialize(context.Context, *MsgInitialize) (*MsgEmptyResponse, error)
	TransferAdmin(context.Context, *MsgTransferAdmin) (*MsgEmptyResponse, error)
	AcceptAdmin(context.Context, *MsgAcceptAdmin) (*MsgEmptyResponse, error)
	RenounceAdmin(context.Context, *MsgRenounceAdmin) (*MsgEmptyResponse, error)
	SetMinter(context.Context, *MsgSetMinter) (*MsgEmptyResponse, error)
	Mint(context.Context, *MsgMint) (*MsgEmptyResponse, error)
	Approve(context.Context, *MsgApprove) (*MsgEmptyResponse, error)
	Transfer(context.Context, *MsgTransfer) (*MsgEmptyResponse, error)
	TransferFrom(context.Context, *MsgTransferFrom) (*MsgEmptyResponse, error)
	Burn(context.Context, *MsgBurn) (*MsgEmptyResponse, error)
	BurnFrom(context.Context, *MsgBurnFrom) (*MsgEmptyResponse, error)
}
