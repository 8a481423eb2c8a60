package keeper

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"stakevault/x/token/types"
)

type msgServer struct {
	k Keeper
}

var _ types.MsgServer = msgServer{}

func NewMsgServerImpl(k Keeper) types.MsgServer {
	return msgServer{k: k}
}

// caller checks the signer is a well formed address.
func (m msgServer) caller(field, addr string) error {
	if strings.TrimSpace(addr) == "" {
		return status.Errorf(codes.InvalidArgument, "%s required", field)
	}
	if _, err := m.k.addressCodec.StringToBytes(addr); err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid %s address", field)
	}
	return nil
}

func (m msgServer) Initialize(ctx context.Context, msg *types.MsgInitialize) (*types.MsgEmptyResponse, error) {
	if msg == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := m.caller("admin", msg.Admin); err != nil {
		return nil, err
	}
	if err := m.k.Initialize(ctx, msg.Admin, msg.Minter, msg.Name, msg.Symbol); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) TransferAdmin(ctx context.Context, msg *types.MsgTransferAdmin) (*types.MsgEmptyResponse, error) {
	if msg == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := m.caller("admin", msg.Admin); err != nil {
		return nil, err
	}
	if err := m.k.TransferAdmin(ctx, msg.Admin, msg.NewAdmin); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) AcceptAdmin(ctx context.Context, msg *types.MsgAcceptAdmin) (*types.MsgEmptyResponse, error) {
	if msg == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := m.caller("pending_admin", msg.PendingAdmin); err != nil {
		return nil, err
	}
	if err := m.k.AcceptAdmin(ctx, msg.PendingAdmin); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) RenounceAdmin(ctx context.Context, msg *types.MsgRenounceAdmin) (*types.MsgEmptyResponse, error) {
	if msg == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := m.caller("admin", msg.Admin); err != nil {
		return nil, err
	}
	if err := m.k.RenounceAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) SetMinter(ctx context.Context, msg *types.MsgSetMinter) (*types.MsgEmptyResponse, error) {
	if msg == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := m.caller("admin", msg.Admin); err != nil {
		return nil, err
	}
	if err := m.k.SetMinter(ctx, msg.Admin, msg.Minter); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) Mint(ctx context.Context, msg *types.MsgMint) (*types.MsgEmptyResponse, error) {
	if msg == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := m.caller("minter", msg.Minter); err != nil {
		return nil, err
	}
	if err := m.caller("to", msg.To); err != nil {
		return nil, err
	}
	if err := m.k.Mint(ctx, msg.Minter, msg.To, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) Approve(ctx context.Context, msg *types.MsgApprove) (*types.MsgEmptyResponse, error) {
	if msg == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := m.caller("from", msg.From); err != nil {
		return nil, err
	}
	if err := m.caller("spender", msg.Spender); err != nil {
		return nil, err
	}
	if err := m.k.Approve(ctx, msg.From, msg.Spender, msg.Amount, msg.ExpirationLedger); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) Transfer(ctx context.Context, msg *types.MsgTransfer) (*types.MsgEmptyResponse, error) {
	if msg == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := m.caller("from", msg.From); err != nil {
		return nil, err
	}
	if err := m.caller("to", msg.To); err != nil {
		return nil, err
	}
	if err := m.k.Transfer(ctx, msg.From, msg.To, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) TransferFrom(ctx context.Context, msg *types.MsgTransferFrom) (*types.MsgEmptyResponse, error) {
	if msg == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := m.caller("spender", msg.Spender); err != nil {
		return nil, err
	}
	if err := m.caller("to", msg.To); err != nil {
		return nil, err
	}
	if err := m.k.TransferFrom(ctx, msg.Spender, msg.From, msg.To, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) Burn(ctx context.Context, msg *types.MsgBurn) (*types.MsgEmptyResponse, error) {
	if msg == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := m.caller("minter", msg.Minter); err != nil {
		return nil, err
	}
	if err := m.k.Burn(ctx, msg.Minter, msg.From, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (m msgServer) BurnFrom(ctx context.Context, msg *types.MsgBurnFrom) (*types.MsgEmptyResponse, error) {
	if msg == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := m.caller("minter", msg.Minter); err != nil {
		return nil, err
	}
	if err := m.k.BurnFrom(ctx, msg.Minter, msg.Spender, msg.From, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}
