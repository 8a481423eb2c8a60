package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"stakevault/x/token/types"
)

func (k Keeper) Balance(ctx context.Context, id string) (math.Int, error) {
	bal, err := k.Balances.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}
	return bal, nil
}

func (k Keeper) metadata(ctx context.Context) (types.Metadata, error) {
	md, err := k.Metadata.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Metadata{}, types.ErrNotInitialized
		}
		return types.Metadata{}, err
	}
	return md, nil
}

// Decimals is fixed for every ledger.
func (k Keeper) Decimals(context.Context) (uint32, error) { return types.Decimals, nil }

func (k Keeper) Name(ctx context.Context) (string, error) {
	md, err := k.metadata(ctx)
	return md.Name, err
}

func (k Keeper) Symbol(ctx context.Context) (string, error) {
	md, err := k.metadata(ctx)
	return md.Symbol, err
}

func (k Keeper) GetMetadata(ctx context.Context) (types.Metadata, error) { return k.metadata(ctx) }

func (k Keeper) receive(ctx context.Context, id string, amount math.Int) error {
	bal, err := k.Balance(ctx, id)
	if err != nil {
		return err
	}
	return k.Balances.Set(ctx, id, bal.Add(amount))
}

func (k Keeper) spend(ctx context.Context, id string, amount math.Int) error {
	bal, err := k.Balance(ctx, id)
	if err != nil {
		return err
	}
	if bal.LT(amount) {
		return errorsmod.Wrapf(types.ErrInsufficientBalance, "%s has %s, needs %s", id, bal, amount)
	}
	return k.Balances.Set(ctx, id, bal.Sub(amount))
}

// Mint credits to with amount. Only the minter may mint.
func (k Keeper) Mint(ctx context.Context, caller, to string, amount math.Int) error {
	if err := checkNonNegative(amount); err != nil {
		return err
	}
	if err := k.requireMinter(ctx, caller); err != nil {
		return err
	}
	if err := k.receive(ctx, to, amount); err != nil {
		return err
	}
	emit(ctx, types.EventMint,
		sdk.NewAttribute(types.AttrMinter, caller),
		sdk.NewAttribute(types.AttrTo, to),
		sdk.NewAttribute(types.AttrAmount, amount.String()),
	)
	return nil
}

// Burn destroys amount from the balance of from. Only the minter may burn.
func (k Keeper) Burn(ctx context.Context, caller, from string, amount math.Int) error {
	if err := checkNonNegative(amount); err != nil {
		return err
	}
	if err := k.requireMinter(ctx, caller); err != nil {
		return err
	}
	if err := k.spend(ctx, from, amount); err != nil {
		return err
	}
	emit(ctx, types.EventBurn,
		sdk.NewAttribute(types.AttrFrom, from),
		sdk.NewAttribute(types.AttrAmount, amount.String()),
	)
	return nil
}

// BurnFrom destroys amount from the balance of from, drawing on the allowance granted to spender.
// Only the minter may burn.
func (k Keeper) BurnFrom(ctx context.Context, caller, spender, from string, amount math.Int) error {
	if err := checkNonNegative(amount); err != nil {
		return err
	}
	if err := k.requireMinter(ctx, caller); err != nil {
		return err
	}
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.spendAllowance(ctx, from, spender, amount); err != nil {
			return err
		}
		return k.spend(ctx, from, amount)
	})
	if err != nil {
		return err
	}
	emit(ctx, types.EventBurn,
		sdk.NewAttribute(types.AttrFrom, from),
		sdk.NewAttribute(types.AttrSpender, spender),
		sdk.NewAttribute(types.AttrAmount, amount.String()),
	)
	return nil
}

func (k Keeper) Transfer(ctx context.Context, from, to string, amount math.Int) error {
	if err := checkNonNegative(amount); err != nil {
		return err
	}
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.spend(ctx, from, amount); err != nil {
			return err
		}
		return k.receive(ctx, to, amount)
	})
	if err != nil {
		return err
	}
	emit(ctx, types.EventTransfer,
		sdk.NewAttribute(types.AttrFrom, from),
		sdk.NewAttribute(types.AttrTo, to),
		sdk.NewAttribute(types.AttrAmount, amount.String()),
	)
	return nil
}

// TransferFrom moves amount from from to to on behalf of spender.
func (k Keeper) TransferFrom(ctx context.Context, spender, from, to string, amount math.Int) error {
	if err := checkNonNegative(amount); err != nil {
		return err
	}
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.spendAllowance(ctx, from, spender, amount); err != nil {
			return err
		}
		if err := k.spend(ctx, from, amount); err != nil {
			return err
		}
		return k.receive(ctx, to, amount)
	})
	if err != nil {
		return err
	}
	emit(ctx, types.EventTransfer,
		sdk.NewAttribute(types.AttrFrom, from),
		sdk.NewAttribute(types.AttrTo, to),
		sdk.NewAttribute(types.AttrSpender, spender),
		sdk.NewAttribute(types.AttrAmount, amount.String()),
	)
	return nil
}

// GetAllowance returns the stored allowance regardless of expiry.
func (k Keeper) GetAllowance(ctx context.Context, from, spender string) (types.AllowanceValue, bool, error) {
	a, err := k.Allowances.Get(ctx, collections.Join(from, spender))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.AllowanceValue{Amount: math.ZeroInt()}, false, nil
		}
		return types.AllowanceValue{}, false, err
	}
	return a, true, nil
}

// Allowance returns what spender may still draw from from. Expired allowances read as zero.
func (k Keeper) Allowance(ctx context.Context, from, spender string) (math.Int, error) {
	a, _, err := k.GetAllowance(ctx, from, spender)
	if err != nil {
		return math.Int{}, err
	}
	return a.Effective(sdk.UnwrapSDKContext(ctx).BlockHeight()), nil
}

// Approve lets spender draw up to amount from from until expirationLedger. A positive amount
// needs an expiration at or after the current height.
func (k Keeper) Approve(ctx context.Context, from, spender string, amount math.Int, expirationLedger uint32) error {
	if err := checkNonNegative(amount); err != nil {
		return err
	}
	height := sdk.UnwrapSDKContext(ctx).BlockHeight()
	if amount.IsPositive() && int64(expirationLedger) < height {
		return errorsmod.Wrapf(types.ErrInvalidExpiration, "expiration %d < current ledger %d", expirationLedger, height)
	}
	err := k.Allowances.Set(ctx, collections.Join(from, spender), types.AllowanceValue{
		Amount:           amount,
		ExpirationLedger: expirationLedger,
	})
	if err != nil {
		return err
	}
	emit(ctx, types.EventApprove,
		sdk.NewAttribute(types.AttrFrom, from),
		sdk.NewAttribute(types.AttrSpender, spender),
		sdk.NewAttribute(types.AttrAmount, amount.String()),
		sdk.NewAttribute(types.AttrExpirationLedger, strconv.FormatUint(uint64(expirationLedger), 10)),
	)
	return nil
}

func (k Keeper) spendAllowance(ctx sdk.Context, from, spender string, amount math.Int) error {
	a, _, err := k.GetAllowance(ctx, from, spender)
	if err != nil {
		return err
	}
	available := a.Effective(ctx.BlockHeight())
	if available.LT(amount) {
		return errorsmod.Wrapf(types.ErrInsufficientAllowance, "%s allows %s, needs %s", from, available, amount)
	}
	if amount.IsZero() {
		return nil
	}
	a.Amount = available.Sub(amount)
	return k.Allowances.Set(ctx, collections.Join(from, spender), a)
}
