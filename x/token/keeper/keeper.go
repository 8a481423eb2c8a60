package keeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"stakevault/x/token/types"
)

// Keeper is a single fungible token ledger. Several ledgers can live in one app, each under
// its own store key and instance name.
type Keeper struct {
	storeService store.KVStoreService
	addressCodec address.Codec
	name         string
	address      string

	Schema collections.Schema

	Admin        collections.Item[string]
	PendingAdmin collections.Item[string]
	Minter       collections.Item[string]
	Metadata     collections.Item[types.Metadata]
	Balances     collections.Map[string, math.Int]
	Allowances   collections.Map[collections.Pair[string, string], types.AllowanceValue]
}

type jsonValueCodec[T any] struct{ name string }

var _ collcodec.ValueCodec[types.Metadata] = jsonValueCodec[types.Metadata]{}

func (jsonValueCodec[T]) Encode(value T) ([]byte, error) { return json.Marshal(value) }
func (jsonValueCodec[T]) Decode(bz []byte) (T, error) {
	var v T
	return v, json.Unmarshal(bz, &v)
}
func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) { return c.Encode(value) }
func (c jsonValueCodec[T]) DecodeJSON(bz []byte) (T, error)    { return c.Decode(bz) }
func (jsonValueCodec[T]) Stringify(value T) string             { return fmt.Sprintf("%+v", value) }
func (c jsonValueCodec[T]) ValueType() string                  { return "token/" + c.name }

// NewKeeper creates a token ledger. name identifies the instance and derives its address.
func NewKeeper(storeService store.KVStoreService, addressCodec address.Codec, name string) Keeper {
	addr, err := addressCodec.BytesToString(authtypes.NewModuleAddress(name))
	if err != nil {
		panic(fmt.Sprintf("invalid token address for %s: %s", name, err))
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		name:         name,
		address:      addr,

		Admin:        collections.NewItem(sb, types.AdminKey, "admin", collections.StringValue),
		PendingAdmin: collections.NewItem(sb, types.PendingAdminKey, "pending_admin", collections.StringValue),
		Minter:       collections.NewItem(sb, types.MinterKey, "minter", collections.StringValue),
		Metadata:     collections.NewItem(sb, types.MetadataKey, "metadata", jsonValueCodec[types.Metadata]{"Metadata"}),
		Balances:     collections.NewMap(sb, types.BalancesPrefix, "balances", collections.StringKey, sdk.IntValue),
		Allowances: collections.NewMap(
			sb,
			types.AllowancesPrefix,
			"allowances",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			jsonValueCodec[types.AllowanceValue]{"Allowance"},
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// Address is the bech32 address identifying this ledger.
func (k Keeper) Address() string { return k.address }

func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName, "token", k.name)
}

func (k Keeper) atomically(ctx context.Context, fn func(ctx sdk.Context) error) error {
	cacheCtx, write := sdk.UnwrapSDKContext(ctx).CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

func (k Keeper) validateAddress(addr string) error {
	if _, err := k.addressCodec.StringToBytes(addr); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "%s: %s", addr, err)
	}
	return nil
}

func checkNonNegative(amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return errorsmod.Wrapf(types.ErrNegativeAmount, "amount %s", amount)
	}
	return nil
}

func (k Keeper) getString(ctx context.Context, item collections.Item[string]) (string, error) {
	v, err := item.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return v, nil
}

func (k Keeper) requireAdmin(ctx context.Context, caller string) error {
	admin, err := k.getString(ctx, k.Admin)
	if err != nil {
		return err
	}
	if admin == "" {
		return types.ErrNotInitialized
	}
	if caller != admin {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the token admin", caller)
	}
	return nil
}

func (k Keeper) requireMinter(ctx context.Context, caller string) error {
	minter, err := k.getString(ctx, k.Minter)
	if err != nil {
		return err
	}
	if minter == "" {
		return types.ErrNotInitialized
	}
	if caller != minter {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the minter", caller)
	}
	return nil
}

func emit(ctx context.Context, eventType string, attrs ...sdk.Attribute) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(eventType, attrs...))
}
