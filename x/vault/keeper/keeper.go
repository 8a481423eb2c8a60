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

	"stakevault/x/vault/types"
)

type Keeper struct {
	storeService  store.KVStoreService
	addressCodec  address.Codec
	tokenKeeper   types.TokenKeeper
	assetKeeper   types.AssetKeeper
	upgradeKeeper types.UpgradeKeeper

	// moduleAddress holds the vault's assets and mints the receipt token.
	moduleAddress string

	Schema collections.Schema

	Config       collections.Item[types.VaultConfig]
	Totals       collections.Item[types.VaultTotals]
	UnstakeSlots collections.Map[collections.Pair[string, uint32], types.UnstakeSlot]
}

type jsonValueCodec[T any] struct{ name string }

var _ collcodec.ValueCodec[types.VaultConfig] = jsonValueCodec[types.VaultConfig]{}

func (jsonValueCodec[T]) Encode(value T) ([]byte, error) { return json.Marshal(value) }
func (jsonValueCodec[T]) Decode(bz []byte) (T, error) {
	var v T
	return v, json.Unmarshal(bz, &v)
}
func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) { return c.Encode(value) }
func (c jsonValueCodec[T]) DecodeJSON(bz []byte) (T, error)    { return c.Decode(bz) }
func (jsonValueCodec[T]) Stringify(value T) string             { return fmt.Sprintf("%+v", value) }
func (c jsonValueCodec[T]) ValueType() string                  { return "vault/" + c.name }

// NewKeeper creates the vault keeper. upgradeKeeper may be nil, in which case Upgrade only
// records the code hash.
func NewKeeper(
	storeService store.KVStoreService,
	addressCodec address.Codec,
	tokenKeeper types.TokenKeeper,
	assetKeeper types.AssetKeeper,
	upgradeKeeper types.UpgradeKeeper,
) Keeper {
	moduleAddress, err := addressCodec.BytesToString(authtypes.NewModuleAddress(types.ModuleName))
	if err != nil {
		panic(fmt.Sprintf("invalid vault module address: %s", err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService:  storeService,
		addressCodec:  addressCodec,
		tokenKeeper:   tokenKeeper,
		assetKeeper:   assetKeeper,
		upgradeKeeper: upgradeKeeper,
		moduleAddress: moduleAddress,

		Config: collections.NewItem(sb, types.ConfigKey, "config", jsonValueCodec[types.VaultConfig]{"Config"}),
		Totals: collections.NewItem(sb, types.TotalsKey, "totals", jsonValueCodec[types.VaultTotals]{"Totals"}),
		UnstakeSlots: collections.NewMap(
			sb, types.UnstakeSlotsPrefix, "unstake_slots",
			collections.PairKeyCodec(collections.StringKey, collections.Uint32Key),
			jsonValueCodec[types.UnstakeSlot]{"UnstakeSlot"},
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// ModuleAddress is the bech32 address of the vault.
func (k Keeper) ModuleAddress() string { return k.moduleAddress }

func (k Keeper) AddressCodec() address.Codec { return k.addressCodec }

func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// atomically runs fn against a branched store. Writes, including those made by the token and
// asset keepers, are committed only if fn succeeds.
func (k Keeper) atomically(ctx context.Context, fn func(ctx sdk.Context) error) error {
	cacheCtx, write := sdk.UnwrapSDKContext(ctx).CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

func (k Keeper) loadConfig(ctx context.Context) (types.VaultConfig, error) {
	cfg, err := k.Config.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.VaultConfig{}, types.ErrNotInitialized
		}
		return types.VaultConfig{}, err
	}
	return cfg, nil
}

func (k Keeper) loadTotals(ctx context.Context) (types.VaultTotals, error) {
	t, err := k.Totals.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.NewVaultTotals(), nil
		}
		return types.VaultTotals{}, err
	}
	return t, nil
}

func (k Keeper) getSlot(ctx context.Context, user string, slot uint32) (types.UnstakeSlot, error) {
	s, err := k.UnstakeSlots.Get(ctx, collections.Join(user, slot))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.EmptyUnstakeSlot(), nil
		}
		return types.UnstakeSlot{}, err
	}
	if s.Amount.IsNil() {
		s.Amount = math.ZeroInt()
	}
	return s, nil
}

func (k Keeper) setSlot(ctx context.Context, user string, slot uint32, s types.UnstakeSlot) error {
	return k.UnstakeSlots.Set(ctx, collections.Join(user, slot), s)
}

// AdjustAmount scales an 8-decimal vault amount into the asset's native decimals.
func (k Keeper) AdjustAmount(ctx context.Context, amount math.Int) (math.Int, error) {
	cfg, err := k.loadConfig(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return types.ScaleToAssetDecimals(amount, cfg.AssetDecimals)
}

func (k Keeper) validateAddress(addr string) error {
	if _, err := k.addressCodec.StringToBytes(addr); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "%s: %s", addr, err)
	}
	return nil
}

func now(ctx sdk.Context) uint64 {
	ts := ctx.BlockTime().Unix()
	if ts < 0 {
		return 0
	}
	return uint64(ts)
}
