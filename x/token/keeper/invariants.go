package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"stakevault/x/token/types"
)

// NonNegativeBalancesInvariant checks no holder has a negative balance.
func NonNegativeBalancesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		err := k.Balances.Walk(ctx, nil, func(addr string, amount math.Int) (bool, error) {
			if amount.IsNegative() {
				msg = fmt.Sprintf("%s has negative balance %s", addr, amount)
				return true, nil
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "nonnegative-balances", err.Error()), true
		}
		if msg != "" {
			return sdk.FormatInvariant(types.ModuleName, "nonnegative-balances", msg), true
		}
		return "", false
	}
}
