package types

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
)

// Metadata describes the token. Decimal is always Decimals.
type Metadata struct {
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	Decimal uint32 `json:"decimal"`
}

func NewMetadata(name, symbol string) Metadata {
	return Metadata{Name: name, Symbol: symbol, Decimal: Decimals}
}

func (m Metadata) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if strings.TrimSpace(m.Symbol) == "" {
		return fmt.Errorf("symbol cannot be empty")
	}
	if m.Decimal != Decimals {
		return fmt.Errorf("decimal must be %d, got %d", Decimals, m.Decimal)
	}
	return nil
}

// AllowanceValue is what spender may draw from an owner until ExpirationLedger (inclusive).
type AllowanceValue struct {
	Amount           math.Int `json:"amount"`
	ExpirationLedger uint32   `json:"expiration_ledger"`
}

// Effective returns the usable amount at the given ledger height.
func (a AllowanceValue) Effective(height int64) math.Int {
	if a.Amount.IsNil() || height > int64(a.ExpirationLedger) {
		return math.ZeroInt()
	}
	return a.Amount
}
