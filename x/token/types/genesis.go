package types

import (
	"fmt"

	"cosmossdk.io/math"
)

type BalanceEntry struct {
	Address string   `json:"address"`
	Amount  math.Int `json:"amount"`
}

type AllowanceEntry struct {
	From    string `json:"from"`
	Spender string `json:"spender"`
	AllowanceValue
}

// GenesisState is the token module genesis. An empty Admin means the ledger is not initialized.
type GenesisState struct {
	Admin        string           `json:"admin,omitempty"`
	PendingAdmin string           `json:"pending_admin,omitempty"`
	Minter       string           `json:"minter,omitempty"`
	Metadata     *Metadata        `json:"metadata,omitempty"`
	Balances     []BalanceEntry   `json:"balances,omitempty"`
	Allowances   []AllowanceEntry `json:"allowances,omitempty"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

func (gs GenesisState) Validate() error {
	if gs.Admin == "" {
		if gs.Metadata != nil || gs.Minter != "" || len(gs.Balances) > 0 || len(gs.Allowances) > 0 {
			return fmt.Errorf("token state present without admin")
		}
		return nil
	}
	if gs.Metadata == nil {
		return fmt.Errorf("metadata: required once initialized")
	}
	if err := gs.Metadata.Validate(); err != nil {
		return fmt.Errorf("metadata: %w", err)
	}

	seen := make(map[string]struct{}, len(gs.Balances))
	for _, b := range gs.Balances {
		if b.Address == "" {
			return fmt.Errorf("balances: address required")
		}
		if _, ok := seen[b.Address]; ok {
			return fmt.Errorf("balances: duplicate address %q", b.Address)
		}
		seen[b.Address] = struct{}{}
		if b.Amount.IsNil() || b.Amount.IsNegative() {
			return fmt.Errorf("balances: invalid amount for %s", b.Address)
		}
	}

	for _, a := range gs.Allowances {
		if a.From == "" || a.Spender == "" {
			return fmt.Errorf("allowances: from and spender required")
		}
		if a.Amount.IsNil() || a.Amount.IsNegative() {
			return fmt.Errorf("allowances: invalid amount for %s/%s", a.From, a.Spender)
		}
	}
	return nil
}
