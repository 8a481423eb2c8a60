package types

import (
	"fmt"
)

// GenesisState is the vault module genesis. An absent Config means the vault has not been initialized.
type GenesisState struct {
	Config *VaultConfig `json:"config,omitempty"`
	Totals VaultTotals  `json:"totals"`
	Slots  []SlotEntry  `json:"slots,omitempty"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{Totals: NewVaultTotals()}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Totals.Validate(); err != nil {
		return fmt.Errorf("totals: %w", err)
	}
	if gs.Config != nil {
		if err := gs.Config.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	} else if len(gs.Slots) > 0 {
		return fmt.Errorf("unstake slots present without vault config")
	}

	seen := make(map[string]struct{}, len(gs.Slots))
	for _, s := range gs.Slots {
		if s.User == "" {
			return fmt.Errorf("unstake slot with empty user")
		}
		if s.Slot >= MaxSlots {
			return fmt.Errorf("unstake slot %d for %s out of range", s.Slot, s.User)
		}
		if s.Amount.IsNil() || s.Amount.IsNegative() {
			return fmt.Errorf("unstake slot %d for %s has invalid amount", s.Slot, s.User)
		}
		key := fmt.Sprintf("%s/%d", s.User, s.Slot)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate unstake slot %s", key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
