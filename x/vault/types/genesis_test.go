package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"stakevault/x/vault/types"
)

func TestGenesisValidate(t *testing.T) {
	validConfig := types.NewVaultConfig("admin", "token", "asset", 8)
	slot := func(user string, idx uint32, amount int64) types.SlotEntry {
		return types.SlotEntry{User: user, Slot: idx, UnstakeSlot: types.UnstakeSlot{Amount: math.NewInt(amount)}}
	}

	testCases := []struct {
		name     string
		genState *types.GenesisState
		valid    bool
	}{
		{name: "default is valid", genState: types.DefaultGenesis(), valid: true},
		{
			name:     "initialized with slots",
			genState: &types.GenesisState{Config: &validConfig, Totals: types.NewVaultTotals(), Slots: []types.SlotEntry{slot("u", 1, 5)}},
			valid:    true,
		},
		{
			name:     "slots without config",
			genState: &types.GenesisState{Totals: types.NewVaultTotals(), Slots: []types.SlotEntry{slot("u", 1, 5)}},
		},
		{
			name:     "slot out of range",
			genState: &types.GenesisState{Config: &validConfig, Totals: types.NewVaultTotals(), Slots: []types.SlotEntry{slot("u", 10, 5)}},
		},
		{
			name:     "duplicate slot",
			genState: &types.GenesisState{Config: &validConfig, Totals: types.NewVaultTotals(), Slots: []types.SlotEntry{slot("u", 1, 5), slot("u", 1, 6)}},
		},
		{
			name:     "negative slot amount",
			genState: &types.GenesisState{Config: &validConfig, Totals: types.NewVaultTotals(), Slots: []types.SlotEntry{slot("u", 1, -5)}},
		},
		{
			name:     "missing totals",
			genState: &types.GenesisState{},
		},
		{
			name: "fee out of range",
			genState: func() *types.GenesisState {
				cfg := validConfig
				cfg.InstantUnstakeFee = 10000
				return &types.GenesisState{Config: &cfg, Totals: types.NewVaultTotals()}
			}(),
		},
		{
			name: "asset decimals too small",
			genState: func() *types.GenesisState {
				cfg := validConfig
				cfg.AssetDecimals = 6
				return &types.GenesisState{Config: &cfg, Totals: types.NewVaultTotals()}
			}(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
