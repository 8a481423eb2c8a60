package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"stakevault/x/vault/types"
)

func TestSlotOf(t *testing.T) {
	testCases := []struct {
		ts  uint64
		exp uint32
	}{
		{ts: 0, exp: 0},
		{ts: 57_599, exp: 0},
		{ts: 57_600, exp: 1},
		{ts: 57_600 + 8*86_400, exp: 9},
		{ts: 57_600 + 9*86_400, exp: 0},
		{ts: 1_700_000_000, exp: 6},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.exp, types.SlotOf(tc.ts), "ts %d", tc.ts)
	}

	// a slot comes round again every MaxSlots days
	for ts := uint64(0); ts < 30*types.SecondsPerDay; ts += 3_601 {
		require.Equal(t, types.SlotOf(ts), types.SlotOf(ts+uint64(types.MaxSlots)*types.SecondsPerDay))
		require.Less(t, types.SlotOf(ts), types.MaxSlots)
	}
}

func TestUnstakeSlotClaimable(t *testing.T) {
	s := types.UnstakeSlot{Amount: math.NewInt(10), RequestTime: 1_000}

	require.True(t, s.IsPending())
	require.Equal(t, uint64(1_000)+types.ClaimDelay, s.ClaimableAt())
	require.False(t, s.IsClaimable(1_000))
	require.False(t, s.IsClaimable(s.ClaimableAt()-1))
	require.True(t, s.IsClaimable(s.ClaimableAt()))
	require.False(t, s.IsClaimable(999))

	require.False(t, types.EmptyUnstakeSlot().IsPending())
	require.Equal(t, uint64(9*86_400), types.ClaimDelay)
}
