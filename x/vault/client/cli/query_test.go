package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"stakevault/x/vault/types"
)

func TestSlotOfCmd(t *testing.T) {
	cmd := getSlotOfCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"1700000000"})
	require.NoError(t, cmd.Execute())
	require.Equal(t, "slot: 6\nclaimable_at: 1700777600\n", out.String())

	cmd = getSlotOfCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"-5"})
	require.Error(t, cmd.Execute())
}

func TestParseSlot(t *testing.T) {
	slot, err := parseSlot("9")
	require.NoError(t, err)
	require.Equal(t, uint32(9), slot)

	_, err = parseSlot("10")
	require.Error(t, err)
	_, err = parseSlot("x")
	require.Error(t, err)
}

func TestUnstakeSlotKey(t *testing.T) {
	a, err := UnstakeSlotKey("cosmos1user", 3)
	require.NoError(t, err)
	b, err := UnstakeSlotKey("cosmos1user", 4)
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(a, types.UnstakeSlotsPrefix.Bytes()))
	require.NotEqual(t, a, b)
}
