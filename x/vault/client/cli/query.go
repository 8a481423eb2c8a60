package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"cosmossdk.io/collections"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"

	"stakevault/x/vault/types"
)

func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the vault module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		getConfigCmd(),
		getTotalsCmd(),
		getUnstakeSlotCmd(),
		getSlotOfCmd(),
	)
	return cmd
}

// printStored decodes a JSON collections value into out and prints it, or prints the raw bytes
// when they cannot be decoded.
func printStored(clientCtx client.Context, bz []byte, out any) error {
	if err := json.Unmarshal(bz, out); err != nil {
		return clientCtx.PrintString(string(bz) + "\n")
	}
	pretty, err := json.Marshal(out)
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(pretty) + "\n")
}

func getConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Shows the vault configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			bz, _, err := clientCtx.QueryStore(types.ConfigKey.Bytes(), types.StoreKey)
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return types.ErrNotInitialized
			}
			return printStored(clientCtx, bz, &types.VaultConfig{})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getTotalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Shows the vault staking, requested, claimable, pending and fee totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			bz, _, err := clientCtx.QueryStore(types.TotalsKey.Bytes(), types.StoreKey)
			if err != nil || len(bz) == 0 {
				out, _ := json.Marshal(types.NewVaultTotals())
				return clientCtx.PrintString(string(out) + "\n")
			}
			return printStored(clientCtx, bz, &types.VaultTotals{})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// UnstakeSlotKey is the raw store key of the slot of user.
func UnstakeSlotKey(user string, slot uint32) ([]byte, error) {
	return collections.EncodeKeyWithPrefix(
		types.UnstakeSlotsPrefix.Bytes(),
		collections.PairKeyCodec(collections.StringKey, collections.Uint32Key),
		collections.Join(user, slot),
	)
}

func parseSlot(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid slot %q: %w", s, err)
	}
	if v >= uint64(types.MaxSlots) {
		return 0, fmt.Errorf("slot %d out of range [0, %d)", v, types.MaxSlots)
	}
	return uint32(v), nil
}

func getUnstakeSlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unstake-slot [address] [slot]",
		Short: "Shows a pending unstake request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			slot, err := parseSlot(args[1])
			if err != nil {
				return err
			}
			key, err := UnstakeSlotKey(args[0], slot)
			if err != nil {
				return err
			}
			bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				out, _ := json.Marshal(types.EmptyUnstakeSlot())
				return clientCtx.PrintString(string(out) + "\n")
			}
			return printStored(clientCtx, bz, &types.UnstakeSlot{})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getSlotOfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slot-of [unix-seconds]",
		Short: "Computes the unstake slot and claimable time for a timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid timestamp %q: %w", args[0], err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "slot: %d\nclaimable_at: %d\n", types.SlotOf(ts), ts+types.ClaimDelay)
			return err
		},
	}
}
