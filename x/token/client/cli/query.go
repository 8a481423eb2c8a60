package cli

import (
	"encoding/json"

	"cosmossdk.io/collections"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"stakevault/x/token/types"
)

func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the token module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(getMetadataCmd(), getBalanceCmd())
	return cmd
}

func getMetadataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Shows the token name, symbol and decimals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			bz, _, err := clientCtx.QueryStore(types.MetadataKey.Bytes(), types.StoreKey)
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return types.ErrNotInitialized
			}
			var md types.Metadata
			if err := json.Unmarshal(bz, &md); err != nil {
				return clientCtx.PrintString(string(bz) + "\n")
			}
			out, _ := json.Marshal(md)
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// BalanceKey is the raw store key of the balance of addr.
func BalanceKey(addr string) ([]byte, error) {
	return collections.EncodeKeyWithPrefix(types.BalancesPrefix.Bytes(), collections.StringKey, addr)
}

func getBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Shows the token balance of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			key, err := BalanceKey(args[0])
			if err != nil {
				return err
			}
			bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return clientCtx.PrintString("0\n")
			}
			amount, err := sdk.IntValue.Decode(bz)
			if err != nil {
				return err
			}
			return clientCtx.PrintString(amount.String() + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
