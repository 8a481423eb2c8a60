package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// VaultConfig is the long-lived vault configuration, written at initialization and
// mutated only by the admin.
type VaultConfig struct {
	Admin             string `json:"admin"`
	PendingAdmin      string `json:"pending_admin,omitempty"`
	Operator          string `json:"operator,omitempty"`
	TokenAddress      string `json:"token_address"`
	AssetAddress      string `json:"asset_address"`
	AssetDecimals     uint32 `json:"asset_decimals"`
	NormalUnstakeFee  int64  `json:"normal_unstake_fee"`
	InstantUnstakeFee int64  `json:"instant_unstake_fee"`
	OnlyAllowStake    bool   `json:"only_allow_stake"`
	Paused            bool   `json:"paused"`
	CodeHash          string `json:"code_hash,omitempty"`
}

// NewVaultConfig returns the configuration written by Initialize.
func NewVaultConfig(admin, tokenAddress, assetAddress string, assetDecimals uint32) VaultConfig {
	return VaultConfig{
		Admin:             admin,
		TokenAddress:      tokenAddress,
		AssetAddress:      assetAddress,
		AssetDecimals:     assetDecimals,
		NormalUnstakeFee:  DefaultNormalUnstakeFee,
		InstantUnstakeFee: DefaultInstantUnstakeFee,
		OnlyAllowStake:    true,
	}
}

func (c VaultConfig) HasOperator() bool { return c.Operator != "" }

func (c VaultConfig) HasPendingAdmin() bool { return c.PendingAdmin != "" }

// ValidateFee checks a fee in basis points lies in [0, 10000).
func ValidateFee(bps int64) error {
	if bps < 0 || bps >= BasisPoints {
		return errorsmod.Wrapf(ErrFeeShouldBeBetween0And10000, "got %d", bps)
	}
	return nil
}

// Validate checks config invariants.
func (c VaultConfig) Validate() error {
	if strings.TrimSpace(c.Admin) == "" {
		return fmt.Errorf("admin cannot be empty")
	}
	if c.TokenAddress == "" || c.AssetAddress == "" {
		return fmt.Errorf("token and asset addresses are required")
	}
	if c.AssetDecimals < TokenDecimals {
		return errorsmod.Wrapf(ErrAssetDecimalTooSmall, "%d < %d", c.AssetDecimals, TokenDecimals)
	}
	if err := ValidateFee(c.NormalUnstakeFee); err != nil {
		return err
	}
	return ValidateFee(c.InstantUnstakeFee)
}
