package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// VaultTotals holds the aggregate accounting of the vault in 8-decimal units.
type VaultTotals struct {
	// TotalStakingAmount is the principal currently staked.
	TotalStakingAmount math.Int `json:"total_staking_amount"`
	// TotalStakingCap is the ceiling on TotalStakingAmount.
	TotalStakingCap math.Int `json:"total_staking_cap"`
	// TotalRequestedAmount is the sum of unstake requests not yet claimed.
	TotalRequestedAmount math.Int `json:"total_requested_amount"`
	// TotalClaimableAmount is the liquidity the operator reserved for claims.
	TotalClaimableAmount math.Int `json:"total_claimable_amount"`
	// PendingStakeAmount is staked liquidity not yet withdrawn by the operator.
	PendingStakeAmount math.Int `json:"pending_stake_amount"`
	// CollectedFee is the fee accrued and not yet swept to the admin.
	CollectedFee math.Int `json:"collected_fee"`
}

func NewVaultTotals() VaultTotals {
	return VaultTotals{
		TotalStakingAmount:   math.ZeroInt(),
		TotalStakingCap:      math.ZeroInt(),
		TotalRequestedAmount: math.ZeroInt(),
		TotalClaimableAmount: math.ZeroInt(),
		PendingStakeAmount:   math.ZeroInt(),
		CollectedFee:         math.ZeroInt(),
	}
}

func (t VaultTotals) fields() map[string]math.Int {
	return map[string]math.Int{
		"total_staking_amount":   t.TotalStakingAmount,
		"total_staking_cap":      t.TotalStakingCap,
		"total_requested_amount": t.TotalRequestedAmount,
		"total_claimable_amount": t.TotalClaimableAmount,
		"pending_stake_amount":   t.PendingStakeAmount,
		"collected_fee":          t.CollectedFee,
	}
}

// Validate checks that every total is set and non-negative.
func (t VaultTotals) Validate() error {
	for name, v := range t.fields() {
		if v.IsNil() {
			return fmt.Errorf("%s is nil", name)
		}
		if v.IsNegative() {
			return fmt.Errorf("%s is negative: %s", name, v)
		}
	}
	return nil
}
