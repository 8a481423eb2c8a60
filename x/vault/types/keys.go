package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "vault"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the module
	RouterKey = ModuleName
)

const (
	// SecondsPerDay is the width of one unstake slot.
	SecondsPerDay uint64 = 86400

	// UTCOffset shifts slot boundaries to midnight UTC+8.
	UTCOffset uint64 = 8 * 3600

	// MaxSlots is the number of rotating unstake slots per user.
	MaxSlots uint32 = 10

	// ClaimDelay is how long an unstake request waits before it can be claimed.
	ClaimDelay = uint64(MaxSlots-1) * SecondsPerDay

	// BasisPoints is the fee denominator; 10000 bps is 100%.
	BasisPoints int64 = 10000

	// TokenDecimals is the decimal count of the receipt token and of all vault accounting.
	TokenDecimals uint32 = 8

	DefaultNormalUnstakeFee  int64 = 0
	DefaultInstantUnstakeFee int64 = 300
)

// Storage is split in three tiers by retention: configuration, aggregate totals and
// the short-lived per user/slot unstake entries.
var (
	ConfigKey          = collections.NewPrefix("c_vault")
	TotalsKey          = collections.NewPrefix("t_vault")
	UnstakeSlotsPrefix = collections.NewPrefix("s_vault")
)
