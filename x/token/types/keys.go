package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "token"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// Decimals is the fixed decimal count of every token ledger.
	Decimals uint32 = 8
)

var (
	AdminKey         = collections.NewPrefix("admin")
	PendingAdminKey  = collections.NewPrefix("pending_admin")
	MinterKey        = collections.NewPrefix("minter")
	MetadataKey      = collections.NewPrefix("metadata")
	BalancesPrefix   = collections.NewPrefix("balance/")
	AllowancesPrefix = collections.NewPrefix("allowance/")
)
