package types

const (
	EventInitialized   = "token.initialized"
	EventAdminTransfer = "token.admin_transfer"
	EventAdminAccepted = "token.admin_accepted"
	EventAdminRenounce = "token.admin_renounced"
	EventSetMinter     = "token.set_minter"
	EventMint          = "token.mint"
	EventBurn          = "token.burn"
	EventTransfer      = "token.transfer"
	EventApprove       = "token.approve"
)

const (
	AttrAdmin            = "admin"
	AttrNewAdmin         = "new_admin"
	AttrMinter           = "minter"
	AttrFrom             = "from"
	AttrTo               = "to"
	AttrSpender          = "spender"
	AttrAmount           = "amount"
	AttrExpirationLedger = "expiration_ledger"
	AttrName             = "name"
	AttrSymbol           = "symbol"
)
