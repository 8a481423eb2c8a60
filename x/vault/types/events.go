package types

const (
	EventInitialized        = "vault.initialized"
	EventUpgraded           = "vault.upgraded"
	EventAdminTransfer      = "vault.admin_transfer"
	EventAdminAccepted      = "vault.admin_accepted"
	EventAdminRenounced     = "vault.admin_renounced"
	EventPaused             = "vault.paused"
	EventUnpaused           = "vault.unpaused"
	EventStakingCapSet      = "vault.staking_cap_set"
	EventNormalFeeSet       = "vault.normal_unstake_fee_set"
	EventInstantFeeSet      = "vault.instant_unstake_fee_set"
	EventOperatorSet        = "vault.operator_set"
	EventOnlyAllowStakeSet  = "vault.only_allow_stake_set"
	EventFeeCollected       = "vault.fee_collected"
	EventDeposit            = "vault.deposit"
	EventWithdraw           = "vault.withdraw"
	EventWithdrawAndDeposit = "vault.withdraw_and_deposit"
	EventStake              = "vault.stake"
	EventUnstakeRequest     = "vault.unstake_request"
	EventClaimSlot          = "vault.claim_slot"
	EventClaimAll           = "vault.claim_all"
	EventUnstakeInstant     = "vault.unstake_instant"
)

const (
	AttrAdmin          = "admin"
	AttrNewAdmin       = "new_admin"
	AttrOperator       = "operator"
	AttrUser           = "user"
	AttrAmount         = "amount"
	AttrFee            = "fee"
	AttrPayout         = "payout"
	AttrSlot           = "slot"
	AttrRequestTime    = "request_time"
	AttrCap            = "cap"
	AttrBasisPoints    = "basis_points"
	AttrFlag           = "flag"
	AttrToken          = "token"
	AttrAsset          = "asset"
	AttrAssetDecimals  = "asset_decimals"
	AttrCodeHash       = "code_hash"
	AttrWithdrawAmount = "withdraw_amount"
	AttrDepositAmount  = "deposit_amount"
)
