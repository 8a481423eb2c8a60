package types

import (
	"cosmossdk.io/math"
)

// UnstakeSlot is a pending unstake request in one of a user's rotating day slots.
type UnstakeSlot struct {
	Amount      math.Int `json:"amount"`
	RequestTime uint64   `json:"request_time"`
}

func EmptyUnstakeSlot() UnstakeSlot {
	return UnstakeSlot{Amount: math.ZeroInt()}
}

// IsPending reports whether the slot holds an unclaimed amount.
func (s UnstakeSlot) IsPending() bool {
	return !s.Amount.IsNil() && s.Amount.IsPositive()
}

// ClaimableAt is the earliest timestamp the slot can be claimed.
func (s UnstakeSlot) ClaimableAt() uint64 {
	return s.RequestTime + ClaimDelay
}

// IsClaimable reports whether the claim delay has elapsed at now.
func (s UnstakeSlot) IsClaimable(now uint64) bool {
	return now >= s.RequestTime && now-s.RequestTime >= ClaimDelay
}

// SlotOf maps a unix timestamp onto its day slot.
func SlotOf(timestamp uint64) uint32 {
	return uint32(((timestamp + UTCOffset) / SecondsPerDay) % uint64(MaxSlots))
}

// SlotEntry is an UnstakeSlot together with its owner and index.
type SlotEntry struct {
	User string `json:"user"`
	Slot uint32 `json:"slot"`
	UnstakeSlot
}

// ClaimResult describes a settled unstake: Amount leaves the vault accounting, Fee is retained
// and Payout is sent to the user. All values are in vault units.
type ClaimResult struct {
	Amount math.Int `json:"amount"`
	Fee    math.Int `json:"fee"`
	Payout math.Int `json:"payout"`
}
