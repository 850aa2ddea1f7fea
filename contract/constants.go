package main

import "koban_token/sdk"

// -----------------------------------------------------------------------------
// Settlement Asset
// -----------------------------------------------------------------------------

// DividendAsset is the single asset the contract accepts for purchases and
// dividend deposits and pays out on claims.
const DividendAsset = sdk.AssetHive

// -----------------------------------------------------------------------------
// Supply & Timing Limits
// -----------------------------------------------------------------------------

const (
	// MaxSupply caps the total units ever issued. Fixed at genesis.
	MaxSupply uint64 = 1_000_000
	// ClaimCooldownSecs is the minimum gap between two claims of the same
	// holder: one year in seconds.
	ClaimCooldownSecs int64 = 365 * 24 * 60 * 60
)

// -----------------------------------------------------------------------------
// Default/Fallback Values
// -----------------------------------------------------------------------------

const (
	// FallbackThresholdPercent is the eligibility threshold used when init
	// omits one. No upper bound is enforced on later updates.
	FallbackThresholdPercent = 51
)

// -----------------------------------------------------------------------------
// Storage Keys
// -----------------------------------------------------------------------------

// ContractConfigKey stores the serialized contract configuration.
const ContractConfigKey = "cfg"

const (
	// kLedger stores the global issuance ledger (total issued, cumulative index).
	kLedger byte = 0x01
	// kHolder houses encoded Holder structs keyed by address.
	kHolder byte = 0x02
)
