package main

import (
	"strconv"

	"koban_token/sdk"
)

// -----------------------------------------------------------------------------
// Admin Surface (owner only)
// -----------------------------------------------------------------------------

// SetTreasury points issuance proceeds at a new address.
// Payload: "hive:newtreasury"
//
//go:wasmexport token_set_treasury
func SetTreasury(payload *string) *string {
	cfg := requireConfig()
	requireOwner(cfg)

	addr := AddressFromString(unwrapPayload(payload, "treasury address required"))
	if !addr.IsValid() {
		sdk.Revert("treasury address required", "zero_address")
	}

	old := cfg.Treasury
	cfg.Treasury = addr
	saveConfig(cfg)
	emitConfigUpdatedEvent("treasury", old.String(), addr.String())
	return strptr("treasury updated")
}

// SetUnitPrice updates the mint price. Zero is rejected since it would make
// units free and the floor division meaningless.
// Payload: scaled amount, like "100"
//
//go:wasmexport token_set_price
func SetUnitPrice(payload *string) *string {
	cfg := requireConfig()
	requireOwner(cfg)

	price := parseAmountField(unwrapPayload(payload, "unit price required"), "unit price")
	if price <= 0 {
		sdk.Revert("unit price must be positive", "zero_price")
	}

	old := cfg.UnitPrice
	cfg.UnitPrice = price
	saveConfig(cfg)
	emitConfigUpdatedEvent("unit_price", strconv.FormatInt(int64(old), 10), strconv.FormatInt(int64(price), 10))
	return strptr("unit price updated")
}

// SetThreshold updates the eligibility percentage. No upper bound is
// enforced; values above 100 simply make nobody eligible.
// Payload: "51"
//
//go:wasmexport token_set_threshold
func SetThreshold(payload *string) *string {
	cfg := requireConfig()
	requireOwner(cfg)

	pct := parseUintField(unwrapPayload(payload, "eligibility percent required"), "eligibility percent")

	old := cfg.ThresholdPercent
	cfg.ThresholdPercent = pct
	saveConfig(cfg)
	emitConfigUpdatedEvent("threshold_percent", strconv.FormatUint(old, 10), strconv.FormatUint(pct, 10))
	return strptr("eligibility threshold updated")
}

// Pause gates purchase and claim. Deposits, transfers and admin calls keep
// working while paused.
//
//go:wasmexport token_pause
func Pause(_ *string) *string {
	return setPaused(true)
}

// Unpause reopens purchase and claim.
//
//go:wasmexport token_unpause
func Unpause(_ *string) *string {
	return setPaused(false)
}

func setPaused(paused bool) *string {
	cfg := requireConfig()
	requireOwner(cfg)

	old := cfg.Paused
	cfg.Paused = paused
	saveConfig(cfg)
	emitConfigUpdatedEvent("paused", strconv.FormatBool(old), strconv.FormatBool(paused))
	if paused {
		return strptr("paused")
	}
	return strptr("unpaused")
}
