package main

import (
	"fmt"

	"koban_token/sdk"
)

// -----------------------------------------------------------------------------
// Deposit & Claim Flow
// -----------------------------------------------------------------------------

// Deposit accepts value from anyone (reward injection, revenue share) and
// spreads it over the outstanding supply. Deposits stay available while the
// contract is paused; only purchase and claim are gated.
//
//go:wasmexport token_deposit
func Deposit(_ *string) *string {
	requireConfig()

	amount := incomingValue()
	l := loadLedger()
	if l.TotalIssued == 0 {
		sdk.Revert("no units issued yet", "no_supply")
	}

	sdk.HiveDraw(AmountToInt64(amount), DividendAsset)
	perUnit := applyDeposit(l, amount)
	saveLedger(l)

	emitDepositEvent(amount, perUnit, l.CumulativeIndex, nowUnix())
	return strptr(fmt.Sprintf("deposited %d, index now %d", amount, l.CumulativeIndex))
}

// Claim pays out the sender's settled credit, at most once per cooldown
// window. Credit is zeroed and the record saved before the outbound transfer
// goes out, so a reentrant call during the payout finds nothing left to take;
// if the transfer is rejected the host aborts and the platform rolls the
// whole transaction back, credit and timestamp included.
//
//go:wasmexport token_claim
func Claim(_ *string) *string {
	cfg := requireConfig()
	if cfg.Paused {
		sdk.Revert("claims are paused", "paused")
	}

	caller := getSenderAddress()
	h, ok := loadHolder(caller)
	if !ok || h.Balance == 0 {
		sdk.Revert("caller holds no units", "no_shares")
	}

	now := nowUnix()
	if h.LastClaimedAt != 0 && now-h.LastClaimedAt < ClaimCooldownSecs {
		sdk.Revert("cooldown not elapsed since last claim", "claim_too_soon")
	}

	l := loadLedger()
	h.LastClaimedAt = now
	settleHolder(l, h)
	payout := h.UnclaimedCredit
	h.UnclaimedCredit = 0
	saveHolder(h)

	if payout > 0 {
		sdk.HiveTransfer(caller, AmountToInt64(payout), DividendAsset)
	}

	emitClaimEvent(caller, payout, now)
	return strptr(fmt.Sprintf("claimed %d", payout))
}
