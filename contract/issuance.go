package main

import (
	"fmt"

	"koban_token/sdk"
)

// -----------------------------------------------------------------------------
// Issuance
// -----------------------------------------------------------------------------

// Purchase mints units for the sender at the configured unit price. Payment
// arrives via a transfer.allow intent; the full payment (including any
// sub-unit remainder) is forwarded to the treasury. The buyer is settled
// before its balance grows: minting bypasses the transfer hook, so skipping
// this settle would hand the buyer accrual it never held units for.
//
//go:wasmexport token_purchase
func Purchase(_ *string) *string {
	cfg := requireConfig()
	if cfg.Paused {
		sdk.Revert("purchases are paused", "paused")
	}

	payment := incomingValue()
	units := uint64(payment / cfg.UnitPrice)
	if units == 0 {
		sdk.Revert("payment below unit price", "insufficient_payment")
	}

	l := loadLedger()
	if l.TotalIssued+units > MaxSupply {
		sdk.Revert("purchase exceeds max supply", "supply_exceeded")
	}

	buyer := getSenderAddress()
	sdk.HiveDraw(AmountToInt64(payment), DividendAsset)

	h := holderOrNew(buyer)
	settleHolder(l, h)
	h.Balance += units
	l.TotalIssued += units
	saveHolder(h)
	saveLedger(l)

	// interaction last: a reentrant treasury sees fully updated state
	sdk.HiveTransfer(cfg.Treasury, AmountToInt64(payment), DividendAsset)

	emitPurchaseEvent(buyer, units, payment, nowUnix())
	return strptr(fmt.Sprintf("minted %d units", units))
}
