package main

import (
	"fmt"

	"koban_token/sdk"
)

// -----------------------------------------------------------------------------
// Unit Transfers
// -----------------------------------------------------------------------------

// Transfer moves units between holders. Both sides are settled against their
// pre-transfer balances before either balance moves, otherwise the recipient
// would start accruing on units it did not hold through past deposits and the
// sender would lose accrual it earned. Transfers are deliberately not gated
// by the pause flag.
//
// Payload: "to|units"
//
//go:wasmexport token_transfer
func Transfer(payload *string) *string {
	requireConfig()
	args := decodeTransferArgs(payload)

	from := getSenderAddress()
	if args.Units == 0 {
		sdk.Revert("transfer amount must be positive", "invalid_amount")
	}

	fromH, ok := loadHolder(from)
	if !ok || fromH.Balance < args.Units {
		sdk.Revert("balance below transfer amount", "insufficient_shares")
	}

	l := loadLedger()
	settleHolder(l, fromH)
	if args.To == from {
		// self-transfer only settles the holder, balances stay put
		saveHolder(fromH)
		emitTransferEvent(from, from, args.Units)
		return strptr("ok")
	}

	toH := holderOrNew(args.To)
	settleHolder(l, toH)

	fromH.Balance -= args.Units
	toH.Balance += args.Units
	saveHolder(fromH)
	saveHolder(toH)

	emitTransferEvent(from, args.To, args.Units)
	return strptr(fmt.Sprintf("transferred %d units", args.Units))
}
