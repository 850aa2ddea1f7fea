package main

import "koban_token/sdk"

// loadLedger reads the global issuance record, defaulting to an empty ledger
// before the first mint.
func loadLedger() *Ledger {
	ptr := sdk.StateGetObject(ledgerKey())
	if ptr == nil || *ptr == "" {
		return &Ledger{}
	}
	l, err := DecodeLedger([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode ledger")
	}
	return l
}

// saveLedger persists the global issuance record.
func saveLedger(l *Ledger) {
	sdk.StateSetObject(ledgerKey(), string(EncodeLedger(l)))
}
