package main

import (
	"strconv"

	"koban_token/sdk"
)

// cachedEnv/cachedTransfer/cachedHolders are scoped to the currently executing transaction.
// Whenever the tx.id changes we refresh sdk.GetEnv() and drop any memoized data to keep reads consistent.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
	cachedTransfer  *TransferAllow
	cachedHolders   map[string]*Holder
)

// currentEnv caches the env per tx.id so we dont poke the host api every few lines and ensures
// subsequent helper calls (intents, sender, timestamps) always see the same snapshot.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
		cachedTransfer = nil
		cachedHolders = map[string]*Holder{}
	}
	return &cachedEnv
}

// currentIntents is just a tiny helper to access intents already pulled above.
func currentIntents() []sdk.Intent {
	return currentEnv().Intents
}

// txCache hands out the per-transaction holder cache, refreshing it first so
// a view that never touches the env still drops stale entries from the
// previous transaction.
func txCache() map[string]*Holder {
	currentEnv()
	return cachedHolders
}

// TransferAllow represents arguments extracted from a transfer.allow intent.
// It specifies the allowed transfer amount (`Limit`) and the asset (`Token`).
type TransferAllow struct {
	Limit float64
	Token sdk.Asset
}

// getFirstTransferAllow scans the provided intents and returns the first valid
// transfer.allow intent as a TransferAllow object. The cached result is cleared automatically
// whenever currentEnv() detects a new transaction so tests do not leak state between calls.
func getFirstTransferAllow() *TransferAllow {
	currentEnv()
	if cachedTransfer != nil {
		return cachedTransfer
	}
	for _, intent := range currentIntents() {
		if intent.Type == "transfer.allow" {
			token := intent.Args["token"]
			if token != DividendAsset.String() {
				sdk.Revert("unsupported intent asset", "invalid_asset")
			}
			limitStr := intent.Args["limit"]
			limit, err := strconv.ParseFloat(limitStr, 64)
			if err != nil {
				sdk.Revert("invalid intent limit", "invalid_amount")
			}
			ta := &TransferAllow{
				Limit: limit,
				Token: sdk.Asset(token),
			}
			cachedTransfer = ta
			return ta
		}
	}
	return nil
}

// incomingValue resolves the payment attached to the current transaction and
// reverts when the caller sent no positive value.
func incomingValue() Amount {
	ta := getFirstTransferAllow()
	if ta == nil {
		sdk.Revert("transfer.allow intent required", "invalid_amount")
	}
	amount := FloatToAmount(ta.Limit)
	if amount <= 0 {
		sdk.Revert("amount must be positive", "invalid_amount")
	}
	return amount
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}
