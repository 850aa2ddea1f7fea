package main

import (
	"math"

	"koban_token/sdk"
)

// AmountScale defines the precision multiplier for converting floats to int64.
const AmountScale = 1000

type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(1.234)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
// Example payload: AmountToFloat(FloatToAmount(2.5))
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for Hive transfer functions.
// Example payload: AmountToInt64(FloatToAmount(3.14))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// Config holds the owner-controlled contract settings.
type Config struct {
	Owner            sdk.Address
	Treasury         sdk.Address
	UnitPrice        Amount
	ThresholdPercent uint64
	Paused           bool
}

// Ledger is the single global issuance record. CumulativeIndex is the credit
// accrued per unit since genesis; it only ever grows.
type Ledger struct {
	TotalIssued     uint64
	CumulativeIndex Amount
}

// Holder tracks one address's units and its dividend settlement state.
// SnapshotIndex is the value of the ledger's CumulativeIndex the last time
// this holder was settled; the gap between the two times Balance is the
// holder's pending accrual.
type Holder struct {
	Address         sdk.Address
	Balance         uint64
	SnapshotIndex   Amount
	UnclaimedCredit Amount
	LastClaimedAt   int64
}

// TransferArgs carries the decoded token_transfer payload.
type TransferArgs struct {
	To    sdk.Address
	Units uint64
}

// AddressFromString converts a human string to the platform-specific address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }
