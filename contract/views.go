package main

import (
	"math/bits"

	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jwriter"

	"koban_token/sdk"
)

// -----------------------------------------------------------------------------
// Read Surface
//
// Views serialize through hand-written tinyjson writers; reflection-based
// marshaling costs too much gas on the wasm side for what are flat structs.
// -----------------------------------------------------------------------------

// TokenInfoView is the public snapshot of the global contract state.
type TokenInfoView struct {
	TotalIssued      uint64
	MaxSupply        uint64
	CumulativeIndex  Amount
	UnitPrice        Amount
	ThresholdPercent uint64
	Treasury         string
	Paused           bool
}

func (v *TokenInfoView) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"total_issued":`)
	w.Uint64(v.TotalIssued)
	w.RawString(`,"max_supply":`)
	w.Uint64(v.MaxSupply)
	w.RawString(`,"cumulative_index":`)
	w.Int64(int64(v.CumulativeIndex))
	w.RawString(`,"unit_price":`)
	w.Int64(int64(v.UnitPrice))
	w.RawString(`,"threshold_percent":`)
	w.Uint64(v.ThresholdPercent)
	w.RawString(`,"treasury":`)
	w.String(v.Treasury)
	w.RawString(`,"paused":`)
	w.Bool(v.Paused)
	w.RawByte('}')
}

// HolderView exposes one holder's settlement state plus the accrual that a
// settle would realize right now.
type HolderView struct {
	Address         string
	Balance         uint64
	SnapshotIndex   Amount
	UnclaimedCredit Amount
	Pending         Amount
	LastClaimedAt   int64
}

func (v *HolderView) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"address":`)
	w.String(v.Address)
	w.RawString(`,"balance":`)
	w.Uint64(v.Balance)
	w.RawString(`,"snapshot_index":`)
	w.Int64(int64(v.SnapshotIndex))
	w.RawString(`,"unclaimed_credit":`)
	w.Int64(int64(v.UnclaimedCredit))
	w.RawString(`,"pending":`)
	w.Int64(int64(v.Pending))
	w.RawString(`,"last_claimed_at":`)
	w.Int64(v.LastClaimedAt)
	w.RawByte('}')
}

// EligibilityView answers the threshold check for one address.
type EligibilityView struct {
	Address  string
	Eligible bool
}

func (v *EligibilityView) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"address":`)
	w.String(v.Address)
	w.RawString(`,"eligible":`)
	w.Bool(v.Eligible)
	w.RawByte('}')
}

// viewJSON renders a view through its tinyjson writer.
func viewJSON(v tinyjson.Marshaler) *string {
	b, err := tinyjson.Marshal(v)
	if err != nil {
		sdk.Abort("failed to serialize view")
	}
	return strptr(string(b))
}

// GetInfo returns the global token state as JSON.
//
//go:wasmexport token_get_info
func GetInfo(_ *string) *string {
	cfg := requireConfig()
	l := loadLedger()
	return viewJSON(&TokenInfoView{
		TotalIssued:      l.TotalIssued,
		MaxSupply:        MaxSupply,
		CumulativeIndex:  l.CumulativeIndex,
		UnitPrice:        cfg.UnitPrice,
		ThresholdPercent: cfg.ThresholdPercent,
		Treasury:         cfg.Treasury.String(),
		Paused:           cfg.Paused,
	})
}

// GetHolder returns the holder record for an address. Unknown addresses get a
// zeroed view rather than an error; reads never create records.
// Payload: "hive:alice"
//
//go:wasmexport token_get_holder
func GetHolder(payload *string) *string {
	requireConfig()
	addr := decodeAddressArg(payload)

	view := &HolderView{Address: addr.String()}
	if h, ok := loadHolder(addr); ok {
		l := loadLedger()
		view.Balance = h.Balance
		view.SnapshotIndex = h.SnapshotIndex
		view.UnclaimedCredit = h.UnclaimedCredit
		view.Pending = pendingCredit(l, h)
		view.LastClaimedAt = h.LastClaimedAt
	}
	return viewJSON(view)
}

// IsEligible checks whether the address holds at least the configured
// percentage of the issued supply.
// Payload: "hive:alice"
//
//go:wasmexport token_is_eligible
func IsEligible(payload *string) *string {
	cfg := requireConfig()
	addr := decodeAddressArg(payload)

	l := loadLedger()
	var balance uint64
	if h, ok := loadHolder(addr); ok {
		balance = h.Balance
	}
	// threshold has no upper bound, so the required product can exceed 64
	// bits; balance*100 stays well under it with the capped supply
	needHi, needLo := bits.Mul64(l.TotalIssued, cfg.ThresholdPercent)
	return viewJSON(&EligibilityView{
		Address:  addr.String(),
		Eligible: needHi == 0 && balance*100 >= needLo,
	})
}
