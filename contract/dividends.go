package main

// -----------------------------------------------------------------------------
// Dividend Accounting Engine
//
// Dividends are never distributed by iterating holders. Each deposit raises a
// single global per-unit index; a holder's share is realized lazily the next
// time that holder is touched. The one rule everything else hangs on: settle
// a holder BEFORE any mutation of its balance and before claiming its credit,
// always against the pre-mutation balance.
// -----------------------------------------------------------------------------

// settleHolder folds the holder's accrual since its last snapshot into
// UnclaimedCredit and advances the snapshot to the current index. Running it
// twice without an intervening deposit or balance change adds nothing.
func settleHolder(l *Ledger, h *Holder) {
	if h.SnapshotIndex == l.CumulativeIndex {
		return
	}
	h.UnclaimedCredit += Amount(h.Balance) * (l.CumulativeIndex - h.SnapshotIndex)
	h.SnapshotIndex = l.CumulativeIndex
}

// pendingCredit computes the not-yet-settled accrual without mutating the
// holder, used by the read surface.
func pendingCredit(l *Ledger, h *Holder) Amount {
	return Amount(h.Balance) * (l.CumulativeIndex - h.SnapshotIndex)
}

// applyDeposit spreads a deposit across the outstanding supply by bumping the
// per-unit index. Division floors: the sub-unit remainder stays pooled in the
// contract and rides along with the next deposit instead of being refunded.
// Returns the per-unit increment for the event log.
func applyDeposit(l *Ledger, amount Amount) Amount {
	perUnit := amount / Amount(l.TotalIssued)
	l.CumulativeIndex += perUnit
	return perUnit
}
