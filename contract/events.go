package main

import (
	"fmt"

	"koban_token/sdk"
)

// emitInitEvent leaves a one-line genesis marker with the starting config.
func emitInitEvent(cfg *Config) {
	sdk.Log(fmt.Sprintf(
		"ki|own:%s|tr:%s|p:%d|el:%d",
		cfg.Owner.String(),
		cfg.Treasury.String(),
		cfg.UnitPrice,
		cfg.ThresholdPercent,
	))
}

// emitPurchaseEvent records buyer, minted units and the payment forwarded to treasury.
func emitPurchaseEvent(buyer sdk.Address, units uint64, payment Amount, ts int64) {
	sdk.Log(fmt.Sprintf(
		"kp|by:%s|u:%d|am:%d|ts:%d",
		buyer.String(),
		units,
		payment,
		ts,
	))
}

// emitDepositEvent logs the raw deposit plus the index bump so entitlement math can be replayed from logs only.
func emitDepositEvent(amount Amount, perUnit Amount, index Amount, ts int64) {
	sdk.Log(fmt.Sprintf(
		"kd|am:%d|pu:%d|idx:%d|ts:%d",
		amount,
		perUnit,
		index,
		ts,
	))
}

// emitClaimEvent gives explorers the payout trail without scanning storage diffs.
func emitClaimEvent(holder sdk.Address, payout Amount, ts int64) {
	sdk.Log(fmt.Sprintf(
		"kc|by:%s|am:%d|ts:%d",
		holder.String(),
		payout,
		ts,
	))
}

// emitTransferEvent mirrors the purchase ping for holder-to-holder moves.
func emitTransferEvent(from, to sdk.Address, units uint64) {
	sdk.Log(fmt.Sprintf(
		"kt|from:%s|to:%s|u:%d",
		from.String(),
		to.String(),
		units,
	))
}

// emitConfigUpdatedEvent spells out field diffs so auditors can track sensitive flips.
func emitConfigUpdatedEvent(field string, old string, new string) {
	sdk.Log(fmt.Sprintf(
		"km|f:%s|old:%s|new:%s",
		field,
		old,
		new,
	))
}
