package main

import (
	"fmt"
	"strconv"
	"strings"

	"koban_token/sdk"
)

// -----------------------------------------------------------------------------
// Payload Decoding
//
// Call payloads are pipe-delimited strings, optionally wrapped in quotes by
// the JSON envelope the chain delivers them in.
// -----------------------------------------------------------------------------

// unwrapPayload trims the payload and strips one layer of quoting, reverting
// with errMsg when nothing usable remains.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Revert(errMsg, "invalid_payload")
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Revert(errMsg, "invalid_payload")
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Revert(errMsg, "invalid_payload")
			}
		}
	}
	return raw
}

// splitPayload cuts the unwrapped payload at pipes.
func splitPayload(raw string) []string {
	return strings.Split(raw, "|")
}

// payloadField returns an accessor that hands back "" for missing positions
// so optional trailing fields dont need length checks at every call site.
func payloadField(parts []string) func(int) string {
	return func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}
}

// parseUintField is the uint variant used for percentages and unit counts.
func parseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Revert(fmt.Sprintf("invalid %s", field), "invalid_payload")
	}
	return n
}

// parseAmountField reads a raw scaled amount (int64) for prices.
func parseAmountField(val string, field string) Amount {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		sdk.Revert(fmt.Sprintf("invalid %s", field), "invalid_payload")
	}
	return Amount(n)
}

// decodeTransferArgs unpacks the "to|units" payload of token_transfer.
func decodeTransferArgs(payload *string) *TransferArgs {
	raw := unwrapPayload(payload, "transfer payload required (to|units)")
	parts := splitPayload(raw)
	if len(parts) < 2 {
		sdk.Revert("transfer payload requires to|units", "invalid_payload")
	}
	to := AddressFromString(strings.TrimSpace(parts[0]))
	if !to.IsValid() {
		sdk.Revert("recipient address required", "zero_address")
	}
	return &TransferArgs{
		To:    to,
		Units: parseUintField(parts[1], "unit count"),
	}
}

// decodeAddressArg unpacks a single-address payload used by the views.
func decodeAddressArg(payload *string) sdk.Address {
	addr := AddressFromString(unwrapPayload(payload, "address required"))
	if !addr.IsValid() {
		sdk.Revert("address required", "zero_address")
	}
	return addr
}
