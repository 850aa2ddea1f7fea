package main

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"koban_token/sdk"
)

const (
	ownerAddress = "hive:kobanowner"
	treasuryAddr = "hive:kobantreasury"
	aliceAddr    = "hive:alice"
	bobAddr      = "hive:bob"
)

// defaultUnitPrice is the raw scaled mint price used by most tests: 100
// milli-hive per unit.
const defaultUnitPrice = 100

var testGenesis = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestHost wires a fresh mock host into the sdk for one test.
func newTestHost() *sdk.MockHost {
	h := sdk.NewMockHost()
	h.Timestamp = testGenesis.Format("2006-01-02T15:04:05")
	h.Use()
	return h
}

// call runs fn as one chain transaction: fresh tx id, kv snapshot upfront,
// rollback when the contract reverts or aborts. This mirrors the platform's
// per-transaction atomicity, which the contract itself never re-implements.
func call(h *sdk.MockHost, sender string, fn func() *string) (*string, *sdk.HostError) {
	h.BeginTx(sender)
	snap := h.Snapshot()

	var result *string
	var hostErr *sdk.HostError
	func() {
		defer func() {
			if r := recover(); r != nil {
				he, ok := r.(*sdk.HostError)
				if !ok {
					panic(r)
				}
				h.Restore(snap)
				hostErr = he
			}
		}()
		result = fn()
	}()
	return result, hostErr
}

// mustCall fails the test when the transaction did not go through.
func mustCall(t *testing.T, h *sdk.MockHost, sender string, fn func() *string) *string {
	t.Helper()
	res, err := call(h, sender, fn)
	require.Nil(t, err, "expected call to succeed")
	return res
}

// mustRevert asserts the transaction failed with the given symbol.
func mustRevert(t *testing.T, h *sdk.MockHost, sender string, symbol string, fn func() *string) {
	t.Helper()
	_, err := call(h, sender, fn)
	require.NotNil(t, err, "expected call to revert")
	require.Equal(t, symbol, err.Symbol)
}

// initToken deploys the default config: owner, treasury, price 100.
func initToken(t *testing.T, h *sdk.MockHost) {
	t.Helper()
	payload := fmt.Sprintf("%s|%d", treasuryAddr, defaultUnitPrice)
	mustCall(t, h, ownerAddress, func() *string { return ContractInit(&payload) })
}

// purchase mints units for the sender, limit is the human amount string.
func purchase(t *testing.T, h *sdk.MockHost, sender, limit string) {
	t.Helper()
	h.BeginTx(sender)
	h.AllowTransfer(limit, DividendAsset)
	res, err := callCurrentTx(h, func() *string { return Purchase(nil) })
	require.Nil(t, err, "purchase by %s failed", sender)
	require.NotNil(t, res)
}

// deposit injects dividend value from the sender.
func deposit(t *testing.T, h *sdk.MockHost, sender, limit string) {
	t.Helper()
	h.BeginTx(sender)
	h.AllowTransfer(limit, DividendAsset)
	_, err := callCurrentTx(h, func() *string { return Deposit(nil) })
	require.Nil(t, err, "deposit by %s failed", sender)
}

// callCurrentTx is the intent-carrying variant of call: the caller already
// began the transaction and attached intents.
func callCurrentTx(h *sdk.MockHost, fn func() *string) (*string, *sdk.HostError) {
	snap := h.Snapshot()

	var result *string
	var hostErr *sdk.HostError
	func() {
		defer func() {
			if r := recover(); r != nil {
				he, ok := r.(*sdk.HostError)
				if !ok {
					panic(r)
				}
				h.Restore(snap)
				hostErr = he
			}
		}()
		result = fn()
	}()
	return result, hostErr
}

// advanceDays moves the mock chain clock forward from genesis.
func advanceDays(h *sdk.MockHost, days int) {
	h.Timestamp = testGenesis.AddDate(0, 0, days).Format("2006-01-02T15:04:05")
}

// holderView fetches the holder read surface and decodes the JSON.
func holderView(t *testing.T, h *sdk.MockHost, addr string) map[string]interface{} {
	t.Helper()
	res := mustCall(t, h, addr, func() *string {
		payload := addr
		return GetHolder(&payload)
	})
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(*res), &out))
	return out
}

// infoView fetches the global read surface and decodes the JSON.
func infoView(t *testing.T, h *sdk.MockHost) map[string]interface{} {
	t.Helper()
	res := mustCall(t, h, ownerAddress, func() *string { return GetInfo(nil) })
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(*res), &out))
	return out
}

// num reads a numeric JSON field without the float noise at call sites.
func num(view map[string]interface{}, field string) int64 {
	v, ok := view[field].(float64)
	if !ok {
		return -1
	}
	return int64(v)
}
