package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"koban_token/sdk"
)

func transferUnits(t *testing.T, h *sdk.MockHost, sender, to string, units uint64) {
	t.Helper()
	payload := fmt.Sprintf("%s|%d", to, units)
	mustCall(t, h, sender, func() *string { return Transfer(&payload) })
}

func TestTransferSettlesBothSidesFirst(t *testing.T) {
	h := newTestHost()
	initToken(t, h)
	purchase(t, h, aliceAddr, "0.250") // alice: 2 units at index 0
	deposit(t, h, ownerAddress, "0.010")

	// index is 5; the move must settle alice on her full 2 units and pin
	// bob's snapshot to 5 before his balance appears
	transferUnits(t, h, aliceAddr, bobAddr, 1)

	alice := holderView(t, h, aliceAddr)
	assert.Equal(t, int64(1), num(alice, "balance"))
	assert.Equal(t, int64(10), num(alice, "unclaimed_credit"))
	assert.Equal(t, int64(5), num(alice, "snapshot_index"))

	bob := holderView(t, h, bobAddr)
	assert.Equal(t, int64(1), num(bob, "balance"))
	assert.Equal(t, int64(0), num(bob, "unclaimed_credit"))
	assert.Equal(t, int64(5), num(bob, "snapshot_index"))

	// the next deposit accrues per post-transfer balances
	deposit(t, h, ownerAddress, "0.010") // index 10
	assert.Equal(t, int64(5), num(holderView(t, h, aliceAddr), "pending"))
	assert.Equal(t, int64(5), num(holderView(t, h, bobAddr), "pending"))
}

func TestTransferRequiresBalance(t *testing.T) {
	h := newTestHost()
	initToken(t, h)
	purchase(t, h, aliceAddr, "0.250")

	payload := fmt.Sprintf("%s|3", bobAddr)
	mustRevert(t, h, aliceAddr, "insufficient_shares", func() *string { return Transfer(&payload) })

	// holders without a record fail the same way
	payload2 := fmt.Sprintf("%s|1", aliceAddr)
	mustRevert(t, h, bobAddr, "insufficient_shares", func() *string { return Transfer(&payload2) })
}

func TestTransferRejectsZeroUnits(t *testing.T) {
	h := newTestHost()
	initToken(t, h)
	purchase(t, h, aliceAddr, "0.250")

	payload := fmt.Sprintf("%s|0", bobAddr)
	mustRevert(t, h, aliceAddr, "invalid_amount", func() *string { return Transfer(&payload) })
}

func TestTransferRejectsBadRecipient(t *testing.T) {
	h := newTestHost()
	initToken(t, h)
	purchase(t, h, aliceAddr, "0.250")

	payload := "notanaddress|1"
	mustRevert(t, h, aliceAddr, "zero_address", func() *string { return Transfer(&payload) })
}

func TestSelfTransferOnlySettles(t *testing.T) {
	h := newTestHost()
	initToken(t, h)
	purchase(t, h, aliceAddr, "0.250")
	deposit(t, h, ownerAddress, "0.010")

	logsBefore := len(h.Logs)
	transferUnits(t, h, aliceAddr, aliceAddr, 1)

	alice := holderView(t, h, aliceAddr)
	assert.Equal(t, int64(2), num(alice, "balance"))
	assert.Equal(t, int64(10), num(alice, "unclaimed_credit"))
	assert.Equal(t, int64(0), num(alice, "pending"))

	// self-transfers still show up in the event stream
	require.Greater(t, len(h.Logs), logsBefore)
	assert.Equal(t, fmt.Sprintf("kt|from:%s|to:%s|u:1", aliceAddr, aliceAddr), h.Logs[len(h.Logs)-1])
}

func TestTransferAllowedWhilePaused(t *testing.T) {
	h := newTestHost()
	initToken(t, h)
	purchase(t, h, aliceAddr, "0.250")
	mustCall(t, h, ownerAddress, func() *string { return Pause(nil) })

	transferUnits(t, h, aliceAddr, bobAddr, 1)

	require.Equal(t, int64(1), num(holderView(t, h, bobAddr), "balance"))
}
