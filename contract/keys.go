package main

import "koban_token/sdk"

// ledgerKey is the single-byte key under which the global ledger lives.
func ledgerKey() string {
	return string([]byte{kLedger})
}

// holderKey mixes the prefix byte with the raw address so every holder record
// sits in its own kv slot without nested maps in host storage.
func holderKey(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kHolder)
	buf = append(buf, addrStr...)
	return string(buf)
}
