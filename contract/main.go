////////////////////////////////////////////////////////////////////////////////
// Koban Token: a capped-supply dividend token for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import "koban_token/sdk"

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit initializes the contract with the caller as owner.
// Must be called before any other function.
// Payload: "treasury|unitPrice[|eligibilityPercent]"
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Revert("contract already initialized", "initialized")
	}

	raw := unwrapPayload(payload, "init payload required (treasury|unitPrice)")
	parts := splitPayload(raw)
	get := payloadField(parts)

	treasury := AddressFromString(get(0))
	if !treasury.IsValid() {
		sdk.Revert("treasury address required", "zero_address")
	}
	price := parseAmountField(get(1), "unit price")
	if price <= 0 {
		sdk.Revert("unit price must be positive", "zero_price")
	}
	threshold := uint64(FallbackThresholdPercent)
	if v := get(2); v != "" {
		threshold = parseUintField(v, "eligibility percent")
	}

	cfg := Config{
		Owner:            getSenderAddress(),
		Treasury:         treasury,
		UnitPrice:        price,
		ThresholdPercent: threshold,
	}
	saveConfig(&cfg)
	saveLedger(&Ledger{})

	emitInitEvent(&cfg)
	return strptr("initialized")
}
