package sdk

import "strings"

type AddressType string

const (
	AddressTypeEVM     AddressType = "evm"
	AddressTypeKey     AddressType = "key"
	AddressTypeHive    AddressType = "hive"
	AddressTypeSystem  AddressType = "system"
	AddressTypeUnknown AddressType = "unknown"
)

type Address string

// String returns the literal representation (like hive:alice) of the address.
// Example payload: sdk.Address("hive:foo").String()
func (a Address) String() string {
	return string(a)
}

// Type inspects the DID prefix to categorize the address (evm, key, hive,...).
// Example payload: sdk.Address("did:pkh:eip155").Type()
func (a Address) Type() AddressType {
	if strings.HasPrefix(a.String(), "did:pkh:eip155") {
		return AddressTypeEVM
	} else if strings.HasPrefix(a.String(), "did:key:") {
		return AddressTypeKey
	} else if strings.HasPrefix(a.String(), "hive:") {
		return AddressTypeHive
	} else if strings.HasPrefix(a.String(), "system:") {
		return AddressTypeSystem
	}
	return AddressTypeUnknown
}

// IsValid returns false if the address type detection failed, used as a light sanity check.
// Example payload: sdk.Address("foo").IsValid()
func (a Address) IsValid() bool {
	return a.Type() != AddressTypeUnknown
}
