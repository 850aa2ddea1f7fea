package main

import (
	"strconv"
	"strings"

	"koban_token/sdk"
)

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// requireConfig loads the configuration and reverts when the contract has not
// been initialized yet.
func requireConfig() *Config {
	cfg := loadConfig()
	if cfg == nil {
		sdk.Revert("contract not initialized", "not_initialized")
	}
	return cfg
}

// loadConfig loads the contract configuration from state.
func loadConfig() *Config {
	ptr := sdk.StateGetObject(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg := decodeConfig(*ptr)
	if cfg == nil {
		sdk.Abort("corrupt contract config")
	}
	return cfg
}

// saveConfig stores the contract configuration to state.
func saveConfig(cfg *Config) {
	sdk.StateSetObject(ContractConfigKey, encodeConfig(cfg))
}

// requireOwner reverts unless the current sender is the contract owner.
func requireOwner(cfg *Config) {
	if getSenderAddress() != cfg.Owner {
		sdk.Revert("caller is not the contract owner", "unauthorized")
	}
}

// -----------------------------------------------------------------------------
// Contract Config Encoding
// -----------------------------------------------------------------------------

// encodeConfig serializes Config to a pipe-delimited string.
// Format: owner|treasury|unitPrice|thresholdPercent|paused
func encodeConfig(cfg *Config) string {
	pausedStr := "0"
	if cfg.Paused {
		pausedStr = "1"
	}
	return strings.Join([]string{
		cfg.Owner.String(),
		cfg.Treasury.String(),
		strconv.FormatInt(int64(cfg.UnitPrice), 10),
		strconv.FormatUint(cfg.ThresholdPercent, 10),
		pausedStr,
	}, "|")
}

// decodeConfig deserializes a pipe-delimited string to Config.
func decodeConfig(data string) *Config {
	parts := strings.Split(data, "|")
	if len(parts) < 5 {
		return nil
	}
	price, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return nil
	}
	threshold, err := strconv.ParseUint(parts[3], 10, 64)
	if err != nil {
		return nil
	}
	return &Config{
		Owner:            AddressFromString(parts[0]),
		Treasury:         AddressFromString(parts[1]),
		UnitPrice:        Amount(price),
		ThresholdPercent: threshold,
		Paused:           parts[4] == "1",
	}
}
