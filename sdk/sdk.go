package sdk

import "encoding/json"

// Host is the chain runtime surface the contract talks to. The wasm build
// binds it to the real host imports, tests plug in MockHost instead.
type Host interface {
	Log(msg string)
	StateSet(key, value string)
	StateGet(key string) *string
	StateDelete(key string)
	EnvJSON() string
	EnvKey(key string) *string
	Balance(addr string, asset string) int64
	Draw(amount int64, asset string)
	Transfer(to string, amount int64, asset string)
	Abort(msg string)
	Revert(msg, symbol string)
}

// active host, set once at startup (wasm init or test setup)
var host Host

// SetHost installs the runtime implementation. The tinygo build does this in
// init(), tests call it through MockHost.Use().
func SetHost(h Host) {
	host = h
}

func activeHost() Host {
	if host == nil {
		panic("sdk: host not initialized")
	}
	return host
}

// Log writes a message to the host console so we can trace contract steps.
// Example payload: sdk.Log("hello token")
func Log(s string) {
	activeHost().Log(s)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("count", "5")
func StateSetObject(key string, value string) {
	activeHost().StateSet(key, value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("count")
func StateGetObject(key string) *string {
	return activeHost().StateGet(key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("count")
func StateDeleteObject(key string) {
	activeHost().StateDelete(key)
}

// GetEnv pulls the JSON env blob from the host and maps it to the Env struct.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	envStr := activeHost().EnvJSON()
	env := Env{}
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	if v, ok := envMap["contract.id"].(string); ok {
		env.ContractId = v
	}
	if v, ok := envMap["tx.id"].(string); ok {
		env.TxId = v
	}
	if v, ok := envMap["block.id"].(string); ok {
		env.BlockId = v
	}
	if v, ok := envMap["block.timestamp"].(string); ok {
		env.Timestamp = v
	}

	requiredAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				requiredAuths = append(requiredAuths, Address(addr))
			}
		}
	}
	requiredPostingAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_posting_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				requiredPostingAuths = append(requiredPostingAuths, Address(addr))
			}
		}
	}

	sender := ""
	if v, ok := envMap["msg.sender"].(string); ok {
		sender = v
	}
	env.Sender = Sender{
		Address:              Address(sender),
		RequiredAuths:        requiredAuths,
		RequiredPostingAuths: requiredPostingAuths,
	}

	if rawIntents, ok := envMap["intents"]; ok {
		if b, err := json.Marshal(rawIntents); err == nil {
			json.Unmarshal(b, &env.Intents)
		}
	}

	return env
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("tx.id")
func GetEnvKey(key string) *string {
	return activeHost().EnvKey(key)
}

// GetBalance queries the hive balance for the given account+asset combo.
// Example payload: sdk.GetBalance(sdk.Address("hive:foo"), sdk.AssetHive)
func GetBalance(address Address, asset Asset) int64 {
	return activeHost().Balance(address.String(), asset.String())
}

// HiveDraw pulls tokens from the caller to the contract within the transfer.allow limit.
// Example payload: sdk.HiveDraw(1000, sdk.AssetHive)
func HiveDraw(amount int64, asset Asset) {
	activeHost().Draw(amount, asset.String())
}

// HiveTransfer sends tokens from the contract towards a user address.
// Example payload: sdk.HiveTransfer(sdk.Address("hive:foo"), 500, sdk.AssetHive)
func HiveTransfer(to Address, amount int64, asset Asset) {
	activeHost().Transfer(to.String(), amount, asset.String())
}

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("corrupt holder record")
func Abort(msg string) {
	activeHost().Abort(msg)
	panic(msg)
}

// Revert throws a named error back to the caller (like revert in solidity) with a short symbol.
// Example payload: sdk.Revert("cooldown not elapsed", "claim_too_soon")
func Revert(msg string, symbol string) {
	activeHost().Revert(msg, symbol)
	panic(msg)
}
