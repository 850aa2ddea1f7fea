package sdk

import (
	"encoding/json"
	"fmt"
)

// HostError is the panic payload MockHost raises for aborts and reverts so
// test harnesses can recover it and assert on the symbol.
type HostError struct {
	Msg    string
	Symbol string
}

func (e *HostError) Error() string {
	if e.Symbol != "" {
		return e.Symbol + ": " + e.Msg
	}
	return e.Msg
}

// TransferRecord captures one outbound transfer or inbound draw for assertions.
type TransferRecord struct {
	To     string
	Amount int64
	Asset  string
}

// MockHost is an in-memory Host used by unit tests. State lives in a plain
// map, value movements are recorded instead of executed, and the env fields
// are settable per transaction.
type MockHost struct {
	kv       map[string]string
	balances map[string]int64

	Transfers []TransferRecord
	Draws     []TransferRecord
	Logs      []string

	Sender    string
	TxId      string
	Timestamp string
	Intents   []Intent

	// FailTransfer makes the next Transfer abort, simulating a rejected
	// outbound payment.
	FailTransfer bool
	// OnTransfer runs before a transfer is recorded, useful for inspecting
	// contract state at interaction time.
	OnTransfer func(TransferRecord)

	txCounter int
}

// NewMockHost returns a mock with an empty kv store and a default env.
func NewMockHost() *MockHost {
	return &MockHost{
		kv:        map[string]string{},
		balances:  map[string]int64{},
		Sender:    "hive:tester",
		TxId:      "tx-0",
		Timestamp: "2025-01-01T00:00:00",
	}
}

// Use installs this mock as the active sdk host.
func (m *MockHost) Use() {
	SetHost(m)
}

// BeginTx starts a fresh transaction for the given sender: new tx.id, no
// carried-over intents. Contracts cache per tx.id, so every simulated call
// must go through here.
func (m *MockHost) BeginTx(sender string) {
	m.txCounter++
	m.TxId = fmt.Sprintf("tx-%d", m.txCounter)
	m.Sender = sender
	m.Intents = nil
}

// AllowTransfer attaches a transfer.allow intent to the current transaction.
// Limit is the human-readable amount string, like "1.000".
func (m *MockHost) AllowTransfer(limit string, asset Asset) {
	m.Intents = append(m.Intents, Intent{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": asset.String()},
	})
}

// Snapshot copies the kv store so a harness can roll back after a revert,
// mirroring the chain's per-transaction atomicity.
func (m *MockHost) Snapshot() map[string]string {
	snap := make(map[string]string, len(m.kv))
	for k, v := range m.kv {
		snap[k] = v
	}
	return snap
}

// Restore replaces the kv store with an earlier snapshot.
func (m *MockHost) Restore(snap map[string]string) {
	m.kv = make(map[string]string, len(snap))
	for k, v := range snap {
		m.kv[k] = v
	}
}

// SetBalance seeds a hive balance for GetBalance queries.
func (m *MockHost) SetBalance(addr Address, asset Asset, amount int64) {
	m.balances[addr.String()+"|"+asset.String()] = amount
}

func (m *MockHost) Log(msg string) {
	m.Logs = append(m.Logs, msg)
}

func (m *MockHost) StateSet(key, value string) {
	m.kv[key] = value
}

func (m *MockHost) StateGet(key string) *string {
	val, ok := m.kv[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockHost) StateDelete(key string) {
	delete(m.kv, key)
}

func (m *MockHost) EnvJSON() string {
	env := map[string]interface{}{
		"contract.id":                "contract:koban",
		"tx.id":                      m.TxId,
		"block.id":                   "block-1",
		"block.timestamp":            m.Timestamp,
		"msg.sender":                 m.Sender,
		"msg.required_auths":         []string{m.Sender},
		"msg.required_posting_auths": []string{},
		"intents":                    m.Intents,
	}
	b, _ := json.Marshal(env)
	return string(b)
}

func (m *MockHost) EnvKey(key string) *string {
	switch key {
	case "tx.id":
		return &m.TxId
	case "block.timestamp":
		return &m.Timestamp
	case "msg.sender":
		return &m.Sender
	default:
		return nil
	}
}

func (m *MockHost) Balance(addr string, asset string) int64 {
	return m.balances[addr+"|"+asset]
}

func (m *MockHost) Draw(amount int64, asset string) {
	m.Draws = append(m.Draws, TransferRecord{To: "contract:koban", Amount: amount, Asset: asset})
}

func (m *MockHost) Transfer(to string, amount int64, asset string) {
	rec := TransferRecord{To: to, Amount: amount, Asset: asset}
	if m.OnTransfer != nil {
		m.OnTransfer(rec)
	}
	if m.FailTransfer {
		m.Abort(fmt.Sprintf("transfer to %s rejected", to))
	}
	m.Transfers = append(m.Transfers, rec)
}

func (m *MockHost) Abort(msg string) {
	panic(&HostError{Msg: msg})
}

func (m *MockHost) Revert(msg, symbol string) {
	panic(&HostError{Msg: msg, Symbol: symbol})
}
