package sdk

// Intent describes a user-granted capability attached to the transaction,
// like allowing the contract to draw up to a limit of some asset.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

// Sender identifies who signed the current transaction.
type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Env is the execution environment snapshot for the current transaction.
type Env struct {
	ContractId string
	TxId       string
	BlockId    string
	Timestamp  string
	Sender     Sender
	Intents    []Intent
}
