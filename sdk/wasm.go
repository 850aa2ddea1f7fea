//go:build tinygo

package sdk

import "strconv"

//go:wasmimport sdk console.log
func hostLog(s *string) *string

//go:wasmimport sdk db.set_object
func hostStateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func hostStateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func hostStateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func hostGetEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func hostGetEnvKey(arg *string) *string

//go:wasmimport sdk hive.get_balance
func hostGetBalance(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.draw
func hostHiveDraw(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.transfer
func hostHiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string

//go:wasmimport env abort
func hostAbort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func hostRevert(msg, symbol *string)

// wasmHost routes every Host call straight into the chain imports.
type wasmHost struct{}

func init() {
	SetHost(wasmHost{})
}

func (wasmHost) Log(msg string) {
	hostLog(&msg)
}

func (wasmHost) StateSet(key, value string) {
	hostStateSetObject(&key, &value)
}

func (wasmHost) StateGet(key string) *string {
	return hostStateGetObject(&key)
}

func (wasmHost) StateDelete(key string) {
	hostStateDeleteObject(&key)
}

func (wasmHost) EnvJSON() string {
	return *hostGetEnv(nil)
}

func (wasmHost) EnvKey(key string) *string {
	return hostGetEnvKey(&key)
}

func (wasmHost) Balance(addr string, asset string) int64 {
	balStr := *hostGetBalance(&addr, &asset)
	bal, err := strconv.ParseInt(balStr, 10, 64)
	if err != nil {
		panic(err)
	}
	return bal
}

func (wasmHost) Draw(amount int64, asset string) {
	amt := strconv.FormatInt(amount, 10)
	hostHiveDraw(&amt, &asset)
}

func (wasmHost) Transfer(to string, amount int64, asset string) {
	amt := strconv.FormatInt(amount, 10)
	hostHiveTransfer(&to, &amt, &asset)
}

func (wasmHost) Abort(msg string) {
	ln := int32(0)
	hostAbort(&msg, nil, &ln, &ln)
}

func (wasmHost) Revert(msg, symbol string) {
	hostRevert(&msg, &symbol)
}
