package testutil

import "sync"

// Reset hooks clear process-wide state between tests. The registry starts
// empty: nothing in this repository holds singleton state yet, but suites
// call ResetAll from TestMain so that anything registered later is cleared
// without touching the tests themselves.

var (
	resetMu    sync.Mutex
	resetHooks []func()
)

// RegisterReset adds a hook to run on every ResetAll call.
func RegisterReset(fn func()) {
	if fn == nil {
		return
	}
	resetMu.Lock()
	defer resetMu.Unlock()
	resetHooks = append(resetHooks, fn)
}

// ResetAll runs every registered reset hook in registration order.
func ResetAll() {
	resetMu.Lock()
	hooks := make([]func(), len(resetHooks))
	copy(hooks, resetHooks)
	resetMu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// ClearResets empties the registry. Intended for tests of the registry
// itself.
func ClearResets() {
	resetMu.Lock()
	defer resetMu.Unlock()
	resetHooks = nil
}
