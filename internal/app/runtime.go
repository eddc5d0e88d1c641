package app

import (
	"os"
	"sync/atomic"
)

// TestModeEnv set to "1" builds the application without binding a listener or
// dialing Redis.
const TestModeEnv = "DASHBOARD_TEST_MODE"

var testMode atomic.Bool

func init() {
	RefreshTestMode()
}

// InTestMode reports whether the application should skip runtime side effects.
func InTestMode() bool {
	return testMode.Load()
}

// RefreshTestMode re-reads the flag after environment changes.
func RefreshTestMode() {
	testMode.Store(os.Getenv(TestModeEnv) == "1")
}
