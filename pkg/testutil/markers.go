package testutil

import (
	"os"
	"testing"
)

// Markers classify tests for selective execution, mirroring the category
// labels the external runner filters on. A marker never changes what the
// test body does; it only decides whether the body runs at all.

// Unit marks a test as a unit test. Unit tests always run.
func Unit(t *testing.T) {
	t.Helper()
}

// Integration skips the test unless TESTKIT_RUN_INTEGRATION is set.
func Integration(t *testing.T) {
	t.Helper()
	requireMarkerEnv(t, "TESTKIT_RUN_INTEGRATION", "integration")
}

// Slow skips the test when running with -short.
func Slow(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping slow test in short mode")
	}
}

// Network skips the test unless TESTKIT_RUN_NETWORK is set.
func Network(t *testing.T) {
	t.Helper()
	requireMarkerEnv(t, "TESTKIT_RUN_NETWORK", "network")
}

// Database skips the test unless TESTKIT_RUN_DATABASE is set.
func Database(t *testing.T) {
	t.Helper()
	requireMarkerEnv(t, "TESTKIT_RUN_DATABASE", "database")
}

func requireMarkerEnv(t *testing.T, envVar, label string) {
	t.Helper()
	if os.Getenv(envVar) == "" {
		t.Skipf("Skipping %s test: %s not set", label, envVar)
	}
}
