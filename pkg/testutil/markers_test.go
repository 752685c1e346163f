package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitMarkerNeverSkips(t *testing.T) {
	Unit(t)
	assert.False(t, t.Skipped())
}

func TestIntegrationMarkerSkipsWithoutEnv(t *testing.T) {
	t.Setenv("TESTKIT_RUN_INTEGRATION", "")

	skipped := runMarkedSubtest(t, Integration)
	assert.True(t, skipped, "integration test should skip without TESTKIT_RUN_INTEGRATION")
}

func TestIntegrationMarkerRunsWithEnv(t *testing.T) {
	t.Setenv("TESTKIT_RUN_INTEGRATION", "1")

	skipped := runMarkedSubtest(t, Integration)
	assert.False(t, skipped)
}

func TestNetworkAndDatabaseMarkers(t *testing.T) {
	t.Setenv("TESTKIT_RUN_NETWORK", "")
	t.Setenv("TESTKIT_RUN_DATABASE", "")

	assert.True(t, runMarkedSubtest(t, Network))
	assert.True(t, runMarkedSubtest(t, Database))

	t.Setenv("TESTKIT_RUN_NETWORK", "yes")
	t.Setenv("TESTKIT_RUN_DATABASE", "yes")

	assert.False(t, runMarkedSubtest(t, Network))
	assert.False(t, runMarkedSubtest(t, Database))
}

// runMarkedSubtest applies the marker in a subtest and reports whether the
// subtest was skipped.
func runMarkedSubtest(t *testing.T, marker func(*testing.T)) bool {
	t.Helper()

	var skipped bool
	t.Run("marked", func(t *testing.T) {
		defer func() { skipped = t.Skipped() }()
		marker(t)
	})
	return skipped
}
