package testutil

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvSnapshotCopiesVariables(t *testing.T) {
	t.Setenv("TESTKIT_SNAPSHOT_PROBE", "value")

	snapshot := EnvSnapshot()
	require.Equal(t, "value", snapshot["TESTKIT_SNAPSHOT_PROBE"])

	// Mutating the snapshot must not leak into the process env.
	snapshot["TESTKIT_SNAPSHOT_PROBE"] = "mutated"
	refreshed := EnvSnapshot()
	assert.Equal(t, "value", refreshed["TESTKIT_SNAPSHOT_PROBE"])
}

func TestEnvOverlay(t *testing.T) {
	before := EnvSnapshot()

	t.Run("applies overlay and restores exactly", func(t *testing.T) {
		overlay := EnvOverlay(t)

		assert.Equal(t, "testing", os.Getenv("TEST_ENV"))
		assert.Equal(t, "test_api_key_123", os.Getenv("API_KEY"))
		assert.Equal(t, "true", os.Getenv("DEBUG"))
		assert.Equal(t, "testing", overlay["TEST_ENV"])

		// A variable mutated outside the overlay must be reverted too.
		require.NoError(t, os.Setenv("TESTKIT_LEAKED", "oops"))
	})

	after := EnvSnapshot()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("environment not restored exactly\nbefore: %v\nafter: %v", before, after)
	}
	_, leaked := os.LookupEnv("TESTKIT_LEAKED")
	assert.False(t, leaked, "overlay teardown should remove leaked variables")
}

func TestEnvOverlayWithShadowedVariable(t *testing.T) {
	t.Setenv("TESTKIT_SHADOWED", "original")

	t.Run("overlay shadows then restores", func(t *testing.T) {
		EnvOverlayWith(t, map[string]string{"TESTKIT_SHADOWED": "overlaid"})
		assert.Equal(t, "overlaid", os.Getenv("TESTKIT_SHADOWED"))
	})

	assert.Equal(t, "original", os.Getenv("TESTKIT_SHADOWED"))
}

func TestSetenv(t *testing.T) {
	t.Run("sets for test duration", func(t *testing.T) {
		Setenv(t, "TESTKIT_SETENV_PROBE", "on")
		assert.Equal(t, "on", os.Getenv("TESTKIT_SETENV_PROBE"))
	})

	_, set := os.LookupEnv("TESTKIT_SETENV_PROBE")
	assert.False(t, set, "variable should be unset after the subtest")
}
