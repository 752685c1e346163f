package testutil

import (
	"os"
	"strings"
	"testing"
)

// DefaultOverlay is the set of variables EnvOverlay applies on top of the
// snapshotted environment.
var DefaultOverlay = map[string]string{
	"TEST_ENV":     "testing",
	"API_KEY":      "test_api_key_123",
	"SECRET_TOKEN": "test_secret_token",
	"DEBUG":        "true",
	"LOG_LEVEL":    "DEBUG",
}

// EnvSnapshot returns a copy of the current process environment.
// Mutating the returned map does not affect the process.
func EnvSnapshot() map[string]string {
	env := make(map[string]string)
	for _, entry := range os.Environ() {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		env[key] = value
	}
	return env
}

// EnvOverlay snapshots the process environment, applies DefaultOverlay,
// and returns the overlay map. The exact pre-snapshot environment is
// restored when the test completes, regardless of outcome: keys added by
// the overlay are removed, shadowed values come back, and variables the
// test body touched outside the overlay are reverted too.
func EnvOverlay(t *testing.T) map[string]string {
	t.Helper()
	return EnvOverlayWith(t, DefaultOverlay)
}

// EnvOverlayWith is EnvOverlay with a caller-supplied variable set.
func EnvOverlayWith(t *testing.T, vars map[string]string) map[string]string {
	t.Helper()

	snapshot := EnvSnapshot()

	overlay := make(map[string]string, len(vars))
	for key, value := range vars {
		overlay[key] = value
		if err := os.Setenv(key, value); err != nil {
			t.Fatalf("Failed to set environment variable %s: %v", key, err)
		}
	}

	t.Cleanup(func() {
		os.Clearenv()
		for key, value := range snapshot {
			if err := os.Setenv(key, value); err != nil {
				t.Errorf("Failed to restore environment variable %s: %v", key, err)
			}
		}
	})

	return overlay
}

// Setenv sets an environment variable for the duration of the test.
func Setenv(t *testing.T, key, value string) {
	t.Helper()

	original, wasSet := os.LookupEnv(key)

	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("Failed to set environment variable %s: %v", key, err)
	}

	t.Cleanup(func() {
		if wasSet {
			if err := os.Setenv(key, original); err != nil {
				t.Errorf("Failed to restore environment variable %s: %v", key, err)
			}
		} else {
			if err := os.Unsetenv(key); err != nil {
				t.Errorf("Failed to unset environment variable %s: %v", key, err)
			}
		}
	})
}
