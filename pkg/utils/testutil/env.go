package testutil

import (
	"os"
	"strings"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
// Integration tests against BigQuery, Firestore and GitHub are enabled this way.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	return GetEnvsOrSkip(t, key)[0]
}

// GetEnvsOrSkip returns the values of all keys in order. The test is skipped, naming every
// missing variable, unless all of them are set.
func GetEnvsOrSkip(t *testing.T, keys ...string) []string {
	t.Helper()

	values := make([]string, len(keys))
	var missing []string
	for i, key := range keys {
		values[i] = os.Getenv(key)
		if values[i] == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		t.Skipf("Environment variable %s is not set, skipping test", strings.Join(missing, ", "))
	}
	return values
}
