package integration_test

import (
	"encoding/json"
	"os"
	"sync"
	"testing"

	"membrostotal_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, creating it on first
// use. Tests are skipped entirely when DATABASE_URL is not set.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration tests")
	}
	serverOnce.Do(func() {
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration-test-secret")
		}
		os.Setenv("SERVER_ENV", "test")
		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()
	if globalTestServer != nil {
		globalTestServer.Close()
	}
	os.Exit(code)
}

func decode(t *testing.T, body string, out interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", body, err)
	}
}
