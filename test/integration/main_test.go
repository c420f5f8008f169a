package integration_test

import (
	"os"
	"sync"
	"testing"

	"taskhub_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, creating it on first
// use. The suite runs against a real Postgres: set DATABASE_URL to a
// throwaway test database, otherwise every test is skipped.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}

	serverOnce.Do(func() {
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration_test_secret_12345")
		}
		os.Setenv("SERVER_ENV", "test")

		globalTestServer = helpers.NewTestServer(t)
	})

	ts := globalTestServer
	ts.ClearTables(t)
	return ts
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}

	os.Exit(code)
}
