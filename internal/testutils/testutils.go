package testutils

import (
	"testing"

	"github.com/evermorehealth/portal/internal/config"
	"github.com/joho/godotenv"
)

// baseTestEnv is the dotenv document every test configuration starts from.
const baseTestEnv = `
APP_ENV=test
SESSION_SECRET=a-very-secret-key-for-testing-!
BACKEND_TIMEOUT=2s
RATE_LIMIT_PER_SECOND=1000
`

// ConfigForTests returns a config.Provider pointed at backendURL.
// Extra lines in dotenv syntax override the defaults.
func ConfigForTests(t *testing.T, backendURL string, extra ...string) *config.Config {
	t.Helper()

	// 1. Parse the base document and each override with the dotenv parser.
	env, err := godotenv.Unmarshal(baseTestEnv)
	if err != nil {
		t.Fatalf("failed to parse base test env: %v", err)
	}
	for _, doc := range extra {
		overrides, err := godotenv.Unmarshal(doc)
		if err != nil {
			t.Fatalf("failed to parse test env override %q: %v", doc, err)
		}
		for k, v := range overrides {
			env[k] = v
		}
	}
	env["BACKEND_URL"] = backendURL

	// 2. Build the config from the map instead of the process environment.
	cfg, err := config.Load(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		t.Fatalf("failed to build test config: %v", err)
	}
	return cfg
}
