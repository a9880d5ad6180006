package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("expected default of 1 step, got %d (%v)", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("expected 3 steps, got %d (%v)", got, err)
	}
	for _, raw := range []string{"0", "-2", "x"} {
		if _, err := parseSteps([]string{raw}); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if got, err := parseVersion("1"); err != nil || got != 1 {
		t.Fatalf("unexpected version %d (%v)", got, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if _, err := parseTarget("abc"); err == nil {
		t.Fatalf("expected error for non-numeric target")
	}
}

func TestResolveMigrationsDir_PrefersEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MIGRATIONS_DIR", dir)

	got, err := resolveMigrationsDir()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}
}

func TestNormalizeDBURL_Toggle(t *testing.T) {
	raw := "postgres://u:p@localhost:5432/club_stats?sslmode=disable"

	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "false")
	if got := normalizeDBURL(raw); got != raw {
		t.Fatalf("expected url unchanged, got %q", got)
	}

	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "yes")
	if got := normalizeDBURL(raw); !strings.Contains(got, "disable_prepared_binary_result=yes") {
		t.Fatalf("expected flag appended, got %q", got)
	}
}

func TestRun_Validation(t *testing.T) {
	logger := logging.NewNop()

	if err := run(context.Background(), nil, logger); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}

	t.Setenv("DB_URL", "")
	if err := run(context.Background(), []string{"up"}, logger); err == nil {
		t.Fatalf("expected error when DB_URL is missing")
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migration.env")
	if err := os.WriteFile(path, []byte("MIGRATIONS_PATH=/from/file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("APP_ENV_FILE", path)
	t.Setenv("MIGRATIONS_PATH", "")
	os.Unsetenv("MIGRATIONS_PATH")

	if err := loadEnvFile(); err != nil {
		t.Fatalf("load env file: %v", err)
	}
	if got := os.Getenv("MIGRATIONS_PATH"); got != "/from/file" {
		t.Fatalf("expected value from file, got %q", got)
	}
}
