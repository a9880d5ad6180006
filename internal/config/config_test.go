package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("IMPORT_PARSE_WORKERS", "")
	t.Setenv("RANKING_DEFAULT_LIMIT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreDriver != StoreDriverPostgres {
		t.Fatalf("unexpected default store driver: %q", cfg.StoreDriver)
	}
	if cfg.ImportParseWorkers != 4 {
		t.Fatalf("unexpected default import workers: %d", cfg.ImportParseWorkers)
	}
	if cfg.RankingDefaultLimit != 10 {
		t.Fatalf("unexpected default ranking limit: %d", cfg.RankingDefaultLimit)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("unexpected default timeouts: %s %s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if !cfg.DBCircuitEnabled || cfg.DBCircuitFailureCount != 5 || cfg.DBCircuitOpenTimeout != 15*time.Second {
		t.Fatalf("unexpected default db circuit config: %+v", cfg)
	}
	if cfg.ServiceName != "club-stats-api" {
		t.Fatalf("unexpected default service name: %q", cfg.ServiceName)
	}
}

func TestLoad_StoreDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("memory accepted case-insensitively", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", " Memory ")
		t.Setenv("STORE_SEED_DEMO", "true")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StoreDriver != StoreDriverMemory || !cfg.StoreSeedDemo {
			t.Fatalf("unexpected store config: %q seed=%v", cfg.StoreDriver, cfg.StoreSeedDemo)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "sqlite")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown STORE_DRIVER")
		}
	})
}

func TestLoad_AdminSecretRequiredInProd(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("ADMIN_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when ADMIN_SECRET is missing in prod")
	}

	t.Setenv("ADMIN_SECRET", "  s3cret ")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AdminSecret != "s3cret" {
		t.Fatalf("unexpected admin secret: %q", cfg.AdminSecret)
	}
}

func TestLoad_NumericBounds(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cases := map[string]string{
		"IMPORT_PARSE_WORKERS":         "0",
		"RANKING_DEFAULT_LIMIT":        "101",
		"DB_MAX_OPEN_CONNS":            "-1",
		"DB_CIRCUIT_FAILURE_COUNT":     "0",
		"DB_CIRCUIT_OPEN_TIMEOUT":      "0s",
		"DB_CIRCUIT_HALF_OPEN_MAX_REQ": "0",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}

	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn from OTLP headers: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "club-stats-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "club-stats-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
		t.Fatalf("unexpected CORS origins: %+v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("APP_SERVICE_VERSION=from-file\nRANKING_DEFAULT_LIMIT=25\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_ENV_FILE", path)
	t.Setenv("APP_SERVICE_VERSION", "")
	t.Setenv("RANKING_DEFAULT_LIMIT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.RankingDefaultLimit != 5 {
		t.Fatalf("expected process env to win over file, got %d", cfg.RankingDefaultLimit)
	}

	t.Setenv("APP_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	if _, err := Load(); err != nil {
		t.Fatalf("missing env file must be ignored: %v", err)
	}
}
