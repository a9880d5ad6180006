package observability

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/grafana/pyroscope-go"

	"github.com/riskibarqy/club-stats/internal/config"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "club-stats-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSNIsNoop(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "  "}

	shutdown, err := InitUptrace(cfg, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected no server when pprof is disabled")
	}
	if err := srv.Stop(time.Second); err != nil {
		t.Fatalf("stop nil pprof server: %v", err)
	}
}

func TestStartPprofServer_ServesProfiles(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	defer func() {
		if err := srv.Stop(time.Second); err != nil {
			t.Fatalf("stop pprof: %v", err)
		}
	}()

	resp, err := http.Get("http://" + srv.Addr() + "/debug/pprof/goroutine?debug=1")
	if err != nil {
		t.Fatalf("get goroutine profile: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
}

func TestStartPprofServer_AddressInUse(t *testing.T) {
	first, err := StartPprofServer(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	defer func() { _ = first.Stop(time.Second) }()

	if _, err := StartPprofServer(config.Config{PprofEnabled: true, PprofAddr: first.Addr()}, logging.NewNop()); err == nil {
		t.Fatalf("expected bind error for %s", first.Addr())
	}
}

func TestPyroscopeConfig_TagsStoreDriver(t *testing.T) {
	got := pyroscopeConfig(config.Config{
		AppEnv:                 config.EnvProd,
		ServiceName:            "club-stats-api",
		ServiceVersion:         "1.2.0",
		StoreDriver:            config.StoreDriverPostgres,
		PyroscopeAppName:       "club-stats",
		PyroscopeServerAddress: "https://profiles.example.com",
	})

	if got.ApplicationName != "club-stats" || got.ServerAddress != "https://profiles.example.com" {
		t.Fatalf("unexpected pyroscope target: %+v", got)
	}
	if got.Tags["store"] != config.StoreDriverPostgres || got.Tags["env"] != config.EnvProd {
		t.Fatalf("unexpected pyroscope tags: %v", got.Tags)
	}
	if len(got.ProfileTypes) == 0 || got.ProfileTypes[0] != pyroscope.ProfileCPU {
		t.Fatalf("expected cpu profile first, got %v", got.ProfileTypes)
	}
}

func TestUptraceDisabledReason(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{name: "disabled", cfg: config.Config{UptraceDSN: "https://token@api.uptrace.dev"}, want: "UPTRACE_ENABLED=false"},
		{name: "blank dsn", cfg: config.Config{UptraceEnabled: true, UptraceDSN: " "}, want: "UPTRACE_DSN empty"},
		{name: "enabled", cfg: config.Config{UptraceEnabled: true, UptraceDSN: "https://token@api.uptrace.dev"}, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uptraceDisabledReason(tc.cfg); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
