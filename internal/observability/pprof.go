package observability

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/riskibarqy/club-stats/internal/config"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

var pprofProfiles = []string{"heap", "goroutine", "allocs", "block", "mutex", "threadcreate"}

// PprofServer serves runtime profiles on their own listener, away from the
// public API port.
type PprofServer struct {
	srv    *http.Server
	ln     net.Listener
	logger *logging.Logger
}

// StartPprofServer binds PPROF_ADDR before returning, so a taken port fails
// startup. It returns nil when pprof is disabled.
func StartPprofServer(cfg config.Config, logger *logging.Logger) (*PprofServer, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if !cfg.PprofEnabled {
		logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
		return nil, nil
	}

	ln, err := net.Listen("tcp", cfg.PprofAddr)
	if err != nil {
		return nil, fmt.Errorf("listen pprof %s: %w", cfg.PprofAddr, err)
	}

	p := &PprofServer{
		srv: &http.Server{
			Handler:           pprofMux(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		ln:     ln,
		logger: logger,
	}

	go func() {
		logger.Info("pprof server started", "addr", p.Addr())
		if err := p.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server failed", "error", err)
		}
	}()

	return p, nil
}

func pprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	for _, name := range pprofProfiles {
		mux.Handle("/debug/pprof/"+name, pprof.Handler(name))
	}
	return mux
}

func (p *PprofServer) Addr() string {
	if p == nil {
		return ""
	}
	return p.ln.Addr().String()
}

// Stop is safe on a nil server.
func (p *PprofServer) Stop(timeout time.Duration) error {
	if p == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := p.srv.Shutdown(ctx); err != nil {
		return err
	}
	p.logger.Info("pprof server stopped")
	return nil
}
