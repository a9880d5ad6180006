package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/club-stats/internal/config"
	"github.com/riskibarqy/club-stats/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/club-stats/internal/platform/id"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

// NewHTTPServer wires the store, services and router. The returned cleanup
// releases the store and must run after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	router := newRouter(cfg, st, logger)
	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, st.close, nil
}

func newRouter(cfg config.Config, st store, logger *logging.Logger) http.Handler {
	ids := idgen.NewUUIDGenerator()

	handler := httpapi.NewHandler(httpapi.Services{
		Players:     usecase.NewPlayerService(st.repos.Players, logger),
		Tournaments: usecase.NewTournamentService(st.repos.Tournaments),
		Matches:     usecase.NewMatchService(st.unit, st.repos, logger),
		Rankings:    usecase.NewRankingService(st.repos, cfg.RankingDefaultLimit, logger),
		Imports:     usecase.NewImportService(st.unit, ids, cfg.ImportParseWorkers, logger),
		Exports:     usecase.NewExportService(st.repos),
		Admin:       usecase.NewAdminService(st.unit, logger),
	}, logger)

	if cfg.AdminSecret == "" {
		logger.Warn("ADMIN_SECRET is empty, admin routes will reject every call")
	}

	return httpapi.NewRouter(handler, httpapi.RouterConfig{
		AdminSecret:        cfg.AdminSecret,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RequestIDs:         ids,
	}, logger)
}
