package httpapi

import (
	"net/http"

	idgen "github.com/riskibarqy/club-stats/internal/platform/id"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

// RouterConfig carries the non-handler dependencies of the router.
type RouterConfig struct {
	AdminSecret        string
	CORSAllowedOrigins []string
	RequestIDs         idgen.Generator
}

func NewRouter(handler *Handler, cfg RouterConfig, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.RequestIDs == nil {
		cfg.RequestIDs = idgen.NewUUIDGenerator()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerPublicRoutes(mux, handler)
	registerAdminRoutes(mux, handler, cfg.AdminSecret)

	return RequestTracing(RequestID(cfg.RequestIDs, RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
