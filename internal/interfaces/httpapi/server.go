package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-matches/internal/platform/id"
	"github.com/riskibarqy/league-matches/internal/platform/logging"
)

// RouterOptions mounts the optional surfaces next to the league routes.
type RouterOptions struct {
	CORSAllowedOrigins []string
	Metrics            HTTPRecorder
	MetricsHandler     http.Handler
	MCPHandler         http.Handler
	MCPPath            string
	IDGenerator        id.Generator
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.IDGenerator == nil {
		opts.IDGenerator = id.NewRequestIDGenerator("lm-")
	}
	if len(opts.CORSAllowedOrigins) == 0 {
		opts.CORSAllowedOrigins = []string{"*"}
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts)
	registerLeagueRoutes(mux, handler)
	registerMCPRoutes(mux, opts)

	return RequestTracing(RequestID(opts.IDGenerator, RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, RequestMetrics(opts.Metrics, mux))))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
