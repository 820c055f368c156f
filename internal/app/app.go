package app

import (
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/riskibarqy/league-matches/internal/config"
	"github.com/riskibarqy/league-matches/internal/infrastructure/repository/jsonfile"
	"github.com/riskibarqy/league-matches/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-matches/internal/interfaces/mcpapi"
	"github.com/riskibarqy/league-matches/internal/platform/logging"
	"github.com/riskibarqy/league-matches/internal/platform/metrics"
	"github.com/riskibarqy/league-matches/internal/usecase"
)

// Services is the wired use case layer shared by the HTTP, MCP and CLI entry points.
type Services struct {
	League  *usecase.LeagueService
	Match   *usecase.MatchService
	Audit   *usecase.AuditService
	Metrics *metrics.Recorder
}

func NewServices(cfg config.Config, logger *logging.Logger) *Services {
	if logger == nil {
		logger = logging.Default()
	}

	repoCfg := jsonfile.Config{
		ManifestPath: cfg.ManifestPath,
		MatchesDir:   cfg.MatchesDir,
		FileField:    cfg.ManifestFileField,
	}
	leagueRepo := jsonfile.NewLeagueRepository(repoCfg)
	matchRepo := jsonfile.NewMatchRepository(repoCfg)

	var recorder *metrics.Recorder
	var observer usecase.LookupObserver
	if cfg.MetricsEnabled {
		recorder = metrics.NewRecorder()
		observer = recorder
	}

	leagueSvc := usecase.NewLeagueService(leagueRepo, cfg.LookupMode, observer)
	return &Services{
		League:  leagueSvc,
		Match:   usecase.NewMatchService(leagueSvc, matchRepo, observer),
		Audit:   usecase.NewAuditService(leagueRepo, matchRepo, cfg.AuditWorkers, observer, logger),
		Metrics: recorder,
	}
}

func (s *Services) MCPServer(cfg config.Config, logger *logging.Logger) *mcp.Server {
	tools := mcpapi.NewTools(s.League, s.Match, s.Audit, cfg.DefaultLimit, logger)
	return mcpapi.NewServer(tools, cfg.ServiceVersion)
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	svc := NewServices(cfg, logger)
	opts := httpapi.RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MCPPath:            cfg.MCPPath,
	}
	if svc.Metrics != nil {
		opts.Metrics = svc.Metrics
		opts.MetricsHandler = svc.Metrics.Handler()
	}
	if cfg.MCPEnabled {
		opts.MCPHandler = mcpapi.NewHTTPHandler(svc.MCPServer(cfg, logger))
	}

	handler := httpapi.NewHandler(svc.League, svc.Match, svc.Audit, cfg.DefaultLimit, logger)
	router := httpapi.NewRouter(handler, logger, opts)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
