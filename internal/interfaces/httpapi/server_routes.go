package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, opts RouterOptions) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if opts.MetricsHandler != nil {
		mux.Handle("GET /metrics", opts.MetricsHandler)
	}
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/status", handler.LeagueStatus)
	mux.HandleFunc("GET /v1/leagues/{key}/matches", handler.ListLeagueMatches)
}

func registerMCPRoutes(mux *http.ServeMux, opts RouterOptions) {
	if opts.MCPHandler == nil {
		return
	}
	path := opts.MCPPath
	if path == "" {
		path = "/mcp"
	}
	mux.Handle(path, opts.MCPHandler)
}
