package mcpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/riskibarqy/league-matches/internal/domain/league"
	"github.com/riskibarqy/league-matches/internal/domain/match"
	"github.com/riskibarqy/league-matches/internal/platform/logging"
	"github.com/riskibarqy/league-matches/internal/usecase"
)

type ListLeaguesArgs struct{}

type LastMatchesArgs struct {
	League string `json:"league" jsonschema:"League name, or league id when by=id (required)" validate:"required"`
	Limit  *int   `json:"limit,omitempty" jsonschema:"Number of most recent matches (default 5)" validate:"omitempty,gte=0"`
	By     string `json:"by,omitempty" jsonschema:"Lookup key: name|id (default from server config)" validate:"omitempty,oneof=name id"`
}

type AuditArgs struct{}

// Tools backs every MCP tool with the league use cases.
type Tools struct {
	leagueService *usecase.LeagueService
	matchService  *usecase.MatchService
	auditService  *usecase.AuditService
	defaultLimit  int
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewTools(
	leagueService *usecase.LeagueService,
	matchService *usecase.MatchService,
	auditService *usecase.AuditService,
	defaultLimit int,
	logger *logging.Logger,
) *Tools {
	if logger == nil {
		logger = logging.Default()
	}
	return &Tools{
		leagueService: leagueService,
		matchService:  matchService,
		auditService:  auditService,
		defaultLimit:  defaultLimit,
		logger:        logger,
		validator:     validator.New(),
	}
}

// NewServer registers list_leagues, get_last_matches and audit_leagues.
func NewServer(tools *Tools, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "league-matches", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_leagues",
		Description: "Configured football leagues with their ids, in manifest order",
	}, tools.ListLeagues)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_last_matches",
		Description: "Most recent matches of a league, newest first",
	}, tools.GetLastMatches)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "audit_leagues",
		Description: "Per-league status of the match files behind the manifest",
	}, tools.AuditLeagues)

	return server
}

// NewHTTPHandler serves the server over streamable HTTP with JSON responses.
func NewHTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

func (t *Tools) ListLeagues(ctx context.Context, _ *mcp.CallToolRequest, _ ListLeaguesArgs) (*mcp.CallToolResult, any, error) {
	leagues, err := t.leagueService.ListLeagues(ctx)
	if err != nil {
		t.logger.WarnContext(ctx, "mcp list_leagues failed", "error", err)
		return toolError(err), nil, nil
	}

	items := make([]leagueJSON, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueJSON{Name: l.Name, ID: l.ID})
	}
	return toolJSON(sonic.Marshal(items))
}

func (t *Tools) GetLastMatches(ctx context.Context, _ *mcp.CallToolRequest, args LastMatchesArgs) (*mcp.CallToolResult, any, error) {
	args.League = strings.TrimSpace(args.League)
	args.By = strings.ToLower(strings.TrimSpace(args.By))
	if err := t.validator.StructCtx(ctx, args); err != nil {
		return toolError(errors.Wrapf(usecase.ErrInvalidInput, "validation failed: %v", err)), nil, nil
	}

	limit := t.defaultLimit
	if args.Limit != nil {
		limit = *args.Limit
	}
	mode := t.leagueService.LookupMode()
	if args.By != "" {
		mode = league.LookupMode(args.By)
	}

	items, err := t.matchService.GetLastMatchesBy(ctx, mode, args.League, limit)
	if err != nil {
		t.logger.WarnContext(ctx, "mcp get_last_matches failed", "league", args.League, "by", mode, "error", err)
		return toolError(err), nil, nil
	}

	return toolJSON(sonic.Marshal(lastMatchesJSON{
		League:  args.League,
		By:      string(mode),
		Count:   len(items),
		Matches: items,
	}))
}

func (t *Tools) AuditLeagues(ctx context.Context, _ *mcp.CallToolRequest, _ AuditArgs) (*mcp.CallToolResult, any, error) {
	report, err := t.auditService.Check(ctx)
	if err != nil {
		t.logger.WarnContext(ctx, "mcp audit_leagues failed", "error", err)
		return toolError(err), nil, nil
	}

	out := auditJSON{Healthy: report.HealthyCount, Failed: report.FailedCount, Leagues: make([]leagueStatusJSON, 0, len(report.Leagues))}
	for _, st := range report.Leagues {
		out.Leagues = append(out.Leagues, leagueStatusJSON{
			Name:    st.Name,
			ID:      st.ID,
			Status:  st.Kind,
			Matches: st.Matches,
			Message: st.Message,
		})
	}
	return toolJSON(sonic.Marshal(out))
}

type leagueJSON struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type lastMatchesJSON struct {
	League  string        `json:"league"`
	By      string        `json:"by"`
	Count   int           `json:"count"`
	Matches []match.Match `json:"matches"`
}

type leagueStatusJSON struct {
	Name    string `json:"name"`
	ID      string `json:"id"`
	Status  string `json:"status"`
	Matches int    `json:"matches"`
	Message string `json:"message,omitempty"`
}

type auditJSON struct {
	Healthy int                `json:"healthy"`
	Failed  int                `json:"failed"`
	Leagues []leagueStatusJSON `json:"leagues"`
}

func toolJSON(res []byte, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}, nil, nil
}

// toolError reports failures inside the result so the model can read them.
func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error [%s]: %v", usecase.ErrorKind(err), err)},
		},
	}
}
