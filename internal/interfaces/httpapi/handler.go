package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-matches/internal/domain/league"
	"github.com/riskibarqy/league-matches/internal/platform/logging"
	"github.com/riskibarqy/league-matches/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

type Handler struct {
	leagueService *usecase.LeagueService
	matchService  *usecase.MatchService
	auditService  *usecase.AuditService
	defaultLimit  int
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	matchService *usecase.MatchService,
	auditService *usecase.AuditService,
	defaultLimit int,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService: leagueService,
		matchService:  matchService,
		auditService:  auditService,
		defaultLimit:  defaultLimit,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListLeagueMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueMatches", attribute.String("league.key", r.PathValue("key")))
	defer span.End()

	query, err := h.parseMatchesQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	mode := h.leagueService.LookupMode()
	if query.By != "" {
		mode = league.LookupMode(query.By)
	}

	items, err := h.matchService.GetLastMatchesBy(ctx, mode, query.Key, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "get last matches failed", "league", query.Key, "by", mode, "limit", query.Limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueMatchesDTO{
		League:  query.Key,
		By:      string(mode),
		Limit:   query.Limit,
		Count:   len(items),
		Matches: items,
	})
}

func (h *Handler) LeagueStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeagueStatus")
	defer span.End()

	report, err := h.auditService.Check(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "league audit failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auditReportToDTO(report))
}

func (h *Handler) parseMatchesQuery(ctx context.Context, r *http.Request) (matchesQuery, error) {
	query := matchesQuery{
		Key:   strings.TrimSpace(r.PathValue("key")),
		Limit: h.defaultLimit,
		By:    strings.ToLower(strings.TrimSpace(r.URL.Query().Get("by"))),
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return matchesQuery{}, errors.Wrapf(usecase.ErrInvalidInput, "limit must be a non-negative integer, got %q", raw)
		}
		query.Limit = v
	}

	if err := h.validateRequest(ctx, query); err != nil {
		return matchesQuery{}, err
	}
	return query, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return errors.Wrapf(usecase.ErrInvalidInput, "validation failed: %v", err)
	}

	return nil
}
