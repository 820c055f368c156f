package httpapi

import (
	"github.com/riskibarqy/league-matches/internal/domain/league"
	"github.com/riskibarqy/league-matches/internal/domain/match"
	"github.com/riskibarqy/league-matches/internal/usecase"
)

type leagueDTO struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type leagueMatchesDTO struct {
	League  string        `json:"league"`
	By      string        `json:"by"`
	Limit   int           `json:"limit"`
	Count   int           `json:"count"`
	Matches []match.Match `json:"matches"`
}

type leagueStatusDTO struct {
	Name       string `json:"name"`
	ID         string `json:"id"`
	Status     string `json:"status"`
	Matches    int    `json:"matches"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

type auditReportDTO struct {
	Healthy int               `json:"healthy"`
	Failed  int               `json:"failed"`
	Leagues []leagueStatusDTO `json:"leagues"`
}

// matchesQuery is the parsed query string of the matches route.
type matchesQuery struct {
	Key   string `validate:"required"`
	Limit int    `validate:"gte=0"`
	By    string `validate:"omitempty,oneof=name id"`
}

func leagueToDTO(s league.Summary) leagueDTO {
	return leagueDTO{Name: s.Name, ID: s.ID}
}

func auditReportToDTO(report usecase.AuditReport) auditReportDTO {
	items := make([]leagueStatusDTO, 0, len(report.Leagues))
	for _, st := range report.Leagues {
		items = append(items, leagueStatusDTO{
			Name:       st.Name,
			ID:         st.ID,
			Status:     st.Kind,
			Matches:    st.Matches,
			Message:    st.Message,
			DurationMs: st.DurationMs,
		})
	}
	return auditReportDTO{
		Healthy: report.HealthyCount,
		Failed:  report.FailedCount,
		Leagues: items,
	}
}
