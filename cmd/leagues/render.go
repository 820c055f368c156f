package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/league-matches/internal/domain/league"
	"github.com/riskibarqy/league-matches/internal/domain/match"
	"github.com/riskibarqy/league-matches/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

type lastMatchesOutput struct {
	Leagues []league.Summary `json:"leagues"`
	League  string           `json:"league"`
	Matches []match.Match    `json:"matches"`
}

func writeJSON(w io.Writer, v any) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeText(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func renderLeagues(leagues []league.Summary) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = fmt.Fprintf(buf, "Leagues (%d)\n", len(leagues))
	for _, l := range leagues {
		_, _ = fmt.Fprintf(buf, "  %-16s %s\n", l.ID, l.Name)
	}
	return buf.String()
}

func renderMatches(leagueKey string, items []match.Match) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = fmt.Fprintf(buf, "\nLast %d matches of %s\n", len(items), leagueKey)
	if len(items) == 0 {
		_, _ = buf.WriteString("  (none)\n")
	}
	for _, item := range items {
		s, err := item.Summary()
		if err != nil {
			_, _ = buf.WriteString("  " + string(item.Raw()) + "\n")
			continue
		}
		_, _ = buf.WriteString("  ")
		if s.Date != "" {
			_, _ = buf.WriteString(s.Date + "  ")
		}
		_, _ = buf.WriteString(s.Headline())
		if s.GameID != "" {
			_, _ = buf.WriteString("  #" + s.GameID)
		}
		_ = buf.WriteByte('\n')

		keys := make([]string, 0, len(s.Stats))
		for k := range s.Stats {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			pair := s.Stats[k]
			if len(pair) != 2 {
				continue
			}
			_, _ = fmt.Fprintf(buf, "      %-18s %6s - %s\n", k, pair[0], pair[1])
		}
	}
	return buf.String()
}

func renderAudit(report usecase.AuditReport) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, st := range report.Leagues {
		_, _ = buf.WriteString("  ")
		_, _ = fmt.Fprintf(buf, "%-24s %-36s", st.Kind, st.Name)
		if st.Healthy() {
			_, _ = buf.WriteString(strconv.Itoa(st.Matches) + " matches")
		} else {
			_, _ = buf.WriteString(st.Message)
		}
		_ = buf.WriteByte('\n')
	}
	_, _ = fmt.Fprintf(buf, "%d healthy, %d failed\n", report.HealthyCount, report.FailedCount)
	return buf.String()
}
