package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/league-matches/internal/app"
	"github.com/riskibarqy/league-matches/internal/config"
	"github.com/riskibarqy/league-matches/internal/domain/league"
	"github.com/riskibarqy/league-matches/internal/platform/logging"
)

const defaultLeague = "Premier League"

type options struct {
	league   string
	limit    int
	by       string
	json     bool
	check    bool
	manifest string
	dir      string
}

// Prints every configured league, then the latest matches of one league.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	var opts options
	flag.StringVar(&opts.league, "league", defaultLeague, "league name, or id with -by=id")
	flag.IntVar(&opts.limit, "n", cfg.DefaultLimit, "number of most recent matches")
	flag.StringVar(&opts.by, "by", string(cfg.LookupMode), "lookup key: name|id")
	flag.BoolVar(&opts.json, "json", false, "print JSON instead of text")
	flag.BoolVar(&opts.check, "check", false, "audit every league's match file and exit")
	flag.StringVar(&opts.manifest, "manifest", cfg.ManifestPath, "league manifest path")
	flag.StringVar(&opts.dir, "dir", cfg.MatchesDir, "directory holding league match files")
	flag.Parse()

	mode, err := league.ParseLookupMode(opts.by)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.ManifestPath = opts.manifest
	cfg.MatchesDir = opts.dir
	cfg.MetricsEnabled = false

	logger := logging.NewConsole(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, app.NewServices(cfg, logger), mode, opts); err != nil {
		logger.ErrorContext(ctx, "leagues failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, svc *app.Services, mode league.LookupMode, opts options) error {
	if opts.check {
		report, err := svc.Audit.Check(ctx)
		if err != nil {
			return err
		}
		if opts.json {
			return writeJSON(w, report)
		}
		return writeText(w, renderAudit(report))
	}

	leagues, err := svc.League.ListLeagues(ctx)
	if err != nil {
		return err
	}
	items, err := svc.Match.GetLastMatchesBy(ctx, mode, opts.league, opts.limit)
	if err != nil {
		return err
	}

	if opts.json {
		return writeJSON(w, lastMatchesOutput{Leagues: leagues, League: opts.league, Matches: items})
	}
	return writeText(w, renderLeagues(leagues)+renderMatches(opts.league, items))
}
