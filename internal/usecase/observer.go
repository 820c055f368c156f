package usecase

import "time"

const (
	OperationListLeagues    = "list_leagues"
	OperationResolveLeague  = "resolve_league"
	OperationGetLastMatches = "get_last_matches"
	OperationAuditLeagues   = "audit_leagues"
)

// LookupObserver receives one call per finished lookup.
type LookupObserver interface {
	ObserveLookup(operation, kind string, duration time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveLookup(string, string, time.Duration) {}

func observerOrNoop(o LookupObserver) LookupObserver {
	if o == nil {
		return noopObserver{}
	}
	return o
}

func observe(o LookupObserver, operation string, started time.Time, err error) {
	o.ObserveLookup(operation, ErrorKind(err), time.Since(started))
}
