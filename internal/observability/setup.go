package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-matches/internal/config"
	"github.com/riskibarqy/league-matches/internal/platform/logging"
)

// Telemetry holds the optional tracing, profiling and pprof handles of a process.
type Telemetry struct {
	shutdownTracing func(context.Context) error
	stopProfiler    func() error
	pprofServer     *http.Server
	logger          *logging.Logger
}

// Setup starts everything the config enables. On failure the parts already
// started are shut down before returning.
func Setup(cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{logger: logger}

	shutdownTracing, err := InitUptrace(cfg, logger)
	if err != nil {
		return nil, errors.Wrap(err, "init uptrace")
	}
	t.shutdownTracing = shutdownTracing

	stopProfiler, err := InitPyroscope(cfg, logger)
	if err != nil {
		_ = t.Shutdown(context.Background(), time.Second)
		return nil, errors.Wrap(err, "init pyroscope")
	}
	t.stopProfiler = stopProfiler

	pprofServer, err := StartPprofServer(cfg, logger)
	if err != nil {
		_ = t.Shutdown(context.Background(), time.Second)
		return nil, errors.Wrap(err, "start pprof server")
	}
	t.pprofServer = pprofServer

	return t, nil
}

// Shutdown stops pprof, the profiler and the tracer provider, in that order.
func (t *Telemetry) Shutdown(ctx context.Context, timeout time.Duration) error {
	if t == nil {
		return nil
	}

	var errs error
	if err := StopPprofServer(t.pprofServer, t.logger, timeout); err != nil {
		errs = errors.CombineErrors(errs, err)
	}
	if t.stopProfiler != nil {
		if err := t.stopProfiler(); err != nil {
			errs = errors.CombineErrors(errs, errors.Wrap(err, "stop pyroscope"))
		}
	}
	if t.shutdownTracing != nil {
		if err := t.shutdownTracing(ctx); err != nil {
			errs = errors.CombineErrors(errs, errors.Wrap(err, "shutdown uptrace"))
		}
	}
	return errs
}
