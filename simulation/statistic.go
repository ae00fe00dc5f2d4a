package simulation

import (
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
)

// Statistic is the runner's only process-wide mutable state:
// succeeded/failed iteration counters, confined to atomics, plus an
// aggregated failure log a caller can inspect after a run.
// Iteration-level failures (contract violations, recovered worker
// panics) never abort the pool; they're folded in here and the worker
// moves on to the next iteration.
type Statistic struct {
	succeeded atomic.Uint64
	failed    atomic.Uint64

	mu   sync.Mutex
	errs *multierror.Error
}

// Succeeded / Failed report the running totals.
func (s *Statistic) Succeeded() uint64 { return s.succeeded.Load() }
func (s *Statistic) Failed() uint64    { return s.failed.Load() }

func (s *Statistic) recordSuccess() { s.succeeded.Add(1) }

// recordFailure increments the failed-iteration counter and appends err
// to the aggregated log. go-multierror.Error isn't safe for concurrent
// Append itself, so the log is the one place in Statistic guarded by a
// plain mutex rather than an atomic.
func (s *Statistic) recordFailure(err error) {
	s.failed.Add(1)
	s.mu.Lock()
	s.errs = multierror.Append(s.errs, err)
	s.mu.Unlock()
}

// Errors returns every distinct failure recorded so far, or nil if none.
func (s *Statistic) Errors() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errs == nil {
		return nil
	}
	return s.errs.ErrorOrNil()
}
