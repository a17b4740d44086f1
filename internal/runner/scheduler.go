// Package runner schedules trials onto a bounded pool of workers and
// serializes result persistence and progress accounting.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/solverlab/mipbench/internal/matrix"
	"github.com/solverlab/mipbench/internal/result"
)

// Executor runs a single trial to completion. Implementations never fail:
// every failure mode maps into a result with status Error.
type Executor interface {
	Run(ctx context.Context, spec *matrix.Spec) *result.TrialResult
}

// Scheduler dispatches every not-yet-completed trial in the matrix onto at
// most Workers concurrent workers. All result log writes and progress
// updates go through one mutex; the solver invocation itself never runs
// under that lock.
type Scheduler struct {
	Workers  int
	Exec     Executor
	Log      *result.Log
	Progress *Progress
	Out      io.Writer

	mu sync.Mutex
}

// Run executes every spec whose identity is not in completed and waits for
// all of them. Trial failures are recorded as Error rows and never abort
// the run; the only errors returned are result log append failures, which
// would otherwise mean silent loss of results.
func (s *Scheduler) Run(ctx context.Context, specs []matrix.Spec, completed map[result.Identity]bool) error {
	if s.Out == nil {
		s.Out = os.Stdout
	}

	jobs := make([]Job, 0, len(specs))
	for i := range specs {
		spec := &specs[i]
		if completed[spec.Identity] {
			continue
		}
		jobs = append(jobs, func() error {
			res := s.Exec.Run(ctx, spec)
			return s.record(spec, res)
		})
	}
	return errors.Join(RunPool(s.Workers, jobs)...)
}

// record is the critical section shared by all workers: append the row,
// advance the counter, emit the progress line, in that order, under one
// lock.
func (s *Scheduler) record(spec *matrix.Spec, res *result.TrialResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Log.Append(res); err != nil {
		return err
	}
	snap := s.Progress.Advance()
	fmt.Fprintf(s.Out, "[%3d of %3d (%6.2f%%) completed] %-16s -> %-16s -> %4d -> %-8s\n",
		snap.Done, snap.Total, snap.Percent, spec.Algorithm, spec.Instance, spec.Seed, res.Status)
	return nil
}
