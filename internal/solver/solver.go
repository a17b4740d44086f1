// Package solver invokes the external MIP solver binary once per trial and
// interprets its single-line stdout report.
package solver

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/solverlab/mipbench/internal/matrix"
	"github.com/solverlab/mipbench/internal/result"
)

// Runner executes trials against one solver binary.
type Runner struct {
	Program string
}

// Command returns the argument list for one trial: the seed first, then
// the algorithm's fixed arguments, then the instance file last.
func (r *Runner) Command(spec *matrix.Spec) []string {
	args := make([]string, 0, len(spec.Args)+4)
	args = append(args, "--seed", strconv.Itoa(spec.Seed))
	args = append(args, spec.Args...)
	args = append(args, "--file", spec.InstancePath)
	return args
}

// Run executes one trial and always produces a result: launch failures,
// nonzero exits, and unparseable output all collapse to status Error with
// every optional field absent. The call blocks for the duration of the
// solver process; the solver enforces its own time limits.
func (r *Runner) Run(ctx context.Context, spec *matrix.Spec) *result.TrialResult {
	cmd := exec.CommandContext(ctx, r.Program, r.Command(spec)...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return result.ErrorResult(spec.Identity)
	}
	return ParseOutput(spec.Identity, stdout.String())
}

// ParseOutput interprets the solver's stdout as whitespace-separated
// tokens: <status> <objective> <gap> <nodes> <time>. Nodes and time are
// read for every status except Error; the objective only for Optimal and
// Feasible. A missing or non-numeric token degrades the whole trial to
// Error.
func ParseOutput(id result.Identity, out string) *result.TrialResult {
	tokens := strings.Fields(out)
	if len(tokens) == 0 {
		return result.ErrorResult(id)
	}

	status := result.Status(tokens[0])
	if status == result.StatusError {
		return result.ErrorResult(id)
	}
	if len(tokens) < 5 {
		return result.ErrorResult(id)
	}

	nodes, err := strconv.ParseInt(tokens[3], 10, 64)
	if err != nil {
		return result.ErrorResult(id)
	}
	solveTime, err := strconv.ParseFloat(tokens[4], 64)
	if err != nil {
		return result.ErrorResult(id)
	}

	res := &result.TrialResult{
		Identity:  id,
		Status:    status,
		Nodes:     &nodes,
		SolveTime: &solveTime,
	}
	if status.HasObjective() {
		objective, err := strconv.ParseFloat(tokens[1], 64)
		if err != nil {
			return result.ErrorResult(id)
		}
		res.Objective = &objective
	}
	return res
}
