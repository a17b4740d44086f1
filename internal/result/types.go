package result

// Identity is the unique key of one trial: which instance was solved, by
// which algorithm configuration, with which seed. Two trials with the same
// identity are the same unit of work for resume purposes.
type Identity struct {
	Instance  string
	Algorithm string
	Seed      int
}

// Status is the outcome class reported by the solver. The set is open:
// tokens the solver prints that are not listed here are carried through
// verbatim.
type Status string

const (
	StatusOptimal    Status = "Optimal"
	StatusFeasible   Status = "Feasible"
	StatusInfeasible Status = "Infeasible"
	StatusUnbounded  Status = "Unbounded"
	StatusError      Status = "Error"
)

// HasObjective reports whether this status carries a meaningful objective
// value in the solver output.
func (s Status) HasObjective() bool {
	return s == StatusOptimal || s == StatusFeasible
}

// TrialResult is the outcome of running one trial. Objective is set only
// for Optimal and Feasible outcomes; Nodes and SolveTime are unset when
// the trial resolved to Error. SolveTime is reported by the solver but not
// persisted in the result log.
type TrialResult struct {
	Identity
	Status    Status
	Objective *float64
	Nodes     *int64
	SolveTime *float64
}

// ErrorResult is the row recorded for a trial whose invocation or output
// could not be processed: status Error, every optional field absent.
func ErrorResult(id Identity) *TrialResult {
	return &TrialResult{Identity: id, Status: StatusError}
}
