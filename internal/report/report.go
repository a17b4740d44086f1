// Package report summarizes a result log per algorithm. It only reads
// recorded rows; it never re-derives or mutates them.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/solverlab/mipbench/internal/result"
)

type AlgorithmSummary struct {
	Name          string   `json:"name"`
	Trials        int      `json:"trials"`
	Optimal       int      `json:"optimal"`
	Feasible      int      `json:"feasible"`
	Unsolved      int      `json:"unsolved"`
	Errors        int      `json:"errors"`
	MeanNodes     float64  `json:"mean_nodes"`
	BestObjective *float64 `json:"best_objective,omitempty"`
}

// Generate reads the result log at logPath and writes a per-algorithm
// summary in the requested format.
func Generate(logPath, format string, w io.Writer) error {
	rows, err := result.ReadRows(logPath)
	if err != nil {
		return err
	}

	summaries := aggregate(rows)

	switch format {
	case "markdown":
		return writeMarkdown(summaries, w)
	case "json":
		return writeJSON(summaries, w)
	default:
		return writeTable(summaries, w)
	}
}

func aggregate(rows []result.TrialResult) []AlgorithmSummary {
	type accum struct {
		count     int
		optimal   int
		feasible  int
		unsolved  int
		errors    int
		nodes     int64
		nodeRows  int
		objective *float64
	}
	byAlgo := map[string]*accum{}

	for _, r := range rows {
		a, ok := byAlgo[r.Algorithm]
		if !ok {
			a = &accum{}
			byAlgo[r.Algorithm] = a
		}
		a.count++
		switch r.Status {
		case result.StatusOptimal:
			a.optimal++
		case result.StatusFeasible:
			a.feasible++
		case result.StatusError:
			a.errors++
		default:
			a.unsolved++
		}
		if r.Nodes != nil {
			a.nodes += *r.Nodes
			a.nodeRows++
		}
		if r.Objective != nil {
			if a.objective == nil || *r.Objective < *a.objective {
				v := *r.Objective
				a.objective = &v
			}
		}
	}

	var summaries []AlgorithmSummary
	for name, a := range byAlgo {
		s := AlgorithmSummary{
			Name:          name,
			Trials:        a.count,
			Optimal:       a.optimal,
			Feasible:      a.feasible,
			Unsolved:      a.unsolved,
			Errors:        a.errors,
			BestObjective: a.objective,
		}
		if a.nodeRows > 0 {
			s.MeanNodes = float64(a.nodes) / float64(a.nodeRows)
		}
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	return summaries
}

func formatBest(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}

func writeTable(summaries []AlgorithmSummary, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tTRIALS\tOPTIMAL\tFEASIBLE\tUNSOLVED\tERRORS\tMEAN NODES\tBEST OBJ")
	fmt.Fprintln(tw, strings.Repeat("-", 80))
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%.0f\t%s\n",
			s.Name, s.Trials, s.Optimal, s.Feasible, s.Unsolved, s.Errors, s.MeanNodes, formatBest(s.BestObjective))
	}
	return tw.Flush()
}

func writeMarkdown(summaries []AlgorithmSummary, w io.Writer) error {
	fmt.Fprintln(w, "| Algorithm | Trials | Optimal | Feasible | Unsolved | Errors | Mean Nodes | Best Obj |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|---|---|")
	for _, s := range summaries {
		fmt.Fprintf(w, "| %s | %d | %d | %d | %d | %d | %.0f | %s |\n",
			s.Name, s.Trials, s.Optimal, s.Feasible, s.Unsolved, s.Errors, s.MeanNodes, formatBest(s.BestObjective))
	}
	return nil
}

func writeJSON(summaries []AlgorithmSummary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summaries)
}
