package result

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// Header names the columns of the result log.
const Header = "INSTANCE,ALGORITHM,SEED,STATUS,OBJECTIVE,NODES"

// Log is an append-only CSV store of trial results. It assumes a single
// writer at a time; callers serialize Append through their own lock.
type Log struct {
	path string
	f    *os.File
}

// Create truncates (or creates) the log at path and writes the header row.
func Create(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("creating result log %s: %w", path, err)
	}
	if _, err := fmt.Fprintln(f, Header); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing header to %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return nil, fmt.Errorf("syncing %s: %w", path, err)
	}
	return &Log{path: path, f: f}, nil
}

// Open opens an existing log for appending. Used when resuming; existing
// rows are never rewritten.
func Open(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening result log %s: %w", path, err)
	}
	return &Log{path: path, f: f}, nil
}

// Append writes one result row and flushes it to durable storage before
// returning. Absent optional fields render as empty columns.
func (l *Log) Append(r *TrialResult) error {
	row := strings.Join([]string{
		r.Instance,
		r.Algorithm,
		strconv.Itoa(r.Seed),
		string(r.Status),
		formatFloat(r.Objective),
		formatInt(r.Nodes),
	}, ",")
	if _, err := fmt.Fprintln(l.f, row); err != nil {
		return fmt.Errorf("appending to result log %s: %w", l.path, err)
	}
	if err := l.f.Sync(); err != nil {
		return fmt.Errorf("syncing result log %s: %w", l.path, err)
	}
	return nil
}

func (l *Log) Close() error {
	return l.f.Close()
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func formatInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

// ReadRows parses the data rows of a result log. Rows with fewer than
// three columns or a non-integer seed are skipped with a warning rather
// than failing the read; optional columns that fail to parse are left
// unset.
func ReadRows(path string) ([]TrialResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening result log %s: %w", path, err)
	}
	defer f.Close()

	var rows []TrialResult
	sc := bufio.NewScanner(f)
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first {
			first = false
			continue
		}
		if line == "" {
			continue
		}
		cols := strings.Split(line, ",")
		if len(cols) < 3 {
			log.Printf("warning: skipping malformed row in %s: %q", path, line)
			continue
		}
		seed, err := strconv.Atoi(cols[2])
		if err != nil {
			log.Printf("warning: skipping row with bad seed in %s: %q", path, line)
			continue
		}
		r := TrialResult{Identity: Identity{Instance: cols[0], Algorithm: cols[1], Seed: seed}}
		if len(cols) > 3 {
			r.Status = Status(cols[3])
		}
		if len(cols) > 4 && cols[4] != "" {
			if v, err := strconv.ParseFloat(cols[4], 64); err == nil {
				r.Objective = &v
			}
		}
		if len(cols) > 5 && cols[5] != "" {
			if v, err := strconv.ParseInt(cols[5], 10, 64); err == nil {
				r.Nodes = &v
			}
		}
		rows = append(rows, r)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading result log %s: %w", path, err)
	}
	return rows, nil
}

// LoadCompleted returns the set of trial identities already recorded in
// the log at path.
func LoadCompleted(path string) (map[Identity]bool, error) {
	rows, err := ReadRows(path)
	if err != nil {
		return nil, err
	}
	completed := make(map[Identity]bool, len(rows))
	for _, r := range rows {
		completed[r.Identity] = true
	}
	return completed, nil
}
