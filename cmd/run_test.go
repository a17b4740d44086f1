package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/solverlab/mipbench/internal/result"
)

func TestFilterInstances(t *testing.T) {
	instances := []string{"liu", "mkc", "bab1"}

	tests := []struct {
		name   string
		filter string
		want   int
	}{
		{"empty filter returns all", "", 3},
		{"exact match", "mkc", 1},
		{"no match", "sct32", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterInstances(instances, tt.filter)
			if len(got) != tt.want {
				t.Errorf("filterInstances(%q) returned %d, want %d", tt.filter, len(got), tt.want)
			}
		})
	}
}

func TestFilterAlgorithms(t *testing.T) {
	algorithms := map[string][]string{
		"cplex-default": {"--heuristic", "none"},
		"rothberg":      {"--heuristic", "rothberg"},
	}

	tests := []struct {
		name   string
		filter string
		want   int
	}{
		{"empty filter returns all", "", 2},
		{"exact match", "rothberg", 1},
		{"no match", "maravilha", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterAlgorithms(algorithms, tt.filter)
			if len(got) != tt.want {
				t.Errorf("filterAlgorithms(%q) returned %d, want %d", tt.filter, len(got), tt.want)
			}
		})
	}
}

func TestFilterSeeds(t *testing.T) {
	seeds := []int{29, 173, 281}

	tests := []struct {
		name   string
		filter int
		want   int
	}{
		{"zero filter returns all", 0, 3},
		{"exact match", 173, 1},
		{"no match", 541, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterSeeds(seeds, tt.filter)
			if len(got) != tt.want {
				t.Errorf("filterSeeds(%d) returned %d, want %d", tt.filter, len(got), tt.want)
			}
		})
	}
}

func TestOpenLogFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	l, completed, err := openLog(path, false)
	if err != nil {
		t.Fatalf("openLog: %v", err)
	}
	defer l.Close()
	if len(completed) != 0 {
		t.Errorf("expected empty completed set, got %d", len(completed))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected log file to be created: %v", err)
	}
}

func TestOpenLogResume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	l, err := result.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id := result.Identity{Instance: "a", Algorithm: "x", Seed: 1}
	if err := l.Append(&result.TrialResult{Identity: id, Status: result.StatusOptimal}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	l.Close()

	l, completed, err := openLog(path, true)
	if err != nil {
		t.Fatalf("openLog: %v", err)
	}
	defer l.Close()
	if !completed[id] {
		t.Error("expected a/x/1 in completed set")
	}

	rows, err := result.ReadRows(path)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("resume truncated the log: %d rows", len(rows))
	}
}

func TestOpenLogResumeWithoutExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	l, completed, err := openLog(path, true)
	if err != nil {
		t.Fatalf("openLog: %v", err)
	}
	defer l.Close()
	if len(completed) != 0 {
		t.Errorf("expected empty completed set, got %d", len(completed))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected fresh log to be created: %v", err)
	}
}

func TestOpenLogWithoutResumeTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	l, err := result.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	l.Append(&result.TrialResult{
		Identity: result.Identity{Instance: "a", Algorithm: "x", Seed: 1},
		Status:   result.StatusOptimal,
	})
	l.Close()

	l, completed, err := openLog(path, false)
	if err != nil {
		t.Fatalf("openLog: %v", err)
	}
	defer l.Close()
	if len(completed) != 0 {
		t.Errorf("expected empty completed set after fresh start, got %d", len(completed))
	}
	rows, err := result.ReadRows(path)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected truncated log, got %d rows", len(rows))
	}
}
