package runner

// Progress counts trials completed against the full matrix size. It has no
// locking of its own: Advance must be called under the same critical
// section that appends to the result log, so reported counts always match
// what has been persisted.
type Progress struct {
	done  int
	total int
}

// NewProgress starts a counter at done of total. On a resumed run, done is
// the number of matrix trials already recorded in the log.
func NewProgress(total, done int) *Progress {
	return &Progress{done: done, total: total}
}

// Snapshot is a consistent view of progress taken at one completion.
type Snapshot struct {
	Done    int
	Total   int
	Percent float64
}

// Advance records one completed trial and returns the updated snapshot.
func (p *Progress) Advance() Snapshot {
	p.done++
	s := Snapshot{Done: p.done, Total: p.total}
	if p.total > 0 {
		s.Percent = float64(p.done) / float64(p.total) * 100
	}
	return s
}
