package pipeline

// RunStats tracks aggregate counters and the rename log across a batch run.
type RunStats struct {
	Total         int
	Current       int
	Renamed       int
	Failed        int
	BackedUpBytes int64
	Records       []RenameRecord
}

// Processed returns how many files were attempted, successful or not.
func (s *RunStats) Processed() int {
	return s.Renamed + s.Failed
}
