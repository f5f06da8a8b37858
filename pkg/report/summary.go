package report

import "time"

// RunSummary collects the events of one run.
type RunSummary struct {
	RunID    string
	Started  time.Time
	File     string
	Digest   string
	Strict   bool
	Findings []FindingEvent

	// Finished is false when the log holds no RunFinished event for the
	// run, for example after a crash.
	Finished   bool
	GroupCount int
	Duration   time.Duration
}

// Summarize groups events by run, in order of first appearance.
func Summarize(events []Event) []*RunSummary {
	var runs []*RunSummary
	byID := make(map[string]*RunSummary)

	for _, e := range events {
		s, ok := byID[e.RunID]
		if !ok {
			s = &RunSummary{RunID: e.RunID, Started: e.Timestamp}
			byID[e.RunID] = s
			runs = append(runs, s)
		}
		switch {
		case e.RunStarted != nil:
			s.Started = e.Timestamp
			s.File = e.RunStarted.File
			s.Digest = e.RunStarted.Digest
			s.Strict = e.RunStarted.Strict
		case e.Finding != nil:
			s.Findings = append(s.Findings, *e.Finding)
		case e.RunFinished != nil:
			s.Finished = true
			s.GroupCount = e.RunFinished.GroupCount
			s.Duration = e.RunFinished.Duration
		}
	}
	return runs
}
