package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/cmlh5/cmlh5-go/pkg/validate"
)

// RunInfo describes a validation run before it starts.
type RunInfo struct {
	File          string
	Digest        string
	Strict        bool
	SchemaVersion string
}

// Recorder turns validation runs into report events.
type Recorder struct {
	logger Logger
	now    func() time.Time
}

// NewRecorder creates a Recorder writing to logger. A nil logger is
// replaced by Discard.
func NewRecorder(logger Logger) *Recorder {
	if logger == nil {
		logger = Discard
	}
	return &Recorder{
		logger: logger,
		now:    time.Now,
	}
}

// Run is one validation run in progress.
type Run struct {
	rec     *Recorder
	id      string
	started time.Time
}

// Start assigns a new run ID and emits a RunStarted event.
func (r *Recorder) Start(info RunInfo) *Run {
	run := &Run{
		rec:     r,
		id:      uuid.New().String(),
		started: r.now(),
	}
	r.logger.Log(Event{
		Timestamp: run.started,
		RunID:     run.id,
		Category:  CategoryRunStarted,
		RunStarted: &RunStartedEvent{
			File:          info.File,
			Digest:        info.Digest,
			Strict:        info.Strict,
			SchemaVersion: info.SchemaVersion,
		},
	})
	return run
}

// ID returns the run ID.
func (run *Run) ID() string {
	return run.id
}

// Finish emits one Finding per error, in order, and a RunFinished event.
// tree may be nil when the container could not be read.
func (run *Run) Finish(tree *validate.Tree, errs validate.Errors) {
	for _, e := range errs {
		run.rec.logger.Log(Event{
			Timestamp: run.rec.now(),
			RunID:     run.id,
			Category:  CategoryFinding,
			Finding: &FindingEvent{
				GroupPath: e.GroupPath,
				Attribute: e.Attribute,
				Kind:      e.Kind.String(),
				Message:   e.Message,
			},
		})
	}

	groups := 0
	if tree != nil {
		groups = tree.GroupCount()
	}
	end := run.rec.now()
	run.rec.logger.Log(Event{
		Timestamp: end,
		RunID:     run.id,
		Category:  CategoryRunFinished,
		RunFinished: &RunFinishedEvent{
			ErrorCount: len(errs),
			GroupCount: groups,
			Duration:   end.Sub(run.started),
		},
	})
}
