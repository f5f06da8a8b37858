package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlh5/cmlh5-go/pkg/validate"
)

func fixedClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestRecorderRun(t *testing.T) {
	mock := &mockLogger{}
	rec := NewRecorder(mock)
	rec.now = fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Millisecond)

	run := rec.Start(RunInfo{File: "a.cml", Digest: "abcd", Strict: true, SchemaVersion: "0.2"})
	_, err := uuid.Parse(run.ID())
	require.NoError(t, err, "run ID is a UUID")

	tree := &validate.Tree{
		Path: "/",
		Devices: []*validate.Device{
			{Name: "cml_1", Channels: []*validate.Channel{{Name: "channel_1"}}},
		},
	}
	errs := validate.Errors{
		{GroupPath: "/", Attribute: "title", Kind: validate.KindMissingMandatory, Message: "m1"},
		{GroupPath: "/cml_1", Attribute: "length", Kind: validate.KindNotFloat, Message: "m2"},
	}
	run.Finish(tree, errs)

	require.Len(t, mock.events, 4)
	for _, e := range mock.events {
		assert.Equal(t, run.ID(), e.RunID)
	}

	started := mock.events[0]
	assert.Equal(t, CategoryRunStarted, started.Category)
	require.NotNil(t, started.RunStarted)
	assert.Equal(t, RunStartedEvent{File: "a.cml", Digest: "abcd", Strict: true, SchemaVersion: "0.2"}, *started.RunStarted)

	assert.Equal(t, CategoryFinding, mock.events[1].Category)
	assert.Equal(t, FindingEvent{GroupPath: "/", Attribute: "title", Kind: "missing_mandatory", Message: "m1"}, *mock.events[1].Finding)
	assert.Equal(t, "not_float", mock.events[2].Finding.Kind)

	finished := mock.events[3]
	assert.Equal(t, CategoryRunFinished, finished.Category)
	require.NotNil(t, finished.RunFinished)
	assert.Equal(t, 2, finished.RunFinished.ErrorCount)
	assert.Equal(t, 3, finished.RunFinished.GroupCount)
	assert.Equal(t, 3*time.Millisecond, finished.RunFinished.Duration)
}

func TestRecorderNilTree(t *testing.T) {
	mock := &mockLogger{}
	NewRecorder(mock).Start(RunInfo{File: "broken.cml"}).Finish(nil, nil)

	require.Len(t, mock.events, 2)
	assert.Equal(t, 0, mock.events[1].RunFinished.GroupCount)
	assert.Equal(t, 0, mock.events[1].RunFinished.ErrorCount)
}

func TestRecorderNilLogger(t *testing.T) {
	NewRecorder(nil).Start(RunInfo{}).Finish(nil, nil)
}

func TestRecorderDistinctRunIDs(t *testing.T) {
	rec := NewRecorder(nil)
	assert.NotEqual(t, rec.Start(RunInfo{}).ID(), rec.Start(RunInfo{}).ID())
}

func TestSummarize(t *testing.T) {
	path := createTestReport(t, nil)
	fl, err := NewFileLogger(path)
	require.NoError(t, err)

	rec := NewRecorder(fl)
	a := rec.Start(RunInfo{File: "a.cml", Strict: true})
	a.Finish(&validate.Tree{}, validate.Errors{{GroupPath: "/", Kind: validate.KindTypeMismatch}})
	b := rec.Start(RunInfo{File: "b.cml"})
	require.NoError(t, fl.Close())

	runs := Summarize(readAll(t, path, Filter{}))
	require.Len(t, runs, 2)

	assert.Equal(t, a.ID(), runs[0].RunID)
	assert.Equal(t, "a.cml", runs[0].File)
	assert.True(t, runs[0].Strict)
	assert.True(t, runs[0].Finished)
	assert.Equal(t, 1, runs[0].GroupCount)
	require.Len(t, runs[0].Findings, 1)
	assert.Equal(t, "type_mismatch", runs[0].Findings[0].Kind)

	assert.Equal(t, b.ID(), runs[1].RunID)
	assert.False(t, runs[1].Finished)
	assert.Empty(t, runs[1].Findings)
}
