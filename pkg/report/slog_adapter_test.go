package report

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func logOne(t *testing.T, level slog.Level, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})
	NewSlogAdapter(slog.New(handler)).Log(event)

	if buf.Len() == 0 {
		return nil
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return entry
}

func TestSlogAdapterLogsFinding(t *testing.T) {
	entry := logOne(t, slog.LevelInfo, Event{
		Timestamp: time.Now(),
		RunID:     "run-123",
		Category:  CategoryFinding,
		Finding: &FindingEvent{
			GroupPath: "/cml_1/channel_1",
			Attribute: "frequency",
			Kind:      "missing_mandatory",
			Message:   "Mandatory metadata 'frequency' is missing",
		},
	})
	if entry == nil {
		t.Fatal("no output produced")
	}

	want := map[string]any{
		"level":     "INFO",
		"run_id":    "run-123",
		"category":  "FINDING",
		"group":     "/cml_1/channel_1",
		"attribute": "frequency",
		"kind":      "missing_mandatory",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %v, want %v", k, entry[k], v)
		}
	}
}

func TestSlogAdapterRunEventsAtDebug(t *testing.T) {
	started := Event{
		RunID:      "run-1",
		Category:   CategoryRunStarted,
		RunStarted: &RunStartedEvent{File: "a.cml", Strict: true},
	}
	if entry := logOne(t, slog.LevelInfo, started); entry != nil {
		t.Errorf("run start logged at info: %v", entry)
	}

	entry := logOne(t, slog.LevelDebug, started)
	if entry == nil {
		t.Fatal("no output produced")
	}
	if entry["file"] != "a.cml" || entry["strict"] != true {
		t.Errorf("unexpected entry %v", entry)
	}
	if _, ok := entry["digest"]; ok {
		t.Error("empty digest was logged")
	}

	entry = logOne(t, slog.LevelDebug, Event{
		RunID:       "run-1",
		Category:    CategoryRunFinished,
		RunFinished: &RunFinishedEvent{ErrorCount: 2, GroupCount: 5},
	})
	if entry["errors"] != float64(2) || entry["groups"] != float64(5) {
		t.Errorf("unexpected entry %v", entry)
	}
}
