// Package report records validation runs as a machine-readable event log.
//
// It is separate from operational logging (slog): a report log captures
// what a validation run saw, one event per record, so runs can be compared
// and filtered after the fact.
//
// # Basic Usage
//
// Wrap a Logger in a Recorder and hand it each validation result:
//
//	// Console output via slog
//	logger := report.NewSlogAdapter(slog.Default())
//
//	// Binary file
//	fl, _ := report.NewFileLogger("checks.cvlog")
//	defer fl.Close()
//
//	// Both
//	rec := report.NewRecorder(report.NewMultiLogger(logger, fl))
//	run := rec.Start(report.RunInfo{File: path, Strict: true})
//	tree, errs := v.Walk(root)
//	run.Finish(tree, errs)
//
// # Event Types
//
// A run produces a RunStarted event, one Finding per validation error in
// traversal order, and a RunFinished event with the totals. All events of a
// run share its RunID.
//
// # File Format
//
// Report files are a stream of CBOR-encoded events with integer keys and
// the .cvlog extension. The cmlh5 report command reads and filters them.
package report
