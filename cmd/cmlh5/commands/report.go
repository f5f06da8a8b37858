package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/cmlh5/cmlh5-go/pkg/report"
	"github.com/cmlh5/cmlh5-go/pkg/validate"
)

// ReportOptions configures the report command.
type ReportOptions struct {
	RunID    string
	Kind     string
	Category string
	Summary  bool
	File     string
}

// RunReport runs the report command.
func RunReport(args []string, stdout, stderr io.Writer) int {
	opts, err := parseReportArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	filter, err := buildReportFilter(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	r, err := report.NewFilteredReader(opts.File, filter)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer r.Close()

	events, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(stderr, "Error: reading %s: %v\n", opts.File, err)
		return exitCommandError
	}

	if opts.Summary {
		printSummaries(stdout, report.Summarize(events))
		return exitSuccess
	}
	for _, e := range events {
		formatEvent(stdout, e)
	}
	return exitSuccess
}

func buildReportFilter(opts ReportOptions) (report.Filter, error) {
	filter := report.Filter{RunID: opts.RunID}
	if opts.Kind != "" {
		k, err := validate.ParseKind(opts.Kind)
		if err != nil {
			return filter, err
		}
		filter.Kind = k.String()
	}
	if opts.Category != "" {
		c, ok := report.ParseCategory(opts.Category)
		if !ok {
			return filter, fmt.Errorf("unknown category %q", opts.Category)
		}
		filter.Category = &c
	}
	return filter, nil
}

// formatEvent writes one line per event.
func formatEvent(w io.Writer, e report.Event) {
	ts := e.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z")
	prefix := fmt.Sprintf("%s [run:%s] %-12s", ts, shortRunID(e.RunID), e.Category)

	switch {
	case e.RunStarted != nil:
		mode := "strict"
		if !e.RunStarted.Strict {
			mode = "less-strict"
		}
		fmt.Fprintf(w, "%s %s (%s, definitions %s)\n", prefix, e.RunStarted.File, mode, e.RunStarted.SchemaVersion)
	case e.Finding != nil:
		fmt.Fprintf(w, "%s %s: %s [%s]\n", prefix, e.Finding.GroupPath, e.Finding.Message, e.Finding.Kind)
	case e.RunFinished != nil:
		fmt.Fprintf(w, "%s %d errors in %d groups (%s)\n", prefix,
			e.RunFinished.ErrorCount, e.RunFinished.GroupCount, e.RunFinished.Duration)
	default:
		fmt.Fprintln(w, prefix)
	}
}

func printSummaries(w io.Writer, runs []*report.RunSummary) {
	for _, s := range runs {
		status := "incomplete"
		if s.Finished {
			status = fmt.Sprintf("%d errors", len(s.Findings))
		}
		fmt.Fprintf(w, "%s  %s  %s\n", s.RunID, s.File, status)
	}
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func parseReportArgs(args []string, stderr io.Writer) (ReportOptions, error) {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := ReportOptions{}

	fs.StringVar(&opts.RunID, "run", "", "Filter by run ID")
	fs.StringVar(&opts.Kind, "kind", "", "Filter findings by kind (missing_mandatory, type_mismatch, not_float, unsupported_type)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (run_started, finding, run_finished)")
	fs.BoolVar(&opts.Summary, "summary", false, "Print one line per run")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: cmlh5 report [options] <file"+report.FileExt+">")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		return opts, errors.New("report file path required")
	}
	opts.File = fs.Arg(0)
	return opts, nil
}
