package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"

	"github.com/cmlh5/cmlh5-go/pkg/container"
	"github.com/cmlh5/cmlh5-go/pkg/report"
	"github.com/cmlh5/cmlh5-go/pkg/schema"
	"github.com/cmlh5/cmlh5-go/pkg/validate"
	"github.com/cmlh5/cmlh5-go/pkg/version"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	LessStrict bool
	Schema     string
	JSON       bool
	Report     string
	Verbose    bool
	Files      []string
}

// ValidationOutput is the result for one file.
type ValidationOutput struct {
	File       string        `json:"file"`
	Valid      bool          `json:"valid"`
	ReadError  string        `json:"read_error,omitempty"`
	RunID      string        `json:"run_id,omitempty"`
	Warning    string        `json:"warning,omitempty"`
	ErrorCount int           `json:"error_count"`
	Errors     []IssueOutput `json:"errors,omitempty"`
}

// IssueOutput is one validation error.
type IssueOutput struct {
	Group     string `json:"group"`
	Attribute string `json:"attribute"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
}

// RunValidate runs the validate command.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseValidateArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if len(opts.Files) == 0 {
		fmt.Fprintln(stderr, "Error: no files specified")
		printValidateUsage(stderr)
		return exitCommandError
	}

	logger := newLogger(stderr, opts.Verbose)

	reg, err := loadRegistry(opts.Schema)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	logger.Debug("definitions loaded", "version", reg.Version(), "source", opts.Schema)

	var sinks []report.Logger
	if opts.Verbose {
		sinks = append(sinks, report.NewSlogAdapter(logger))
	}
	if opts.Report != "" {
		fl, err := report.NewFileLogger(opts.Report)
		if err != nil {
			fmt.Fprintf(stderr, "Error: opening report: %v\n", err)
			return exitCommandError
		}
		defer func() {
			if err := fl.Close(); err != nil {
				logger.Error("writing report failed", "path", opts.Report, "error", err)
			}
		}()
		sinks = append(sinks, fl)
	}
	rec := report.NewRecorder(report.NewMultiLogger(sinks...))

	v := validate.NewValidator(reg)
	v.Strict = !opts.LessStrict

	exitCode := exitSuccess
	var outputs []*ValidationOutput
	for _, file := range opts.Files {
		out := validateFile(file, v, rec, logger)
		outputs = append(outputs, out)

		switch {
		case out.ReadError != "":
			exitCode = exitCommandError
		case !out.Valid && exitCode == exitSuccess:
			exitCode = exitValidation
		}

		if !opts.JSON {
			printValidationResult(stdout, stderr, out)
		}
	}

	if opts.JSON {
		data, err := json.MarshalIndent(outputs, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintln(stdout, string(data))
	}

	return exitCode
}

func validateFile(path string, v *validate.Validator, rec *report.Recorder, logger *slog.Logger) *ValidationOutput {
	out := &ValidationOutput{File: path}

	digest, err := report.FileDigest(path)
	if err != nil {
		out.ReadError = err.Error()
		return out
	}

	run := rec.Start(report.RunInfo{
		File:          path,
		Digest:        digest,
		Strict:        v.Strict,
		SchemaVersion: v.Registry.Version(),
	})
	out.RunID = run.ID()

	root, err := container.ReadFile(path)
	if err != nil {
		out.ReadError = err.Error()
		run.Finish(nil, nil)
		return out
	}

	out.Warning = checkFormatVersion(root, v.Registry.Version())
	if out.Warning != "" {
		logger.Warn("format version mismatch", "file", path, "detail", out.Warning)
	}

	start := time.Now()
	tree, errs := v.Walk(root)
	run.Finish(tree, errs)
	logger.Debug("validated", "file", path, "groups", tree.GroupCount(), "errors", len(errs), "took", time.Since(start))

	out.Valid = len(errs) == 0
	out.ErrorCount = len(errs)
	for _, e := range errs {
		out.Errors = append(out.Errors, IssueOutput{
			Group:     e.GroupPath,
			Attribute: e.Attribute,
			Kind:      e.Kind.String(),
			Message:   e.Message,
		})
	}
	return out
}

// checkFormatVersion reports a container written for a different format
// version than the definitions. A missing or malformed version attribute is
// left to the validator.
func checkFormatVersion(root *container.Node, definitionsVersion string) string {
	if definitionsVersion == "" {
		return ""
	}
	raw, ok := root.Attr(schema.AttrRootFileFormatVersion)
	if !ok {
		return ""
	}
	fileVersion, ok := container.Text(raw)
	if !ok {
		return ""
	}
	if err := version.Check(fileVersion, definitionsVersion); errors.Is(err, version.ErrIncompatible) {
		return err.Error()
	}
	return ""
}

func printValidationResult(w, errw io.Writer, out *ValidationOutput) {
	if out.ReadError != "" {
		fmt.Fprintf(errw, "Error: %s\n", out.ReadError)
		return
	}
	fmt.Fprintf(w, "%s:\n", out.File)
	if out.Warning != "" {
		fmt.Fprintf(w, "  warning: %s\n", out.Warning)
	}
	for _, e := range out.Errors {
		fmt.Fprintf(w, "  %s: %s\n", e.Group, e.Message)
	}
	fmt.Fprintf(w, "Found %d errors\n", out.ErrorCount)
}

func parseValidateArgs(args []string, stderr io.Writer) (ValidateOptions, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := ValidateOptions{}

	fs.BoolVar(&opts.LessStrict, "less-strict", false, "Accept any float width for float attributes")
	fs.StringVar(&opts.Schema, "schema", "", "Definitions YAML file or CSV directory (default: built-in)")
	fs.BoolVar(&opts.JSON, "json", false, "Output results as JSON")
	fs.StringVar(&opts.Report, "report", "", "Append a report log to this file")
	fs.BoolVar(&opts.Verbose, "v", false, "Verbose logging")
	fs.Usage = func() { printValidateUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.Files = fs.Args()
	return opts, nil
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage: cmlh5 validate [options] <files...>

Check container metadata against the attribute definitions (version %s).

Options:
  --less-strict    Accept any float width for float attributes
  --schema PATH    Definitions YAML file or CSV directory
  --json           Output results as JSON
  --report FILE    Append a report log to FILE
  -v               Verbose logging

Exit codes:
  0  no errors
  1  command or read error
  2  validation errors found
`, schema.DefinitionsVersion)
}
