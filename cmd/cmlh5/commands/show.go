package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/cmlh5/cmlh5-go/pkg/container"
	"github.com/cmlh5/cmlh5-go/pkg/inspect"
)

// ShowOptions configures the show command.
type ShowOptions struct {
	Schema string
	Types  bool
	NoMeta bool
	File   string
	Path   string
}

// RunShow runs the show command.
func RunShow(args []string, stdout, stderr io.Writer) int {
	opts, err := parseShowArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	reg, err := loadRegistry(opts.Schema)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	root, err := container.ReadFile(opts.File)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	p, err := inspect.ParsePath(opts.Path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	f := inspect.NewFormatter()
	f.ShowTypes = opts.Types
	f.ShowMetadata = !opts.NoMeta

	insp := inspect.NewInspector(root, reg)
	if !p.IsPartial {
		info, err := insp.ReadAttribute(p)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintln(stdout, f.FormatAttribute(*info))
		return exitSuccess
	}

	if err := insp.WriteTree(stdout, p, f); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	return exitSuccess
}

func parseShowArgs(args []string, stderr io.Writer) (ShowOptions, error) {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := ShowOptions{Path: "/"}

	fs.StringVar(&opts.Schema, "schema", "", "Definitions YAML file or CSV directory (default: built-in)")
	fs.BoolVar(&opts.Types, "types", false, "Show the stored type of each value")
	fs.BoolVar(&opts.NoMeta, "no-meta", false, "Hide declared types and units")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: cmlh5 show [options] <file> [device[/channel]][@attribute]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	switch fs.NArg() {
	case 1:
	case 2:
		opts.Path = fs.Arg(1)
	default:
		return opts, errors.New("expected a file and an optional path")
	}
	opts.File = fs.Arg(0)
	return opts, nil
}
