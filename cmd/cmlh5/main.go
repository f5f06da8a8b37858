// cmlh5 validates and inspects CML-H5 container metadata.
package main

import (
	"fmt"
	"os"

	"github.com/cmlh5/cmlh5-go/cmd/cmlh5/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "show":
		exitCode = commands.RunShow(args, os.Stdout, os.Stderr)
	case "shell":
		exitCode = commands.RunShell(args, os.Stdout, os.Stderr)
	case "report":
		exitCode = commands.RunReport(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "--version":
		fmt.Printf("cmlh5 version %s\n", commands.Version)
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`cmlh5 - CML-H5 metadata validation tool

Usage:
  cmlh5 <command> [options] [files...]

Commands:
  validate   Check container metadata against the attribute definitions
  show       Print the group tree with formatted metadata
  shell      Browse a container interactively
  report     Print a validation report log

Options:
  -h, --help     Show this help message
  --version      Show version information

Examples:
  cmlh5 validate links.cml
  cmlh5 validate --less-strict --report checks.cvlog *.cml
  cmlh5 show links.cml cml_1/channel_1
  cmlh5 report --kind missing_mandatory checks.cvlog

For command-specific help, run:
  cmlh5 <command> --help`)
}
