package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/shlex"

	"github.com/cmlh5/cmlh5-go/pkg/container"
	"github.com/cmlh5/cmlh5-go/pkg/inspect"
	"github.com/cmlh5/cmlh5-go/pkg/schema"
)

// Shell browses one container interactively.
type Shell struct {
	file      string
	insp      *inspect.Inspector
	formatter *inspect.Formatter
	cwd       *container.Node
}

// NewShell creates a shell positioned at the container root.
func NewShell(file string, root *container.Node, reg *schema.Registry) *Shell {
	return &Shell{
		file:      file,
		insp:      inspect.NewInspector(root, reg),
		formatter: inspect.NewFormatter(),
		cwd:       root,
	}
}

// Prompt returns the prompt for the current group.
func (s *Shell) Prompt() string {
	return fmt.Sprintf("cmlh5:%s> ", s.cwd.Path())
}

// Execute runs one command line. Arguments may be quoted. It returns false
// when the shell should exit.
func (s *Shell) Execute(line string, w io.Writer) bool {
	parts, err := shlex.Split(line)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return true
	}
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp(w)
	case "ls":
		s.cmdLs(w, args)
	case "cd":
		s.cmdCd(w, args)
	case "attrs", "a":
		s.cmdAttrs(w, args)
	case "get", "g":
		s.cmdGet(w, args)
	case "validate", "v":
		s.cmdValidate(w, args)
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(w, "Unknown command: %s (type 'help')\n", cmd)
	}
	return true
}

// resolve returns the group at p relative to the current group.
func (s *Shell) resolve(p string) (*container.Node, error) {
	if p == "" {
		return s.cwd, nil
	}
	return s.cwd.Lookup(p)
}

// pathOf converts a group to an inspection path.
func pathOf(n *container.Node) (*inspect.Path, error) {
	return inspect.ParsePath(n.Path())
}

func (s *Shell) cmdLs(w io.Writer, args []string) {
	target := ""
	if len(args) > 0 {
		target = args[0]
	}
	n, err := s.resolve(target)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	for _, c := range n.Children() {
		fmt.Fprintf(w, "%s/\n", c.Name())
	}
	for _, d := range n.Datasets() {
		fmt.Fprintln(w, s.formatter.FormatDataset(d))
	}
}

func (s *Shell) cmdCd(w io.Writer, args []string) {
	target := "/"
	if len(args) > 0 {
		target = args[0]
	}
	n, err := s.resolve(target)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	s.cwd = n
}

func (s *Shell) cmdAttrs(w io.Writer, args []string) {
	target := ""
	if len(args) > 0 {
		target = args[0]
	}
	n, err := s.resolve(target)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	p, err := pathOf(n)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	attrs, err := s.insp.Attributes(p)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	for _, a := range attrs {
		fmt.Fprintln(w, s.formatter.FormatAttribute(a))
	}
}

func (s *Shell) cmdGet(w io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(w, "Usage: get <attribute>")
		return
	}
	p, err := pathOf(s.cwd)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	p.Attribute = args[0]
	p.IsPartial = false

	info, err := s.insp.ReadAttribute(p)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(w, s.formatter.FormatAttribute(*info))
}

func (s *Shell) cmdValidate(w io.Writer, args []string) {
	strict := true
	for _, a := range args {
		if a == "--less-strict" || a == "-less-strict" {
			strict = false
		}
	}
	_, errs := s.insp.Validate(strict)
	for _, e := range errs {
		fmt.Fprintln(w, s.formatter.FormatError(e))
	}
	fmt.Fprintf(w, "Found %d errors\n", len(errs))
}

func (s *Shell) printHelp(w io.Writer) {
	fmt.Fprintf(w, `Container: %s

Commands:
  ls [group]              List child groups and datasets
  cd [group]              Change the current group (default: /)
  attrs, a [group]        List declared and stored attributes
  get, g <attribute>      Show one attribute of the current group
  validate, v [--less-strict]
                          Validate the whole container
  help, ?                 Show this help
  quit, exit, q           Leave the shell
`, s.file)
}

// Run starts the interactive command loop on the terminal.
func (s *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.Prompt(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.printHelp(rl.Stdout())

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return nil
		}
		if !s.Execute(strings.TrimSpace(line), rl.Stdout()) {
			return nil
		}
		rl.SetPrompt(s.Prompt())
	}
}

// RunShell runs the shell command.
func RunShell(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	fs.SetOutput(stderr)
	schemaPath := fs.String("schema", "", "Definitions YAML file or CSV directory (default: built-in)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: cmlh5 shell [options] <file>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitSuccess
		}
		return exitCommandError
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: container file required")
		return exitCommandError
	}

	reg, err := loadRegistry(*schemaPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	root, err := container.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if err := NewShell(fs.Arg(0), root, reg).Run(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	fmt.Fprintln(stdout, "Exiting...")
	return exitSuccess
}
