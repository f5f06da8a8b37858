// cmlh5-defgen generates Go attribute-name constants from a CML-H5
// definitions file.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/cmlh5/cmlh5-go/pkg/schema"
)

func main() {
	definitionsPath := flag.String("definitions", "", "Path to the definitions YAML")
	output := flag.String("output", "", "Output path of the generated Go file")
	pkg := flag.String("package", "schema", "Package name of the generated file")
	flag.Parse()

	if *definitionsPath == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: cmlh5-defgen -definitions <path> -output <file> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*definitionsPath, *output, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(definitionsPath, output, pkg string) error {
	defs, err := schema.LoadDefinitionsYAML(definitionsPath)
	if err != nil {
		return fmt.Errorf("loading definitions: %w", err)
	}

	// Build validates the definitions before anything is generated.
	if _, err := schema.Build(defs); err != nil {
		return err
	}

	code, err := Generate(defs, pkg)
	if err != nil {
		return fmt.Errorf("generating: %w", err)
	}

	if err := writeFormatted(output, code); err != nil {
		return err
	}
	fmt.Printf("  generated %s\n", output)
	return nil
}

func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
