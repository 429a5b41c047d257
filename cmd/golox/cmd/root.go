/*
File    : go-lox/cmd/golox/cmd/root.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/repl"
	"github.com/akashmaji946/go-lox/resolver"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

const (
	banner = `  ____       _
 / ___| ___ | |    _____  __
| |  _ / _ \| |   / _ \ \/ /
| |_| | (_) | |__| (_) >  <
 \____|\___/|_____\___/_/\_\`

	author    = "akashmaji(@iisc.ac.in)"
	license   = "MIT"
	separator = "=================================================================="
	prompt    = "> "
)

var evalExpr string

var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "GoLox interpreter",
	Long: `golox is a Go implementation of the Lox scripting language.

Lox is a small dynamically-typed, lexically-scoped, class-based language
with first-class functions, closures, and single inheritance.

Run without arguments for an interactive REPL, or pass a script path to
execute a file:

  # Start the REPL
  golox

  # Run a script file
  golox script.lox

  # Evaluate an inline expression
  golox -e "print 1 + 2;"`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runRoot(_ *cobra.Command, args []string) error {
	// Inline expression provided
	if evalExpr != "" {
		runSource(evalExpr)
		return nil
	}

	// No script: interactive mode
	if len(args) == 0 {
		r := repl.NewRepl(banner, Version, author, separator, license, prompt)
		r.Start(os.Stdin, os.Stdout)
		return nil
	}

	// Script mode: read the file and run it once
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	runSource(string(content))
	return nil
}

// runSource drives the full pipeline over one chunk of source. Lex, parse,
// and resolve errors halt the pipeline and are reported to stderr; runtime
// errors are reported per top-level statement by the evaluator itself.
// Script-level errors do not affect the process exit code.
func runSource(src string) {
	par := parser.NewParser(src)
	prog := par.Parse()
	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			fmt.Fprintln(os.Stderr, msg)
		}
		return
	}

	res := resolver.NewResolver(prog)
	if err := res.Resolve(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	evaluator := eval.NewEvaluator()
	evaluator.Interpret(prog)
}
