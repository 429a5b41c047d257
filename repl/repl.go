/*
File    : go-lox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop (REPL) for the GoLox
interpreter. The REPL provides an interactive environment where users can:
- Enter GoLox code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and keeps a single evaluator alive across lines, so functions, classes, and
globals defined earlier stay available. A bare expression at the end of a
line is implicitly printed.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/resolver"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output.
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages
// - greenColor: Banner
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "> ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to GoLox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Creates one evaluator whose globals persist across lines
// 4. Reads, resolves, and runs one line per iteration
//
// The loop continues until the user types '.exit' or closes stdin (Ctrl-D).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {

	// Print the welcome banner and usage instructions
	r.PrintBannerInfo(writer)

	// Create a new readline instance for enhanced line editing
	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close() // Ensure readline is properly closed on exit

	// One evaluator for the whole session: definitions persist
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)
	evaluator.SetErrWriter(colorWriter{c: redColor, w: writer})

	// Main REPL loop - continues until user exits or stdin closes
	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g., Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")

		// Skip empty lines
		if line == "" {
			continue
		}

		// Check for exit command
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Save the command to history for up/down arrow navigation
		rl.SaveHistory(line)

		// Execute the input with panic recovery to prevent crashes
		r.executeWithRecovery(writer, line, evaluator)
	}
}

// executeWithRecovery handles parsing, resolving, and evaluating one line.
// Unlike file execution mode, the REPL continues running after errors,
// allowing users to correct mistakes and try again:
//   - Panics: caught and displayed, REPL continues
//   - Lex/parse errors: displayed in red, REPL continues
//   - Resolve errors: displayed in red, REPL continues
//   - Runtime errors: displayed in red, REPL continues
//   - A trailing bare expression: its result displayed in yellow
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	// A bare expression terminated by end-of-line is allowed: supply the
	// missing semicolon so the parser sees a complete statement.
	if !strings.HasSuffix(line, ";") && !strings.HasSuffix(line, "}") {
		line += ";"
	}

	par := parser.NewParser(line)
	prog := par.Parse()
	if par.HasErrors() {
		for _, err := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", err)
		}
		return
	}

	res := resolver.NewResolver(prog)
	if err := res.Resolve(); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	result := evaluator.Interpret(prog)

	// Implicit print: a line ending in a bare expression shows its value.
	if len(prog.Roots) > 0 && result != nil && !eval.IsError(result) {
		last := prog.Stmt(prog.Roots[len(prog.Roots)-1])
		if _, isExpr := last.(*parser.ExpressionStatementNode); isExpr {
			yellowColor.Fprintf(writer, "%s\n", result.ToString())
		}
	}
}

// colorWriter tints everything written through it. The evaluator reports
// runtime errors through an io.Writer; in the REPL that stream is red.
type colorWriter struct {
	c *color.Color
	w io.Writer
}

func (cw colorWriter) Write(p []byte) (int, error) {
	cw.c.Fprint(cw.w, string(p))
	return len(p), nil
}
