/*
File    : minilang/internal/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements MiniLang's interactive Read-Eval-Print Loop.
// Grounded on the teacher's repl.Repl (banner/prompt/license fields,
// readline-backed line editing and history, color-coded diagnostics), but
// changed from the teacher's per-line evaluation to brace-depth multi-line
// accumulation — grounded on original_source/main.py's repl() loop, which
// buffers input until open braces close before handing a statement to the
// evaluator. Also adds the original's dot-prefixed meta-commands
// (.help, .tokens, .ast, .exit/.quit), extending the teacher's existing
// `.exit` convention.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/eval"
	"github.com/akashmaji946/minilang/lexer"
	"github.com/akashmaji946/minilang/parser"
	"github.com/akashmaji946/minilang/values"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session's banner/prompt/license text.
// The evaluator state that persists across lines is created by Start.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given cosmetic configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// printBanner writes the welcome banner and basic usage instructions.
func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Welcome to MiniLang!")
	cyanColor.Fprintln(w, "Type code and press enter; unbalanced braces keep reading more lines.")
	r.printHelp(w)
	blueColor.Fprintf(w, "%s\n", r.Line)
}

func (r *Repl) printHelp(w io.Writer) {
	cyanColor.Fprintln(w, "Commands: .help  .tokens <code>  .ast <code>  .exit / .quit")
}

// Start runs the REPL loop over rl-backed input, writing banner, results,
// and errors to w. It returns when the user exits (.exit/.quit or EOF).
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.SetWriter(w)

	var pending strings.Builder
	depth := 0
	prompt := r.Prompt

	for {
		rl.SetPrompt(prompt)
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "Good bye!")
			return nil
		}

		trimmed := strings.TrimSpace(line)
		if depth == 0 {
			if trimmed == "" {
				continue
			}
			if r.handleMetaCommand(w, trimmed) {
				if trimmed == ".exit" || trimmed == ".quit" {
					fmt.Fprintln(w, "Good bye!")
					return nil
				}
				continue
			}
		}

		pending.WriteString(line)
		pending.WriteByte('\n')
		depth += braceDelta(line)

		if depth > 0 {
			prompt = "... "
			continue
		}
		depth = 0
		prompt = r.Prompt

		src := pending.String()
		pending.Reset()
		if strings.TrimSpace(src) == "" {
			continue
		}
		rl.SaveHistory(strings.TrimRight(src, "\n"))
		r.evalAndReport(w, src, evaluator)
	}
}

// braceDelta counts net '{' minus '}' outside of string literals on a
// single raw input line, driving the REPL's multi-line accumulation.
func braceDelta(line string) int {
	delta := 0
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			if c == '\\' {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '{':
			delta++
		case '}':
			delta--
		}
	}
	return delta
}

// handleMetaCommand recognizes a dot-prefixed REPL command and reports
// whether trimmed was one (so the caller knows not to treat it as code).
func (r *Repl) handleMetaCommand(w io.Writer, trimmed string) bool {
	switch {
	case trimmed == ".help":
		r.printHelp(w)
		return true
	case trimmed == ".exit" || trimmed == ".quit":
		return true
	case strings.HasPrefix(trimmed, ".tokens "):
		printTokens(w, strings.TrimPrefix(trimmed, ".tokens "))
		return true
	case strings.HasPrefix(trimmed, ".ast "):
		printAST(w, strings.TrimPrefix(trimmed, ".ast "))
		return true
	default:
		return false
	}
}

// evalAndReport parses and evaluates src, printing parse errors or the
// runtime error in red. Per spec.md §6, the REPL (unlike file execution)
// also echoes the value of a trailing bare expression to stdout, the way
// the teacher's REPL echoes every statement's result — narrowed here to
// only the last statement, and only when it is an expression (a `let`,
// `print`, or control statement has nothing worth echoing).
func (r *Repl) evalAndReport(w io.Writer, src string, evaluator *eval.Evaluator) {
	p := parser.NewParser(src)
	program := p.Parse()

	if p.LexErr != nil {
		redColor.Fprintf(w, "%s\n", p.LexErr)
		return
	}
	if p.HasErrors() {
		for _, e := range p.Errors {
			redColor.Fprintf(w, "%s\n", e)
		}
		return
	}

	var result values.Value = values.NullValue
	for i, stmt := range program.Statements {
		result = evaluator.Eval(stmt)
		if eval.IsError(result) {
			redColor.Fprintf(w, "%s\n", result)
			return
		}
		switch result.(type) {
		case *values.Return:
			return
		case *values.Break, *values.Continue:
			line, column := stmt.Pos()
			redColor.Fprintf(w, "%s\n", values.NewError(line, column, "'break'/'continue' used outside of a loop"))
			return
		}
		if _, ok := stmt.(*ast.ExpressionStatement); ok && i == len(program.Statements)-1 {
			if result != values.NullValue {
				yellowColor.Fprintf(w, "%s\n", result)
			}
		}
	}
}

// printTokens implements the `.tokens` meta-command: lex code and print
// every token's literal and kind, one per line.
func printTokens(w io.Writer, code string) {
	lex := lexer.NewLexer(code)
	tokens, err := lex.ConsumeTokens()
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	for _, tok := range tokens {
		yellowColor.Fprintf(w, "%-12s %q\n", tok.Type, tok.Literal)
	}
}

// printAST implements the `.ast` meta-command: parse code and print the
// deterministic pretty-printed AST.
func printAST(w io.Writer, code string) {
	p := parser.NewParser(code)
	program := p.Parse()
	if p.LexErr != nil {
		redColor.Fprintf(w, "%s\n", p.LexErr)
		return
	}
	if p.HasErrors() {
		for _, e := range p.Errors {
			redColor.Fprintf(w, "%s\n", e)
		}
		return
	}
	fmt.Fprint(w, ast.Print(program))
}
