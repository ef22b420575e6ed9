package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/xiam/lisp"
	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/parser"
)

var banner = "Ctrl+C cancels input, Ctrl+D exits. Type :help for a list of commands."

const helpText = `REPL commands:
  :help           Show this help
  :quit, :exit    Exit the REPL
  :load <file>    Run the statements of a file
  :funcs          List the registered functions
  :ast <stmt>     Print the tree of a statement
  :debug          Toggle call tracing
  :reset          Discard all user definitions
`

type repl struct {
	ctx     *lisp.Context
	options lisp.Options

	stdout io.Writer
	stderr io.Writer
}

func newREPL(ctx *lisp.Context, options lisp.Options, stdout, stderr io.Writer) *repl {
	return &repl{
		ctx:     ctx,
		options: options,
		stdout:  stdout,
		stderr:  stderr,
	}
}

func (r *repl) loop() int {
	fmt.Fprintln(r.stdout, banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(r.stdout)
			return 0
		}

		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if strings.HasPrefix(code, ":") {
			if quit := r.command(code); quit {
				return 0
			}
			continue
		}

		r.eval(code)
	}
}

// readByParseProbe reads lines until they form complete statements. Input
// that fails for any reason other than a missing ")" is returned as it is, so
// the error gets reported.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// liner.ErrPromptAborted
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !incomplete(b.String()) {
			return b.String(), true
		}
	}
}

func incomplete(src string) bool {
	if strings.HasPrefix(strings.TrimSpace(src), ":") {
		return false
	}
	_, err := parser.Split([]byte(src))
	return errors.Is(err, parser.ErrUnexpectedEOF)
}

func (r *repl) eval(code string) {
	results, err := r.ctx.RunString(code)
	if err != nil {
		return
	}
	for _, res := range results {
		if !res.Failed() {
			fmt.Fprintf(r.stdout, "=> %v\n", res.Value)
		}
	}
}

// command runs a REPL command and reports whether the session should end.
func (r *repl) command(line string) bool {
	name, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		name, arg = line[:i], strings.TrimSpace(line[i+1:])
	}

	switch strings.ToLower(name) {
	case ":quit", ":exit":
		return true

	case ":help":
		fmt.Fprint(r.stdout, helpText)

	case ":funcs":
		fmt.Fprintln(r.stdout, strings.Join(r.ctx.Functions(), " "))

	case ":load":
		if arg == "" {
			fmt.Fprintln(r.stderr, "usage: :load <file>")
			break
		}
		runSource(r.ctx, source{name: arg}, true, r.stdout)

	case ":ast":
		root, err := parser.Parse([]byte(arg))
		if err != nil {
			fmt.Fprintln(r.stderr, err)
			break
		}
		ast.Fprint(r.stdout, root)

	case ":debug":
		r.options.Debug = !r.options.Debug
		r.ctx.SetOptions(r.options)
		fmt.Fprintf(r.stdout, "debug: %v\n", r.options.Debug)

	case ":reset":
		r.ctx = lisp.NewContext()
		r.ctx.SetOptions(r.options)

	default:
		fmt.Fprintf(r.stderr, "unknown command %s, type :help for a list of commands\n", name)
	}

	return false
}
