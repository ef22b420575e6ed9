package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xiam/lisp"
)

const (
	appName     = "lisp"
	historyFile = ".lisp_history"
	promptMain  = "lisp> "
	promptCont  = "  ... "
)

const usageText = `Usage:
  %s [flags] [file ...]

Runs each file in order. Without files, reads statements from standard input,
or starts an interactive session when standard input is a terminal.

Flags:
`

type config struct {
	expr     string
	debug    bool
	maxDepth int
	tz       string
	verbose  bool
}

type source struct {
	name string
	r    io.Reader
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*config, []string, error) {
	conf := &config{}

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, usageText, appName)
		fs.PrintDefaults()
	}

	fs.StringVar(&conf.expr, "e", "", "evaluate the given statements instead of reading files")
	fs.BoolVar(&conf.debug, "debug", false, "trace every call to stderr")
	fs.IntVar(&conf.maxDepth, "max-depth", lisp.DefaultMaxDepth, "maximum number of nested frames, negative for no limit")
	fs.StringVar(&conf.tz, "tz", "", "time zone used for log timestamps")
	fs.BoolVar(&conf.verbose, "v", false, "print the value of every statement")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return conf, fs.Args(), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	conf, files, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if conf.tz != "" {
		loc, err := time.LoadLocation(conf.tz)
		if err != nil {
			fmt.Fprintf(stderr, "%s: invalid time zone %q: %v\n", appName, conf.tz, err)
			return 2
		}
		time.Local = loc
	}

	if conf.expr != "" && len(files) > 0 {
		fmt.Fprintf(stderr, "%s: -e can't be combined with file arguments\n", appName)
		return 2
	}

	options := lisp.Options{
		Output:   stdout,
		Logger:   newLogger(stderr),
		Debug:    conf.debug,
		MaxDepth: conf.maxDepth,
	}
	ctx := lisp.NewContext()
	ctx.SetOptions(options)

	var sources []source
	switch {
	case conf.expr != "":
		sources = append(sources, source{name: "-e", r: strings.NewReader(conf.expr)})
	case len(files) > 0:
		for _, name := range files {
			sources = append(sources, source{name: name})
		}
	case isTerminal(stdin):
		return newREPL(ctx, options, stdout, stderr).loop()
	default:
		sources = append(sources, source{name: "stdin", r: stdin})
	}

	status := 0
	for _, src := range sources {
		if !runSource(ctx, src, conf.verbose, stdout) {
			status = 1
		}
	}
	return status
}

// runSource runs every statement of src and reports whether all of them
// succeeded.
func runSource(ctx *lisp.Context, src source, verbose bool, stdout io.Writer) bool {
	if src.r == nil {
		f, err := os.Open(src.name)
		if err != nil {
			ctx.Logger().Printf("error: %v", err)
			return false
		}
		defer f.Close()
		src.r = f
	}

	results, err := ctx.Run(src.r)
	if err != nil {
		return false
	}

	ok := true
	for _, res := range results {
		if res.Failed() {
			ok = false
			continue
		}
		if verbose {
			fmt.Fprintf(stdout, "=> %v\n", res.Value)
		}
	}
	return ok
}

// newLogger tags every line with an identifier of the current run, so the
// diagnostics of concurrent runs writing to the same stream can be told apart.
func newLogger(w io.Writer) *log.Logger {
	runID := uuid.New().String()[:8]
	return log.New(w, "["+runID+"] ", log.LstdFlags)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
