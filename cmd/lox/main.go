package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"lox/internal"
)

const (
	exitOK        = 0
	exitUsage     = 64
	exitDataErr   = 65
	exitNoInput   = 66
	exitIOErr     = 74
	replPrompt    = "> "
	usageTemplate = "Usage: lox [flags] [script]\n"
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usageTemplate)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "path to a YAML configuration file")
	logLevel := fs.String("log-level", "", "log level (trace, debug, info, warn, error)")
	colorMode := fs.String("color", "", "colour diagnostics: auto, always or never")
	maxDepth := fs.Int("max-depth", -1, "maximum parser nesting depth, 0 disables the limit")
	dumpAST := fs.Bool("ast", false, "print the parsed tree before running")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	opts, err := internal.LoadOptions(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	if *logLevel != "" {
		opts.LogLevel = *logLevel
	}
	if *colorMode != "" {
		opts.Color = internal.ColorMode(*colorMode)
	}
	if *maxDepth >= 0 {
		opts.MaxDepth = *maxDepth
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	switch fs.NArg() {
	case 0:
		return runPrompt(opts, *dumpAST)
	case 1:
		return runFile(fs.Arg(0), opts, *dumpAST)
	default:
		fs.Usage()
		return exitUsage
	}
}

func runFile(path string, opts internal.Options, dumpAST bool) int {
	absPath, err := filepath.Abs(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitIOErr
	}

	b, err := ioutil.ReadFile(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: File '%s' not found\n", path)
			return exitNoInput
		}
		fmt.Fprintf(os.Stderr, "Error reading file '%s': %v\n", path, err)
		return exitIOErr
	}

	if !runSource(string(b), opts, dumpAST) {
		return exitDataErr
	}
	return exitOK
}

// runPrompt runs each line as an independent program until an empty line
// or end of input
func runPrompt(opts internal.Options, dumpAST bool) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(opts.HistoryFile); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(opts.HistoryFile); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	code := exitOK
	for {
		line, err := ln.Prompt(replPrompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			return exitIOErr
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		ln.AppendHistory(line)
		if !runSource(line, opts, dumpAST) {
			code = exitDataErr
		}
	}
	return code
}

func runSource(source string, opts internal.Options, dumpAST bool) bool {
	state := internal.NewInterpreterState(source, opts, stdPrinter{})

	if !internal.Scan(state) {
		return false
	}

	if !internal.Parse(state) {
		return false
	}

	if dumpAST {
		fmt.Fprintln(os.Stderr, state.PrintTree())
	}

	return internal.Run(state)
}
