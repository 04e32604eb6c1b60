package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"lox/internal"
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

// Prints the parsed tree of a source file, or its canonical source with -source
func main() {
	args := os.Args[1:]
	source := false
	if len(args) == 2 && args[0] == "-source" {
		source = true
		args = args[1:]
	}

	if len(args) != 1 {
		fmt.Println("Usage: lox-ast [-source] /path/to/source.lox")
		os.Exit(64)
	}

	b, err := ioutil.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(66)
	}

	opts, err := internal.LoadOptions("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(64)
	}

	state := internal.NewInterpreterState(string(b), opts, stdPrinter{})

	if !internal.Scan(state) || !internal.Parse(state) {
		os.Exit(65)
	}

	if source {
		fmt.Println(state.FormatSource())
		return
	}
	fmt.Println(state.PrintTree())
}
