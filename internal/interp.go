package internal

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// NewInterpreterState creates the state shared by every stage of one run
func NewInterpreterState(source string, opts Options, p IPrinter) *interpreterState {
	return newInterpreterState(source, opts, p)
}

// Scan tokenizes the source, returns false if any lexical error was reported
func Scan(state *interpreterState) bool {
	defer stageTimer(state, stageScan)()
	newLexer(state).scan()
	state.log.WithField("tokens", len(state.tokens)).Debug("scan complete")
	return state.Valid()
}

// Parse builds the program from the scanned tokens, returns false if any
// error was reported so far
func Parse(state *interpreterState) bool {
	defer stageTimer(state, stageParse)()
	newParser(state).parse()
	state.log.WithField("declarations", len(state.program)).Debug("parse complete")
	return state.Valid()
}

// Run evaluates the parsed program on a fresh environment
func Run(state *interpreterState) bool {
	defer stageTimer(state, stageRuntime)()
	return newExec(state).interpret()
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance.
// Evaluation is skipped when scanning or parsing reported an error.
func RunSourceWithPrinter(source string, opts Options, p IPrinter) bool {
	state := newInterpreterState(source, opts, p)

	if !Scan(state) {
		return false
	}

	if !Parse(state) {
		return false
	}

	return Run(state)
}

func stageTimer(state *interpreterState, st stage) func() {
	start := time.Now()
	return func() {
		state.log.WithFields(logrus.Fields{
			"stage":   st,
			"elapsed": time.Since(start),
			"errors":  len(state.errors),
		}).Debug("stage finished")
	}
}
