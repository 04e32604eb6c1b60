package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

type stage string

const (
	stageScan    stage = "scan"
	stageParse   stage = "parse"
	stageRuntime stage = "runtime"
)

// Stage sentinels, a Diagnostic matches the one of the stage that reported it
var (
	ErrScan    = errors.New("scan error")
	ErrParse   = errors.New("parse error")
	ErrRuntime = errors.New("runtime error")
)

var stageErrors = map[stage]error{
	stageScan:    ErrScan,
	stageParse:   ErrParse,
	stageRuntime: ErrRuntime,
}

// Diagnostic is a single reported error with its source position. It
// unwraps to its kind and matches its stage sentinel with errors.Is.
type Diagnostic struct {
	Err    error
	Stage  string
	Line   int
	Column int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[Line %d, Column %d] Error: %s", d.Line, d.Column, d.Err)
}

func (d Diagnostic) Error() string { return d.String() }
func (d Diagnostic) Unwrap() error { return d.Err }

func (d Diagnostic) Is(target error) bool {
	return stageErrors[stage(d.Stage)] == target
}

// loxError carries the exact diagnostic text while unwrapping to its kind
type loxError struct {
	kind error
	msg  string
}

func (e *loxError) Error() string { return e.msg }
func (e *loxError) Unwrap() error { return e.kind }

func newError(kind error, format string, args ...interface{}) error {
	return &loxError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// parseError aborts the declaration being parsed, see parser.declaration
type parseError struct {
	err error
}

// interpreterState stores the state of a single run
type interpreterState struct {
	source  string
	tokens  []token
	program []decl

	errors []Diagnostic

	options Options
	printer IPrinter
	log     *logrus.Logger
	color   *color.Color
}

func newInterpreterState(source string, opts Options, p IPrinter) *interpreterState {
	c := color.New()
	switch opts.Color {
	case ColorAlways:
		c.Enable()
	case ColorAuto:
		c.SetOutput(os.Stderr)
	default:
		c.Disable()
	}
	return &interpreterState{
		source:  source,
		errors:  make([]Diagnostic, 0),
		options: opts,
		printer: p,
		log:     opts.logger(),
		color:   c,
	}
}

func (s *interpreterState) report(st stage, err error, line, column int) {
	d := Diagnostic{
		Err:    err,
		Stage:  string(st),
		Line:   line,
		Column: column,
	}
	s.errors = append(s.errors, d)
	s.printer.Fprintf(
		os.Stderr,
		"[Line %d, Column %d] %s: %s\n",
		line,
		column,
		s.color.Red("Error"),
		err,
	)
	s.log.WithFields(logrus.Fields{
		"stage":  st,
		"line":   line,
		"column": column,
	}).Debug(err)
}

func (s *interpreterState) lexError(err error, line, column int) {
	s.report(stageScan, err, line, column)
}

func (s *interpreterState) setError(err error, tk *token) {
	s.report(stageParse, err, tk.line, tk.column)
}

func (s *interpreterState) fatalError(err error, tk *token) {
	s.setError(err, tk)
	panic(parseError{err: err})
}

func (s *interpreterState) runtimeErr(err error, line, column int) {
	s.report(stageRuntime, err, line, column)
}

// Valid returns true if no diagnostic was reported
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// Errors returns every diagnostic reported so far, in order
func (s *interpreterState) Errors() []Diagnostic {
	return s.errors
}

// Lexer errors
var errUnexpectedChar = errors.New("unexpected character")
var errUnterminatedString = errors.New("unterminated string")
var errUnterminatedComment = errors.New("unterminated block comment")
var errNumberRange = errors.New("number literal out of range")

// Parser errors
var errUnexpectedToken = errors.New("unexpected token")
var errMissingToken = errors.New("missing expected token")
var errUnexpectedEOF = errors.New("unexpected end of input")
var errInvalidAssignTarget = errors.New("invalid assignment target")
var errNestingTooDeep = errors.New("nesting too deep")

// Runtime errors
var errUndefinedVar = errors.New("undefined variable")
var errUninitializedVar = errors.New("uninitialized variable")
var errInvalidOperand = errors.New("invalid operand")
var errGlobalScopePop = errors.New("cannot pop global scope")
