package internal

import (
	"errors"
	"io/ioutil"
	"testing"

	"github.com/sirupsen/logrus"
)

func testEnv() *env {
	log := logrus.New()
	log.Out = ioutil.Discard
	return newEnv(log)
}

func TestEnvDefineGetAssign(t *testing.T) {
	e := testEnv()

	if _, err := e.get("a"); !errors.Is(err, errUndefinedVar) {
		t.Errorf("expected undefined variable, got %v", err)
	}
	if err := e.assign("a", loxNumber(1)); !errors.Is(err, errUndefinedVar) {
		t.Errorf("assigning an unbound name should fail, got %v", err)
	}

	e.define("a", binding{})
	if _, err := e.get("a"); !errors.Is(err, errUninitializedVar) {
		t.Errorf("expected uninitialized variable, got %v", err)
	}

	if err := e.assign("a", loxString("x")); err != nil {
		t.Fatal(err)
	}
	if v, err := e.get("a"); err != nil || v != loxString("x") {
		t.Errorf("expected x, got %v (%v)", v, err)
	}

	// nil is a value like any other once assigned
	e.define("n", binding{value: nil, initialized: true})
	if v, err := e.get("n"); err != nil || v != nil {
		t.Errorf("expected nil without error, got %v (%v)", v, err)
	}
}

func TestEnvShadowing(t *testing.T) {
	e := testEnv()
	e.define("x", binding{value: loxNumber(1), initialized: true})

	e.push()
	e.define("x", binding{value: loxNumber(2), initialized: true})
	if v, _ := e.get("x"); v != loxNumber(2) {
		t.Errorf("inner binding should shadow, got %v", v)
	}
	if err := e.assign("x", loxNumber(3)); err != nil {
		t.Fatal(err)
	}
	if err := e.pop(); err != nil {
		t.Fatal(err)
	}

	if v, _ := e.get("x"); v != loxNumber(1) {
		t.Errorf("outer binding should be restored, got %v", v)
	}
}

func TestEnvAssignNearestFrame(t *testing.T) {
	e := testEnv()
	e.define("x", binding{value: loxNumber(1), initialized: true})
	e.push()
	e.push()
	if err := e.assign("x", loxNumber(5)); err != nil {
		t.Fatal(err)
	}
	e.pop()
	e.pop()
	if v, _ := e.get("x"); v != loxNumber(5) {
		t.Errorf("assignment should reach the global frame, got %v", v)
	}
}

func TestEnvGlobalFrameIsKept(t *testing.T) {
	e := testEnv()
	e.define("g", binding{value: loxBool(true), initialized: true})

	err := e.pop()
	if !errors.Is(err, errGlobalScopePop) {
		t.Fatalf("expected global scope error, got %v", err)
	}
	if e.depth() != 1 {
		t.Errorf("global frame must survive, depth %d", e.depth())
	}
	if v, _ := e.get("g"); v != loxBool(true) {
		t.Errorf("global binding lost, got %v", v)
	}
}

func TestScopedReportsGlobalPop(t *testing.T) {
	tp := &testPrinter{}
	state := newInterpreterState("", testOptions(), tp)
	e := newExec(state)

	// Popping inside the body leaves the deferred pop facing the global frame
	e.scoped(node{line: 3, column: 4}, func() {
		e.env.pop()
	})

	if tp.diagnostics != "[Line 3, Column 4] Error: Cannot pop the global scope.\n" {
		t.Errorf("unexpected diagnostic %q", tp.diagnostics)
	}
	if e.env.depth() != 1 {
		t.Errorf("expected the global frame only, got %d", e.env.depth())
	}
}
