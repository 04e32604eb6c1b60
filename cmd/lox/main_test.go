package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type runResult struct {
	code   int
	stdout string
	stderr string
}

// runCaptured calls run with stdout and stderr redirected to temp files
func runCaptured(t *testing.T, args ...string) runResult {
	t.Helper()
	dir := t.TempDir()
	stdout, err := os.Create(filepath.Join(dir, "stdout"))
	if err != nil {
		t.Fatal(err)
	}
	defer stdout.Close()
	stderr, err := os.Create(filepath.Join(dir, "stderr"))
	if err != nil {
		t.Fatal(err)
	}
	defer stderr.Close()

	oldStdout, oldStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = stdout, stderr
	code := run(args)
	os.Stdout, os.Stderr = oldStdout, oldStderr

	out, _ := ioutil.ReadFile(stdout.Name())
	diag, _ := ioutil.ReadFile(stderr.Name())
	return runResult{code: code, stdout: string(out), stderr: string(diag)}
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	if err := ioutil.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   int
		stdout string
		stderr string
	}{
		{"ok", "var a = 1;\n{ var a = 2; print a; }\nprint a;", exitOK, "2\n1\n", ""},
		{"scan error", "print 1 @;", exitDataErr, "", "Unexpected character '@'."},
		{"parse error", "print 1\nprint 2;", exitDataErr, "", "Expect ';' after value."},
		{"runtime error", "print y;\nprint 3;", exitDataErr, "nil\n3\n", "Undefined variable 'y'."},
	}

	for _, test := range tests {
		res := runCaptured(t, "-color", "never", writeScript(t, test.source))
		if res.code != test.code {
			t.Errorf("%s: expected exit code %d, got %d", test.name, test.code, res.code)
		}
		if res.stdout != test.stdout {
			t.Errorf("%s: expected output %q, got %q", test.name, test.stdout, res.stdout)
		}
		if !strings.Contains(res.stderr, test.stderr) {
			t.Errorf("%s: expected %q in diagnostics %q", test.name, test.stderr, res.stderr)
		}
	}
}

func TestRunUsageErrors(t *testing.T) {
	script := writeScript(t, "print 1;")
	for _, args := range [][]string{
		{script, script},
		{"-no-such-flag", script},
		{"-color", "sometimes", script},
		{"-log-level", "loud", script},
	} {
		if res := runCaptured(t, args...); res.code != exitUsage {
			t.Errorf("%v: expected exit code %d, got %d", args, exitUsage, res.code)
		}
	}
}

func TestRunMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.lox")
	res := runCaptured(t, missing)
	if res.code != exitNoInput {
		t.Errorf("expected exit code %d, got %d", exitNoInput, res.code)
	}
	if !strings.Contains(res.stderr, "not found") {
		t.Errorf("unexpected diagnostics %q", res.stderr)
	}
}

func TestRunMaxDepthAndAST(t *testing.T) {
	script := writeScript(t, "print (((1)));")

	res := runCaptured(t, "-color", "never", "-max-depth", "2", script)
	if res.code != exitDataErr || !strings.Contains(res.stderr, "Nesting too deep.") {
		t.Errorf("expected nesting error, got %d %q", res.code, res.stderr)
	}

	res = runCaptured(t, "-color", "never", "-ast", script)
	if res.code != exitOK || res.stdout != "1\n" {
		t.Errorf("expected clean run, got %d %q", res.code, res.stdout)
	}
	if !strings.Contains(res.stderr, "(print (group (group (group 1))))") {
		t.Errorf("expected tree dump in %q", res.stderr)
	}
}
