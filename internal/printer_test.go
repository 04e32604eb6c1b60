package internal

import "testing"

var roundTripSources = []string{
	"1 + 2 * 3;",
	"(1 + 2) * 3;",
	"1 - (2 - 3);",
	"--x; !!true; -(-1); !(a == b);",
	`print "a" + "b";`,
	`print "with spaces and // slashes";`,
	"var x; var y = nil; x = y = 2.5;",
	"a or b and c; (a or b) and c;",
	"1 == 2 < 3 != (4 >= 5);",
	"{ var x = 1; { var x = 2; print x; } print x; }",
	"var i = 0; while (i < 3) { print i; i = i + 1; }",
	"if (a) if (b) print 1; else print 2;",
	"if (a) { if (b) print 1; } else print 2;",
	"if (a) print 1; else if (b) print 2; else { print 3; }",
	"for (;;) print 1;",
	"for (var i = 0; i < 10; i = i + 1) { print i; }",
	"for (i = 0; i < 10;) i = i + 2;",
	"for (; i;) {}",
	"{}",
	"print 1000000 / 0.125;",
}

func TestFormatSourceRoundTrip(t *testing.T) {
	for _, source := range roundTripSources {
		first := parseSource(t, source)
		formatted := first.FormatSource()
		second := parseSource(t, formatted)

		if first.PrintTree() != second.PrintTree() {
			t.Errorf(
				"round trip changed the tree\nsource:    %s\nformatted: %s\nfirst:     %s\nsecond:    %s",
				source,
				formatted,
				first.PrintTree(),
				second.PrintTree(),
			)
		}
		// Formatting is a fixed point after one pass
		if again := second.FormatSource(); again != formatted {
			t.Errorf("formatting is not stable: %q then %q", formatted, again)
		}
	}
}

func TestFormatSource(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"1+2*3;", "1 + 2 * 3;"},
		{"var   x=( 1 );", "var x = (1);"},
		{"print \"s\" ;", `print "s";`},
		{"for(var i=0;i<2;i=i+1)print i;", "for (var i = 0; i < 2; i = i + 1) print i;"},
		{"for(;;){}", "for (;;) { }"},
		{"if(a)print 1;else print 2;", "if (a) print 1; else print 2;"},
		{"{var a;print a;}", "{ var a; print a; }"},
		{"a = b and !c;", "a = b and !c;"},
	}
	for _, test := range tests {
		state := parseSource(t, test.source)
		if got := state.FormatSource(); got != test.expected {
			t.Errorf("%q: expected %q, got %q", test.source, test.expected, got)
		}
	}
}

func TestPrintTreeDoesNotEvaluate(t *testing.T) {
	tp := &testPrinter{}
	state := newInterpreterState("print undefinedName;", testOptions(), tp)
	Scan(state)
	Parse(state)
	if tree := state.PrintTree(); tree != "(print undefinedName)" {
		t.Errorf("unexpected tree %q", tree)
	}
	if tp.printed != "" || !state.Valid() {
		t.Error("printing a tree must not run the program")
	}
}
