package jsfmt

import (
	"strings"
	"testing"
)

func TestFormatScenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     map[string]any
		expected string
	}{
		{
			name:     "if block",
			input:    "if(true){var x=1;}",
			expected: "if (true) {\n    var x = 1;\n}",
		},
		{
			name:     "var list",
			input:    "var a=1,b=2,c=3;",
			expected: "var a = 1,\nb = 2,\nc = 3;",
		},
		{
			name:     "object literal",
			input:    "var obj={a:1,b:2};",
			expected: "var obj = {\n    a: 1,\n    b: 2\n};",
		},
		{
			name:     "do while",
			input:    "do{x();}while(condition);",
			expected: "do {\n    x();\n} while (condition);",
		},
		{
			name:     "regex with char class",
			input:    `var r=/[a-z\/]+/gi;`,
			expected: `var r = /[a-z\/]+/gi;`,
		},
		{
			name:     "ternary",
			input:    "var x=true?1:2;",
			expected: "var x = true ? 1 : 2;",
		},
		{
			name:     "function with unary minus",
			input:    "function f(){return -1;}",
			expected: "function f() {\n    return -1;\n}",
		},
		{
			name:     "double colon",
			input:    "Foo::bar();",
			expected: "Foo::bar();",
		},
		{
			name:     "script tag wrapper",
			input:    `<script type="text/javascript">var x=1;</script>`,
			expected: `<script type="text/javascript">var x = 1;</script>`,
		},
		{
			name:     "custom indent size",
			input:    "if(true){var x=1;}",
			opts:     map[string]any{"indent_size": 2},
			expected: "if (true) {\n  var x = 1;\n}",
		},
		{
			name:     "bad indent size falls back to default",
			input:    "if(true){var x=1;}",
			opts:     map[string]any{"indent_size": "bad"},
			expected: "if (true) {\n    var x = 1;\n}",
		},
		{
			name:     "tab indent",
			input:    "if(true){var x=1;}",
			opts:     map[string]any{"indent_char": "\t", "indent_size": 1},
			expected: "if (true) {\n\tvar x = 1;\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.input, tt.opts)
			if got != tt.expected {
				t.Errorf("New(%q) =\n%q\nwant\n%q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatBoundaryCases(t *testing.T) {
	if got := New("", nil); got != "" {
		t.Errorf("New(\"\") = %q, want empty", got)
	}
	if got := New("   \n\t", nil); got != "" {
		t.Errorf("New(whitespace) = %q, want empty", got)
	}
	if got := New(";", nil); got != ";" {
		t.Errorf("New(\";\") = %q, want %q", got, ";")
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"if(true){var x=1;}",
		"var a=1,b=2,c=3;",
		"var obj={a:1,b:2};",
		"do{x();}while(condition);",
		"function f(){return -1;}",
		"switch(x){case 1:y();break;default:z();}",
		"for(var i=0;i<10;i++){log(i);}",
	}

	for _, in := range inputs {
		first := New(in, nil)
		second := New(first, nil)
		if first != second {
			t.Errorf("not idempotent for %q:\nfirst:  %q\nsecond: %q", in, first, second)
		}
	}
}

func TestFormatBracketBalance(t *testing.T) {
	inputs := []string{
		"if(true){var x=1;}",
		"var obj={a:1,b:[2,3]};",
		"function f(a,b){return (a+b)*2;}",
	}

	for _, in := range inputs {
		out := New(in, nil)
		if balance(in) != balance(out) {
			t.Errorf("bracket balance changed for %q: in=%v out=%v", in, balance(in), balance(out))
		}
	}
}

func balance(s string) [3]int {
	var b [3]int
	for _, c := range s {
		switch c {
		case '{':
			b[0]++
		case '}':
			b[0]--
		case '(':
			b[1]++
		case ')':
			b[1]--
		case '[':
			b[2]++
		case ']':
			b[2]--
		}
	}
	return b
}

func TestScriptTagPartialMatchNotStripped(t *testing.T) {
	in := `<script type="text/javascript">var x=1;`
	got := New(in, nil)
	if got == in {
		t.Skip("formatting left the input unchanged; partial-match wrapping is the property under test")
	}
	// Only the opening tag is present, so it must survive as literal
	// source text rather than triggering the wrap/unwrap dance.
	if !strings.Contains(got, "text/javascript") {
		t.Errorf("New(%q) = %q, expected the partial tag text preserved", in, got)
	}
}
