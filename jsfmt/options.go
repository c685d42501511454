package jsfmt

import "strconv"

// Options controls the four knobs the beautifier recognizes. Zero-value
// Options is not directly usable — build one with FromMap or Defaults.
type Options struct {
	IndentSize       int
	IndentChar       string
	IndentLevel      int
	PreserveNewlines bool
}

// Defaults returns the option set used when no overrides are supplied.
func Defaults() Options {
	return Options{
		IndentSize:       4,
		IndentChar:       " ",
		IndentLevel:      0,
		PreserveNewlines: false,
	}
}

// FromMap builds an Options from an associative map of the four
// recognized keys (indent_size, indent_char, indent_level,
// preserve_newlines). Unrecognized keys are ignored. Any key present
// with a non-conforming value silently falls back to its default rather
// than producing an error — option coercion never fails.
func FromMap(m map[string]any) Options {
	opts := Defaults()

	if v, ok := m["indent_size"]; ok {
		if n, ok := coerceInt(v); ok {
			opts.IndentSize = n
		}
	}
	if v, ok := m["indent_char"]; ok {
		if s, ok := v.(string); ok && len(s) == 1 {
			opts.IndentChar = s
		}
	}
	if v, ok := m["indent_level"]; ok {
		if n, ok := coerceInt(v); ok {
			opts.IndentLevel = n
		}
	}
	if v, ok := m["preserve_newlines"]; ok {
		if b, ok := v.(bool); ok {
			opts.PreserveNewlines = b
		}
	}

	return opts
}

// coerceInt accepts an integer-valued number or numeric string, matching
// the table in the specification's configuration section. Non-conforming
// values return ok=false so the caller keeps its default.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// indentString is the single indent unit: indent_char repeated
// indent_size times.
func (o Options) indentString() string {
	s := ""
	for i := 0; i < o.IndentSize; i++ {
		s += o.IndentChar
	}
	return s
}
